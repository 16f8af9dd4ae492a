package history

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	historyerrors "go-tender/internal/history/errors"
)

//go:generate mockgen -source=history_service.go -destination=mock/history_service_mock.go -package=mock
type Service interface {
	// Record appends one ledger entry. Callers on already-committed paths
	// treat a failure as non-fatal and log it; the entry is never part of
	// the caller's transaction.
	Record(ctx context.Context, entry *TenderHistory) error
	ListByTender(ctx context.Context, tenderID string) ([]HistoryResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("history.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("history.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Record(ctx context.Context, entry *TenderHistory) error {
	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error("record history entry failed",
			zap.String("tender_id", entry.TenderID.String()),
			zap.String("action", entry.Action),
			zap.Error(err),
		)
		return err
	}
	s.logger.Debug("history entry recorded",
		zap.String("tender_id", entry.TenderID.String()),
		zap.String("action", entry.Action),
	)
	return nil
}

func (s *service) ListByTender(ctx context.Context, tenderID string) ([]HistoryResponse, error) {
	if _, err := uuid.Parse(tenderID); err != nil {
		return nil, historyerrors.ErrInvalidTenderID
	}

	exists, err := s.repo.TenderExists(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, historyerrors.ErrTenderNotFound
	}

	entries, err := s.repo.ListByTender(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(entries), nil
}
