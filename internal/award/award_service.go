package award

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	awarderrors "go-tender/internal/award/errors"
	"go-tender/internal/bootstrap"
	"go-tender/internal/domain"
	"go-tender/internal/events"
	"go-tender/internal/history"
	"go-tender/internal/messaging/kafka"
	"go-tender/internal/shared/apperror"
	"go-tender/internal/shared/clock"
	"go-tender/internal/shared/contextutil"
	"go-tender/internal/tender"
	tendererrors "go-tender/internal/tender/errors"
)

type AwardResponse struct {
	TenderID     string `json:"tender_id"`
	Status       string `json:"status"`
	WinningBidID string `json:"winning_bid_id"`
	WinnerDate   string `json:"winner_date"`
}

type Service interface {
	// SelectWinner marks one bid as the winner of a tender. The whole
	// mutation commits or none of it does; concurrent calls on the same
	// tender serialize on the row lock and the loser fails ALREADY_AWARDED.
	SelectWinner(ctx context.Context, tenderID, bidID string, actor domain.Actor) (*AwardResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	outbox  kafka.OutboxRepository
	history history.Service
	audit   bootstrap.AuditLogger
	clock   clock.Clock
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	historySvc history.Service,
	audit bootstrap.AuditLogger,
	clk clock.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("award.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("award.service")
	}
	if clk == nil {
		clk = clock.System()
	}
	return &service{
		db:      db,
		repo:    repo,
		outbox:  outbox,
		history: historySvc,
		audit:   audit,
		clock:   clk,
		logger:  l,
	}
}

func (s *service) SelectWinner(ctx context.Context, tenderID, bidID string, actor domain.Actor) (*AwardResponse, error) {
	if _, err := uuid.Parse(tenderID); err != nil {
		return nil, awarderrors.ErrInvalidTenderID
	}
	if _, err := uuid.Parse(bidID); err != nil {
		return nil, awarderrors.ErrInvalidBidID
	}
	actorID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return nil, awarderrors.ErrInvalidActorID
	}
	if !actor.Role.CanAward() {
		return nil, apperror.ErrForbidden
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, awarderrors.AwardFailed(err)
	}
	// Rollback after a successful commit is a no-op.
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	t, err := repo.LockTender(ctx, tenderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tendererrors.ErrTenderNotFound
		}
		return nil, awarderrors.AwardFailed(err)
	}

	b, err := repo.FindBid(ctx, bidID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, awarderrors.ErrBidNotFound
		}
		return nil, awarderrors.AwardFailed(err)
	}
	if b.TenderID != t.ID {
		return nil, awarderrors.ErrTenderMismatch
	}

	now := s.clock.Now()
	if err := tender.GuardAward(tender.Status(t.Status), t.SubmissionDeadline, now); err != nil {
		return nil, err
	}

	if err := s.applyAward(ctx, repo, tx, t.ID, b, actor, now); err != nil {
		s.logger.Error("award transaction failed",
			zap.String("tender_id", tenderID),
			zap.String("bid_id", bidID),
			zap.Error(err),
		)
		return nil, awarderrors.AwardFailed(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("award commit failed",
			zap.String("tender_id", tenderID),
			zap.String("bid_id", bidID),
			zap.Error(err),
		)
		return nil, awarderrors.AwardFailed(err)
	}

	s.logger.Info("tender awarded",
		zap.String("tender_id", tenderID),
		zap.String("bid_id", bidID),
		zap.String("awarded_by", actor.UserID),
	)

	// The award is durable at this point. The ledger entry and the audit
	// event ride outside the transaction; a failure here is reported but
	// never voids the committed award.
	tid := uuid.MustParse(t.ID)
	bid := uuid.MustParse(b.ID)
	if err := s.history.Record(ctx, history.Awarded(tid, bid, actorID)); err != nil {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "AWARD_HISTORY_WRITE_FAILED",
			Message: "tender awarded but the history entry could not be recorded",
			Meta: map[string]any{
				"tender_id": tenderID,
				"bid_id":    bidID,
				"error":     err.Error(),
			},
		})
	}

	return &AwardResponse{
		TenderID:     t.ID,
		Status:       string(tender.StatusAwarded),
		WinningBidID: b.ID,
		WinnerDate:   now.UTC().Format(time.RFC3339),
	}, nil
}

// applyAward runs the mutation steps inside the open transaction: previous
// winner flags cleared, the chosen bid marked, the tender transitioned, and
// the outbox row inserted.
func (s *service) applyAward(
	ctx context.Context,
	repo Repository,
	tx *sql.Tx,
	tenderID string,
	b *BidRow,
	actor domain.Actor,
	now time.Time,
) error {
	if err := repo.ClearWinners(ctx, tenderID); err != nil {
		return err
	}
	if err := repo.MarkWinner(ctx, b.ID, now); err != nil {
		return err
	}
	if err := repo.MarkAwarded(ctx, tenderID, b.ID, now); err != nil {
		return err
	}

	payload, err := json.Marshal(events.TenderAwardedEvent{
		TenderID:     tenderID,
		WinningBidID: b.ID,
		CompanyID:    b.CompanyID,
		AwardedBy:    actor.UserID,
		AwardedAt:    now.UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "tender",
		AggregateID:   tenderID,
		EventType:     events.TypeTenderAwarded,
		Topic:         events.TopicTenderLifecycle,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
