package bid

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	biderrors "go-tender/internal/bid/errors"
	"go-tender/internal/domain"
	"go-tender/internal/shared/apperror"
	"go-tender/internal/shared/clock"
	"go-tender/internal/tender"
)

//go:generate mockgen -source=bid_service.go -destination=mock/bid_service_mock.go -package=mock

// TenderReader is the narrow slice of the tender repository bid submission
// needs.
type TenderReader interface {
	FindByID(ctx context.Context, id string) (*tender.Tender, error)
}

type Service interface {
	Submit(ctx context.Context, actor domain.Actor, req CreateBidRequest) (*SubmitBidResponse, error)
	ListForTender(ctx context.Context, actor domain.Actor, tenderID string) ([]BidResponse, error)
	MyBids(ctx context.Context, actor domain.Actor) ([]BidResponse, error)
	MyConfirmations(ctx context.Context, actor domain.Actor) ([]ConfirmationResponse, error)
	WinnerStatus(ctx context.Context, actor domain.Actor, bidID string) (*WinnerStatus, error)
}

type service struct {
	repo    Repository
	tenders TenderReader
	clock   clock.Clock
	logger  *zap.Logger
}

func NewService(repo Repository, tenders TenderReader, clk clock.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("bid.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bid.service")
	}
	if clk == nil {
		clk = clock.System()
	}
	return &service{repo: repo, tenders: tenders, clock: clk, logger: l}
}

func (s *service) Submit(ctx context.Context, actor domain.Actor, req CreateBidRequest) (*SubmitBidResponse, error) {
	if !actor.Role.CanSubmitBids() {
		return nil, apperror.ErrForbidden
	}

	companyID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return nil, biderrors.ErrInvalidActorID
	}
	tenderID, err := uuid.Parse(req.TenderID)
	if err != nil {
		return nil, biderrors.ErrInvalidTenderID
	}

	price, err := decimal.NewFromString(req.BiddingPrice)
	if err != nil || !price.IsPositive() {
		return nil, biderrors.ErrInvalidPrice
	}

	t, err := s.tenders.FindByID(ctx, tenderID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, biderrors.ErrTenderNotFound
		}
		return nil, err
	}

	// Bidding closes at the same date boundary that opens awarding, so a
	// bid and an award can never both be accepted on the deadline date.
	if t.Status != tender.StatusOpen || tender.DeadlineReached(t.SubmissionDeadline, s.clock.Now()) {
		return nil, biderrors.ErrBiddingClosed
	}

	exists, err := s.repo.ExistsForTenderAndCompany(ctx, tenderID.String(), companyID.String())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, biderrors.ErrDuplicateBid
	}

	b := &Bid{
		TenderID:        tenderID,
		CompanyID:       companyID,
		BiddingPrice:    price,
		DocumentURL:     req.DocumentURL,
		AdditionalNotes: req.AdditionalNotes,
	}

	code := newConfirmationCode()
	if err := s.repo.CreateWithConfirmation(ctx, b, code); err != nil {
		// A concurrent submit can slip past the pre-check; the unique index
		// on (tender_id, company_id) catches it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, biderrors.ErrDuplicateBid
		}
		s.logger.Error("submit bid failed",
			zap.String("tender_id", req.TenderID),
			zap.String("company_id", actor.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("bid submitted",
		zap.String("bid_id", b.ID.String()),
		zap.String("tender_id", req.TenderID),
		zap.String("company_id", actor.UserID),
	)

	return &SubmitBidResponse{
		Bid:              mapToResponse(*b),
		ConfirmationCode: code,
	}, nil
}

func (s *service) ListForTender(ctx context.Context, actor domain.Actor, tenderID string) ([]BidResponse, error) {
	if _, err := uuid.Parse(tenderID); err != nil {
		return nil, biderrors.ErrInvalidTenderID
	}

	if _, err := s.tenders.FindByID(ctx, tenderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, biderrors.ErrTenderNotFound
		}
		return nil, err
	}

	var (
		bids []Bid
		err  error
	)
	if actor.Role.CanViewAllBids() {
		bids, err = s.repo.ListByTender(ctx, tenderID)
	} else {
		bids, err = s.repo.ListByTenderAndCompany(ctx, tenderID, actor.UserID)
	}
	if err != nil {
		return nil, err
	}
	return mapToListResponse(bids), nil
}

func (s *service) MyBids(ctx context.Context, actor domain.Actor) ([]BidResponse, error) {
	if !actor.Role.CanSubmitBids() {
		return nil, apperror.ErrForbidden
	}

	bids, err := s.repo.ListByCompany(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(bids), nil
}

func (s *service) MyConfirmations(ctx context.Context, actor domain.Actor) ([]ConfirmationResponse, error) {
	if !actor.Role.CanSubmitBids() {
		return nil, apperror.ErrForbidden
	}

	confirmations, err := s.repo.ListConfirmationsByCompany(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	resp := make([]ConfirmationResponse, len(confirmations))
	for i, c := range confirmations {
		resp[i] = mapConfirmation(c)
	}
	return resp, nil
}

func (s *service) WinnerStatus(ctx context.Context, actor domain.Actor, bidID string) (*WinnerStatus, error) {
	if _, err := uuid.Parse(bidID); err != nil {
		return nil, biderrors.ErrInvalidBidID
	}

	if !actor.Role.CanViewAllBids() {
		b, err := s.repo.FindByID(ctx, bidID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, biderrors.ErrBidNotFound
			}
			return nil, err
		}
		if b.CompanyID.String() != actor.UserID {
			return nil, biderrors.ErrNotBidOwner
		}
	}

	status, err := s.repo.WinnerStatus(ctx, bidID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, biderrors.ErrBidNotFound
		}
		return nil, err
	}
	return status, nil
}

func newConfirmationCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
