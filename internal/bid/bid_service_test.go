package bid_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"go-tender/internal/bid"
	biderrors "go-tender/internal/bid/errors"
	bidMock "go-tender/internal/bid/mock"
	"go-tender/internal/domain"
	"go-tender/internal/shared/apperror"
	"go-tender/internal/shared/clock"
	"go-tender/internal/tender"
)

type serviceDeps struct {
	repo    *bidMock.MockRepository
	tenders *bidMock.MockTenderReader
}

func setupService(t *testing.T, clk clock.Clock) (*serviceDeps, bid.Service) {
	ctrl := gomock.NewController(t)
	deps := &serviceDeps{
		repo:    bidMock.NewMockRepository(ctrl),
		tenders: bidMock.NewMockTenderReader(ctrl),
	}
	return deps, bid.NewService(deps.repo, deps.tenders, clk)
}

func companyActor() domain.Actor {
	return domain.Actor{
		UserID:   uuid.New().String(),
		Username: "acme",
		Role:     domain.RoleCompany,
	}
}

func expectOpenTender(deps *serviceDeps, deadline time.Time) {
	deps.tenders.EXPECT().
		FindByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id string) (*tender.Tender, error) {
			return &tender.Tender{
				ID:                 uuid.MustParse(id),
				Status:             tender.StatusOpen,
				SubmissionDeadline: deadline,
			}, nil
		})
}

func TestBidService_Submit(t *testing.T) {
	ctx := context.Background()
	deadline := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	beforeDeadline := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	onDeadline := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	t.Run("success issues a confirmation code", func(t *testing.T) {
		deps, svc := setupService(t, clock.Fixed(beforeDeadline))
		expectOpenTender(deps, deadline)
		deps.repo.EXPECT().
			ExistsForTenderAndCompany(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)

		var gotCode string
		deps.repo.EXPECT().
			CreateWithConfirmation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, b *bid.Bid, code string) error {
				b.ID = uuid.New()
				gotCode = code
				return nil
			})

		resp, err := svc.Submit(ctx, companyActor(), bid.CreateBidRequest{
			TenderID:     uuid.New().String(),
			BiddingPrice: "142500.50",
		})

		assert.NoError(t, err)
		assert.Equal(t, "142500.50", resp.Bid.BiddingPrice)
		assert.Len(t, gotCode, 32)
		assert.Equal(t, gotCode, resp.ConfirmationCode)
	})

	t.Run("bid on the deadline date is closed", func(t *testing.T) {
		deps, svc := setupService(t, clock.Fixed(onDeadline))
		expectOpenTender(deps, deadline)

		_, err := svc.Submit(ctx, companyActor(), bid.CreateBidRequest{
			TenderID:     uuid.New().String(),
			BiddingPrice: "100",
		})

		assert.ErrorIs(t, err, biderrors.ErrBiddingClosed)
	})

	t.Run("bid on an awarded tender is closed", func(t *testing.T) {
		deps, svc := setupService(t, clock.Fixed(beforeDeadline))
		deps.tenders.EXPECT().
			FindByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, id string) (*tender.Tender, error) {
				return &tender.Tender{
					ID:                 uuid.MustParse(id),
					Status:             tender.StatusAwarded,
					SubmissionDeadline: deadline,
				}, nil
			})

		_, err := svc.Submit(ctx, companyActor(), bid.CreateBidRequest{
			TenderID:     uuid.New().String(),
			BiddingPrice: "100",
		})
		assert.ErrorIs(t, err, biderrors.ErrBiddingClosed)
	})

	t.Run("second bid from the same company is rejected", func(t *testing.T) {
		deps, svc := setupService(t, clock.Fixed(beforeDeadline))
		expectOpenTender(deps, deadline)
		deps.repo.EXPECT().
			ExistsForTenderAndCompany(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.Submit(ctx, companyActor(), bid.CreateBidRequest{
			TenderID:     uuid.New().String(),
			BiddingPrice: "100",
		})
		assert.ErrorIs(t, err, biderrors.ErrDuplicateBid)
	})

	t.Run("duplicate slipping past the pre-check maps the index violation", func(t *testing.T) {
		deps, svc := setupService(t, clock.Fixed(beforeDeadline))
		expectOpenTender(deps, deadline)
		deps.repo.EXPECT().
			ExistsForTenderAndCompany(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		deps.repo.EXPECT().
			CreateWithConfirmation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(gorm.ErrDuplicatedKey)

		_, err := svc.Submit(ctx, companyActor(), bid.CreateBidRequest{
			TenderID:     uuid.New().String(),
			BiddingPrice: "100",
		})
		assert.ErrorIs(t, err, biderrors.ErrDuplicateBid)
	})

	t.Run("zero price is rejected", func(t *testing.T) {
		_, svc := setupService(t, clock.Fixed(beforeDeadline))

		_, err := svc.Submit(ctx, companyActor(), bid.CreateBidRequest{
			TenderID:     uuid.New().String(),
			BiddingPrice: "0",
		})
		assert.ErrorIs(t, err, biderrors.ErrInvalidPrice)
	})

	t.Run("city role may not bid", func(t *testing.T) {
		_, svc := setupService(t, clock.Fixed(beforeDeadline))

		actor := companyActor()
		actor.Role = domain.RoleCity
		_, err := svc.Submit(ctx, actor, bid.CreateBidRequest{
			TenderID:     uuid.New().String(),
			BiddingPrice: "100",
		})
		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})
}

func TestBidService_ListForTender(t *testing.T) {
	ctx := context.Background()
	deadline := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	tenderID := uuid.New()

	makeBid := func(companyID uuid.UUID) bid.Bid {
		return bid.Bid{
			ID:           uuid.New(),
			TenderID:     tenderID,
			CompanyID:    companyID,
			BiddingPrice: decimal.RequireFromString("100.00"),
		}
	}

	t.Run("city sees every bid", func(t *testing.T) {
		deps, svc := setupService(t, clock.System())
		expectOpenTender(deps, deadline)
		deps.repo.EXPECT().
			ListByTender(gomock.Any(), tenderID.String()).
			Return([]bid.Bid{makeBid(uuid.New()), makeBid(uuid.New())}, nil)

		actor := companyActor()
		actor.Role = domain.RoleCity
		resp, err := svc.ListForTender(ctx, actor, tenderID.String())

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
	})

	t.Run("company only sees its own bids", func(t *testing.T) {
		deps, svc := setupService(t, clock.System())
		expectOpenTender(deps, deadline)

		actor := companyActor()
		deps.repo.EXPECT().
			ListByTenderAndCompany(gomock.Any(), tenderID.String(), actor.UserID).
			Return([]bid.Bid{makeBid(uuid.MustParse(actor.UserID))}, nil)

		resp, err := svc.ListForTender(ctx, actor, tenderID.String())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, actor.UserID, resp[0].CompanyID)
	})

	t.Run("unknown tender is not found", func(t *testing.T) {
		deps, svc := setupService(t, clock.System())
		deps.tenders.EXPECT().
			FindByID(gomock.Any(), gomock.Any()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.ListForTender(ctx, companyActor(), uuid.New().String())
		assert.ErrorIs(t, err, biderrors.ErrTenderNotFound)
	})
}

func TestBidService_WinnerStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("company may read its own bid", func(t *testing.T) {
		deps, svc := setupService(t, clock.System())

		actor := companyActor()
		bidID := uuid.New()
		deps.repo.EXPECT().
			FindByID(gomock.Any(), bidID.String()).
			Return(&bid.Bid{ID: bidID, CompanyID: uuid.MustParse(actor.UserID)}, nil)
		deps.repo.EXPECT().
			WinnerStatus(gomock.Any(), bidID.String()).
			Return(&bid.WinnerStatus{
				BidID:            bidID.String(),
				IsWinner:         true,
				TenderStatus:     "AWARDED",
				IsDirectlyLinked: true,
			}, nil)

		resp, err := svc.WinnerStatus(ctx, actor, bidID.String())

		assert.NoError(t, err)
		assert.True(t, resp.IsWinner)
		assert.True(t, resp.IsDirectlyLinked)
	})

	t.Run("company may not read another company's bid", func(t *testing.T) {
		deps, svc := setupService(t, clock.System())

		bidID := uuid.New()
		deps.repo.EXPECT().
			FindByID(gomock.Any(), bidID.String()).
			Return(&bid.Bid{ID: bidID, CompanyID: uuid.New()}, nil)

		_, err := svc.WinnerStatus(ctx, companyActor(), bidID.String())
		assert.ErrorIs(t, err, biderrors.ErrNotBidOwner)
	})

	t.Run("city skips the ownership check", func(t *testing.T) {
		deps, svc := setupService(t, clock.System())

		bidID := uuid.New()
		deps.repo.EXPECT().
			WinnerStatus(gomock.Any(), bidID.String()).
			Return(&bid.WinnerStatus{BidID: bidID.String(), TenderStatus: "OPEN"}, nil)

		actor := companyActor()
		actor.Role = domain.RoleCity
		resp, err := svc.WinnerStatus(ctx, actor, bidID.String())

		assert.NoError(t, err)
		assert.False(t, resp.IsWinner)
	})
}
