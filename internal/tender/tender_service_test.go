package tender_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"go-tender/internal/domain"
	"go-tender/internal/history"
	historyMock "go-tender/internal/history/mock"
	"go-tender/internal/shared/clock"
	"go-tender/internal/tender"
	tendererrors "go-tender/internal/tender/errors"
	tenderMock "go-tender/internal/tender/mock"
)

type serviceDeps struct {
	repo    *tenderMock.MockRepository
	history *historyMock.MockService
	entries []*history.TenderHistory
}

// setupService wires the service against mocks; recorded history entries are
// captured into deps.entries.
func setupService(t *testing.T, clk clock.Clock) (*serviceDeps, tender.Service) {
	ctrl := gomock.NewController(t)
	deps := &serviceDeps{
		repo:    tenderMock.NewMockRepository(ctrl),
		history: historyMock.NewMockService(ctrl),
	}
	deps.history.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, entry *history.TenderHistory) error {
			deps.entries = append(deps.entries, entry)
			return nil
		}).
		AnyTimes()
	return deps, tender.NewService(deps.repo, deps.history, clk)
}

func cityActor() domain.Actor {
	return domain.Actor{
		UserID:   uuid.New().String(),
		Username: "city-clerk",
		Role:     domain.RoleCity,
	}
}

func openTender(deadline time.Time) *tender.Tender {
	return &tender.Tender{
		ID:                 uuid.New(),
		Title:              "Road resurfacing",
		Description:        "Resurface the main street",
		Budget:             decimal.RequireFromString("150000.00"),
		Category:           tender.CategoryInfrastructure,
		Status:             tender.StatusOpen,
		NoticeDate:         deadline.AddDate(0, -1, 0),
		SubmissionDeadline: deadline,
		CreatedBy:          uuid.New(),
	}
}

func TestTenderService_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	t.Run("success records a created history entry", func(t *testing.T) {
		deps, svc := setupService(t, clock.Fixed(now))

		var created *tender.Tender
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, tr *tender.Tender) error {
				tr.ID = uuid.New()
				created = tr
				return nil
			})

		resp, err := svc.Create(ctx, cityActor(), tender.CreateTenderRequest{
			Title:              "Road resurfacing",
			Description:        "Resurface the main street",
			Budget:             "150000.00",
			Category:           "INFRASTRUCTURE",
			NoticeDate:         "2026-02-01",
			SubmissionDeadline: "2026-03-15",
		})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Equal(t, "OPEN", resp.Status)
		assert.Equal(t, created.ID.String(), resp.ID)

		assert.Len(t, deps.entries, 1)
		assert.Equal(t, history.ActionCreated, deps.entries[0].Action)
		assert.Equal(t, created.ID, deps.entries[0].TenderID)
	})

	t.Run("negative budget is rejected", func(t *testing.T) {
		_, svc := setupService(t, clock.Fixed(now))

		_, err := svc.Create(ctx, cityActor(), tender.CreateTenderRequest{
			Title:              "Road resurfacing",
			Description:        "x",
			Budget:             "-5",
			Category:           "INFRASTRUCTURE",
			NoticeDate:         "2026-02-01",
			SubmissionDeadline: "2026-03-15",
		})
		assert.ErrorIs(t, err, tendererrors.ErrInvalidBudget)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		_, svc := setupService(t, clock.Fixed(now))

		_, err := svc.Create(ctx, cityActor(), tender.CreateTenderRequest{
			Title:              "Road resurfacing",
			Description:        "x",
			Budget:             "100",
			Category:           "SPACE_TRAVEL",
			NoticeDate:         "2026-02-01",
			SubmissionDeadline: "2026-03-15",
		})
		assert.ErrorIs(t, err, tendererrors.ErrInvalidCategory)
	})
}

func TestTenderService_Update(t *testing.T) {
	ctx := context.Background()
	deadline := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	beforeDeadline := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	afterDeadline := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)

	t.Run("changed fields produce one history entry each", func(t *testing.T) {
		deps, svc := setupService(t, clock.Fixed(beforeDeadline))

		existing := openTender(deadline)
		deps.repo.EXPECT().FindByID(gomock.Any(), existing.ID.String()).Return(existing, nil)
		deps.repo.EXPECT().Update(gomock.Any(), existing).Return(nil)

		title := "Road resurfacing phase 2"
		budget := "175000.00"
		resp, err := svc.Update(ctx, cityActor(), existing.ID.String(), tender.UpdateTenderRequest{
			Title:  &title,
			Budget: &budget,
		})

		assert.NoError(t, err)
		assert.Equal(t, title, resp.Title)
		assert.Len(t, deps.entries, 2)

		fields := map[string]*history.TenderHistory{}
		for _, e := range deps.entries {
			assert.Equal(t, history.ActionUpdated, e.Action)
			fields[*e.Field] = e
		}
		assert.Contains(t, fields, "title")
		assert.Contains(t, fields, "budget")
		assert.Equal(t, "€150000.00", *fields["budget"].OldValue)
		assert.Equal(t, "€175000.00", *fields["budget"].NewValue)
	})

	t.Run("unchanged values produce no history and no save", func(t *testing.T) {
		deps, svc := setupService(t, clock.Fixed(beforeDeadline))

		existing := openTender(deadline)
		deps.repo.EXPECT().FindByID(gomock.Any(), existing.ID.String()).Return(existing, nil)

		sameTitle := existing.Title
		_, err := svc.Update(ctx, cityActor(), existing.ID.String(), tender.UpdateTenderRequest{
			Title: &sameTitle,
		})

		assert.NoError(t, err)
		assert.Empty(t, deps.entries)
	})

	t.Run("edit after the deadline date is locked", func(t *testing.T) {
		deps, svc := setupService(t, clock.Fixed(afterDeadline))

		existing := openTender(deadline)
		deps.repo.EXPECT().FindByID(gomock.Any(), existing.ID.String()).Return(existing, nil)

		title := "too late"
		_, err := svc.Update(ctx, cityActor(), existing.ID.String(), tender.UpdateTenderRequest{Title: &title})

		assert.ErrorIs(t, err, tendererrors.ErrTenderLocked)
		assert.Empty(t, deps.entries)
	})

	t.Run("edit on an awarded tender is locked", func(t *testing.T) {
		deps, svc := setupService(t, clock.Fixed(beforeDeadline))

		existing := openTender(deadline)
		existing.Status = tender.StatusAwarded
		deps.repo.EXPECT().FindByID(gomock.Any(), existing.ID.String()).Return(existing, nil)

		title := "rewrite history"
		_, err := svc.Update(ctx, cityActor(), existing.ID.String(), tender.UpdateTenderRequest{Title: &title})
		assert.ErrorIs(t, err, tendererrors.ErrTenderLocked)
	})

	t.Run("unknown tender returns not found", func(t *testing.T) {
		deps, svc := setupService(t, clock.Fixed(beforeDeadline))

		id := uuid.New().String()
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		title := "x"
		_, err := svc.Update(ctx, cityActor(), id, tender.UpdateTenderRequest{Title: &title})
		assert.ErrorIs(t, err, tendererrors.ErrTenderNotFound)
	})
}

func TestTenderService_Delete(t *testing.T) {
	ctx := context.Background()
	deadline := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	beforeDeadline := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("success records a deleted entry", func(t *testing.T) {
		deps, svc := setupService(t, clock.Fixed(beforeDeadline))

		existing := openTender(deadline)
		deps.repo.EXPECT().FindByID(gomock.Any(), existing.ID.String()).Return(existing, nil)
		deps.repo.EXPECT().CountBids(gomock.Any(), existing.ID.String()).Return(int64(0), nil)
		deps.repo.EXPECT().SoftDeleteIfNoBids(gomock.Any(), existing.ID.String()).Return(int64(1), nil)

		err := svc.Delete(ctx, cityActor(), existing.ID.String())

		assert.NoError(t, err)
		assert.Len(t, deps.entries, 1)
		assert.Equal(t, history.ActionDeleted, deps.entries[0].Action)
	})

	t.Run("tender with bids cannot be deleted", func(t *testing.T) {
		deps, svc := setupService(t, clock.Fixed(beforeDeadline))

		existing := openTender(deadline)
		deps.repo.EXPECT().FindByID(gomock.Any(), existing.ID.String()).Return(existing, nil)
		deps.repo.EXPECT().CountBids(gomock.Any(), existing.ID.String()).Return(int64(3), nil)

		err := svc.Delete(ctx, cityActor(), existing.ID.String())
		assert.ErrorIs(t, err, tendererrors.ErrTenderHasBids)
		assert.Empty(t, deps.entries)
	})

	t.Run("concurrent bid between count and delete is caught", func(t *testing.T) {
		deps, svc := setupService(t, clock.Fixed(beforeDeadline))

		existing := openTender(deadline)
		deps.repo.EXPECT().FindByID(gomock.Any(), existing.ID.String()).Return(existing, nil)
		deps.repo.EXPECT().CountBids(gomock.Any(), existing.ID.String()).Return(int64(0), nil)
		deps.repo.EXPECT().SoftDeleteIfNoBids(gomock.Any(), existing.ID.String()).Return(int64(0), nil)

		err := svc.Delete(ctx, cityActor(), existing.ID.String())
		assert.ErrorIs(t, err, tendererrors.ErrTenderHasBids)
	})
}

func TestTenderService_PublicWinner(t *testing.T) {
	ctx := context.Background()
	deadline := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC)

	t.Run("awarded tender exposes winner details", func(t *testing.T) {
		deps, svc := setupService(t, clock.Fixed(now))

		existing := openTender(deadline)
		winningBid := uuid.New()
		winnerDate := time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)
		existing.Status = tender.StatusAwarded
		existing.WinningBidID = &winningBid
		existing.WinnerDate = &winnerDate

		deps.repo.EXPECT().FindByID(gomock.Any(), existing.ID.String()).Return(existing, nil)
		deps.repo.EXPECT().WinningBidInfo(gomock.Any(), winningBid.String()).Return(&tender.WinningBidInfo{
			CompanyName:  "Acme Construction Oy",
			BiddingPrice: decimal.RequireFromString("142500.50"),
		}, nil)

		resp, err := svc.PublicWinner(ctx, existing.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, "Acme Construction Oy", resp.Winner)
		assert.Equal(t, "142500.50", resp.WinningPrice)
		assert.Equal(t, "2026-03-16", resp.AwardDate)
	})

	t.Run("open tender reports not awarded", func(t *testing.T) {
		deps, svc := setupService(t, clock.Fixed(now))

		existing := openTender(deadline)
		deps.repo.EXPECT().FindByID(gomock.Any(), existing.ID.String()).Return(existing, nil)

		_, err := svc.PublicWinner(ctx, existing.ID.String())
		assert.ErrorIs(t, err, tendererrors.ErrNotAwarded)
	})

	t.Run("unknown tender is not found", func(t *testing.T) {
		deps, svc := setupService(t, clock.Fixed(now))

		id := uuid.New().String()
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.PublicWinner(ctx, id)
		assert.ErrorIs(t, err, tendererrors.ErrTenderNotFound)
	})
}
