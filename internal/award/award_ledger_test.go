package award_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-tender/internal/award"
	bootstrapMock "go-tender/internal/bootstrap/mock"
	"go-tender/internal/history"
	historyMock "go-tender/internal/history/mock"
	"go-tender/internal/messaging/kafka"
	"go-tender/internal/shared/clock"
	"go-tender/internal/tender"
	tenderMock "go-tender/internal/tender/mock"
)

// Walks a tender through its whole life with a single shared ledger: publish,
// budget edit, award. The ledger must end up with exactly one entry per step,
// newest first.
func TestTenderLifecycleLedger(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	// Append-only ledger over a mocked store. Create stamps entries in
	// arrival order; ListByTender returns them newest first, the way the
	// real store orders by timestamp descending.
	var ledger []history.TenderHistory
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	historyRepo := historyMock.NewMockRepository(ctrl)
	historyRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *history.TenderHistory) error {
			entry.ID = uuid.New()
			entry.Timestamp = base.Add(time.Duration(len(ledger)) * time.Hour)
			ledger = append(ledger, *entry)
			return nil
		}).
		AnyTimes()
	historyRepo.EXPECT().TenderExists(gomock.Any(), gomock.Any()).Return(true, nil)
	historyRepo.EXPECT().
		ListByTender(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string) ([]history.TenderHistory, error) {
			out := make([]history.TenderHistory, 0, len(ledger))
			for i := len(ledger) - 1; i >= 0; i-- {
				out = append(out, ledger[i])
			}
			return out, nil
		})
	histSvc := history.NewService(historyRepo)

	deadline := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	beforeDeadline := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	afterDeadline := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)
	actor := cityActor()

	// Step 1: publish.
	tenderRepo := tenderMock.NewMockRepository(ctrl)
	tenderSvc := tender.NewService(tenderRepo, histSvc, clock.Fixed(beforeDeadline))

	var stored *tender.Tender
	tenderRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr *tender.Tender) error {
			tr.ID = uuid.New()
			stored = tr
			return nil
		})

	created, err := tenderSvc.Create(ctx, actor, tender.CreateTenderRequest{
		Title:              "School gym renovation",
		Description:        "Replace the roof and flooring",
		Budget:             "150000.00",
		Category:           "CONSTRUCTION",
		NoticeDate:         "2026-02-01",
		SubmissionDeadline: "2026-03-15",
	})
	assert.NoError(t, err)
	assert.NotNil(t, created)

	// Step 2: budget edit before the deadline.
	tenderRepo.EXPECT().FindByID(gomock.Any(), stored.ID.String()).Return(stored, nil)
	tenderRepo.EXPECT().Update(gomock.Any(), stored).Return(nil)

	budget := "175000.00"
	_, err = tenderSvc.Update(ctx, actor, stored.ID.String(), tender.UpdateTenderRequest{
		Budget: &budget,
	})
	assert.NoError(t, err)

	// Step 3: award after the deadline, against the same ledger.
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	awardSvc := award.NewService(
		db,
		award.NewRepository(db),
		kafka.NewOutboxRepository(db),
		histSvc,
		bootstrapMock.NewMockAuditLogger(ctrl),
		clock.Fixed(afterDeadline),
	)

	bidID := uuid.New().String()
	sqlMock.ExpectBegin()
	expectLockTender(sqlMock, stored.ID.String(), "OPEN", deadline)
	expectFindBid(sqlMock, bidID, stored.ID.String(), uuid.New().String())
	sqlMock.ExpectExec(clearWinnersStmt).WillReturnResult(sqlmock.NewResult(0, 0))
	sqlMock.ExpectExec(markWinnerStmt).WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec(markAwardedStmt).WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec(outboxInsertStmt).WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectCommit()

	_, err = awardSvc.SelectWinner(ctx, stored.ID.String(), bidID, actor)
	assert.NoError(t, err)
	assert.NoError(t, sqlMock.ExpectationsWereMet())

	// Exactly three entries, newest first: award, budget edit, creation.
	entries, err := histSvc.ListByTender(ctx, stored.ID.String())
	assert.NoError(t, err)
	assert.Len(t, entries, 3)

	assert.Equal(t, history.ActionUpdated, entries[0].Action)
	assert.Equal(t, "status", *entries[0].Field)
	assert.Equal(t, "AWARDED", *entries[0].NewValue)
	assert.NotEmpty(t, entries[0].Changes)

	assert.Equal(t, history.ActionUpdated, entries[1].Action)
	assert.Equal(t, "budget", *entries[1].Field)
	assert.Equal(t, "€150000.00", *entries[1].OldValue)
	assert.Equal(t, "€175000.00", *entries[1].NewValue)

	assert.Equal(t, history.ActionCreated, entries[2].Action)
	assert.Equal(t, "OPEN", *entries[2].NewValue)

	assert.Greater(t, entries[0].Timestamp, entries[1].Timestamp)
	assert.Greater(t, entries[1].Timestamp, entries[2].Timestamp)
}
