package award_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-tender/internal/award"
	awarderrors "go-tender/internal/award/errors"
	"go-tender/internal/bootstrap"
	bootstrapMock "go-tender/internal/bootstrap/mock"
	"go-tender/internal/domain"
	"go-tender/internal/history"
	historyMock "go-tender/internal/history/mock"
	"go-tender/internal/messaging/kafka"
	"go-tender/internal/shared/apperror"
	"go-tender/internal/shared/clock"
	tendererrors "go-tender/internal/tender/errors"
)

type awardServiceDeps struct {
	mock      sqlmock.Sqlmock
	service   award.Service
	entries   []*history.TenderHistory
	recordErr error
	audited   []bootstrap.AuditLog
	now       time.Time
}

func setupAwardServiceTest(t *testing.T) *awardServiceDeps {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctrl := gomock.NewController(t)
	hist := historyMock.NewMockService(ctrl)
	audit := bootstrapMock.NewMockAuditLogger(ctrl)
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)

	deps := &awardServiceDeps{mock: mock, now: now}

	hist.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *history.TenderHistory) error {
			deps.entries = append(deps.entries, entry)
			return deps.recordErr
		}).
		AnyTimes()
	audit.EXPECT().
		Log(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, entry bootstrap.AuditLog) {
			deps.audited = append(deps.audited, entry)
		}).
		AnyTimes()

	deps.service = award.NewService(
		db,
		award.NewRepository(db),
		kafka.NewOutboxRepository(db),
		hist,
		audit,
		clock.Fixed(now),
	)

	return deps
}

func cityActor() domain.Actor {
	return domain.Actor{
		UserID:   uuid.New().String(),
		Username: "city-clerk",
		Role:     domain.RoleCity,
	}
}

// Single-line fragments of the repository SQL; the queries themselves span
// multiple lines.
const (
	lockTenderQuery  = `SELECT id::text, status, submission_deadline`
	findBidQuery     = `SELECT id::text, tender_id::text, company_id::text`
	clearWinnersStmt = `SET is_winner = false, awarded_at = NULL`
	markWinnerStmt   = `SET is_winner = true, awarded_at = \$2`
	markAwardedStmt  = `SET status = 'AWARDED', winning_bid_id = \$2, winner_date = \$3, updated_at = \$3`
	outboxInsertStmt = `INSERT INTO outbox_events`
)

func expectLockTender(mock sqlmock.Sqlmock, tenderID, status string, deadline time.Time) {
	rows := sqlmock.NewRows([]string{"id", "status", "submission_deadline"}).
		AddRow(tenderID, status, deadline)
	mock.ExpectQuery(regexp.QuoteMeta(lockTenderQuery)).WithArgs(tenderID).WillReturnRows(rows)
}

func expectFindBid(mock sqlmock.Sqlmock, bidID, tenderID, companyID string) {
	rows := sqlmock.NewRows([]string{"id", "tender_id", "company_id"}).
		AddRow(bidID, tenderID, companyID)
	mock.ExpectQuery(regexp.QuoteMeta(findBidQuery)).WithArgs(bidID).WillReturnRows(rows)
}

func TestAwardService_SelectWinner(t *testing.T) {
	ctx := context.Background()
	pastDeadline := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("success applies every mutation in order and commits", func(t *testing.T) {
		deps := setupAwardServiceTest(t)
		tenderID := uuid.New().String()
		bidID := uuid.New().String()
		companyID := uuid.New().String()

		deps.mock.ExpectBegin()
		expectLockTender(deps.mock, tenderID, "OPEN", pastDeadline)
		expectFindBid(deps.mock, bidID, tenderID, companyID)
		deps.mock.ExpectExec(clearWinnersStmt).
			WithArgs(tenderID).
			WillReturnResult(sqlmock.NewResult(0, 2))
		deps.mock.ExpectExec(markWinnerStmt).
			WithArgs(bidID, deps.now).
			WillReturnResult(sqlmock.NewResult(0, 1))
		deps.mock.ExpectExec(markAwardedStmt).
			WithArgs(tenderID, bidID, deps.now).
			WillReturnResult(sqlmock.NewResult(0, 1))
		deps.mock.ExpectExec(outboxInsertStmt).
			WillReturnResult(sqlmock.NewResult(0, 1))
		deps.mock.ExpectCommit()

		resp, err := deps.service.SelectWinner(ctx, tenderID, bidID, cityActor())

		assert.NoError(t, err)
		assert.Equal(t, tenderID, resp.TenderID)
		assert.Equal(t, "AWARDED", resp.Status)
		assert.Equal(t, bidID, resp.WinningBidID)
		assert.NoError(t, deps.mock.ExpectationsWereMet())

		// The ledger entry rides after the commit.
		assert.Len(t, deps.entries, 1)
		assert.Equal(t, history.ActionUpdated, deps.entries[0].Action)
		assert.Equal(t, tenderID, deps.entries[0].TenderID.String())
		assert.NotEmpty(t, deps.entries[0].Changes)
	})

	t.Run("second award fails already awarded and mutates nothing", func(t *testing.T) {
		deps := setupAwardServiceTest(t)
		tenderID := uuid.New().String()
		bidID := uuid.New().String()

		deps.mock.ExpectBegin()
		expectLockTender(deps.mock, tenderID, "AWARDED", pastDeadline)
		expectFindBid(deps.mock, bidID, tenderID, uuid.New().String())
		deps.mock.ExpectRollback()

		_, err := deps.service.SelectWinner(ctx, tenderID, bidID, cityActor())

		assert.ErrorIs(t, err, tendererrors.ErrAlreadyAwarded)
		assert.NoError(t, deps.mock.ExpectationsWereMet())
		assert.Empty(t, deps.entries)
	})

	t.Run("award before the deadline date rolls back untouched", func(t *testing.T) {
		deps := setupAwardServiceTest(t)
		tenderID := uuid.New().String()
		bidID := uuid.New().String()
		futureDeadline := deps.now.AddDate(0, 1, 0)

		deps.mock.ExpectBegin()
		expectLockTender(deps.mock, tenderID, "OPEN", futureDeadline)
		expectFindBid(deps.mock, bidID, tenderID, uuid.New().String())
		deps.mock.ExpectRollback()

		_, err := deps.service.SelectWinner(ctx, tenderID, bidID, cityActor())

		assert.ErrorIs(t, err, tendererrors.ErrDeadlineNotReached)
		assert.NoError(t, deps.mock.ExpectationsWereMet())
	})

	t.Run("bid from another tender fails tender mismatch", func(t *testing.T) {
		deps := setupAwardServiceTest(t)
		tenderID := uuid.New().String()
		bidID := uuid.New().String()

		deps.mock.ExpectBegin()
		expectLockTender(deps.mock, tenderID, "OPEN", pastDeadline)
		expectFindBid(deps.mock, bidID, uuid.New().String(), uuid.New().String())
		deps.mock.ExpectRollback()

		_, err := deps.service.SelectWinner(ctx, tenderID, bidID, cityActor())

		assert.ErrorIs(t, err, awarderrors.ErrTenderMismatch)
		assert.NoError(t, deps.mock.ExpectationsWereMet())
	})

	t.Run("unknown bid fails bid not found", func(t *testing.T) {
		deps := setupAwardServiceTest(t)
		tenderID := uuid.New().String()
		bidID := uuid.New().String()

		deps.mock.ExpectBegin()
		expectLockTender(deps.mock, tenderID, "OPEN", pastDeadline)
		deps.mock.ExpectQuery(regexp.QuoteMeta(findBidQuery)).
			WithArgs(bidID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "tender_id", "company_id"}))
		deps.mock.ExpectRollback()

		_, err := deps.service.SelectWinner(ctx, tenderID, bidID, cityActor())

		assert.ErrorIs(t, err, awarderrors.ErrBidNotFound)
		assert.NoError(t, deps.mock.ExpectationsWereMet())
	})

	t.Run("unknown tender fails tender not found", func(t *testing.T) {
		deps := setupAwardServiceTest(t)
		tenderID := uuid.New().String()
		bidID := uuid.New().String()

		deps.mock.ExpectBegin()
		deps.mock.ExpectQuery(regexp.QuoteMeta(lockTenderQuery)).
			WithArgs(tenderID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status", "submission_deadline"}))
		deps.mock.ExpectRollback()

		_, err := deps.service.SelectWinner(ctx, tenderID, bidID, cityActor())

		assert.ErrorIs(t, err, tendererrors.ErrTenderNotFound)
		assert.NoError(t, deps.mock.ExpectationsWereMet())
	})

	t.Run("failed outbox insert voids the whole award", func(t *testing.T) {
		deps := setupAwardServiceTest(t)
		tenderID := uuid.New().String()
		bidID := uuid.New().String()

		deps.mock.ExpectBegin()
		expectLockTender(deps.mock, tenderID, "OPEN", pastDeadline)
		expectFindBid(deps.mock, bidID, tenderID, uuid.New().String())
		deps.mock.ExpectExec(clearWinnersStmt).
			WillReturnResult(sqlmock.NewResult(0, 0))
		deps.mock.ExpectExec(markWinnerStmt).
			WillReturnResult(sqlmock.NewResult(0, 1))
		deps.mock.ExpectExec(markAwardedStmt).
			WillReturnResult(sqlmock.NewResult(0, 1))
		deps.mock.ExpectExec(outboxInsertStmt).
			WillReturnError(errors.New("disk full"))
		deps.mock.ExpectRollback()

		_, err := deps.service.SelectWinner(ctx, tenderID, bidID, cityActor())

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, "AWARD_FAILED", appErr.Code)
		assert.NoError(t, deps.mock.ExpectationsWereMet())
		assert.Empty(t, deps.entries)
	})

	t.Run("company role may not award", func(t *testing.T) {
		deps := setupAwardServiceTest(t)

		actor := cityActor()
		actor.Role = domain.RoleCompany
		_, err := deps.service.SelectWinner(ctx, uuid.New().String(), uuid.New().String(), actor)

		assert.ErrorIs(t, err, apperror.ErrForbidden)
		assert.NoError(t, deps.mock.ExpectationsWereMet())
	})

	t.Run("history failure after commit surfaces on the audit log", func(t *testing.T) {
		deps := setupAwardServiceTest(t)
		deps.recordErr = errors.New("ledger unavailable")
		tenderID := uuid.New().String()
		bidID := uuid.New().String()

		deps.mock.ExpectBegin()
		expectLockTender(deps.mock, tenderID, "OPEN", pastDeadline)
		expectFindBid(deps.mock, bidID, tenderID, uuid.New().String())
		deps.mock.ExpectExec(clearWinnersStmt).
			WillReturnResult(sqlmock.NewResult(0, 0))
		deps.mock.ExpectExec(markWinnerStmt).
			WillReturnResult(sqlmock.NewResult(0, 1))
		deps.mock.ExpectExec(markAwardedStmt).
			WillReturnResult(sqlmock.NewResult(0, 1))
		deps.mock.ExpectExec(outboxInsertStmt).
			WillReturnResult(sqlmock.NewResult(0, 1))
		deps.mock.ExpectCommit()

		resp, err := deps.service.SelectWinner(ctx, tenderID, bidID, cityActor())

		// The award itself still succeeds.
		assert.NoError(t, err)
		assert.Equal(t, "AWARDED", resp.Status)
		assert.Len(t, deps.audited, 1)
		assert.Equal(t, "AWARD_HISTORY_WRITE_FAILED", deps.audited[0].Action)
	})
}
