package award

import (
	"context"
	"database/sql"
	"time"
)

// TenderRow is the slice of the tender the coordinator locks and inspects.
type TenderRow struct {
	ID                 string
	Status             string
	SubmissionDeadline time.Time
}

// BidRow is the slice of the bid the coordinator verifies.
type BidRow struct {
	ID        string
	TenderID  string
	CompanyID string
}

// Repository runs the award steps with plain SQL. Every mutating method must
// be called through WithTx so all writes share the transaction that holds
// the tender row lock.
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	LockTender(ctx context.Context, tenderID string) (*TenderRow, error)
	FindBid(ctx context.Context, bidID string) (*BidRow, error)
	ClearWinners(ctx context.Context, tenderID string) error
	MarkWinner(ctx context.Context, bidID string, now time.Time) error
	MarkAwarded(ctx context.Context, tenderID, bidID string, now time.Time) error
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type repository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// LockTender takes the row lock that serializes concurrent awards on the
// same tender. Awards on different tenders do not contend.
func (r *repository) LockTender(ctx context.Context, tenderID string) (*TenderRow, error) {
	query := `
SELECT id::text, status, submission_deadline
FROM tenders
WHERE id = $1 AND deleted_at IS NULL
FOR UPDATE
`
	var row TenderRow
	err := r.conn().QueryRowContext(ctx, query, tenderID).Scan(
		&row.ID, &row.Status, &row.SubmissionDeadline,
	)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) FindBid(ctx context.Context, bidID string) (*BidRow, error) {
	query := `
SELECT id::text, tender_id::text, company_id::text
FROM bids
WHERE id = $1
`
	var row BidRow
	err := r.conn().QueryRowContext(ctx, query, bidID).Scan(
		&row.ID, &row.TenderID, &row.CompanyID,
	)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) ClearWinners(ctx context.Context, tenderID string) error {
	query := `
UPDATE bids
SET is_winner = false, awarded_at = NULL
WHERE tender_id = $1
`
	_, err := r.conn().ExecContext(ctx, query, tenderID)
	return err
}

func (r *repository) MarkWinner(ctx context.Context, bidID string, now time.Time) error {
	query := `
UPDATE bids
SET is_winner = true, awarded_at = $2
WHERE id = $1
`
	_, err := r.conn().ExecContext(ctx, query, bidID, now)
	return err
}

func (r *repository) MarkAwarded(ctx context.Context, tenderID, bidID string, now time.Time) error {
	query := `
UPDATE tenders
SET status = 'AWARDED', winning_bid_id = $2, winner_date = $3, updated_at = $3
WHERE id = $1
`
	_, err := r.conn().ExecContext(ctx, query, tenderID, bidID, now)
	return err
}
