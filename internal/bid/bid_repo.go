package bid

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-tender/internal/events"
	"go-tender/internal/messaging/kafka"
	"go-tender/internal/shared/contextutil"
)

//go:generate mockgen -source=bid_repo.go -destination=mock/bid_repo_mock.go -package=mock
type Repository interface {
	// CreateWithConfirmation inserts the bid, its confirmation receipt and a
	// bid.submitted outbox row in one transaction.
	CreateWithConfirmation(ctx context.Context, b *Bid, code string) error
	FindByID(ctx context.Context, id string) (*Bid, error)
	ListByTender(ctx context.Context, tenderID string) ([]Bid, error)
	ListByTenderAndCompany(ctx context.Context, tenderID, companyID string) ([]Bid, error)
	ListByCompany(ctx context.Context, companyID string) ([]Bid, error)
	ListConfirmationsByCompany(ctx context.Context, companyID string) ([]BidConfirmation, error)
	ExistsForTenderAndCompany(ctx context.Context, tenderID, companyID string) (bool, error)
	// WinnerStatus reads straight from the database, bypassing gorm, so the
	// answer reflects the latest committed award.
	WinnerStatus(ctx context.Context, bidID string) (*WinnerStatus, error)
}

type repository struct {
	db     *gorm.DB
	sqlDB  *sql.DB
	outbox kafka.OutboxRepository
}

func NewRepository(db *gorm.DB, sqlDB *sql.DB, outbox kafka.OutboxRepository) Repository {
	return &repository{db: db, sqlDB: sqlDB, outbox: outbox}
}

func (r *repository) CreateWithConfirmation(ctx context.Context, b *Bid, code string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(b).Error; err != nil {
			return err
		}

		confirmation := &BidConfirmation{
			BidID:            b.ID,
			ConfirmationCode: code,
		}
		if err := tx.Create(confirmation).Error; err != nil {
			return err
		}

		payload, err := json.Marshal(events.BidSubmittedEvent{
			BidID:        b.ID.String(),
			TenderID:     b.TenderID.String(),
			CompanyID:    b.CompanyID.String(),
			BiddingPrice: b.BiddingPrice.StringFixed(2),
			SubmittedAt:  time.Now().UTC(),
		})
		if err != nil {
			return err
		}

		return r.outbox.WithTx(tx.Statement.ConnPool).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     contextutil.GetRequestID(ctx),
			AggregateType: "bid",
			AggregateID:   b.ID.String(),
			EventType:     events.TypeBidSubmitted,
			Topic:         events.TopicBidLifecycle,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
	})
}

func (r *repository) FindByID(ctx context.Context, id string) (*Bid, error) {
	var b Bid
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) ListByTender(ctx context.Context, tenderID string) ([]Bid, error) {
	var bids []Bid
	err := r.db.WithContext(ctx).
		Where("tender_id = ?", tenderID).
		Order("submission_date ASC").
		Find(&bids).Error
	return bids, err
}

func (r *repository) ListByTenderAndCompany(ctx context.Context, tenderID, companyID string) ([]Bid, error) {
	var bids []Bid
	err := r.db.WithContext(ctx).
		Where("tender_id = ? AND company_id = ?", tenderID, companyID).
		Order("submission_date ASC").
		Find(&bids).Error
	return bids, err
}

func (r *repository) ListByCompany(ctx context.Context, companyID string) ([]Bid, error) {
	var bids []Bid
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("submission_date DESC").
		Find(&bids).Error
	return bids, err
}

func (r *repository) ListConfirmationsByCompany(ctx context.Context, companyID string) ([]BidConfirmation, error) {
	var confirmations []BidConfirmation
	err := r.db.WithContext(ctx).
		Joins("JOIN bids ON bids.id = bid_confirmations.bid_id").
		Where("bids.company_id = ?", companyID).
		Order("bid_confirmations.confirmed_at DESC").
		Find(&confirmations).Error
	return confirmations, err
}

func (r *repository) ExistsForTenderAndCompany(ctx context.Context, tenderID, companyID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Bid{}).
		Where("tender_id = ? AND company_id = ?", tenderID, companyID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) WinnerStatus(ctx context.Context, bidID string) (*WinnerStatus, error) {
	query := `
SELECT
	b.id::text,
	b.is_winner,
	t.id::text,
	t.status,
	b.awarded_at,
	t.winning_bid_id IS NOT DISTINCT FROM b.id
FROM bids b
JOIN tenders t ON t.id = b.tender_id
WHERE b.id = $1
`

	var (
		status    WinnerStatus
		awardedAt sql.NullTime
	)
	err := r.sqlDB.QueryRowContext(ctx, query, bidID).Scan(
		&status.BidID,
		&status.IsWinner,
		&status.TenderID,
		&status.TenderStatus,
		&awardedAt,
		&status.IsDirectlyLinked,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	if awardedAt.Valid {
		v := awardedAt.Time.UTC().Format(time.RFC3339)
		status.AwardedAt = &v
	}
	return &status, nil
}
