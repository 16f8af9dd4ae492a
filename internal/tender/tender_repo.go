package tender

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=tender_repo.go -destination=mock/tender_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, t *Tender) error
	FindAll(ctx context.Context) ([]Tender, error)
	FindByID(ctx context.Context, id string) (*Tender, error)
	Search(ctx context.Context, q SearchQuery) ([]Tender, error)
	Update(ctx context.Context, t *Tender) error
	// SoftDeleteIfNoBids removes the tender only when no bid exists against
	// it. Returns the number of rows affected so the caller can tell a
	// guarded refusal from a missing row.
	SoftDeleteIfNoBids(ctx context.Context, id string) (int64, error)
	CountBids(ctx context.Context, id string) (int64, error)
	WinningBidInfo(ctx context.Context, bidID string) (*WinningBidInfo, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Tender) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Tender, error) {
	var tenders []Tender
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&tenders).Error
	return tenders, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Tender, error) {
	var t Tender
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Search(ctx context.Context, q SearchQuery) ([]Tender, error) {
	db := r.db.WithContext(ctx).Model(&Tender{})

	if q.Category != "" {
		db = db.Where("category = ?", q.Category)
	}
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}
	if q.DeadlineBefore != "" {
		db = db.Where("submission_deadline <= ?", q.DeadlineBefore)
	}
	if q.DeadlineAfter != "" {
		db = db.Where("submission_deadline >= ?", q.DeadlineAfter)
	}
	if q.Text != "" {
		pattern := "%" + q.Text + "%"
		db = db.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var tenders []Tender
	err := db.Order("created_at DESC").Find(&tenders).Error
	return tenders, err
}

func (r *repository) Update(ctx context.Context, t *Tender) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) SoftDeleteIfNoBids(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("NOT EXISTS (SELECT 1 FROM bids WHERE bids.tender_id = tenders.id)").
		Delete(&Tender{})
	return res.RowsAffected, res.Error
}

func (r *repository) CountBids(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("bids").
		Where("tender_id = ?", id).
		Count(&count).Error
	return count, err
}

func (r *repository) WinningBidInfo(ctx context.Context, bidID string) (*WinningBidInfo, error) {
	var info WinningBidInfo
	err := r.db.WithContext(ctx).
		Table("bids").
		Select("users.organization_name AS company_name, bids.bidding_price").
		Joins("JOIN users ON users.id = bids.company_id").
		Where("bids.id = ?", bidID).
		Scan(&info).Error
	if err != nil {
		return nil, err
	}
	if info.CompanyName == "" && info.BiddingPrice.IsZero() {
		return nil, gorm.ErrRecordNotFound
	}
	return &info, nil
}
