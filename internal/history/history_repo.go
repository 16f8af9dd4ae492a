package history

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=history_repo.go -destination=mock/history_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, entry *TenderHistory) error
	ListByTender(ctx context.Context, tenderID string) ([]TenderHistory, error)
	TenderExists(ctx context.Context, tenderID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *TenderHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) ListByTender(ctx context.Context, tenderID string) ([]TenderHistory, error) {
	var entries []TenderHistory
	err := r.db.WithContext(ctx).
		Where("tender_id = ?", tenderID).
		Order("timestamp DESC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) TenderExists(ctx context.Context, tenderID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("tenders").
		Where("id = ?", tenderID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}
