package company

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindByUserID(ctx context.Context, userID string) (*CompanyProfile, error)
	Update(ctx context.Context, profile *CompanyProfile) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByUserID(ctx context.Context, userID string) (*CompanyProfile, error) {
	var profile CompanyProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *repository) Update(ctx context.Context, profile *CompanyProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
