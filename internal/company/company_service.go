package company

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	companyerrors "go-tender/internal/company/errors"
)

type Service interface {
	GetProfile(ctx context.Context, userID string) (*ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*ProfileResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetProfile(ctx context.Context, userID string) (*ProfileResponse, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := mapToResponse(*profile)
	return &resp, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*ProfileResponse, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil && *req.CompanyName != "" {
		profile.CompanyName = *req.CompanyName
	}
	if req.ContactEmail != nil {
		profile.ContactEmail = *req.ContactEmail
	}
	if req.PhoneNumber != nil {
		profile.PhoneNumber = *req.PhoneNumber
	}
	if req.RegistrationNumber != nil {
		profile.RegistrationNumber = *req.RegistrationNumber
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		s.logger.Error("update company profile failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}

	resp := mapToResponse(*profile)
	return &resp, nil
}

func (s *service) loadProfile(ctx context.Context, userID string) (*CompanyProfile, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, companyerrors.ErrInvalidUserID
	}

	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, companyerrors.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}
