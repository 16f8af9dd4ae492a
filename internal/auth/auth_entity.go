package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-tender/internal/domain"
)

type User struct {
	ID               uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username         string      `gorm:"type:varchar(150);uniqueIndex;not null"`
	Email            string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password         string      `gorm:"type:varchar(255);not null"`
	Role             domain.Role `gorm:"type:varchar(10);not null"`
	OrganizationName string      `gorm:"type:varchar(255)"`
	IsActive         bool        `gorm:"default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
