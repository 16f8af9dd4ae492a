package tender

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusOpen Status = "OPEN"
	// StatusClosed is a reserved status value. No lifecycle transition into
	// or out of it exists yet; it is kept for forward compatibility with
	// manually closed procurements.
	StatusClosed  Status = "CLOSED"
	StatusAwarded Status = "AWARDED"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusOpen, StatusClosed, StatusAwarded:
		return true
	default:
		return false
	}
}

type Category string

const (
	CategoryConstruction   Category = "CONSTRUCTION"
	CategoryInfrastructure Category = "INFRASTRUCTURE"
	CategoryServices       Category = "SERVICES"
	CategoryTechnology     Category = "TECHNOLOGY"
	CategoryHealthcare     Category = "HEALTHCARE"
	CategoryEducation      Category = "EDUCATION"
	CategoryTransportation Category = "TRANSPORTATION"
	CategoryEnvironment    Category = "ENVIRONMENT"
)

func ValidCategory(c Category) bool {
	switch c {
	case CategoryConstruction, CategoryInfrastructure, CategoryServices,
		CategoryTechnology, CategoryHealthcare, CategoryEducation,
		CategoryTransportation, CategoryEnvironment:
		return true
	default:
		return false
	}
}

// Tender is a published procurement request. WinningBidID is only ever set
// together with StatusAwarded and WinnerDate by the award coordinator; the
// pair is never mutated anywhere else.
type Tender struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string          `gorm:"type:varchar(200);not null"`
	Description  string          `gorm:"type:text;not null"`
	Budget       decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Category     Category        `gorm:"type:varchar(20);not null;default:'CONSTRUCTION';index:idx_tenders_category_status"`
	Requirements string          `gorm:"type:text"`
	Status       Status          `gorm:"type:varchar(10);not null;default:'OPEN';index:idx_tenders_category_status"`

	NoticeDate         time.Time  `gorm:"not null"`
	SubmissionDeadline time.Time  `gorm:"not null"`
	WinnerDate         *time.Time `gorm:""`
	ConstructionStart  *time.Time `gorm:"type:date"`
	ConstructionEnd    *time.Time `gorm:"type:date"`

	CreatedBy    uuid.UUID  `gorm:"type:uuid;not null"`
	WinningBidID *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Tender) TableName() string {
	return "tenders"
}
