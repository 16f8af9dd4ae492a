package company

import (
	"time"

	"github.com/google/uuid"
)

// CompanyProfile extends a COMPANY user with the details shown on public
// award disclosures.
type CompanyProfile struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CompanyName        string    `gorm:"type:varchar(255);not null"`
	ContactEmail       string    `gorm:"type:varchar(255)"`
	PhoneNumber        string    `gorm:"type:varchar(50)"`
	RegistrationNumber string    `gorm:"type:varchar(100)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (CompanyProfile) TableName() string {
	return "company_profiles"
}
