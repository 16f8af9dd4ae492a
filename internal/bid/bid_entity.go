package bid

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bid is a sealed offer. Immutable after creation except IsWinner and
// AwardedAt, which only the award coordinator touches.
type Bid struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenderID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_bids_tender_company"`
	CompanyID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_bids_tender_company;index:idx_bids_company"`
	BiddingPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DocumentURL     string          `gorm:"type:text"`
	AdditionalNotes *string         `gorm:"type:text"`
	SubmissionDate  time.Time       `gorm:"not null;autoCreateTime"`
	IsWinner        bool            `gorm:"not null;default:false"`
	AwardedAt       *time.Time      `gorm:""`
}

func (Bid) TableName() string {
	return "bids"
}

// BidConfirmation is the receipt issued with each submission. One per bid,
// never updated.
type BidConfirmation struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BidID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ConfirmationCode string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	ConfirmedAt      time.Time `gorm:"not null;autoCreateTime"`
}

func (BidConfirmation) TableName() string {
	return "bid_confirmations"
}
