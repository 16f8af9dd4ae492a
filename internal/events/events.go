package events

import "time"

const (
	TopicTenderLifecycle = "tender.lifecycle.v1"
	TopicBidLifecycle    = "bid.lifecycle.v1"

	TypeTenderAwarded = "tender.awarded"
	TypeBidSubmitted  = "bid.submitted"
)

// TenderAwardedEvent is the payload relayed after a winner is selected.
// Consumers must tolerate unknown fields.
type TenderAwardedEvent struct {
	TenderID     string    `json:"tender_id"`
	WinningBidID string    `json:"winning_bid_id"`
	CompanyID    string    `json:"company_id"`
	AwardedBy    string    `json:"awarded_by"`
	AwardedAt    time.Time `json:"awarded_at"`
}

type BidSubmittedEvent struct {
	BidID        string    `json:"bid_id"`
	TenderID     string    `json:"tender_id"`
	CompanyID    string    `json:"company_id"`
	BiddingPrice string    `json:"bidding_price"`
	SubmittedAt  time.Time `json:"submitted_at"`
}
