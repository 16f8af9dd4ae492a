package bid

import (
	"time"
)

type CreateBidRequest struct {
	TenderID        string  `json:"tender_id" binding:"required,uuid"`
	BiddingPrice    string  `json:"bidding_price" binding:"required"`
	DocumentURL     string  `json:"document_url"`
	AdditionalNotes *string `json:"additional_notes"`
}

type BidResponse struct {
	ID              string  `json:"id"`
	TenderID        string  `json:"tender_id"`
	CompanyID       string  `json:"company_id"`
	BiddingPrice    string  `json:"bidding_price"`
	DocumentURL     string  `json:"document_url,omitempty"`
	AdditionalNotes *string `json:"additional_notes,omitempty"`
	SubmissionDate  string  `json:"submission_date"`
	IsWinner        bool    `json:"is_winner"`
	AwardedAt       *string `json:"awarded_at,omitempty"`
}

type SubmitBidResponse struct {
	Bid              BidResponse `json:"bid"`
	ConfirmationCode string      `json:"confirmation_code"`
}

type ConfirmationResponse struct {
	ID               string `json:"id"`
	BidID            string `json:"bid_id"`
	ConfirmationCode string `json:"confirmation_code"`
	ConfirmedAt      string `json:"confirmed_at"`
}

// WinnerStatus is the strict-consistency projection read straight from the
// database, bypassing the ORM.
type WinnerStatus struct {
	BidID            string  `json:"bid_id"`
	IsWinner         bool    `json:"is_winner"`
	TenderID         string  `json:"tender_id"`
	TenderStatus     string  `json:"tender_status"`
	AwardedAt        *string `json:"awarded_at"`
	IsDirectlyLinked bool    `json:"is_directly_linked"`
}

func mapToResponse(b Bid) BidResponse {
	resp := BidResponse{
		ID:              b.ID.String(),
		TenderID:        b.TenderID.String(),
		CompanyID:       b.CompanyID.String(),
		BiddingPrice:    b.BiddingPrice.StringFixed(2),
		DocumentURL:     b.DocumentURL,
		AdditionalNotes: b.AdditionalNotes,
		SubmissionDate:  b.SubmissionDate.Format(time.RFC3339),
		IsWinner:        b.IsWinner,
	}
	if b.AwardedAt != nil {
		v := b.AwardedAt.Format(time.RFC3339)
		resp.AwardedAt = &v
	}
	return resp
}

func mapToListResponse(bids []Bid) []BidResponse {
	resp := make([]BidResponse, len(bids))
	for i, b := range bids {
		resp[i] = mapToResponse(b)
	}
	return resp
}

func mapConfirmation(c BidConfirmation) ConfirmationResponse {
	return ConfirmationResponse{
		ID:               c.ID.String(),
		BidID:            c.BidID.String(),
		ConfirmationCode: c.ConfirmationCode,
		ConfirmedAt:      c.ConfirmedAt.Format(time.RFC3339),
	}
}
