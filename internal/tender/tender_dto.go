package tender

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateTenderRequest struct {
	Title              string  `json:"title" binding:"required,max=200"`
	Description        string  `json:"description" binding:"required"`
	Budget             string  `json:"budget" binding:"required"`
	Category           string  `json:"category" binding:"required"`
	Requirements       string  `json:"requirements"`
	NoticeDate         string  `json:"notice_date" binding:"required"`
	SubmissionDeadline string  `json:"submission_deadline" binding:"required"`
	ConstructionStart  *string `json:"construction_start"`
	ConstructionEnd    *string `json:"construction_end"`
}

// UpdateTenderRequest carries optional fields; only present fields are
// applied and only changed fields produce history entries.
type UpdateTenderRequest struct {
	Title              *string `json:"title" binding:"omitempty,max=200"`
	Description        *string `json:"description"`
	Budget             *string `json:"budget"`
	Category           *string `json:"category"`
	Requirements       *string `json:"requirements"`
	NoticeDate         *string `json:"notice_date"`
	SubmissionDeadline *string `json:"submission_deadline"`
	ConstructionStart  *string `json:"construction_start"`
	ConstructionEnd    *string `json:"construction_end"`
}

type SearchQuery struct {
	Category       string
	Status         string
	DeadlineBefore string
	DeadlineAfter  string
	Text           string
}

type TenderResponse struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Budget             string  `json:"budget"`
	Category           string  `json:"category"`
	Requirements       string  `json:"requirements,omitempty"`
	Status             string  `json:"status"`
	NoticeDate         string  `json:"notice_date"`
	SubmissionDeadline string  `json:"submission_deadline"`
	WinnerDate         *string `json:"winner_date,omitempty"`
	ConstructionStart  *string `json:"construction_start,omitempty"`
	ConstructionEnd    *string `json:"construction_end,omitempty"`
	CreatedBy          string  `json:"created_by"`
	CreatedAt          string  `json:"created_at"`
	WinningBidID       *string `json:"winning_bid_id,omitempty"`
}

type PublicWinnerResponse struct {
	Winner       string `json:"winner"`
	WinningPrice string `json:"winning_price"`
	AwardDate    string `json:"award_date"`
}

// WinningBidInfo is the projection the public winner endpoint needs.
type WinningBidInfo struct {
	CompanyName  string
	BiddingPrice decimal.Decimal
}

func mapToResponse(t Tender) TenderResponse {
	resp := TenderResponse{
		ID:                 t.ID.String(),
		Title:              t.Title,
		Description:        t.Description,
		Budget:             t.Budget.String(),
		Category:           string(t.Category),
		Requirements:       t.Requirements,
		Status:             string(t.Status),
		NoticeDate:         t.NoticeDate.Format(time.RFC3339),
		SubmissionDeadline: t.SubmissionDeadline.Format(time.RFC3339),
		CreatedBy:          t.CreatedBy.String(),
		CreatedAt:          t.CreatedAt.Format(time.RFC3339),
	}
	if t.WinnerDate != nil {
		v := t.WinnerDate.Format(time.RFC3339)
		resp.WinnerDate = &v
	}
	if t.ConstructionStart != nil {
		v := t.ConstructionStart.Format("2006-01-02")
		resp.ConstructionStart = &v
	}
	if t.ConstructionEnd != nil {
		v := t.ConstructionEnd.Format("2006-01-02")
		resp.ConstructionEnd = &v
	}
	if t.WinningBidID != nil {
		v := t.WinningBidID.String()
		resp.WinningBidID = &v
	}
	return resp
}

func mapToListResponse(tenders []Tender) []TenderResponse {
	resp := make([]TenderResponse, len(tenders))
	for i, t := range tenders {
		resp[i] = mapToResponse(t)
	}
	return resp
}
