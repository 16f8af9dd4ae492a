package history

import (
	"encoding/json"
	"time"
)

type HistoryResponse struct {
	ID          string          `json:"id"`
	TenderID    string          `json:"tender_id"`
	Action      string          `json:"action"`
	Field       *string         `json:"field,omitempty"`
	OldValue    *string         `json:"old_value,omitempty"`
	NewValue    *string         `json:"new_value,omitempty"`
	Changes     json.RawMessage `json:"changes,omitempty"`
	PerformedBy *string         `json:"performed_by,omitempty"`
	Timestamp   string          `json:"timestamp"`
}

func mapToResponse(e TenderHistory) HistoryResponse {
	resp := HistoryResponse{
		ID:        e.ID.String(),
		TenderID:  e.TenderID.String(),
		Action:    e.Action,
		Field:     e.Field,
		OldValue:  e.OldValue,
		NewValue:  e.NewValue,
		Timestamp: e.Timestamp.Format(time.RFC3339),
	}
	if len(e.Changes) > 0 {
		resp.Changes = json.RawMessage(e.Changes)
	}
	if e.PerformedBy != nil {
		v := e.PerformedBy.String()
		resp.PerformedBy = &v
	}
	return resp
}

func mapToListResponse(entries []TenderHistory) []HistoryResponse {
	resp := make([]HistoryResponse, len(entries))
	for i, e := range entries {
		resp[i] = mapToResponse(e)
	}
	return resp
}
