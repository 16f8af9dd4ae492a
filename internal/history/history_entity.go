package history

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// TenderHistory is one append-only ledger entry. Entries are never updated
// or deleted after creation; the repository exposes no mutation beyond Create.
type TenderHistory struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenderID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_tender_history_tender"`
	Action      string     `gorm:"type:varchar(10);not null"`
	Field       *string    `gorm:"type:varchar(255)"`
	OldValue    *string    `gorm:"type:text"`
	NewValue    *string    `gorm:"type:text"`
	Changes     []byte     `gorm:"type:jsonb"`
	PerformedBy *uuid.UUID `gorm:"type:uuid"`
	Timestamp   time.Time  `gorm:"not null;autoCreateTime"`
}

func (TenderHistory) TableName() string {
	return "tender_history"
}

// Created builds the entry recorded when a tender is first published.
func Created(tenderID, actor uuid.UUID) *TenderHistory {
	field := "status"
	newValue := "OPEN"
	return &TenderHistory{
		TenderID:    tenderID,
		Action:      ActionCreated,
		Field:       &field,
		NewValue:    &newValue,
		PerformedBy: &actor,
	}
}

// FieldUpdated builds the entry for a single changed field.
func FieldUpdated(tenderID, actor uuid.UUID, field, oldValue, newValue string) *TenderHistory {
	return &TenderHistory{
		TenderID:    tenderID,
		Action:      ActionUpdated,
		Field:       &field,
		OldValue:    &oldValue,
		NewValue:    &newValue,
		PerformedBy: &actor,
	}
}

// Deleted builds the entry recorded when a tender is withdrawn.
func Deleted(tenderID, actor uuid.UUID) *TenderHistory {
	return &TenderHistory{
		TenderID:    tenderID,
		Action:      ActionDeleted,
		PerformedBy: &actor,
	}
}

// Awarded builds the single entry capturing the status transition and the
// winner assignment together.
func Awarded(tenderID, bidID, actor uuid.UUID) *TenderHistory {
	field := "status"
	oldValue := "OPEN"
	newValue := "AWARDED"
	changes, _ := json.Marshal(map[string]any{
		"status": map[string]string{"old": "OPEN", "new": "AWARDED"},
		"winner": map[string]any{"old": nil, "new": bidID.String()},
	})
	return &TenderHistory{
		TenderID:    tenderID,
		Action:      ActionUpdated,
		Field:       &field,
		OldValue:    &oldValue,
		NewValue:    &newValue,
		Changes:     changes,
		PerformedBy: &actor,
	}
}
