package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	HistoryActionRetrieve = "Retrieve"
	HistoryActionReturn   = "Return"
)

// KeyHistory is an append-only movement log entry for a key.
// Histories never block key deletion.
type KeyHistory struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	KeyID       uuid.UUID `gorm:"type:uuid;not null;index" json:"key_id"`
	Action      string    `gorm:"size:20;not null" json:"action"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Date        time.Time `json:"date"`
	PhotoURL    string    `gorm:"type:text" json:"photo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
