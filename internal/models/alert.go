package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AlertStatusPending   = "Pending"
	AlertStatusDismissed = "Dismissed"
)

// Alert is a dated reminder attached to a key.
type Alert struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	KeyID       uuid.UUID `gorm:"type:uuid;not null;index" json:"key_id"`
	AlertDate   time.Time `gorm:"index" json:"alert_date"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Status      string    `gorm:"size:20;not null;default:'Pending'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
