package models

import (
	"time"

	"github.com/google/uuid"
)

// Key statuses. "Remise" = handed out, "Retrait" = retrieved back.
const (
	KeyStatusRemise  = "Remise"
	KeyStatusRetrait = "Retrait"
)

// Key records a physical key exchanged with a supplier for a property.
// Photos and Signature hold public URLs served by the blob store.
type Key struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PropertyID   uuid.UUID `gorm:"type:uuid;not null;index" json:"property_id"`
	SupplierName string    `gorm:"size:255;not null;index" json:"supplier_name"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Status       string    `gorm:"size:20;not null" json:"status"`
	Date         time.Time `gorm:"index" json:"date"`
	Photos       []string  `gorm:"serializer:json" json:"photos"`
	Signature    string    `gorm:"type:text;not null" json:"signature"`
	Commentaires string    `gorm:"type:text" json:"commentaires"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
