package models

import (
	"time"

	"github.com/google/uuid"
)

// Property is a managed rental property. Keys reference properties by id.
type Property struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Address   string    `gorm:"type:text;not null" json:"address"`
	OwnerName string    `gorm:"size:255;not null" json:"owner_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
