package models

import (
	"time"

	"github.com/google/uuid"
)

// Supplier is a contractor or locksmith that keys are handed to.
// Keys reference suppliers by name, not id (legacy document shape).
type Supplier struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;index" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Phone     string    `gorm:"size:50;not null" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
