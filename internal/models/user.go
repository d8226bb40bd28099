package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a staff account. Profile fields start empty and are filled in
// through the profile endpoints.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	DisplayName string    `gorm:"size:255" json:"display_name"`
	Phone       string    `gorm:"size:50" json:"phone"`
	Address     string    `gorm:"type:text" json:"address"`
	PhotoURL    string    `gorm:"type:text" json:"photo_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
