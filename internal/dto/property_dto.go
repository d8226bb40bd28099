package dto

import "github.com/clefio/clefs-backend/internal/models"

type CreatePropertyRequest struct {
	Address   string `json:"address" validate:"required"`
	OwnerName string `json:"owner_name" validate:"required"`
}

// UpdatePropertyRequest is a partial patch; nil fields are left untouched.
type UpdatePropertyRequest struct {
	Address   *string `json:"address" validate:"omitnil,required"`
	OwnerName *string `json:"owner_name" validate:"omitnil,required"`
}

type PropertyListResponse struct {
	Properties []models.Property `json:"properties"`
	Total      int               `json:"total"`
}
