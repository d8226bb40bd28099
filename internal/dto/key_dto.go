package dto

import "github.com/clefio/clefs-backend/internal/models"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// CreateKeyRequest carries photos and signature as base64 data URLs (or
// already-hosted URLs); they are uploaded to blob storage before the key
// row is written.
type CreateKeyRequest struct {
	PropertyID   string   `json:"property_id" validate:"required,uuid"`
	SupplierName string   `json:"supplier_name" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Status       string   `json:"status" validate:"required,oneof=Remise Retrait"`
	Date         string   `json:"date" validate:"required,datetime=2006-01-02"`
	Photos       []string `json:"photos" validate:"required,min=1,dive,required"`
	Signature    string   `json:"signature" validate:"required"`
	Commentaires string   `json:"commentaires"`
}

type UpdateKeyRequest struct {
	PropertyID   *string   `json:"property_id" validate:"omitnil,required,uuid"`
	SupplierName *string   `json:"supplier_name" validate:"omitnil,required"`
	Description  *string   `json:"description" validate:"omitnil,required"`
	Status       *string   `json:"status" validate:"omitnil,required,oneof=Remise Retrait"`
	Date         *string   `json:"date" validate:"omitnil,required,datetime=2006-01-02"`
	Photos       *[]string `json:"photos" validate:"omitnil,min=1,dive,required"`
	Signature    *string   `json:"signature" validate:"omitnil,required"`
	Commentaires *string   `json:"commentaires"`
}

type KeyListResponse struct {
	Keys       []models.Key `json:"keys"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	TotalPages int          `json:"total_pages"`
}
