package dto

import "github.com/clefio/clefs-backend/internal/models"

type CreateSupplierRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,frphone"`
}

type UpdateSupplierRequest struct {
	Name  *string `json:"name" validate:"omitnil,required"`
	Email *string `json:"email" validate:"omitnil,required,email"`
	Phone *string `json:"phone" validate:"omitnil,required,frphone"`
}

type SupplierListResponse struct {
	Suppliers []models.Supplier `json:"suppliers"`
	Total     int               `json:"total"`
}
