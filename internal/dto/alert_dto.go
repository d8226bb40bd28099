package dto

import "github.com/clefio/clefs-backend/internal/models"

type CreateAlertRequest struct {
	KeyID       string `json:"key_id" validate:"required,uuid"`
	AlertDate   string `json:"alert_date" validate:"required,datetime=2006-01-02"`
	Description string `json:"description" validate:"required"`
	// Status defaults to Pending when omitted.
	Status string `json:"status" validate:"omitempty,oneof=Pending Dismissed"`
}

type UpdateAlertRequest struct {
	KeyID       *string `json:"key_id" validate:"omitnil,required,uuid"`
	AlertDate   *string `json:"alert_date" validate:"omitnil,required,datetime=2006-01-02"`
	Description *string `json:"description" validate:"omitnil,required"`
	Status      *string `json:"status" validate:"omitnil,required,oneof=Pending Dismissed"`
}

type AlertListResponse struct {
	Alerts []models.Alert `json:"alerts"`
	Total  int            `json:"total"`
}
