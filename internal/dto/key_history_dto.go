package dto

import "github.com/clefio/clefs-backend/internal/models"

type CreateKeyHistoryRequest struct {
	Action      string `json:"action" validate:"required,oneof=Retrieve Return"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	// Photo is an optional base64 data URL stored before the entry.
	Photo string `json:"photo"`
}

type KeyHistoryListResponse struct {
	Histories []models.KeyHistory `json:"histories"`
	Total     int                 `json:"total"`
}
