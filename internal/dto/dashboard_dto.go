package dto

import "github.com/clefio/clefs-backend/internal/models"

// DashboardResponse is the landing-page summary.
type DashboardResponse struct {
	TotalProperties int64        `json:"total_properties"`
	TotalKeys       int64        `json:"total_keys"`
	TotalSuppliers  int64        `json:"total_suppliers"`
	PendingAlerts   int64        `json:"pending_alerts"`
	KeysRemise      int          `json:"keys_remise"`
	KeysRetrait     int          `json:"keys_retrait"`
	RecentKeys      []models.Key `json:"recent_keys"`
}
