package services

import (
	"context"
	"sort"

	"github.com/clefio/clefs-backend/internal/dto"
	"github.com/clefio/clefs-backend/internal/models"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Overview builds the landing-page summary: collection totals, keys by
// status and the five most recent key movements.
func (s *DashboardService) Overview(ctx context.Context) (*dto.DashboardResponse, error) {
	resp := &dto.DashboardResponse{RecentKeys: []models.Key{}}

	if err := s.db.WithContext(ctx).Model(&models.Property{}).Count(&resp.TotalProperties).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Supplier{}).Count(&resp.TotalSuppliers).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Alert{}).Where("status = ?", models.AlertStatusPending).Count(&resp.PendingAlerts).Error; err != nil {
		return nil, err
	}

	var keys []models.Key
	if err := s.db.WithContext(ctx).Find(&keys).Error; err != nil {
		return nil, err
	}
	resp.TotalKeys = int64(len(keys))

	for _, k := range keys {
		switch k.Status {
		case models.KeyStatusRemise:
			resp.KeysRemise++
		case models.KeyStatusRetrait:
			resp.KeysRetrait++
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Date.After(keys[j].Date)
	})
	if len(keys) > 5 {
		keys = keys[:5]
	}
	resp.RecentKeys = keys

	return resp, nil
}
