package services

import (
	"context"
	"errors"
	"time"

	"github.com/clefio/clefs-backend/internal/domain"
	"github.com/clefio/clefs-backend/internal/dto"
	"github.com/clefio/clefs-backend/internal/models"
	"github.com/clefio/clefs-backend/internal/validation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AlertService struct {
	db *gorm.DB
}

func NewAlertService(db *gorm.DB) *AlertService {
	return &AlertService{db: db}
}

func (s *AlertService) List(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	err := s.db.WithContext(ctx).Find(&alerts).Error
	return alerts, err
}

func (s *AlertService) Get(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	var alert models.Alert
	if err := s.db.WithContext(ctx).First(&alert, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("alert")
		}
		return nil, err
	}
	return &alert, nil
}

func (s *AlertService) Create(ctx context.Context, req dto.CreateAlertRequest) (*models.Alert, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	keyID, err := s.resolveKeyID(ctx, req.KeyID)
	if err != nil {
		return nil, err
	}

	alertDate, err := time.Parse(dto.DateLayout, req.AlertDate)
	if err != nil {
		return nil, domain.Invalid("alert_date", "invalid date, expected "+dto.DateLayout)
	}

	status := req.Status
	if status == "" {
		status = models.AlertStatusPending
	}

	alert := models.Alert{
		ID:          uuid.New(),
		KeyID:       keyID,
		AlertDate:   alertDate,
		Description: req.Description,
		Status:      status,
	}

	if err := s.db.WithContext(ctx).Create(&alert).Error; err != nil {
		return nil, err
	}
	return &alert, nil
}

func (s *AlertService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateAlertRequest) (*models.Alert, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	alert, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.KeyID != nil {
		keyID, err := s.resolveKeyID(ctx, *req.KeyID)
		if err != nil {
			return nil, err
		}
		alert.KeyID = keyID
	}
	if req.AlertDate != nil {
		alertDate, err := time.Parse(dto.DateLayout, *req.AlertDate)
		if err != nil {
			return nil, domain.Invalid("alert_date", "invalid date, expected "+dto.DateLayout)
		}
		alert.AlertDate = alertDate
	}
	if req.Description != nil {
		alert.Description = *req.Description
	}
	if req.Status != nil {
		alert.Status = *req.Status
	}

	if err := s.db.WithContext(ctx).Save(alert).Error; err != nil {
		return nil, err
	}
	return alert, nil
}

// Delete removes an alert. Nothing references alerts, so there is no
// dependency guard.
func (s *AlertService) Delete(ctx context.Context, id uuid.UUID) error {
	alert, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(alert).Error
}

func (s *AlertService) resolveKeyID(ctx context.Context, raw string) (uuid.UUID, error) {
	keyID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.Invalid("key_id", "must be a valid id")
	}
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Key{}).Where("id = ?", keyID).Count(&count).Error; err != nil {
		return uuid.Nil, err
	}
	if count == 0 {
		return uuid.Nil, domain.Invalid("key_id", "referenced key does not exist")
	}
	return keyID, nil
}
