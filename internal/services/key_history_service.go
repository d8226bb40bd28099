package services

import (
	"context"
	"fmt"
	"time"

	"github.com/clefio/clefs-backend/internal/domain"
	"github.com/clefio/clefs-backend/internal/dto"
	"github.com/clefio/clefs-backend/internal/models"
	"github.com/clefio/clefs-backend/internal/storage"
	"github.com/clefio/clefs-backend/internal/validation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KeyHistoryService manages the append-only movement log per key.
type KeyHistoryService struct {
	db    *gorm.DB
	blobs storage.BlobStore
}

func NewKeyHistoryService(db *gorm.DB, blobs storage.BlobStore) *KeyHistoryService {
	return &KeyHistoryService{db: db, blobs: blobs}
}

func (s *KeyHistoryService) ListForKey(ctx context.Context, keyID uuid.UUID) ([]models.KeyHistory, error) {
	var histories []models.KeyHistory
	err := s.db.WithContext(ctx).Where("key_id = ?", keyID).Order("date DESC").Find(&histories).Error
	return histories, err
}

func (s *KeyHistoryService) Add(ctx context.Context, keyID uuid.UUID, req dto.CreateKeyHistoryRequest) (*models.KeyHistory, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Key{}).Where("id = ?", keyID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, domain.NotFound("key")
	}

	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, domain.Invalid("date", "invalid date, expected "+dto.DateLayout)
	}

	// Optional photo goes to the blob store before the row is written.
	var photoURL string
	if req.Photo != "" {
		data, mimeType, err := storage.DecodeDataURL(req.Photo)
		if err != nil {
			return nil, domain.Invalid("photo", "invalid image payload")
		}
		photoURL, err = s.blobs.Upload(ctx, "key_history", mimeType, data)
		if err != nil {
			return nil, fmt.Errorf("blob upload failed: %w", err)
		}
	}

	history := models.KeyHistory{
		ID:          uuid.New(),
		KeyID:       keyID,
		Action:      req.Action,
		Description: req.Description,
		Date:        date,
		PhotoURL:    photoURL,
	}

	if err := s.db.WithContext(ctx).Create(&history).Error; err != nil {
		return nil, err
	}
	return &history, nil
}
