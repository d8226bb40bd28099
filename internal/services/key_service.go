package services

import (
	"context"
	"errors"
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

type KeyService struct {
	db    *gorm.DB
	blobs storage.BlobStore
}

func NewKeyService(db *gorm.DB, blobs storage.BlobStore) *KeyService {
	return &KeyService{db: db, blobs: blobs}
}

func (s *KeyService) List(ctx context.Context) ([]models.Key, error) {
	var keys []models.Key
	err := s.db.WithContext(ctx).Find(&keys).Error
	return keys, err
}

func (s *KeyService) Get(ctx context.Context, id uuid.UUID) (*models.Key, error) {
	var key models.Key
	if err := s.db.WithContext(ctx).First(&key, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("key")
		}
		return nil, err
	}
	return &key, nil
}

// Create validates, resolves photo and signature blobs, then writes the
// row. All uploads finish before the insert so a key is never persisted
// with unresolved blob references.
func (s *KeyService) Create(ctx context.Context, req dto.CreateKeyRequest) (*models.Key, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	propertyID, err := s.resolvePropertyID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, domain.Invalid("date", "invalid date, expected "+dto.DateLayout)
	}

	photos, err := s.resolveImages(ctx, "keys_photo", req.Photos)
	if err != nil {
		return nil, err
	}
	signature, err := s.resolveImage(ctx, "keys_signature", req.Signature)
	if err != nil {
		return nil, err
	}

	key := models.Key{
		ID:           uuid.New(),
		PropertyID:   propertyID,
		SupplierName: req.SupplierName,
		Description:  req.Description,
		Status:       req.Status,
		Date:         date,
		Photos:       photos,
		Signature:    signature,
		Commentaires: req.Commentaires,
	}

	if err := s.db.WithContext(ctx).Create(&key).Error; err != nil {
		return nil, err
	}
	return &key, nil
}

func (s *KeyService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateKeyRequest) (*models.Key, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	key, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PropertyID != nil {
		propertyID, err := s.resolvePropertyID(ctx, *req.PropertyID)
		if err != nil {
			return nil, err
		}
		key.PropertyID = propertyID
	}
	if req.SupplierName != nil {
		key.SupplierName = *req.SupplierName
	}
	if req.Description != nil {
		key.Description = *req.Description
	}
	if req.Status != nil {
		key.Status = *req.Status
	}
	if req.Date != nil {
		date, err := time.Parse(dto.DateLayout, *req.Date)
		if err != nil {
			return nil, domain.Invalid("date", "invalid date, expected "+dto.DateLayout)
		}
		key.Date = date
	}
	if req.Photos != nil {
		photos, err := s.resolveImages(ctx, "keys_photo", *req.Photos)
		if err != nil {
			return nil, err
		}
		key.Photos = photos
	}
	if req.Signature != nil {
		signature, err := s.resolveImage(ctx, "keys_signature", *req.Signature)
		if err != nil {
			return nil, err
		}
		key.Signature = signature
	}
	if req.Commentaires != nil {
		key.Commentaires = *req.Commentaires
	}

	if err := s.db.WithContext(ctx).Save(key).Error; err != nil {
		return nil, err
	}
	return key, nil
}

// Delete refuses to remove a key that alerts still reference. Histories do
// not block deletion.
func (s *KeyService) Delete(ctx context.Context, id uuid.UUID) error {
	key, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	var linked int64
	if err := s.db.WithContext(ctx).Model(&models.Alert{}).Where("key_id = ?", id).Count(&linked).Error; err != nil {
		return err
	}
	if linked > 0 {
		return domain.Conflict("this key cannot be deleted because it is linked to alerts")
	}

	return s.db.WithContext(ctx).Delete(key).Error
}

func (s *KeyService) resolvePropertyID(ctx context.Context, raw string) (uuid.UUID, error) {
	propertyID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.Invalid("property_id", "must be a valid id")
	}
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Property{}).Where("id = ?", propertyID).Count(&count).Error; err != nil {
		return uuid.Nil, err
	}
	if count == 0 {
		return uuid.Nil, domain.Invalid("property_id", "referenced property does not exist")
	}
	return propertyID, nil
}

// resolveImage stores an inline data URL through the blob store and
// returns its public URL; already-hosted URLs pass through untouched.
func (s *KeyService) resolveImage(ctx context.Context, hint, image string) (string, error) {
	if !storage.IsDataURL(image) {
		return image, nil
	}
	data, mimeType, err := storage.DecodeDataURL(image)
	if err != nil {
		return "", domain.Invalid("photos", "invalid image payload")
	}
	url, err := s.blobs.Upload(ctx, hint, mimeType, data)
	if err != nil {
		return "", fmt.Errorf("blob upload failed: %w", err)
	}
	return url, nil
}

func (s *KeyService) resolveImages(ctx context.Context, hint string, images []string) ([]string, error) {
	resolved := make([]string, 0, len(images))
	for _, image := range images {
		url, err := s.resolveImage(ctx, hint, image)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, url)
	}
	return resolved, nil
}
