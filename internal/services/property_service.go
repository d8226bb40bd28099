package services

import (
	"context"
	"errors"

	"github.com/clefio/clefs-backend/internal/domain"
	"github.com/clefio/clefs-backend/internal/dto"
	"github.com/clefio/clefs-backend/internal/models"
	"github.com/clefio/clefs-backend/internal/validation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PropertyService struct {
	db *gorm.DB
}

func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{db: db}
}

func (s *PropertyService) List(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	err := s.db.WithContext(ctx).Find(&properties).Error
	return properties, err
}

func (s *PropertyService) Get(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	var property models.Property
	if err := s.db.WithContext(ctx).First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("property")
		}
		return nil, err
	}
	return &property, nil
}

func (s *PropertyService) Create(ctx context.Context, req dto.CreatePropertyRequest) (*models.Property, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	property := models.Property{
		ID:        uuid.New(),
		Address:   req.Address,
		OwnerName: req.OwnerName,
	}

	if err := s.db.WithContext(ctx).Create(&property).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

func (s *PropertyService) Update(ctx context.Context, id uuid.UUID, req dto.UpdatePropertyRequest) (*models.Property, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	property, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Address != nil {
		property.Address = *req.Address
	}
	if req.OwnerName != nil {
		property.OwnerName = *req.OwnerName
	}

	if err := s.db.WithContext(ctx).Save(property).Error; err != nil {
		return nil, err
	}
	return property, nil
}

// Delete refuses to remove a property that keys still reference. The guard
// is a service-level read; there is no transaction around it.
func (s *PropertyService) Delete(ctx context.Context, id uuid.UUID) error {
	property, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	var linked int64
	if err := s.db.WithContext(ctx).Model(&models.Key{}).Where("property_id = ?", id).Count(&linked).Error; err != nil {
		return err
	}
	if linked > 0 {
		return domain.Conflict("this property cannot be deleted because it is linked to keys")
	}

	return s.db.WithContext(ctx).Delete(property).Error
}
