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

type SupplierService struct {
	db *gorm.DB
}

func NewSupplierService(db *gorm.DB) *SupplierService {
	return &SupplierService{db: db}
}

func (s *SupplierService) List(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := s.db.WithContext(ctx).Find(&suppliers).Error
	return suppliers, err
}

func (s *SupplierService) Get(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := s.db.WithContext(ctx).First(&supplier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("supplier")
		}
		return nil, err
	}
	return &supplier, nil
}

func (s *SupplierService) Create(ctx context.Context, req dto.CreateSupplierRequest) (*models.Supplier, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	supplier := models.Supplier{
		ID:    uuid.New(),
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	if err := s.db.WithContext(ctx).Create(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateSupplierRequest) (*models.Supplier, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	supplier, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}

	if err := s.db.WithContext(ctx).Save(supplier).Error; err != nil {
		return nil, err
	}
	return supplier, nil
}

// Delete refuses to remove a supplier while any key carries its name.
// Keys reference suppliers by name, so a renamed supplier no longer blocks
// on keys created under the old name.
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	var linked int64
	if err := s.db.WithContext(ctx).Model(&models.Key{}).Where("supplier_name = ?", supplier.Name).Count(&linked).Error; err != nil {
		return err
	}
	if linked > 0 {
		return domain.Conflict("this supplier cannot be deleted because it is linked to keys")
	}

	return s.db.WithContext(ctx).Delete(supplier).Error
}
