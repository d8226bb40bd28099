package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/clefio/clefs-backend/internal/domain"
	"github.com/clefio/clefs-backend/internal/dto"
	"github.com/clefio/clefs-backend/internal/models"
	"github.com/clefio/clefs-backend/internal/storage"
	"github.com/clefio/clefs-backend/internal/validation"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ProfileService reads and mutates the profile fields of the signed-in
// user. Email and password changes re-authenticate with the current
// password first.
type ProfileService struct {
	db    *gorm.DB
	blobs storage.BlobStore
}

func NewProfileService(db *gorm.DB, blobs storage.BlobStore) *ProfileService {
	return &ProfileService{db: db, blobs: blobs}
}

func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	user, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		DisplayName: user.DisplayName,
		Email:       user.Email,
		Phone:       user.Phone,
		Address:     user.Address,
		PhotoURL:    user.PhotoURL,
	}, nil
}

func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Upload the new photo before touching the row.
	if req.Photo != nil {
		data, mimeType, err := storage.DecodeDataURL(*req.Photo)
		if err != nil {
			return nil, domain.Invalid("photo", "invalid image payload")
		}
		url, err := s.blobs.Upload(ctx, "user_photo", mimeType, data)
		if err != nil {
			return nil, fmt.Errorf("blob upload failed: %w", err)
		}
		user.PhotoURL = url
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		DisplayName: user.DisplayName,
		Email:       user.Email,
		Phone:       user.Phone,
		Address:     user.Address,
		PhotoURL:    user.PhotoURL,
	}, nil
}

func (s *ProfileService) UpdateEmail(ctx context.Context, userID uuid.UUID, req dto.UpdateEmailRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}

	user, err := s.user(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ? AND id <> ?", req.NewEmail, userID).First(&existing).Error; err == nil {
		return ErrEmailTaken
	}

	user.Email = req.NewEmail
	return s.db.WithContext(ctx).Save(user).Error
}

func (s *ProfileService) UpdatePassword(ctx context.Context, userID uuid.UUID, req dto.UpdatePasswordRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}

	user, err := s.user(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.Password = string(hash)
	return s.db.WithContext(ctx).Save(user).Error
}

func (s *ProfileService) user(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("user")
		}
		return nil, err
	}
	return &user, nil
}
