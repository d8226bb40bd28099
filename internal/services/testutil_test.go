package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/clefio/clefs-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testImage is a minimal inline upload payload as the UI submits it.
const testImage = "data:image/png;base64,dGVzdA=="

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Property{},
		&models.Supplier{},
		&models.Key{},
		&models.KeyHistory{},
		&models.Alert{},
	))
	return db
}

// fakeBlobStore records uploads and hands back deterministic URLs.
type fakeBlobStore struct {
	uploads int
}

func (f *fakeBlobStore) Upload(_ context.Context, pathHint, _ string, _ []byte) (string, error) {
	f.uploads++
	return fmt.Sprintf("https://blobs.test/%s_%d", pathHint, f.uploads), nil
}

func createTestProperty(t *testing.T, db *gorm.DB) *models.Property {
	t.Helper()
	property := &models.Property{
		ID:        uuid.New(),
		Address:   "12 rue de la Paix, 75002 Paris",
		OwnerName: "Jean Martin",
	}
	require.NoError(t, db.Create(property).Error)
	return property
}

func createTestKey(t *testing.T, db *gorm.DB, propertyID uuid.UUID, supplierName string) *models.Key {
	t.Helper()
	key := &models.Key{
		ID:           uuid.New(),
		PropertyID:   propertyID,
		SupplierName: supplierName,
		Description:  "Clé principale",
		Status:       models.KeyStatusRemise,
		Photos:       []string{"https://blobs.test/photo_1"},
		Signature:    "https://blobs.test/signature_1",
	}
	require.NoError(t, db.Create(key).Error)
	return key
}
