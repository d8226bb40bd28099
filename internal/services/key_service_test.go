package services

import (
	"context"
	"testing"

	"github.com/clefio/clefs-backend/internal/domain"
	"github.com/clefio/clefs-backend/internal/dto"
	"github.com/clefio/clefs-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validKeyRequest(propertyID uuid.UUID) dto.CreateKeyRequest {
	return dto.CreateKeyRequest{
		PropertyID:   propertyID.String(),
		SupplierName: "Serrurier Dupont",
		Description:  "Clé principale",
		Status:       models.KeyStatusRemise,
		Date:         "2024-03-15",
		Photos:       []string{testImage},
		Signature:    testImage,
	}
}

func TestKeyCreateUploadsBlobs(t *testing.T) {
	db := newTestDB(t)
	blobs := &fakeBlobStore{}
	svc := NewKeyService(db, blobs)
	ctx := context.Background()

	property := createTestProperty(t, db)

	req := validKeyRequest(property.ID)
	req.Photos = []string{testImage, "https://cdn.example.com/existing.jpg"}

	key, err := svc.Create(ctx, req)
	require.NoError(t, err)

	// Data URLs go to the blob store; hosted URLs pass through untouched.
	require.Len(t, key.Photos, 2)
	assert.Equal(t, "https://blobs.test/keys_photo_1", key.Photos[0])
	assert.Equal(t, "https://cdn.example.com/existing.jpg", key.Photos[1])
	assert.Equal(t, "https://blobs.test/keys_signature_2", key.Signature)
	assert.Equal(t, 2, blobs.uploads)

	assert.Equal(t, 2024, key.Date.Year())
	assert.Equal(t, 15, key.Date.Day())
}

func TestKeyCreateRequiresPhotos(t *testing.T) {
	db := newTestDB(t)
	blobs := &fakeBlobStore{}
	svc := NewKeyService(db, blobs)
	ctx := context.Background()

	property := createTestProperty(t, db)

	req := validKeyRequest(property.ID)
	req.Photos = nil

	_, err := svc.Create(ctx, req)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "photos", vErr.Field)

	// Nothing persisted, nothing uploaded.
	var count int64
	require.NoError(t, db.Model(&models.Key{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Zero(t, blobs.uploads)
}

func TestKeyCreateRequiresSignature(t *testing.T) {
	db := newTestDB(t)
	svc := NewKeyService(db, &fakeBlobStore{})

	property := createTestProperty(t, db)

	req := validKeyRequest(property.ID)
	req.Signature = ""

	_, err := svc.Create(context.Background(), req)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "signature", vErr.Field)
}

func TestKeyCreateUnknownProperty(t *testing.T) {
	db := newTestDB(t)
	svc := NewKeyService(db, &fakeBlobStore{})

	_, err := svc.Create(context.Background(), validKeyRequest(uuid.New()))
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "property_id", vErr.Field)
}

func TestKeyCreateBadStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewKeyService(db, &fakeBlobStore{})

	property := createTestProperty(t, db)

	req := validKeyRequest(property.ID)
	req.Status = "Perdue"

	_, err := svc.Create(context.Background(), req)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "status", vErr.Field)
}

func TestKeyCreateBadDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewKeyService(db, &fakeBlobStore{})

	property := createTestProperty(t, db)

	req := validKeyRequest(property.ID)
	req.Date = "15/03/2024"

	_, err := svc.Create(context.Background(), req)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "date", vErr.Field)

	var count int64
	require.NoError(t, db.Model(&models.Key{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestKeyUpdateBadDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewKeyService(db, &fakeBlobStore{})
	ctx := context.Background()

	property := createTestProperty(t, db)
	key := createTestKey(t, db, property.ID, "Serrurier Dupont")

	bad := "pas-une-date"
	_, err := svc.Update(ctx, key.ID, dto.UpdateKeyRequest{Date: &bad})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "date", vErr.Field)

	// The stored date is untouched.
	stored, err := svc.Get(ctx, key.ID)
	require.NoError(t, err)
	assert.True(t, stored.Date.Equal(key.Date))
}

func TestKeyUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewKeyService(db, &fakeBlobStore{})
	ctx := context.Background()

	property := createTestProperty(t, db)
	key := createTestKey(t, db, property.ID, "Serrurier Dupont")

	status := models.KeyStatusRetrait
	updated, err := svc.Update(ctx, key.ID, dto.UpdateKeyRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, models.KeyStatusRetrait, updated.Status)
	assert.Equal(t, key.Description, updated.Description)
	assert.Equal(t, key.SupplierName, updated.SupplierName)
	assert.Equal(t, key.Photos, updated.Photos)
}

func TestKeyDeleteBlockedByAlerts(t *testing.T) {
	db := newTestDB(t)
	svc := NewKeyService(db, &fakeBlobStore{})
	alertSvc := NewAlertService(db)
	ctx := context.Background()

	property := createTestProperty(t, db)
	key := createTestKey(t, db, property.ID, "Serrurier Dupont")

	alert, err := alertSvc.Create(ctx, dto.CreateAlertRequest{
		KeyID:       key.ID.String(),
		AlertDate:   "2024-04-01",
		Description: "Relancer le serrurier",
	})
	require.NoError(t, err)

	err = svc.Delete(ctx, key.ID)
	var cErr *domain.ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Contains(t, cErr.Message, "alerts")

	require.NoError(t, alertSvc.Delete(ctx, alert.ID))
	require.NoError(t, svc.Delete(ctx, key.ID))
}

func TestKeyDeleteIgnoresHistories(t *testing.T) {
	db := newTestDB(t)
	svc := NewKeyService(db, &fakeBlobStore{})
	historySvc := NewKeyHistoryService(db, &fakeBlobStore{})
	ctx := context.Background()

	property := createTestProperty(t, db)
	key := createTestKey(t, db, property.ID, "Serrurier Dupont")

	_, err := historySvc.Add(ctx, key.ID, dto.CreateKeyHistoryRequest{
		Action:      models.HistoryActionRetrieve,
		Description: "Récupérée au bureau",
		Date:        "2024-03-20",
	})
	require.NoError(t, err)

	// Histories are a log, not a dependency.
	require.NoError(t, svc.Delete(ctx, key.ID))
}
