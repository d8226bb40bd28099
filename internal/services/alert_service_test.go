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

func TestAlertCreateDefaultsToPending(t *testing.T) {
	db := newTestDB(t)
	svc := NewAlertService(db)
	ctx := context.Background()

	property := createTestProperty(t, db)
	key := createTestKey(t, db, property.ID, "Serrurier Dupont")

	alert, err := svc.Create(ctx, dto.CreateAlertRequest{
		KeyID:       key.ID.String(),
		AlertDate:   "2024-04-01",
		Description: "Relancer le serrurier",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusPending, alert.Status)
	assert.Equal(t, key.ID, alert.KeyID)
}

func TestAlertCreateUnknownKey(t *testing.T) {
	db := newTestDB(t)
	svc := NewAlertService(db)

	_, err := svc.Create(context.Background(), dto.CreateAlertRequest{
		KeyID:       uuid.NewString(),
		AlertDate:   "2024-04-01",
		Description: "Relancer le serrurier",
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "key_id", vErr.Field)
}

func TestAlertCreateBadStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewAlertService(db)

	property := createTestProperty(t, db)
	key := createTestKey(t, db, property.ID, "Serrurier Dupont")

	_, err := svc.Create(context.Background(), dto.CreateAlertRequest{
		KeyID:       key.ID.String(),
		AlertDate:   "2024-04-01",
		Description: "Relancer le serrurier",
		Status:      "Snoozed",
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "status", vErr.Field)
}

func TestAlertCreateBadDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAlertService(db)

	property := createTestProperty(t, db)
	key := createTestKey(t, db, property.ID, "Serrurier Dupont")

	_, err := svc.Create(context.Background(), dto.CreateAlertRequest{
		KeyID:       key.ID.String(),
		AlertDate:   "01/04/2024",
		Description: "Relancer le serrurier",
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "alert_date", vErr.Field)
}

func TestAlertDismiss(t *testing.T) {
	db := newTestDB(t)
	svc := NewAlertService(db)
	ctx := context.Background()

	property := createTestProperty(t, db)
	key := createTestKey(t, db, property.ID, "Serrurier Dupont")

	alert, err := svc.Create(ctx, dto.CreateAlertRequest{
		KeyID:       key.ID.String(),
		AlertDate:   "2024-04-01",
		Description: "Relancer le serrurier",
	})
	require.NoError(t, err)

	dismissed := models.AlertStatusDismissed
	updated, err := svc.Update(ctx, alert.ID, dto.UpdateAlertRequest{Status: &dismissed})
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusDismissed, updated.Status)
	assert.Equal(t, alert.Description, updated.Description)
}
