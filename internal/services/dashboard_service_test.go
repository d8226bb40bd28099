package services

import (
	"context"
	"testing"
	"time"

	"github.com/clefio/clefs-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createDatedKey(t *testing.T, db *gorm.DB, propertyID uuid.UUID, status string, day time.Time) *models.Key {
	t.Helper()
	key := &models.Key{
		ID:           uuid.New(),
		PropertyID:   propertyID,
		SupplierName: "Serrurier Dupont",
		Description:  "Clé " + day.Format("2006-01-02"),
		Status:       status,
		Date:         day,
		Photos:       []string{"https://blobs.test/photo"},
		Signature:    "https://blobs.test/signature",
	}
	require.NoError(t, db.Create(key).Error)
	return key
}

func TestDashboardOverview(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	ctx := context.Background()

	property := createTestProperty(t, db)
	require.NoError(t, db.Create(&models.Supplier{
		ID: uuid.New(), Name: "Serrurier Dupont", Email: "contact@dupont.fr", Phone: "0612345678",
	}).Error)

	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	var newest *models.Key
	for i := 0; i < 7; i++ {
		status := models.KeyStatusRemise
		if i%2 == 1 {
			status = models.KeyStatusRetrait
		}
		newest = createDatedKey(t, db, property.ID, status, base.AddDate(0, 0, i))
	}

	require.NoError(t, db.Create(&models.Alert{
		ID: uuid.New(), KeyID: newest.ID, AlertDate: base, Description: "Relance", Status: models.AlertStatusPending,
	}).Error)
	require.NoError(t, db.Create(&models.Alert{
		ID: uuid.New(), KeyID: newest.ID, AlertDate: base, Description: "Classée", Status: models.AlertStatusDismissed,
	}).Error)

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), overview.TotalProperties)
	assert.Equal(t, int64(1), overview.TotalSuppliers)
	assert.Equal(t, int64(7), overview.TotalKeys)
	assert.Equal(t, int64(1), overview.PendingAlerts)
	assert.Equal(t, 4, overview.KeysRemise)
	assert.Equal(t, 3, overview.KeysRetrait)

	// Five most recent movements, newest first.
	require.Len(t, overview.RecentKeys, 5)
	assert.Equal(t, newest.ID, overview.RecentKeys[0].ID)
}

func TestDashboardOverviewEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Zero(t, overview.TotalKeys)
	assert.NotNil(t, overview.RecentKeys)
	assert.Empty(t, overview.RecentKeys)
}
