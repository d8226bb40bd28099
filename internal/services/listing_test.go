package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/clefio/clefs-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSortAlertsPendingFirst(t *testing.T) {
	// A newer Dismissed alert still sorts after an older Pending one.
	alerts := []models.Alert{
		{ID: uuid.New(), Status: models.AlertStatusDismissed, AlertDate: date("2024-01-01")},
		{ID: uuid.New(), Status: models.AlertStatusPending, AlertDate: date("2023-01-01")},
	}

	sorted := SortAlerts(alerts)
	require.Len(t, sorted, 2)
	assert.Equal(t, models.AlertStatusPending, sorted[0].Status)
	assert.Equal(t, models.AlertStatusDismissed, sorted[1].Status)
}

func TestSortAlertsNewestFirstWithinGroup(t *testing.T) {
	alerts := []models.Alert{
		{ID: uuid.New(), Status: models.AlertStatusPending, AlertDate: date("2024-01-05")},
		{ID: uuid.New(), Status: models.AlertStatusPending, AlertDate: date("2024-03-10")},
		{ID: uuid.New(), Status: models.AlertStatusDismissed, AlertDate: date("2024-02-01")},
		{ID: uuid.New(), Status: models.AlertStatusDismissed, AlertDate: date("2024-06-01")},
	}

	sorted := SortAlerts(alerts)
	require.Len(t, sorted, 4)
	assert.Equal(t, date("2024-03-10"), sorted[0].AlertDate)
	assert.Equal(t, date("2024-01-05"), sorted[1].AlertDate)
	assert.Equal(t, date("2024-06-01"), sorted[2].AlertDate)
	assert.Equal(t, date("2024-02-01"), sorted[3].AlertDate)
}

func TestSortAlertsDoesNotMutateInput(t *testing.T) {
	alerts := []models.Alert{
		{Status: models.AlertStatusDismissed, AlertDate: date("2024-01-01")},
		{Status: models.AlertStatusPending, AlertDate: date("2023-01-01")},
	}

	_ = SortAlerts(alerts)
	assert.Equal(t, models.AlertStatusDismissed, alerts[0].Status)
}

func TestFilterProperties(t *testing.T) {
	properties := []models.Property{
		{Address: "12 rue de la Paix, Paris", OwnerName: "Jean Martin"},
		{Address: "5 avenue Victor Hugo, Lyon", OwnerName: "Sophie Bernard"},
	}

	assert.Len(t, FilterProperties(properties, "PARIS"), 1)
	assert.Len(t, FilterProperties(properties, "bernard"), 1)
	assert.Len(t, FilterProperties(properties, ""), 2)
	assert.Empty(t, FilterProperties(properties, "marseille"))
}

func TestFilterSuppliers(t *testing.T) {
	suppliers := []models.Supplier{
		{Name: "Serrurier Dupont", Email: "contact@dupont.fr", Phone: "06 12 34 56 78"},
		{Name: "Plombier Moreau", Email: "info@moreau.fr", Phone: "0798765432"},
	}

	assert.Len(t, FilterSuppliers(suppliers, "DUPONT"), 1)
	assert.Len(t, FilterSuppliers(suppliers, "moreau.fr"), 1)
	// Phone matches as typed, spacing included.
	assert.Len(t, FilterSuppliers(suppliers, "06 12"), 1)
	assert.Empty(t, FilterSuppliers(suppliers, "0612"))
}

func TestFilterKeys(t *testing.T) {
	propertyID := uuid.New()
	keys := []models.Key{
		{PropertyID: propertyID, SupplierName: "Serrurier Dupont", Description: "Clé principale"},
		{PropertyID: uuid.New(), SupplierName: "Plombier Moreau", Description: "Badge parking"},
	}

	assert.Len(t, FilterKeys(keys, "principale"), 1)
	assert.Len(t, FilterKeys(keys, "moreau"), 1)
	assert.Len(t, FilterKeys(keys, propertyID.String()), 1)
}

func TestPaginateKeys(t *testing.T) {
	keys := make([]models.Key, 25)
	for i := range keys {
		keys[i] = models.Key{Description: fmt.Sprintf("clé %d", i)}
	}

	page, current, total := PaginateKeys(keys, 1)
	assert.Len(t, page, KeysPageSize)
	assert.Equal(t, 1, current)
	assert.Equal(t, 3, total)

	page, current, _ = PaginateKeys(keys, 3)
	assert.Len(t, page, 5)
	assert.Equal(t, 3, current)

	// Out-of-range pages clamp instead of erroring.
	_, current, _ = PaginateKeys(keys, 0)
	assert.Equal(t, 1, current)

	page, current, _ = PaginateKeys(keys, 99)
	assert.Len(t, page, 5)
	assert.Equal(t, 3, current)
}

func TestPaginateKeysEmpty(t *testing.T) {
	page, current, total := PaginateKeys(nil, 1)
	assert.Empty(t, page)
	assert.Equal(t, 1, current)
	assert.Equal(t, 1, total)
}
