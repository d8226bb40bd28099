package services

import (
	"sort"
	"strings"

	"github.com/clefio/clefs-backend/internal/models"
)

// KeysPageSize is the fixed page size of the keys list view.
const KeysPageSize = 10

// FilterProperties matches the query case-insensitively against address
// and owner name.
func FilterProperties(properties []models.Property, query string) []models.Property {
	if query == "" {
		return properties
	}
	q := strings.ToLower(query)
	filtered := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if strings.Contains(strings.ToLower(p.Address), q) ||
			strings.Contains(strings.ToLower(p.OwnerName), q) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterSuppliers matches name and email case-insensitively; phone is
// matched as typed.
func FilterSuppliers(suppliers []models.Supplier, query string) []models.Supplier {
	if query == "" {
		return suppliers
	}
	q := strings.ToLower(query)
	filtered := make([]models.Supplier, 0, len(suppliers))
	for _, s := range suppliers {
		if strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.Email), q) ||
			strings.Contains(s.Phone, query) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// FilterKeys matches description, property id and supplier name
// case-insensitively.
func FilterKeys(keys []models.Key, query string) []models.Key {
	if query == "" {
		return keys
	}
	q := strings.ToLower(query)
	filtered := make([]models.Key, 0, len(keys))
	for _, k := range keys {
		if strings.Contains(strings.ToLower(k.Description), q) ||
			strings.Contains(strings.ToLower(k.PropertyID.String()), q) ||
			strings.Contains(strings.ToLower(k.SupplierName), q) {
			filtered = append(filtered, k)
		}
	}
	return filtered
}

// SortAlerts orders all Pending alerts before Dismissed ones regardless of
// date, then newest alert_date first within each group.
func SortAlerts(alerts []models.Alert) []models.Alert {
	sorted := make([]models.Alert, len(alerts))
	copy(sorted, alerts)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Status == models.AlertStatusPending && b.Status != models.AlertStatusPending {
			return true
		}
		if a.Status != models.AlertStatusPending && b.Status == models.AlertStatusPending {
			return false
		}
		return a.AlertDate.After(b.AlertDate)
	})
	return sorted
}

// PaginateKeys slices the filtered key list into the requested page.
// Pages are clamped to [1, totalPages] so navigation past the bounds is
// not possible.
func PaginateKeys(keys []models.Key, page int) (pageKeys []models.Key, currentPage, totalPages int) {
	totalPages = (len(keys) + KeysPageSize - 1) / KeysPageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * KeysPageSize
	end := start + KeysPageSize
	if start > len(keys) {
		start = len(keys)
	}
	if end > len(keys) {
		end = len(keys)
	}
	return keys[start:end], page, totalPages
}
