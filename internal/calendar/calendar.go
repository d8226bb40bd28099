// Package calendar groups alerts and keys by calendar day for the
// dashboard month view. Pure functions, no persisted state.
package calendar

import (
	"time"

	"github.com/clefio/clefs-backend/internal/models"
)

// Day is one calendar day with the alerts and keys dated on it.
type Day struct {
	Date   time.Time      `json:"date"`
	Alerts []models.Alert `json:"alerts"`
	Keys   []models.Key   `json:"keys"`
}

// SameDay compares by calendar date, never time-of-day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// MonthDays returns every day of the month, first through last.
// time.Date normalizes day 0 of the next month to the last day, so leap
// Februaries come out right.
func MonthDays(year int, month time.Month) []time.Time {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)

	days := make([]time.Time, 0, last.Day())
	for d := 1; d <= last.Day(); d++ {
		days = append(days, time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
	}
	return days
}

// LeadingOffset is the number of blank cells before day 1 in a
// Monday-first month grid.
func LeadingOffset(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// time.Weekday starts at Sunday; shift so Monday is 0.
	return (int(first.Weekday()) + 6) % 7
}

// Bucket assigns each alert (by alert_date) and key (by date) to the
// matching day of the given month. Records outside the month appear in no
// bucket.
func Bucket(alerts []models.Alert, keys []models.Key, year int, month time.Month) []Day {
	days := MonthDays(year, month)
	buckets := make([]Day, len(days))

	for i, date := range days {
		day := Day{Date: date, Alerts: []models.Alert{}, Keys: []models.Key{}}
		for _, a := range alerts {
			if SameDay(a.AlertDate, date) {
				day.Alerts = append(day.Alerts, a)
			}
		}
		for _, k := range keys {
			if SameDay(k.Date, date) {
				day.Keys = append(day.Keys, k)
			}
		}
		buckets[i] = day
	}
	return buckets
}
