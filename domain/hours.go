package domain

import (
	"strings"
	"time"
)

// DeclaredHours looks up the display hours declared for the weekday of t.
func DeclaredHours(pharmacy Pharmacy, t time.Time) string {
	day := strings.ToLower(t.Weekday().String())
	if hours, ok := pharmacy.Hours[day]; ok {
		return hours
	}
	return "Closed"
}

// OpenAt reports whether the pharmacy is open at t. This is a heuristic: a
// fixed 8:00-20:00 window applied whenever the day is not declared closed,
// regardless of the declared opening times. Kept deliberately; use
// DeclaredHours for the per-day table.
func OpenAt(pharmacy Pharmacy, t time.Time) bool {
	if DeclaredHours(pharmacy, t) == "Closed" {
		return false
	}
	hour := t.Hour()
	return hour >= 8 && hour < 20
}
