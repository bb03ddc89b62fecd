// Package rental holds the pure date arithmetic behind rentals: billing days,
// prices, duration strings and the month calendar grid.
package rental

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const Day = 24 * time.Hour

// MaxWindow is the longest rental accepted for booking.
const MaxWindow = 365 * Day

var (
	ErrMissingPickup    = errors.New("pickup date is required")
	ErrMissingDrop      = errors.New("drop date is required")
	ErrPickupInPast     = errors.New("pickup date cannot be in the past")
	ErrDropBeforePickup = errors.New("drop date must be after pickup date")
	ErrWindowTooLong    = errors.New("rental window is too long")
)

// Quote is what a pickup/drop pair costs for one car.
type Quote struct {
	Elapsed      time.Duration
	BillableDays int
	PricePerDay  float64
	TotalPrice   float64
	Duration     string
}

// NewQuote prices the rental window. An incomplete or inverted window is free.
func NewQuote(pickup, drop time.Time, pricePerDay float64) Quote {
	days := BillableDays(pickup, drop)
	return Quote{
		Elapsed:      Elapsed(pickup, drop),
		BillableDays: days,
		PricePerDay:  pricePerDay,
		TotalPrice:   TotalPrice(days, pricePerDay),
		Duration:     FormatDuration(pickup, drop),
	}
}

// Elapsed is drop - pickup at millisecond resolution, or 0 when either is
// missing or drop is not after pickup.
func Elapsed(pickup, drop time.Time) time.Duration {
	if pickup.IsZero() || drop.IsZero() || !drop.After(pickup) {
		return 0
	}
	return drop.Sub(pickup).Truncate(time.Millisecond)
}

// BillableDays rounds the elapsed time up to whole 24-hour days.
// 25h bills 2 days; exactly 48h bills 2 days.
func BillableDays(pickup, drop time.Time) int {
	elapsed := Elapsed(pickup, drop)
	if elapsed <= 0 {
		return 0
	}
	// elapsed may be the saturated max Duration, so no adding before dividing
	days := int(elapsed / Day)
	if elapsed%Day != 0 {
		days++
	}
	return days
}

func TotalPrice(billableDays int, pricePerDay float64) float64 {
	if billableDays <= 0 {
		return 0
	}
	return float64(billableDays) * pricePerDay
}

// FormatDuration renders the window as "2 days, 2 hours, 15 minutes",
// leaving out zero parts. Anything under a minute is "0 minutes".
func FormatDuration(pickup, drop time.Time) string {
	elapsed := Elapsed(pickup, drop)

	days := int(elapsed / Day)
	hours := int(elapsed % Day / time.Hour)
	minutes := int(elapsed % time.Hour / time.Minute)

	var parts []string
	if days > 0 {
		parts = append(parts, Plural(days, "day"))
	}
	if hours > 0 {
		parts = append(parts, Plural(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, Plural(minutes, "minute"))
	}
	if len(parts) == 0 {
		return "0 minutes"
	}
	return strings.Join(parts, ", ")
}

// Plural renders "1 day" or "3 days".
func Plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// ValidateWindow checks a pickup/drop pair before submission. now is only
// used to reject pickups in the past, compared at minute resolution.
func ValidateWindow(pickup, drop, now time.Time) error {
	switch {
	case pickup.IsZero():
		return ErrMissingPickup
	case drop.IsZero():
		return ErrMissingDrop
	case pickup.Before(now.Truncate(time.Minute)):
		return ErrPickupInPast
	case !drop.After(pickup):
		return ErrDropBeforePickup
	case drop.Sub(pickup) > MaxWindow:
		return ErrWindowTooLong
	}
	return nil
}
