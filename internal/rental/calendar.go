package rental

import (
	"time"

	"car-rental/internal/data/entity"
)

// GridCells is the size of a month view: 6 weeks of 7 days.
const GridCells = 42

// Classification tags a booking on one calendar day.
type Classification string

const (
	ClassPickup     Classification = "pickup"
	ClassDrop       Classification = "drop"
	ClassPickupDrop Classification = "pickup-drop"
	ClassTransit    Classification = "transit"
)

// ColorGroup buckets bookings the way the calendar colours them.
type ColorGroup string

const (
	ColorElectric    ColorGroup = "electric"
	ColorSevenSeater ColorGroup = "seven-seater"
	ColorFiveSeater  ColorGroup = "five-seater"
	ColorStandard    ColorGroup = "standard"
)

type DayBooking struct {
	Booking        entity.Booking
	Classification Classification
	ColorGroup     ColorGroup
}

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date         time.Time
	CurrentMonth bool
	Bookings     []DayBooking
}

// BuildMonth lays out the Sunday-first grid for month, padded with days of the
// neighbouring months, and attaches every booking whose pickup..drop days
// include the cell. Days are compared in loc.
func BuildMonth(year int, month time.Month, bookings []entity.Booking, loc *time.Location) []CalendarDay {
	if loc == nil {
		loc = time.UTC
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	lead := int(first.Weekday())

	days := make([]CalendarDay, GridCells)
	for i := range days {
		// time.Date normalises day overflow into the previous/next month
		date := time.Date(first.Year(), first.Month(), 1-lead+i, 0, 0, 0, 0, loc)
		days[i] = CalendarDay{
			Date:         date,
			CurrentMonth: date.Month() == first.Month(),
			Bookings:     bookingsOn(date, bookings, loc),
		}
	}
	return days
}

// ShiftMonth moves delta months from year/month, wrapping years.
func ShiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

// Covers reports whether date falls on a day between the booking's pickup and
// drop days, both inclusive.
func Covers(date time.Time, b entity.Booking, loc *time.Location) bool {
	day := dayKey(date, loc)
	return dayKey(b.PickupDate, loc) <= day && day <= dayKey(b.DropDate, loc)
}

// Classify compares calendar days only, never times of day.
func Classify(date time.Time, b entity.Booking, loc *time.Location) Classification {
	day := dayKey(date, loc)
	pickup := dayKey(b.PickupDate, loc) == day
	drop := dayKey(b.DropDate, loc) == day

	switch {
	case pickup && drop:
		return ClassPickupDrop
	case pickup:
		return ClassPickup
	case drop:
		return ClassDrop
	default:
		return ClassTransit
	}
}

func ColorGroupOf(b entity.Booking) ColorGroup {
	switch {
	case b.CarType == "Electric":
		return ColorElectric
	case b.CarSeats == 7:
		return ColorSevenSeater
	case b.CarSeats == 5:
		return ColorFiveSeater
	default:
		return ColorStandard
	}
}

func bookingsOn(date time.Time, bookings []entity.Booking, loc *time.Location) []DayBooking {
	var result []DayBooking
	for _, b := range bookings {
		if !Covers(date, b, loc) {
			continue
		}
		result = append(result, DayBooking{
			Booking:        b,
			Classification: Classify(date, b, loc),
			ColorGroup:     ColorGroupOf(b),
		})
	}
	return result
}

// dayKey turns t into yyyymmdd in loc so days compare as integers.
func dayKey(t time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return y*10000 + int(m)*100 + d
}
