package entity

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the three booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusPending, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is a rental of one car between PickupDate and DropDate.
// Car fields are copied at booking time so history survives catalog changes.
type Booking struct {
	ID            string
	CarID         string
	CarName       string
	CarType       string
	CarSeats      int
	PickupDate    time.Time
	DropDate      time.Time
	TotalDays     int
	TotalPrice    float64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Status        BookingStatus
	CreatedAt     time.Time
}
