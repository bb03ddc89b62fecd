// Package wire holds the remote record shape of a booking and is the only place
// where remote date strings are parsed or formatted.
package wire

import (
	"fmt"
	"time"

	"car-rental/internal/data/entity"
)

// Record is a booking as exchanged with the remote table and HTTP clients.
type Record struct {
	ID            string               `json:"id"`
	CarID         string               `json:"carId"`
	CarName       string               `json:"carName"`
	CarType       string               `json:"carType"`
	CarSeats      int                  `json:"carSeats"`
	PickupDate    string               `json:"pickupDate"`
	DropDate      string               `json:"dropDate"`
	TotalDays     int                  `json:"totalDays"`
	TotalPrice    float64              `json:"totalPrice"`
	CustomerName  string               `json:"customerName"`
	CustomerEmail string               `json:"customerEmail"`
	CustomerPhone string               `json:"customerPhone"`
	Status        entity.BookingStatus `json:"status"`
	CreatedAt     string               `json:"createdAt"`
}

// ToRecord converts a booking into its wire form.
func ToRecord(b entity.Booking) Record {
	return Record{
		ID:            b.ID,
		CarID:         b.CarID,
		CarName:       b.CarName,
		CarType:       b.CarType,
		CarSeats:      b.CarSeats,
		PickupDate:    FormatTime(b.PickupDate),
		DropDate:      FormatTime(b.DropDate),
		TotalDays:     b.TotalDays,
		TotalPrice:    b.TotalPrice,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Status:        b.Status,
		CreatedAt:     FormatTime(b.CreatedAt),
	}
}

// FromRecord converts a wire record back into a booking. An empty createdAt is
// allowed (candidates have none yet); empty pickup or drop dates are not.
func FromRecord(r Record, loc *time.Location) (entity.Booking, error) {
	pickup, err := ParseTime(r.PickupDate, loc)
	if err != nil {
		return entity.Booking{}, fmt.Errorf("booking %s pickupDate: %w", r.ID, err)
	}
	drop, err := ParseTime(r.DropDate, loc)
	if err != nil {
		return entity.Booking{}, fmt.Errorf("booking %s dropDate: %w", r.ID, err)
	}

	var createdAt time.Time
	if r.CreatedAt != "" {
		if createdAt, err = ParseTime(r.CreatedAt, loc); err != nil {
			return entity.Booking{}, fmt.Errorf("booking %s createdAt: %w", r.ID, err)
		}
	}

	return entity.Booking{
		ID:            r.ID,
		CarID:         r.CarID,
		CarName:       r.CarName,
		CarType:       r.CarType,
		CarSeats:      r.CarSeats,
		PickupDate:    pickup,
		DropDate:      drop,
		TotalDays:     r.TotalDays,
		TotalPrice:    r.TotalPrice,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Status:        r.Status,
		CreatedAt:     createdAt,
	}, nil
}

// ToRecords converts a list of bookings, keeping order.
func ToRecords(bookings []entity.Booking) []Record {
	records := make([]Record, len(bookings))
	for i, b := range bookings {
		records[i] = ToRecord(b)
	}
	return records
}
