package repository

import (
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/wire"
)

// SeedDemoBookings loads the three example rentals shown by the demo front-end.
func SeedDemoBookings(table *Table, createdAt time.Time) {
	at := func(day, hour, minute int) string {
		return wire.FormatTime(time.Date(2025, time.January, day, hour, minute, 0, 0, time.UTC))
	}
	created := wire.FormatTime(createdAt)

	table.Load(
		wire.Record{
			ID: "example-1", CarID: "1", CarName: "Tesla Model 3", CarType: "Electric", CarSeats: 5,
			PickupDate: at(15, 10, 0), DropDate: at(18, 14, 0), TotalDays: 4, TotalPrice: 356,
			CustomerName: "John Smith", CustomerEmail: "john@example.com", CustomerPhone: "+1-555-0123",
			Status: entity.BookingStatusConfirmed, CreatedAt: created,
		},
		wire.Record{
			ID: "example-2", CarID: "2", CarName: "BMW X5", CarType: "SUV", CarSeats: 7,
			PickupDate: at(20, 9, 0), DropDate: at(22, 18, 0), TotalDays: 3, TotalPrice: 285,
			CustomerName: "Sarah Johnson", CustomerEmail: "sarah@example.com", CustomerPhone: "+1-555-0456",
			Status: entity.BookingStatusConfirmed, CreatedAt: created,
		},
		wire.Record{
			ID: "example-3", CarID: "3", CarName: "Audi A4", CarType: "Sedan", CarSeats: 5,
			PickupDate: at(25, 11, 30), DropDate: at(27, 16, 0), TotalDays: 3, TotalPrice: 225,
			CustomerName: "Mike Davis", CustomerEmail: "mike@example.com", CustomerPhone: "+1-555-0789",
			Status: entity.BookingStatusConfirmed, CreatedAt: created,
		},
	)
}
