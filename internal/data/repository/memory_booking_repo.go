package repository

import (
	"context"
	"fmt"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/wire"

	"go.uber.org/zap"
)

type memoryBookingRepository struct {
	table *Table
	loc   *time.Location
	log   *zap.Logger
}

// NewMemoryBookingRepository adapts a Table to BookingRepository, converting
// between wire records and bookings on every call.
func NewMemoryBookingRepository(table *Table, loc *time.Location, log *zap.Logger) BookingRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &memoryBookingRepository{
		table: table,
		loc:   loc,
		log:   log.With(zap.String("repository", "booking_memory")),
	}
}

func (r *memoryBookingRepository) List(ctx context.Context) ([]entity.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	rows := r.table.Rows()
	bookings := make([]entity.Booking, 0, len(rows))
	for _, row := range rows {
		booking, err := wire.FromRecord(row, r.loc)
		if err != nil {
			r.log.Error("Failed to decode booking record", zap.Error(err), zap.String("booking_id", row.ID))
			return nil, fmt.Errorf("list bookings: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func (r *memoryBookingRepository) Create(ctx context.Context, booking *entity.Booking) (*entity.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("create booking for car %s: %w", booking.CarID, err)
	}

	candidate := wire.ToRecord(*booking)
	candidate.ID = ""
	candidate.CreatedAt = ""

	stored := r.table.Insert(candidate)
	created, err := wire.FromRecord(stored, r.loc)
	if err != nil {
		r.log.Error("Failed to decode created booking", zap.Error(err), zap.String("booking_id", stored.ID))
		return nil, fmt.Errorf("create booking for car %s: %w", booking.CarID, err)
	}

	r.log.Info("Booking created", zap.String("booking_id", created.ID))
	return &created, nil
}

func (r *memoryBookingRepository) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) (*entity.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("update booking %s status: %w", id, err)
	}

	row, ok := r.table.SetStatus(id, status)
	if !ok {
		return nil, fmt.Errorf("update booking %s status: %w", id, ErrBookingNotFound)
	}

	booking, err := wire.FromRecord(row, r.loc)
	if err != nil {
		return nil, fmt.Errorf("update booking %s status: %w", id, err)
	}
	return &booking, nil
}

func (r *memoryBookingRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("delete booking %s: %w", id, err)
	}

	if !r.table.Remove(id) {
		return fmt.Errorf("delete booking %s: %w", id, ErrBookingNotFound)
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id))
	return nil
}
