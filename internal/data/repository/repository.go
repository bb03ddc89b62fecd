package repository

import (
	"context"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/pkg/database"

	"go.uber.org/zap"
)

// BookingRepository is the remote table contract. Implementations assign the
// canonical id and createdAt on Create.
type BookingRepository interface {
	List(ctx context.Context) ([]entity.Booking, error)
	Create(ctx context.Context, booking *entity.Booking) (*entity.Booking, error)
	UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) (*entity.Booking, error)
	Delete(ctx context.Context, id string) error
}

type Repository struct {
	Booking BookingRepository
}

// NewRepository builds the PostgreSQL-backed repositories.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Booking: NewBookingRepository(db, log),
	}
}

// NewMemoryRepository builds repositories over an in-process table.
func NewMemoryRepository(table *Table, loc *time.Location, log *zap.Logger) *Repository {
	return &Repository{
		Booking: NewMemoryBookingRepository(table, loc, log),
	}
}
