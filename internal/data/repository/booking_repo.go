package repository

import (
	"context"
	"errors"
	"fmt"

	"car-rental/internal/data/entity"
	"car-rental/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const bookingColumns = `id, car_id, car_name, car_type, car_seats, pickup_date, drop_date,
		total_days, total_price, customer_name, customer_email, customer_phone, status, created_at`

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) List(ctx context.Context) ([]entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM car_bookings
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings := []entity.Booking{}
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, *booking)
	}
	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate booking rows", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) (*entity.Booking, error) {
	query := `
		INSERT INTO car_bookings (car_id, car_name, car_type, car_seats, pickup_date, drop_date,
			total_days, total_price, customer_name, customer_email, customer_phone, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`

	created := *booking
	err := r.db.QueryRow(ctx, query,
		booking.CarID,
		booking.CarName,
		booking.CarType,
		booking.CarSeats,
		booking.PickupDate,
		booking.DropDate,
		booking.TotalDays,
		booking.TotalPrice,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.Status,
	).Scan(&created.ID, &created.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("car_id", booking.CarID),
			zap.String("customer_email", booking.CustomerEmail),
		)
		return nil, fmt.Errorf("create booking for car %s: %w", booking.CarID, err)
	}

	r.log.Info("Booking created", zap.String("booking_id", created.ID))
	return &created, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) (*entity.Booking, error) {
	query := `
		UPDATE car_bookings SET status = $2
		WHERE id = $1
		RETURNING ` + bookingColumns

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id, status))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("update booking %s status: %w", id, ErrBookingNotFound)
	}
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("update booking %s status to %s: %w", id, string(status), err)
	}

	return booking, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM car_bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return fmt.Errorf("delete booking %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete booking %s: %w", id, ErrBookingNotFound)
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id))
	return nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.CarID,
		&booking.CarName,
		&booking.CarType,
		&booking.CarSeats,
		&booking.PickupDate,
		&booking.DropDate,
		&booking.TotalDays,
		&booking.TotalPrice,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.Status,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
