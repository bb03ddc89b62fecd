package database

import (
	"context"
	"fmt"
)

const bookingSchema = `
CREATE TABLE IF NOT EXISTS car_bookings (
	id             TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	car_id         TEXT NOT NULL,
	car_name       TEXT NOT NULL,
	car_type       TEXT NOT NULL,
	car_seats      INTEGER NOT NULL,
	pickup_date    TIMESTAMPTZ NOT NULL,
	drop_date      TIMESTAMPTZ NOT NULL,
	total_days     INTEGER NOT NULL,
	total_price    DOUBLE PRECISION NOT NULL,
	customer_name  TEXT NOT NULL,
	customer_email TEXT NOT NULL,
	customer_phone TEXT NOT NULL,
	status         TEXT NOT NULL CHECK (status IN ('confirmed', 'pending', 'cancelled')),
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CHECK (drop_date > pickup_date)
);

CREATE INDEX IF NOT EXISTS idx_car_bookings_created_at ON car_bookings (created_at DESC);
`

// EnsureSchema creates the bookings table when it does not exist yet.
func EnsureSchema(ctx context.Context, db PgxIface) error {
	if _, err := db.Exec(ctx, bookingSchema); err != nil {
		return fmt.Errorf("ensure car_bookings schema: %w", err)
	}
	return nil
}
