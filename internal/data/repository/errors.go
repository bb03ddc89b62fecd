package repository

import "errors"

// ErrBookingNotFound is returned by status updates and deletes that match no row.
// The booking may already have been removed by a concurrent request.
var ErrBookingNotFound = errors.New("booking not found")
