package request

import "strings"

// BookingRequest is the booking form: used as-is for quotes and submissions.
// Dates are ISO-8601; zone-less values are read in the service time zone.
type BookingRequest struct {
	CarID         string `json:"carId" validate:"required"`
	PickupDate    string `json:"pickupDate" validate:"required"`
	DropDate      string `json:"dropDate" validate:"required"`
	CustomerName  string `json:"customerName" validate:"required,max=100"`
	CustomerEmail string `json:"customerEmail" validate:"required,email,max=254"`
	CustomerPhone string `json:"customerPhone" validate:"required,max=32"`
	Status        string `json:"status,omitempty" validate:"omitempty,oneof=confirmed pending cancelled"`
}

// Normalize trims every field so blank input counts as missing.
func (r *BookingRequest) Normalize() {
	r.CarID = strings.TrimSpace(r.CarID)
	r.PickupDate = strings.TrimSpace(r.PickupDate)
	r.DropDate = strings.TrimSpace(r.DropDate)
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	r.CustomerEmail = strings.TrimSpace(r.CustomerEmail)
	r.CustomerPhone = strings.TrimSpace(r.CustomerPhone)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed pending cancelled"`
}

type ListBookingsRequest struct {
	PaginatedRequest
	Status string `json:"status" validate:"omitempty,oneof=confirmed pending cancelled"`
}
