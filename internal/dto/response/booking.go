package response

import (
	"car-rental/internal/data/wire"
	"car-rental/internal/store"
)

// BookingResponse is the wire record; dates are ISO-8601 strings.
type BookingResponse = wire.Record

type StoreStateResponse struct {
	Loading      bool   `json:"loading"`
	Error        string `json:"error,omitempty"`
	Count        int    `json:"count"`
	LastSyncedAt string `json:"lastSyncedAt,omitempty"`
}

func StoreStateToResponse(state store.State) StoreStateResponse {
	return StoreStateResponse{
		Loading:      state.Loading,
		Error:        state.Error,
		Count:        state.Count,
		LastSyncedAt: wire.FormatTime(state.LastSyncedAt),
	}
}

// QuoteResponse is the live booking summary. CanSubmit is false while any
// field in Errors is invalid.
type QuoteResponse struct {
	CarID        string            `json:"carId"`
	CarName      string            `json:"carName,omitempty"`
	PricePerDay  float64           `json:"pricePerDay"`
	PickupDate   string            `json:"pickupDate,omitempty"`
	DropDate     string            `json:"dropDate,omitempty"`
	Duration     string            `json:"duration"`
	BillableDays int               `json:"billableDays"`
	BillingLabel string            `json:"billingLabel"`
	TotalPrice   float64           `json:"totalPrice"`
	CanSubmit    bool              `json:"canSubmit"`
	Errors       map[string]string `json:"errors,omitempty"`
}
