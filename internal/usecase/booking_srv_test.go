package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"car-rental/internal/data/catalog"
	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/internal/data/wire"
	"car-rental/internal/dto/request"
	"car-rental/internal/notify"
	"car-rental/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC)

type recordingNotifier struct {
	sent chan entity.Booking
}

func (n *recordingNotifier) BookingCreated(ctx context.Context, b entity.Booking) error {
	n.sent <- b
	return nil
}

// unreachableRepo fails every call like a table that cannot be reached.
type unreachableRepo struct{}

var errUnreachable = errors.New("dial tcp: connection refused")

func (unreachableRepo) List(context.Context) ([]entity.Booking, error) { return nil, errUnreachable }
func (unreachableRepo) Create(context.Context, *entity.Booking) (*entity.Booking, error) {
	return nil, errUnreachable
}
func (unreachableRepo) UpdateStatus(context.Context, string, entity.BookingStatus) (*entity.Booking, error) {
	return nil, errUnreachable
}
func (unreachableRepo) Delete(context.Context, string) error { return errUnreachable }

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	table := repository.NewTable(repository.WithClock(func() time.Time { return testNow }))
	st := store.New(repository.NewMemoryBookingRepository(table, time.UTC, zap.NewNop()), zap.NewNop())
	require.NoError(t, st.Refresh(context.Background()))
	return st
}

func newTestBookingService(st *store.Store, n notify.Notifier) *bookingService {
	svc := NewBookingService(st, catalog.Default(), n, time.UTC, zap.NewNop()).(*bookingService)
	svc.now = func() time.Time { return testNow }
	return svc
}

func validRequest() *request.BookingRequest {
	return &request.BookingRequest{
		CarID:         "1",
		PickupDate:    "2025-01-10T08:00",
		DropDate:      "2025-01-12T10:15",
		CustomerName:  "  Ada Lovelace ",
		CustomerEmail: "ada@example.com",
		CustomerPhone: "+15550100",
	}
}

func TestQuote_ValidForm(t *testing.T) {
	svc := newTestBookingService(newTestStore(t), nil)

	quote, err := svc.Quote(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, quote.CanSubmit)
	assert.Nil(t, quote.Errors)
	assert.Equal(t, "Tesla Model 3", quote.CarName)
	assert.Equal(t, 89.0, quote.PricePerDay)
	assert.Equal(t, 3, quote.BillableDays)
	assert.Equal(t, "3 days", quote.BillingLabel)
	assert.Equal(t, 267.0, quote.TotalPrice)
	assert.Equal(t, "2 days, 2 hours, 15 minutes", quote.Duration)
	assert.Equal(t, "2025-01-10T08:00:00.000Z", quote.PickupDate)
}

func TestQuote_DropBeforePickup(t *testing.T) {
	svc := newTestBookingService(newTestStore(t), nil)

	req := validRequest()
	req.DropDate = "2025-01-09T08:00"
	req.CustomerName = "   "

	quote, err := svc.Quote(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, quote.CanSubmit)
	assert.Equal(t, "Drop date must be after pickup date", quote.Errors["dropDate"])
	assert.Equal(t, "This field is required", quote.Errors["customerName"])
	assert.Equal(t, 0, quote.BillableDays)
	assert.Equal(t, 0.0, quote.TotalPrice)
	assert.Equal(t, "0 minutes", quote.Duration)
}

func TestQuote_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *request.BookingRequest)
		field   string
		message string
	}{
		{
			name:    "pickup in the past",
			mutate:  func(r *request.BookingRequest) { r.PickupDate = "2024-12-31T08:00" },
			field:   "pickupDate",
			message: "Pickup date cannot be in the past",
		},
		{
			name:    "unknown car",
			mutate:  func(r *request.BookingRequest) { r.CarID = "42" },
			field:   "carId",
			message: "Car not found",
		},
		{
			name:    "unparseable date",
			mutate:  func(r *request.BookingRequest) { r.DropDate = "next tuesday" },
			field:   "dropDate",
			message: "Invalid date format",
		},
		{
			name:    "bad email",
			mutate:  func(r *request.BookingRequest) { r.CustomerEmail = "ada@" },
			field:   "customerEmail",
			message: "Invalid email format",
		},
		{
			name:    "missing pickup",
			mutate:  func(r *request.BookingRequest) { r.PickupDate = "" },
			field:   "pickupDate",
			message: "This field is required",
		},
	}

	svc := newTestBookingService(newTestStore(t), nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			quote, err := svc.Quote(context.Background(), req)
			require.NoError(t, err)

			assert.False(t, quote.CanSubmit)
			assert.Equal(t, tt.message, quote.Errors[tt.field])
		})
	}
}

func TestCreateBooking_RejectsOverlongWindow(t *testing.T) {
	st := newTestStore(t)
	svc := newTestBookingService(st, nil)

	req := validRequest()
	req.DropDate = "2400-01-01T10:00"

	created, err := svc.CreateBooking(context.Background(), req)
	require.Error(t, err)
	assert.Nil(t, created)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Rental cannot be longer than 365 days", verr.Fields["dropDate"])
	assert.Empty(t, st.Bookings())

	quote, err := svc.Quote(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, quote.CanSubmit)
	assert.Positive(t, quote.BillableDays)
	assert.Equal(t, float64(quote.BillableDays)*89, quote.TotalPrice)
}

func TestCreateBooking_MaxWindowIsBilledInFull(t *testing.T) {
	svc := newTestBookingService(newTestStore(t), nil)

	req := validRequest()
	req.DropDate = "2026-01-10T08:00"

	created, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 365, created.TotalDays)
	assert.Equal(t, 365*89.0, created.TotalPrice)
}

func TestQuote_UnavailableCar(t *testing.T) {
	cars := catalog.New([]entity.Car{{ID: "9", Name: "Old Van", PricePerDay: 40, Available: false}})
	svc := NewBookingService(newTestStore(t), cars, nil, time.UTC, zap.NewNop()).(*bookingService)
	svc.now = func() time.Time { return testNow }

	req := validRequest()
	req.CarID = "9"

	quote, err := svc.Quote(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, quote.CanSubmit)
	assert.Equal(t, "Car is not available", quote.Errors["carId"])
	assert.Equal(t, 120.0, quote.TotalPrice)
}

func TestCreateBooking_Success(t *testing.T) {
	st := newTestStore(t)
	n := &recordingNotifier{sent: make(chan entity.Booking, 1)}
	svc := newTestBookingService(st, n)

	created, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.NotContains(t, created.ID, "draft-")
	assert.Equal(t, wire.FormatTime(testNow), created.CreatedAt)
	assert.Equal(t, "Ada Lovelace", created.CustomerName)
	assert.Equal(t, "Electric", created.CarType)
	assert.Equal(t, 5, created.CarSeats)
	assert.Equal(t, 3, created.TotalDays)
	assert.Equal(t, 267.0, created.TotalPrice)
	assert.Equal(t, entity.BookingStatusConfirmed, created.Status)

	bookings := st.Bookings()
	require.Len(t, bookings, 1)
	assert.Equal(t, created.ID, bookings[0].ID)

	select {
	case sent := <-n.sent:
		assert.Equal(t, created.ID, sent.ID)
	case <-time.After(time.Second):
		t.Fatal("notification not sent")
	}
}

func TestCreateBooking_ValidationRejectedBeforeRemote(t *testing.T) {
	st := newTestStore(t)
	svc := newTestBookingService(st, nil)

	req := validRequest()
	req.CustomerPhone = ""

	created, err := svc.CreateBooking(context.Background(), req)
	require.Error(t, err)
	assert.Nil(t, created)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "This field is required", verr.Fields["customerPhone"])
	assert.Empty(t, st.Bookings())
}

func TestCreateBooking_RemoteFailure(t *testing.T) {
	st := store.New(unreachableRepo{}, zap.NewNop())
	svc := newTestBookingService(st, nil)

	_, err := svc.CreateBooking(context.Background(), validRequest())
	require.ErrorIs(t, err, errUnreachable)
	assert.Equal(t, store.MsgCreateFailed, st.State().Error)
	assert.Empty(t, st.Bookings())
}

func TestGetBookings_FilterAndPaginate(t *testing.T) {
	svc := newTestBookingService(newTestStore(t), nil)

	for _, status := range []string{"confirmed", "pending", "confirmed"} {
		req := validRequest()
		req.Status = status
		_, err := svc.CreateBooking(context.Background(), req)
		require.NoError(t, err)
	}

	pending, err := svc.GetBookings(context.Background(), &request.ListBookingsRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
		Status:           "pending",
	})
	require.NoError(t, err)
	require.Len(t, pending.Data, 1)
	assert.Equal(t, entity.BookingStatusPending, pending.Data[0].Status)

	page2, err := svc.GetBookings(context.Background(), &request.ListBookingsRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 2, PerPage: 2},
	})
	require.NoError(t, err)
	assert.Len(t, page2.Data, 1)
	assert.Equal(t, int64(3), page2.Pagination.Total)
	assert.Equal(t, 2, page2.Pagination.TotalPages)

	_, err = svc.GetBookings(context.Background(), &request.ListBookingsRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
		Status:           "archived",
	})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestGetBookingByID_NotFound(t *testing.T) {
	svc := newTestBookingService(newTestStore(t), nil)

	_, err := svc.GetBookingByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrBookingNotFound)
}

func TestUpdateBookingStatus(t *testing.T) {
	st := newTestStore(t)
	svc := newTestBookingService(st, nil)

	created, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateBookingStatus(context.Background(), created.ID,
		&request.UpdateBookingStatusRequest{Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, updated.Status)

	found, ok := st.Find(created.ID)
	require.True(t, ok)
	assert.Equal(t, entity.BookingStatusCancelled, found.Status)

	_, err = svc.UpdateBookingStatus(context.Background(), created.ID,
		&request.UpdateBookingStatusRequest{Status: "archived"})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestUpdateBookingStatus_MissingLeavesStateUnchanged(t *testing.T) {
	st := newTestStore(t)
	svc := newTestBookingService(st, nil)

	created, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	before := st.Bookings()

	_, err = svc.UpdateBookingStatus(context.Background(), "missing",
		&request.UpdateBookingStatusRequest{Status: "pending"})
	require.ErrorIs(t, err, repository.ErrBookingNotFound)

	assert.Equal(t, before, st.Bookings())
	assert.Equal(t, store.MsgNotFound, st.State().Error)
	assert.Equal(t, entity.BookingStatusConfirmed, st.Bookings()[0].Status)
	assert.Equal(t, created.ID, st.Bookings()[0].ID)
}

func TestDeleteBooking_Twice(t *testing.T) {
	st := newTestStore(t)
	svc := newTestBookingService(st, nil)

	created, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBooking(context.Background(), created.ID))
	assert.Empty(t, st.Bookings())

	err = svc.DeleteBooking(context.Background(), created.ID)
	assert.ErrorIs(t, err, repository.ErrBookingNotFound)
	assert.Empty(t, st.Bookings())
}

func TestRefreshAndDismissError(t *testing.T) {
	st := store.New(unreachableRepo{}, zap.NewNop())
	svc := newTestBookingService(st, nil)

	state, err := svc.RefreshBookings(context.Background())
	require.Error(t, err)
	assert.Equal(t, store.MsgFetchFailed, state.Error)
	assert.False(t, state.Loading)

	state = svc.DismissError(context.Background())
	assert.Empty(t, state.Error)
	assert.Equal(t, state, svc.GetState(context.Background()))
}
