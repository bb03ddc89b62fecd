package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"car-rental/internal/data/catalog"
	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/internal/data/wire"
	"car-rental/internal/dto/request"
	"car-rental/internal/dto/response"
	"car-rental/internal/notify"
	"car-rental/internal/rental"
	"car-rental/internal/store"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

const notifyTimeout = 30 * time.Second

type BookingService interface {
	// Quote prices a booking form and reports whether it can be submitted.
	// Invalid input is part of the answer, not an error.
	Quote(ctx context.Context, req *request.BookingRequest) (*response.QuoteResponse, error)
	CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error)

	GetBookings(ctx context.Context, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, id string) (*response.BookingResponse, error)

	// Admin
	UpdateBookingStatus(ctx context.Context, id string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	DeleteBooking(ctx context.Context, id string) error

	// Store state
	GetState(ctx context.Context) response.StoreStateResponse
	RefreshBookings(ctx context.Context) (response.StoreStateResponse, error)
	DismissError(ctx context.Context) response.StoreStateResponse
}

type bookingService struct {
	bookings *store.Store
	cars     *catalog.Catalog
	notifier notify.Notifier
	loc      *time.Location
	now      func() time.Time
	log      *zap.Logger
}

func NewBookingService(
	bookings *store.Store,
	cars *catalog.Catalog,
	notifier notify.Notifier,
	loc *time.Location,
	log *zap.Logger,
) BookingService {
	if loc == nil {
		loc = time.UTC
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &bookingService{
		bookings: bookings,
		cars:     cars,
		notifier: notifier,
		loc:      loc,
		now:      time.Now,
		log:      log.With(zap.String("service", "booking")),
	}
}

// draft is a booking form after parsing, with the field errors found on the way.
type draft struct {
	car    entity.Car
	found  bool
	pickup time.Time
	drop   time.Time
	errs   map[string]string
}

func (s *bookingService) evaluate(req *request.BookingRequest) draft {
	req.Normalize()

	d := draft{errs: utils.ValidateStruct(req)}
	if d.errs == nil {
		d.errs = make(map[string]string)
	}

	if req.CarID != "" {
		car, ok := s.cars.FindByID(req.CarID)
		switch {
		case !ok:
			d.errs["carId"] = "Car not found"
		case !car.Available:
			d.car, d.found = car, true
			d.errs["carId"] = "Car is not available"
		default:
			d.car, d.found = car, true
		}
	}

	d.pickup = s.parseDate(req.PickupDate, "pickupDate", d.errs)
	d.drop = s.parseDate(req.DropDate, "dropDate", d.errs)
	if d.pickup.IsZero() || d.drop.IsZero() {
		return d
	}

	switch err := rental.ValidateWindow(d.pickup, d.drop, s.now()); {
	case errors.Is(err, rental.ErrPickupInPast):
		d.errs["pickupDate"] = "Pickup date cannot be in the past"
	case errors.Is(err, rental.ErrDropBeforePickup):
		d.errs["dropDate"] = "Drop date must be after pickup date"
	case errors.Is(err, rental.ErrWindowTooLong):
		d.errs["dropDate"] = fmt.Sprintf("Rental cannot be longer than %d days", int(rental.MaxWindow/rental.Day))
	}
	return d
}

func (s *bookingService) parseDate(value, field string, errs map[string]string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := wire.ParseTime(value, s.loc)
	if err != nil {
		errs[field] = "Invalid date format"
		return time.Time{}
	}
	return t
}

func (s *bookingService) Quote(ctx context.Context, req *request.BookingRequest) (*response.QuoteResponse, error) {
	d := s.evaluate(req)

	var pricePerDay float64
	if d.found {
		pricePerDay = d.car.PricePerDay
	}
	quote := rental.NewQuote(d.pickup, d.drop, pricePerDay)

	resp := &response.QuoteResponse{
		CarID:        req.CarID,
		CarName:      d.car.Name,
		PricePerDay:  pricePerDay,
		PickupDate:   wire.FormatTime(d.pickup),
		DropDate:     wire.FormatTime(d.drop),
		Duration:     quote.Duration,
		BillableDays: quote.BillableDays,
		BillingLabel: rental.Plural(quote.BillableDays, "day"),
		TotalPrice:   quote.TotalPrice,
		CanSubmit:    len(d.errs) == 0,
	}
	if len(d.errs) > 0 {
		resp.Errors = d.errs
	}
	return resp, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
	d := s.evaluate(req)
	if len(d.errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", d.errs))
		return nil, &ValidationError{Fields: d.errs}
	}

	status := entity.BookingStatus(req.Status)
	if status == "" {
		status = entity.BookingStatusConfirmed
	}

	quote := rental.NewQuote(d.pickup, d.drop, d.car.PricePerDay)
	candidate := entity.Booking{
		ID:            utils.GenerateProvisionalID(),
		CarID:         d.car.ID,
		CarName:       d.car.Name,
		CarType:       d.car.Type,
		CarSeats:      d.car.Seats,
		PickupDate:    d.pickup,
		DropDate:      d.drop,
		TotalDays:     quote.BillableDays,
		TotalPrice:    quote.TotalPrice,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Status:        status,
	}

	created, err := s.bookings.Create(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("create booking for car %s: %w", candidate.CarID, err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", created.ID),
		zap.String("draft_id", candidate.ID),
		zap.String("car_id", created.CarID),
		zap.Int("total_days", created.TotalDays),
		zap.Float64("total_price", created.TotalPrice),
	)

	go s.notify(context.WithoutCancel(ctx), created)

	resp := wire.ToRecord(created)
	return &resp, nil
}

// notify runs after the request returns, so it gets its own deadline.
func (s *bookingService) notify(ctx context.Context, b entity.Booking) {
	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	if err := s.notifier.BookingCreated(ctx, b); err != nil {
		s.log.Warn("Failed to send booking notification",
			zap.Error(err),
			zap.String("booking_id", b.ID),
		)
	}
}

func (s *bookingService) GetBookings(ctx context.Context, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Get bookings validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	var matched []entity.Booking
	for _, b := range s.bookings.Bookings() {
		if req.Status == "" || string(b.Status) == req.Status {
			matched = append(matched, b)
		}
	}

	total := len(matched)
	start := min(req.Offset(), total)
	end := min(start+req.Limit(), total)

	return response.NewPaginatedResponse(
		wire.ToRecords(matched[start:end]),
		req.Page,
		req.Limit(),
		int64(total),
	), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, id string) (*response.BookingResponse, error) {
	booking, ok := s.bookings.Find(id)
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", id, repository.ErrBookingNotFound)
	}

	resp := wire.ToRecord(booking)
	return &resp, nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, id string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking status validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	updated, err := s.bookings.UpdateStatus(ctx, id, entity.BookingStatus(req.Status))
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", id),
		zap.String("status", string(updated.Status)),
	)

	resp := wire.ToRecord(updated)
	return &resp, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, id string) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Booking deleted", zap.String("booking_id", id))
	return nil
}

func (s *bookingService) GetState(ctx context.Context) response.StoreStateResponse {
	return response.StoreStateToResponse(s.bookings.State())
}

func (s *bookingService) RefreshBookings(ctx context.Context) (response.StoreStateResponse, error) {
	err := s.bookings.Refresh(ctx)
	return response.StoreStateToResponse(s.bookings.State()), err
}

func (s *bookingService) DismissError(ctx context.Context) response.StoreStateResponse {
	s.bookings.DismissError()
	return response.StoreStateToResponse(s.bookings.State())
}
