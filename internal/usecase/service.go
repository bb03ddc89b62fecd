package usecase

import (
	"time"

	"car-rental/internal/data/catalog"
	"car-rental/internal/notify"
	"car-rental/internal/store"

	"go.uber.org/zap"
)

type Service struct {
	Car      CarService
	Booking  BookingService
	Calendar CalendarService
}

func NewService(
	bookings *store.Store,
	cars *catalog.Catalog,
	notifier notify.Notifier,
	loc *time.Location,
	log *zap.Logger,
) *Service {
	return &Service{
		Car:      NewCarService(cars, log),
		Booking:  NewBookingService(bookings, cars, notifier, loc, log),
		Calendar: NewCalendarService(bookings, loc, log),
	}
}
