package usecase

import (
	"context"
	"fmt"
	"time"

	"car-rental/internal/dto/response"
	"car-rental/internal/rental"
	"car-rental/internal/store"

	"go.uber.org/zap"
)

// Years outside this range are rejected; time.Date would accept them silently.
const (
	minCalendarYear = 1970
	maxCalendarYear = 9999
)

type CalendarService interface {
	// GetMonth builds the grid for year/month; zero values mean the current month.
	GetMonth(ctx context.Context, year, month int) (*response.CalendarResponse, error)
	GetTimeSlots(ctx context.Context) []response.TimeSlotResponse
}

type calendarService struct {
	bookings *store.Store
	loc      *time.Location
	now      func() time.Time
	log      *zap.Logger
}

func NewCalendarService(bookings *store.Store, loc *time.Location, log *zap.Logger) CalendarService {
	if loc == nil {
		loc = time.UTC
	}
	return &calendarService{
		bookings: bookings,
		loc:      loc,
		now:      time.Now,
		log:      log.With(zap.String("service", "calendar")),
	}
}

func (s *calendarService) GetMonth(ctx context.Context, year, month int) (*response.CalendarResponse, error) {
	today := s.now().In(s.loc)
	if year == 0 {
		year = today.Year()
	}
	if month == 0 {
		month = int(today.Month())
	}

	errs := make(map[string]string)
	if year < minCalendarYear || year > maxCalendarYear {
		errs["year"] = fmt.Sprintf("Must be between %d and %d", minCalendarYear, maxCalendarYear)
	}
	if month < 1 || month > 12 {
		errs["month"] = "Must be between 1 and 12"
	}
	if len(errs) > 0 {
		s.log.Warn("Get calendar validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	days := rental.BuildMonth(year, time.Month(month), s.bookings.Bookings(), s.loc)
	resp := response.CalendarToResponse(year, time.Month(month), days, today)
	return &resp, nil
}

func (s *calendarService) GetTimeSlots(ctx context.Context) []response.TimeSlotResponse {
	return response.TimeSlotsToResponse(rental.TimeSlots())
}
