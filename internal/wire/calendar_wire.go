package wire

import (
	"car-rental/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCalendar(r chi.Router, calendarHandler *adaptor.CalendarHandler) {
	r.Get("/api/calendar", calendarHandler.GetMonth)
	r.Get("/api/time-slots", calendarHandler.GetTimeSlots)
}
