package adaptor

import (
	"net/http"

	"car-rental/internal/usecase"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

type CalendarHandler struct {
	service usecase.CalendarService
	log     *zap.Logger
}

func NewCalendarHandler(service usecase.CalendarService, log *zap.Logger) *CalendarHandler {
	return &CalendarHandler{
		service: service,
		log:     log.With(zap.String("handler", "calendar")),
	}
}

// GetMonth handles GET /api/calendar?year=&month=
func (h *CalendarHandler) GetMonth(w http.ResponseWriter, r *http.Request) {
	// missing or malformed values fall back to the current month
	query := r.URL.Query()
	year := utils.ParseInt(query.Get("year"), 0)
	month := utils.ParseInt(query.Get("month"), 0)

	calendar, err := h.service.GetMonth(r.Context(), year, month)
	if err != nil {
		writeServiceError(w, h.log, err, "get calendar", "Failed to load calendar")
		return
	}

	utils.ResponseSuccess(w, "success", calendar)
}

// GetTimeSlots handles GET /api/time-slots
func (h *CalendarHandler) GetTimeSlots(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.GetTimeSlots(r.Context()))
}
