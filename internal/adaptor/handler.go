package adaptor

import (
	"errors"
	"net/http"

	"car-rental/internal/data/repository"
	"car-rental/internal/store"
	"car-rental/internal/usecase"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Car      *CarHandler
	Booking  *BookingHandler
	Calendar *CalendarHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Car:      NewCarHandler(service.Car, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Calendar: NewCalendarHandler(service.Calendar, log),
	}
}

// writeServiceError maps service errors to responses. Anything unrecognised is
// a failure of the bookings table and is answered with failMsg.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation, failMsg string) {
	var verr *usecase.ValidationError

	switch {
	case errors.As(err, &verr):
		log.Warn(operation+" validation failed",
			zap.Any("errors", verr.Fields),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", verr.Fields)

	case errors.Is(err, repository.ErrBookingNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, store.MsgNotFound)

	case errors.Is(err, usecase.ErrCarNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, "Car not found")

	case errors.Is(err, store.ErrInvalidStatus):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, failMsg)
	}
}
