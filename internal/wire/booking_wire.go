package wire

import (
	"car-rental/internal/adaptor"
	"car-rental/pkg/middleware"
	"car-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Post("/api/quote", bookingHandler.Quote)

	r.Route("/api/bookings", func(r chi.Router) {
		r.Get("/", bookingHandler.GetBookings)
		r.Post("/", bookingHandler.CreateBooking)

		// store status line
		r.Get("/state", bookingHandler.GetState)
		r.Post("/refresh", bookingHandler.RefreshBookings)
		r.Delete("/state/error", bookingHandler.DismissError)

		r.Get("/{id}", bookingHandler.GetBookingByID)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminKey(config.Admin.KeyHash, log))

			r.Patch("/{id}/status", bookingHandler.UpdateBookingStatus)
			r.Delete("/{id}", bookingHandler.DeleteBooking)
		})
	})
}
