package wire

import (
	"net/http"
	"time"

	"car-rental/internal/adaptor"
	"car-rental/internal/data/catalog"
	"car-rental/internal/notify"
	"car-rental/internal/store"
	"car-rental/internal/usecase"
	"car-rental/pkg/middleware"
	"car-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the HTTP surface of the service.
type App struct {
	Router *chi.Mux
}

// Wiring builds services and handlers over the booking store.
func Wiring(
	bookings *store.Store,
	notifier notify.Notifier,
	config *utils.Config,
	loc *time.Location,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(bookings, catalog.Default(), notifier, loc, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, config, logger),
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	wireCar(r, handler.Car)
	wireCalendar(r, handler.Calendar)
	wireBooking(r, handler.Booking, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
