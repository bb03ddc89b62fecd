package wire

import (
	"car-rental/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCar(r chi.Router, carHandler *adaptor.CarHandler) {
	r.Get("/api/cars", carHandler.GetCars)
	r.Get("/api/cars/{id}", carHandler.GetCarByID)
}
