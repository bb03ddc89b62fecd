package usecase

import (
	"context"
	"fmt"

	"car-rental/internal/data/catalog"
	"car-rental/internal/dto/response"

	"go.uber.org/zap"
)

type CarService interface {
	GetCars(ctx context.Context, carType string) ([]response.CarResponse, error)
	GetCarByID(ctx context.Context, id string) (*response.CarResponse, error)
}

type carService struct {
	cars *catalog.Catalog
	log  *zap.Logger
}

func NewCarService(cars *catalog.Catalog, log *zap.Logger) CarService {
	return &carService{
		cars: cars,
		log:  log.With(zap.String("service", "car")),
	}
}

func (s *carService) GetCars(ctx context.Context, carType string) ([]response.CarResponse, error) {
	return response.CarsToResponse(s.cars.All(carType)), nil
}

func (s *carService) GetCarByID(ctx context.Context, id string) (*response.CarResponse, error) {
	car, ok := s.cars.FindByID(id)
	if !ok {
		return nil, fmt.Errorf("car %s: %w", id, ErrCarNotFound)
	}

	resp := response.CarToResponse(car)
	return &resp, nil
}
