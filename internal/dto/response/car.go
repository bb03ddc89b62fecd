package response

import "car-rental/internal/data/entity"

type CarResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Image        string   `json:"image"`
	Type         string   `json:"type"`
	Seats        int      `json:"seats"`
	Transmission string   `json:"transmission"`
	Fuel         string   `json:"fuel"`
	PricePerDay  float64  `json:"pricePerDay"`
	Features     []string `json:"features"`
	Available    bool     `json:"available"`
}

func CarToResponse(car entity.Car) CarResponse {
	features := make([]string, len(car.Features))
	copy(features, car.Features)

	return CarResponse{
		ID:           car.ID,
		Name:         car.Name,
		Image:        car.Image,
		Type:         car.Type,
		Seats:        car.Seats,
		Transmission: car.Transmission,
		Fuel:         car.Fuel,
		PricePerDay:  car.PricePerDay,
		Features:     features,
		Available:    car.Available,
	}
}

func CarsToResponse(cars []entity.Car) []CarResponse {
	result := make([]CarResponse, 0, len(cars))
	for _, car := range cars {
		result = append(result, CarToResponse(car))
	}
	return result
}
