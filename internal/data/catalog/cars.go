package catalog

import (
	"strings"

	"car-rental/internal/data/entity"
)

const imageQuery = "?auto=compress&cs=tinysrgb&w=800"

// cars is the fleet offered for rent. It is fixed at build time.
var cars = []entity.Car{
	{
		ID:           "1",
		Name:         "Tesla Model 3",
		Image:        "https://images.pexels.com/photos/193991/pexels-photo-193991.jpeg" + imageQuery,
		Type:         "Electric",
		Seats:        5,
		Transmission: "Automatic",
		Fuel:         "Electric",
		PricePerDay:  89,
		Features:     []string{"Autopilot", "Premium Audio", "Heated Seats", "Fast Charging"},
		Available:    true,
	},
	{
		ID:           "2",
		Name:         "BMW X5",
		Image:        "https://images.pexels.com/photos/244206/pexels-photo-244206.jpeg" + imageQuery,
		Type:         "SUV",
		Seats:        7,
		Transmission: "Automatic",
		Fuel:         "Petrol",
		PricePerDay:  95,
		Features:     []string{"4WD", "Panoramic Roof", "Premium Sound", "Navigation"},
		Available:    true,
	},
	{
		ID:           "3",
		Name:         "Audi A4",
		Image:        "https://images.pexels.com/photos/116675/pexels-photo-116675.jpeg" + imageQuery,
		Type:         "Sedan",
		Seats:        5,
		Transmission: "Automatic",
		Fuel:         "Petrol",
		PricePerDay:  75,
		Features:     []string{"Quattro AWD", "Virtual Cockpit", "Leather Seats", "Climate Control"},
		Available:    true,
	},
	{
		ID:           "4",
		Name:         "Mercedes C-Class",
		Image:        "https://images.pexels.com/photos/170811/pexels-photo-170811.jpeg" + imageQuery,
		Type:         "Luxury",
		Seats:        5,
		Transmission: "Automatic",
		Fuel:         "Petrol",
		PricePerDay:  85,
		Features:     []string{"AMG Package", "Premium Interior", "Advanced Safety", "Ambient Lighting"},
		Available:    true,
	},
	{
		ID:           "5",
		Name:         "Range Rover Evoque",
		Image:        "https://images.pexels.com/photos/1592384/pexels-photo-1592384.jpeg" + imageQuery,
		Type:         "SUV",
		Seats:        5,
		Transmission: "Automatic",
		Fuel:         "Petrol",
		PricePerDay:  110,
		Features:     []string{"Terrain Response", "Meridian Audio", "Panoramic Roof", "4WD"},
		Available:    true,
	},
	{
		ID:           "6",
		Name:         "Porsche 911",
		Image:        "https://images.pexels.com/photos/1638459/pexels-photo-1638459.jpeg" + imageQuery,
		Type:         "Sports",
		Seats:        2,
		Transmission: "Manual",
		Fuel:         "Petrol",
		PricePerDay:  150,
		Features:     []string{"Sport Package", "Racing Seats", "Premium Sound", "Track Mode"},
		Available:    true,
	},
}

// Catalog is a read-only view over a fixed list of cars.
type Catalog struct {
	cars []entity.Car
}

// Default returns the built-in fleet.
func Default() *Catalog {
	return New(cars)
}

func New(list []entity.Car) *Catalog {
	copied := make([]entity.Car, len(list))
	for i, c := range list {
		c.Features = append([]string(nil), c.Features...)
		copied[i] = c
	}
	return &Catalog{cars: copied}
}

// All returns every car, optionally filtered by type (case-insensitive).
func (c *Catalog) All(carType string) []entity.Car {
	result := make([]entity.Car, 0, len(c.cars))
	for _, car := range c.cars {
		if carType != "" && !strings.EqualFold(car.Type, carType) {
			continue
		}
		result = append(result, car)
	}
	return result
}

// FindByID returns the car and true, or false when the id is unknown.
func (c *Catalog) FindByID(id string) (entity.Car, bool) {
	for _, car := range c.cars {
		if car.ID == id {
			return car, true
		}
	}
	return entity.Car{}, false
}
