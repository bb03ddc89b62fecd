package entity

type Car struct {
	ID           string
	Name         string
	Image        string
	Type         string
	Seats        int
	Transmission string
	Fuel         string
	PricePerDay  float64
	Features     []string
	Available    bool
}
