package core

import (
	"context"
	"fmt"
)

type VehicleCategory string

const (
	CategoryCar        VehicleCategory = "car"
	CategoryMotorcycle VehicleCategory = "motorcycle"
	CategoryTruck      VehicleCategory = "truck"
	CategoryBus        VehicleCategory = "bus"
)

// premiumRate carries the two numbers that drive every category's premium
// formula: base - age*perYear, where age is whole years since manufacture.
type premiumRate struct {
	base    float64
	perYear float64
}

var premiumRates = map[VehicleCategory]premiumRate{
	CategoryCar:        {base: 1000, perYear: 50},
	CategoryMotorcycle: {base: 600, perYear: 30},
	CategoryTruck:      {base: 1500, perYear: 70},
	CategoryBus:        {base: 2000, perYear: 100},
}

// Vehicle is an insurable vehicle, keyed by plate. The premium is fixed at
// creation from the reference year passed to NewVehicle; it does not drift
// as real time passes.
type Vehicle struct {
	Plate    string          `json:"plate"`
	Category VehicleCategory `json:"category"`
	Make     string          `json:"make"`
	Model    string          `json:"model"`
	Year     int             `json:"year"`
	Color    string          `json:"color"`
	Fuel     string          `json:"fuel"`
	Premium  float64         `json:"premium"`
}

type VehicleRepo interface {
	Add(ctx context.Context, v Vehicle) (created bool, err error)
	GetByPlate(ctx context.Context, plate string) (Vehicle, error)
	Update(ctx context.Context, v Vehicle) error
	Remove(ctx context.Context, plate string) error
	List(ctx context.Context) ([]Vehicle, error)
}

// NewVehicle builds a vehicle of the given category and prices its premium
// against currentYear. The depreciation is linear and deliberately has no
// floor: the premium of a vehicle old enough goes negative, exactly as the
// rate table dictates.
func NewVehicle(category VehicleCategory, plate, make, model string, year int, color, fuel string, currentYear int) (Vehicle, error) {
	rate, ok := premiumRates[category]
	if !ok {
		return Vehicle{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if plate == "" {
		return Vehicle{}, fmt.Errorf("%w: missing vehicle plate", ErrValidation)
	}
	if year < 1000 || year > 9999 {
		return Vehicle{}, fmt.Errorf("%w: year must be a four-digit year", ErrValidation)
	}
	if year > currentYear {
		return Vehicle{}, fmt.Errorf("%w: year %d is in the future", ErrValidation, year)
	}

	age := currentYear - year
	return Vehicle{
		Plate:    plate,
		Category: category,
		Make:     make,
		Model:    model,
		Year:     year,
		Color:    color,
		Fuel:     fuel,
		Premium:  rate.base - float64(age)*rate.perYear,
	}, nil
}

var ErrVehicleNotFound = fmt.Errorf("%w: vehicle not found", ErrNotFound)
