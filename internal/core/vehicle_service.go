package core

import (
	"context"
	"fmt"
	"time"
)

type VehicleService interface {
	// Register builds a vehicle through the catalog, pricing it against
	// the current year, and stores it keyed by plate.
	Register(ctx context.Context, category VehicleCategory, plate, make, model string, year int, color, fuel string) (Vehicle, error)

	// GetByPlate retrieves a vehicle by plate.
	GetByPlate(ctx context.Context, plate string) (Vehicle, error)

	// Remove deletes a vehicle by plate.
	Remove(ctx context.Context, plate string) error

	// List returns every vehicle in registration order.
	List(ctx context.Context) ([]Vehicle, error)

	// Premium returns the stored premium of the vehicle with the given
	// plate, as priced at registration time.
	Premium(ctx context.Context, plate string) (float64, error)
}

type vehicleService struct {
	vehicles VehicleRepo
	clock    func() time.Time
}

func NewVehicleService(vehicles VehicleRepo) VehicleService {
	return &vehicleService{
		vehicles: vehicles,
		clock:    time.Now,
	}
}

func (s *vehicleService) Register(ctx context.Context, category VehicleCategory, plate, make, model string, year int, color, fuel string) (Vehicle, error) {
	v, err := NewVehicle(category, plate, make, model, year, color, fuel, s.clock().Year())
	if err != nil {
		return Vehicle{}, err
	}
	if _, err := s.vehicles.Add(ctx, v); err != nil {
		return Vehicle{}, err
	}
	return v, nil
}

func (s *vehicleService) GetByPlate(ctx context.Context, plate string) (Vehicle, error) {
	if plate == "" {
		return Vehicle{}, fmt.Errorf("%w: missing vehicle plate", ErrValidation)
	}
	return s.vehicles.GetByPlate(ctx, plate)
}

func (s *vehicleService) Remove(ctx context.Context, plate string) error {
	if plate == "" {
		return fmt.Errorf("%w: missing vehicle plate", ErrValidation)
	}
	return s.vehicles.Remove(ctx, plate)
}

func (s *vehicleService) List(ctx context.Context) ([]Vehicle, error) {
	return s.vehicles.List(ctx)
}

func (s *vehicleService) Premium(ctx context.Context, plate string) (float64, error) {
	v, err := s.GetByPlate(ctx, plate)
	if err != nil {
		return 0, err
	}
	return v.Premium, nil
}
