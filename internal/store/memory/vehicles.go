package memory

import (
	"context"

	"github.com/rafaelfiap/go-vehicle-insurance/internal/core"
)

type VehicleRepo struct {
	s *store[core.Vehicle]
}

func NewVehicleRepo() *VehicleRepo {
	return &VehicleRepo{
		s: newStore(func(v core.Vehicle) string { return v.Plate }, core.ErrVehicleNotFound),
	}
}

func (r *VehicleRepo) Add(_ context.Context, v core.Vehicle) (bool, error) {
	return r.s.add(v), nil
}

func (r *VehicleRepo) GetByPlate(_ context.Context, plate string) (core.Vehicle, error) {
	return r.s.get(plate)
}

func (r *VehicleRepo) Update(_ context.Context, v core.Vehicle) error {
	return r.s.update(v)
}

func (r *VehicleRepo) Remove(_ context.Context, plate string) error {
	return r.s.remove(plate)
}

func (r *VehicleRepo) List(_ context.Context) ([]core.Vehicle, error) {
	return r.s.list(), nil
}
