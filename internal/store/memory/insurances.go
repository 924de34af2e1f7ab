package memory

import (
	"context"

	"github.com/rafaelfiap/go-vehicle-insurance/internal/core"
)

type InsuranceRepo struct {
	s *store[core.Insurance]
}

func NewInsuranceRepo() *InsuranceRepo {
	return &InsuranceRepo{
		s: newStore(func(i core.Insurance) string { return i.Number }, core.ErrInsuranceNotFound),
	}
}

func (r *InsuranceRepo) Add(_ context.Context, ins core.Insurance) (bool, error) {
	return r.s.add(ins), nil
}

func (r *InsuranceRepo) GetByNumber(_ context.Context, number string) (core.Insurance, error) {
	return r.s.get(number)
}

func (r *InsuranceRepo) Update(_ context.Context, ins core.Insurance) error {
	return r.s.update(ins)
}

func (r *InsuranceRepo) Remove(_ context.Context, number string) error {
	return r.s.remove(number)
}

func (r *InsuranceRepo) List(_ context.Context) ([]core.Insurance, error) {
	return r.s.list(), nil
}
