package memory

import (
	"context"
	"time"

	"github.com/rafaelfiap/go-vehicle-insurance/internal/core"
)

type PolicyRepo struct {
	s *store[core.Policy]
}

func NewPolicyRepo() *PolicyRepo {
	return &PolicyRepo{
		s: newStore(func(p core.Policy) string { return p.Number }, core.ErrPolicyNotFound),
	}
}

func (r *PolicyRepo) Add(_ context.Context, p core.Policy) (bool, error) {
	return r.s.add(p), nil
}

func (r *PolicyRepo) GetByNumber(_ context.Context, number string) (core.Policy, error) {
	return r.s.get(number)
}

func (r *PolicyRepo) Update(_ context.Context, p core.Policy) error {
	return r.s.update(p)
}

func (r *PolicyRepo) Remove(_ context.Context, number string) error {
	return r.s.remove(number)
}

func (r *PolicyRepo) List(_ context.Context) ([]core.Policy, error) {
	return r.s.list(), nil
}

func (r *PolicyRepo) FindByStartDate(_ context.Context, date time.Time) ([]core.Policy, error) {
	return r.s.filter(func(p core.Policy) bool {
		return sameDay(p.StartDate, date)
	}), nil
}
