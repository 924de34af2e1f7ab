package memory

import (
	"context"
	"time"

	"github.com/rafaelfiap/go-vehicle-insurance/internal/core"
)

type ClaimRepo struct {
	s *store[core.Claim]
}

func NewClaimRepo() *ClaimRepo {
	return &ClaimRepo{
		s: newStore(func(c core.Claim) string { return c.Number }, core.ErrClaimNotFound),
	}
}

func (r *ClaimRepo) Add(_ context.Context, c core.Claim) (bool, error) {
	return r.s.add(c), nil
}

func (r *ClaimRepo) GetByNumber(_ context.Context, number string) (core.Claim, error) {
	return r.s.get(number)
}

func (r *ClaimRepo) Update(_ context.Context, c core.Claim) error {
	return r.s.update(c)
}

func (r *ClaimRepo) Remove(_ context.Context, number string) error {
	return r.s.remove(number)
}

func (r *ClaimRepo) List(_ context.Context) ([]core.Claim, error) {
	return r.s.list(), nil
}

func (r *ClaimRepo) FindByEventDate(_ context.Context, date time.Time) ([]core.Claim, error) {
	return r.s.filter(func(c core.Claim) bool {
		return sameDay(c.EventDate, date)
	}), nil
}
