package memory

import (
	"context"

	"github.com/rafaelfiap/go-vehicle-insurance/internal/core"
)

type ClientRepo struct {
	s *store[core.Client]
}

func NewClientRepo() *ClientRepo {
	return &ClientRepo{
		s: newStore(func(c core.Client) string { return c.CPF }, core.ErrClientNotFound),
	}
}

func (r *ClientRepo) Add(_ context.Context, c core.Client) (bool, error) {
	return r.s.add(c), nil
}

func (r *ClientRepo) GetByCPF(_ context.Context, cpf string) (core.Client, error) {
	return r.s.get(cpf)
}

func (r *ClientRepo) Update(_ context.Context, c core.Client) error {
	return r.s.update(c)
}

func (r *ClientRepo) Remove(_ context.Context, cpf string) error {
	return r.s.remove(cpf)
}

func (r *ClientRepo) List(_ context.Context) ([]core.Client, error) {
	return r.s.list(), nil
}
