package core

import (
	"context"
	"fmt"
	"time"
)

// DiscountMode selects which discount rule the client service applies. The
// tiered rule is canonical; the flat rule survives from an earlier revision
// of the pricing sheet and is only reachable when explicitly configured.
type DiscountMode string

const (
	DiscountModeTiered DiscountMode = "tiered"
	DiscountModeFlat   DiscountMode = "flat"
)

const (
	// MaxDiscount caps the combined age and tenure bonuses.
	MaxDiscount = 0.20

	// EligibleMinAge and EligibleMaxAge bound the insurable age range,
	// both inclusive.
	EligibleMinAge = 18
	EligibleMaxAge = 75
)

type ClientService interface {
	// Register stores a new client after validating its natural key.
	Register(ctx context.Context, c Client) error

	// GetByCPF retrieves a client by CPF.
	GetByCPF(ctx context.Context, cpf string) (Client, error)

	// Update replaces a stored client. The CPF must already be registered.
	Update(ctx context.Context, c Client) error

	// Remove deletes a client by CPF. The CPF must already be registered.
	Remove(ctx context.Context, cpf string) error

	// List returns every client in registration order.
	List(ctx context.Context) ([]Client, error)

	// CalculateDiscount returns the client's premium discount as a
	// fraction in [0, MaxDiscount].
	CalculateDiscount(c Client) float64

	// CalculateAge returns the client's age in whole years.
	CalculateAge(c Client) int

	// IsEligible reports whether the client's age falls inside the
	// insurable range.
	IsEligible(c Client) bool
}

type clientService struct {
	clients ClientRepo
	mode    DiscountMode
	clock   func() time.Time
}

func NewClientService(clients ClientRepo, mode DiscountMode) ClientService {
	if mode == "" {
		mode = DiscountModeTiered
	}
	return &clientService{
		clients: clients,
		mode:    mode,
		clock:   time.Now,
	}
}

func (s *clientService) Register(ctx context.Context, c Client) error {
	if err := c.Validate(); err != nil {
		return err
	}
	_, err := s.clients.Add(ctx, c)
	return err
}

func (s *clientService) GetByCPF(ctx context.Context, cpf string) (Client, error) {
	if cpf == "" {
		return Client{}, fmt.Errorf("%w: missing client CPF", ErrValidation)
	}
	return s.clients.GetByCPF(ctx, cpf)
}

func (s *clientService) Update(ctx context.Context, c Client) error {
	if err := c.Validate(); err != nil {
		return err
	}
	// Existence is checked before any mutation is attempted.
	if _, err := s.clients.GetByCPF(ctx, c.CPF); err != nil {
		return err
	}
	return s.clients.Update(ctx, c)
}

func (s *clientService) Remove(ctx context.Context, cpf string) error {
	if cpf == "" {
		return fmt.Errorf("%w: missing client CPF", ErrValidation)
	}
	if _, err := s.clients.GetByCPF(ctx, cpf); err != nil {
		return err
	}
	return s.clients.Remove(ctx, cpf)
}

func (s *clientService) List(ctx context.Context) ([]Client, error) {
	return s.clients.List(ctx)
}

func (s *clientService) CalculateDiscount(c Client) float64 {
	now := s.clock()
	age := wholeYears(c.BirthDate, now)

	if s.mode == DiscountModeFlat {
		if age > 60 {
			return 0.10
		}
		return 0
	}

	var discount float64
	switch {
	case age >= 60:
		discount += 0.10
	case age >= 30:
		discount += 0.05
	}

	tenure := wholeYears(c.RegisteredAt, now)
	switch {
	case tenure >= 5:
		discount += 0.10
	case tenure >= 1:
		discount += 0.05
	}

	if discount > MaxDiscount {
		discount = MaxDiscount
	}
	return discount
}

func (s *clientService) CalculateAge(c Client) int {
	return wholeYears(c.BirthDate, s.clock())
}

func (s *clientService) IsEligible(c Client) bool {
	age := s.CalculateAge(c)
	return age >= EligibleMinAge && age <= EligibleMaxAge
}

// wholeYears counts completed calendar years between from and to. The
// anniversary day itself counts as a completed year.
func wholeYears(from, to time.Time) int {
	years := to.Year() - from.Year()
	if from.AddDate(years, 0, 0).After(to) {
		years--
	}
	return years
}
