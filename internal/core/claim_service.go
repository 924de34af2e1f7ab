package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rafaelfiap/go-vehicle-insurance/internal/platform/ids"
)

const (
	// baseIndemnity and riskFactor are the whole indemnification rule set:
	// no per-claim risk data exists in the model, so every claim pays the
	// same 9000.
	baseIndemnity = 10000
	riskFactor    = 0.9
)

type ClaimService interface {
	// Register stores a new claim. A missing claim number is assigned.
	// The event date is NOT checked against the referenced policy's
	// coverage window; that remains the caller's responsibility.
	Register(ctx context.Context, c Claim) (Claim, error)

	// Find retrieves a claim by number.
	Find(ctx context.Context, number string) (Claim, error)

	// Update replaces a stored claim. The claim number must already exist.
	Update(ctx context.Context, c Claim) error

	// Remove deletes a claim by number.
	Remove(ctx context.Context, number string) error

	// Exists reports whether a claim with the given number is stored.
	Exists(ctx context.Context, number string) (bool, error)

	// ListAll returns every claim in registration order.
	ListAll(ctx context.Context) ([]Claim, error)

	// ListByDate returns the claims whose event falls on the given day.
	ListByDate(ctx context.Context, date time.Time) ([]Claim, error)

	// CalculateIndemnification returns the payout for a claim.
	CalculateIndemnification(c Claim) float64

	// CalculateTotalIndemnifications sums the payout over every stored
	// claim.
	CalculateTotalIndemnifications(ctx context.Context) (float64, error)
}

type claimService struct {
	claims ClaimRepo
}

func NewClaimService(claims ClaimRepo) ClaimService {
	return &claimService{claims: claims}
}

func (s *claimService) Register(ctx context.Context, c Claim) (Claim, error) {
	if c.Number == "" {
		c.Number = ids.New()
	}
	if err := c.Validate(); err != nil {
		return Claim{}, err
	}
	if _, err := s.claims.Add(ctx, c); err != nil {
		return Claim{}, err
	}
	return c, nil
}

func (s *claimService) Find(ctx context.Context, number string) (Claim, error) {
	if number == "" {
		return Claim{}, fmt.Errorf("%w: missing claim number", ErrValidation)
	}
	return s.claims.GetByNumber(ctx, number)
}

func (s *claimService) Update(ctx context.Context, c Claim) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return s.claims.Update(ctx, c)
}

func (s *claimService) Remove(ctx context.Context, number string) error {
	if number == "" {
		return fmt.Errorf("%w: missing claim number", ErrValidation)
	}
	return s.claims.Remove(ctx, number)
}

func (s *claimService) Exists(ctx context.Context, number string) (bool, error) {
	_, err := s.Find(ctx, number)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return false, err
}

func (s *claimService) ListAll(ctx context.Context) ([]Claim, error) {
	return s.claims.List(ctx)
}

func (s *claimService) ListByDate(ctx context.Context, date time.Time) ([]Claim, error) {
	return s.claims.FindByEventDate(ctx, date)
}

func (s *claimService) CalculateIndemnification(Claim) float64 {
	return baseIndemnity * riskFactor
}

func (s *claimService) CalculateTotalIndemnifications(ctx context.Context) (float64, error) {
	all, err := s.claims.List(ctx)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, c := range all {
		total += s.CalculateIndemnification(c)
	}
	return total, nil
}
