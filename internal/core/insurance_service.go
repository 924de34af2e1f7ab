package core

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelfiap/go-vehicle-insurance/internal/platform/ids"
)

const (
	// RenewalWindowMonths is how far ahead of expiry automatic renewal
	// kicks in.
	RenewalWindowMonths = 1

	// RenewalTermYears is the coverage extension automatic renewal grants,
	// counted from the day the renewal runs.
	RenewalTermYears = 1
)

type InsuranceService interface {
	// Register stores a new insurance contract. A missing number is
	// assigned.
	Register(ctx context.Context, ins Insurance) (Insurance, error)

	// GetByNumber retrieves an insurance contract by number.
	GetByNumber(ctx context.Context, number string) (Insurance, error)

	// Remove deletes an insurance contract by number.
	Remove(ctx context.Context, number string) error

	// List returns every insurance contract in registration order.
	List(ctx context.Context) ([]Insurance, error)

	// CalculateValue prices the contract from the referenced vehicle's
	// premium. No client discount applies on this side.
	CalculateValue(ctx context.Context, ins Insurance) (float64, error)

	// UpdateValue sets the contract's monetary value and persists it.
	UpdateValue(ctx context.Context, number string, value float64) (Insurance, error)

	// Renew sets the end date to newEnd unconditionally and persists it.
	Renew(ctx context.Context, number string, newEnd time.Time) (Insurance, error)

	// Cancel sets the end date to today and persists it.
	Cancel(ctx context.Context, number string) (Insurance, error)

	// IsValid reports whether the contract covers today: the start day
	// counts, the end day does not.
	IsValid(ins Insurance) bool

	// AutomaticRenewal extends the contract by RenewalTermYears from today
	// when its end date is less than RenewalWindowMonths away, and reports
	// whether a renewal happened.
	AutomaticRenewal(ctx context.Context, number string) (renewed bool, ins Insurance, err error)
}

type insuranceService struct {
	insurances InsuranceRepo
	vehicles   VehicleRepo
	clock      func() time.Time
}

func NewInsuranceService(insurances InsuranceRepo, vehicles VehicleRepo) InsuranceService {
	return &insuranceService{
		insurances: insurances,
		vehicles:   vehicles,
		clock:      time.Now,
	}
}

func (s *insuranceService) Register(ctx context.Context, ins Insurance) (Insurance, error) {
	if ins.Number == "" {
		ins.Number = ids.New()
	}
	if err := ins.Validate(); err != nil {
		return Insurance{}, err
	}
	if _, err := s.insurances.Add(ctx, ins); err != nil {
		return Insurance{}, err
	}
	return ins, nil
}

func (s *insuranceService) GetByNumber(ctx context.Context, number string) (Insurance, error) {
	if number == "" {
		return Insurance{}, fmt.Errorf("%w: missing insurance number", ErrValidation)
	}
	return s.insurances.GetByNumber(ctx, number)
}

func (s *insuranceService) Remove(ctx context.Context, number string) error {
	if number == "" {
		return fmt.Errorf("%w: missing insurance number", ErrValidation)
	}
	return s.insurances.Remove(ctx, number)
}

func (s *insuranceService) List(ctx context.Context) ([]Insurance, error) {
	return s.insurances.List(ctx)
}

func (s *insuranceService) CalculateValue(ctx context.Context, ins Insurance) (float64, error) {
	vehicle, err := s.vehicles.GetByPlate(ctx, ins.VehiclePlate)
	if err != nil {
		return 0, err
	}
	return vehicle.Premium, nil
}

func (s *insuranceService) UpdateValue(ctx context.Context, number string, value float64) (Insurance, error) {
	if value < 0 {
		return Insurance{}, fmt.Errorf("%w: insurance value must not be negative", ErrValidation)
	}
	ins, err := s.GetByNumber(ctx, number)
	if err != nil {
		return Insurance{}, err
	}
	ins.Value = value
	if err := s.insurances.Update(ctx, ins); err != nil {
		return Insurance{}, err
	}
	return ins, nil
}

func (s *insuranceService) Renew(ctx context.Context, number string, newEnd time.Time) (Insurance, error) {
	ins, err := s.GetByNumber(ctx, number)
	if err != nil {
		return Insurance{}, err
	}
	ins.EndDate = dateOf(newEnd)
	if err := s.insurances.Update(ctx, ins); err != nil {
		return Insurance{}, err
	}
	return ins, nil
}

func (s *insuranceService) Cancel(ctx context.Context, number string) (Insurance, error) {
	return s.Renew(ctx, number, s.clock())
}

func (s *insuranceService) IsValid(ins Insurance) bool {
	today := dateOf(s.clock())
	return !today.Before(dateOf(ins.StartDate)) && today.Before(dateOf(ins.EndDate))
}

func (s *insuranceService) AutomaticRenewal(ctx context.Context, number string) (bool, Insurance, error) {
	ins, err := s.GetByNumber(ctx, number)
	if err != nil {
		return false, Insurance{}, err
	}
	today := dateOf(s.clock())
	if !today.AddDate(0, RenewalWindowMonths, 0).After(dateOf(ins.EndDate)) {
		return false, ins, nil
	}
	ins.EndDate = today.AddDate(RenewalTermYears, 0, 0)
	if err := s.insurances.Update(ctx, ins); err != nil {
		return false, Insurance{}, err
	}
	return true, ins, nil
}
