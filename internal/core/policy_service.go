package core

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelfiap/go-vehicle-insurance/internal/platform/ids"
)

type PolicyService interface {
	// Register stores a new policy. A missing policy number is assigned.
	Register(ctx context.Context, p Policy) (Policy, error)

	// GetByNumber retrieves a policy by number.
	GetByNumber(ctx context.Context, number string) (Policy, error)

	// Remove deletes a policy by number.
	Remove(ctx context.Context, number string) error

	// List returns every policy in registration order.
	List(ctx context.Context) ([]Policy, error)

	// CalculateValue prices the policy: the referenced vehicle's premium
	// reduced by the referenced client's discount. A dangling client or
	// vehicle reference surfaces as a not-found error here, not at
	// registration time.
	CalculateValue(ctx context.Context, p Policy) (float64, error)

	// Renew sets the policy's end date to newEnd unconditionally and
	// persists it. Whether newEnd extends the coverage is the caller's
	// problem.
	Renew(ctx context.Context, number string, newEnd time.Time) (Policy, error)

	// Cancel sets the policy's end date to today and persists it.
	Cancel(ctx context.Context, number string) (Policy, error)

	// IsValid reports whether the policy covers today: the start day
	// counts, the end day does not.
	IsValid(p Policy) bool

	// GenerateReport returns every policy whose start date falls within
	// [start, end], both inclusive, in repository order.
	GenerateReport(ctx context.Context, start, end time.Time) ([]Policy, error)

	// ListByStartDate returns the policies starting on the given day.
	ListByStartDate(ctx context.Context, date time.Time) ([]Policy, error)
}

type policyService struct {
	policies PolicyRepo
	vehicles VehicleRepo
	clients  ClientService
	clock    func() time.Time
}

func NewPolicyService(policies PolicyRepo, vehicles VehicleRepo, clients ClientService) PolicyService {
	return &policyService{
		policies: policies,
		vehicles: vehicles,
		clients:  clients,
		clock:    time.Now,
	}
}

func (s *policyService) Register(ctx context.Context, p Policy) (Policy, error) {
	if p.Number == "" {
		p.Number = ids.New()
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	if _, err := s.policies.Add(ctx, p); err != nil {
		return Policy{}, err
	}
	return p, nil
}

func (s *policyService) GetByNumber(ctx context.Context, number string) (Policy, error) {
	if number == "" {
		return Policy{}, fmt.Errorf("%w: missing policy number", ErrValidation)
	}
	return s.policies.GetByNumber(ctx, number)
}

func (s *policyService) Remove(ctx context.Context, number string) error {
	if number == "" {
		return fmt.Errorf("%w: missing policy number", ErrValidation)
	}
	return s.policies.Remove(ctx, number)
}

func (s *policyService) List(ctx context.Context) ([]Policy, error) {
	return s.policies.List(ctx)
}

func (s *policyService) CalculateValue(ctx context.Context, p Policy) (float64, error) {
	vehicle, err := s.vehicles.GetByPlate(ctx, p.VehiclePlate)
	if err != nil {
		return 0, err
	}
	client, err := s.clients.GetByCPF(ctx, p.ClientCPF)
	if err != nil {
		return 0, err
	}
	discount := s.clients.CalculateDiscount(client)
	return vehicle.Premium * (1 - discount), nil
}

func (s *policyService) Renew(ctx context.Context, number string, newEnd time.Time) (Policy, error) {
	p, err := s.GetByNumber(ctx, number)
	if err != nil {
		return Policy{}, err
	}
	p.EndDate = dateOf(newEnd)
	if err := s.policies.Update(ctx, p); err != nil {
		return Policy{}, err
	}
	return p, nil
}

func (s *policyService) Cancel(ctx context.Context, number string) (Policy, error) {
	return s.Renew(ctx, number, s.clock())
}

func (s *policyService) IsValid(p Policy) bool {
	today := dateOf(s.clock())
	return !today.Before(dateOf(p.StartDate)) && today.Before(dateOf(p.EndDate))
}

func (s *policyService) GenerateReport(ctx context.Context, start, end time.Time) ([]Policy, error) {
	all, err := s.policies.List(ctx)
	if err != nil {
		return nil, err
	}
	from, to := dateOf(start), dateOf(end)
	var out []Policy
	for _, p := range all {
		day := dateOf(p.StartDate)
		if !day.Before(from) && !day.After(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *policyService) ListByStartDate(ctx context.Context, date time.Time) ([]Policy, error) {
	return s.policies.FindByStartDate(ctx, date)
}
