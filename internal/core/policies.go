package core

import (
	"context"
	"fmt"
	"time"
)

// Policy binds a client and a vehicle for a coverage period at a computed
// value. Both references are by natural key and resolved through the
// relevant repository at read time; the policy never holds live handles.
type Policy struct {
	Number       string    `json:"number"`
	ClientCPF    string    `json:"client_cpf"`
	VehiclePlate string    `json:"vehicle_plate"`
	Value        float64   `json:"value"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
}

type PolicyRepo interface {
	Add(ctx context.Context, p Policy) (created bool, err error)
	GetByNumber(ctx context.Context, number string) (Policy, error)
	Update(ctx context.Context, p Policy) error
	Remove(ctx context.Context, number string) error
	List(ctx context.Context) ([]Policy, error)

	// FindByStartDate returns every policy whose start date falls on the
	// given calendar day, in insertion order.
	FindByStartDate(ctx context.Context, date time.Time) ([]Policy, error)
}

func (p Policy) Validate() error {
	if p.Number == "" {
		return fmt.Errorf("%w: missing policy number", ErrValidation)
	}
	if p.ClientCPF == "" {
		return fmt.Errorf("%w: missing client CPF on policy", ErrValidation)
	}
	if p.VehiclePlate == "" {
		return fmt.Errorf("%w: missing vehicle plate on policy", ErrValidation)
	}
	if p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("%w: policy end date precedes start date", ErrValidation)
	}
	if p.Value < 0 {
		return fmt.Errorf("%w: policy value must not be negative", ErrValidation)
	}
	return nil
}

// dateOf truncates an instant to its calendar day. Coverage windows are
// day-granular, so every comparison goes through this first.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// sameDay reports whether two instants fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	return dateOf(a).Equal(dateOf(b))
}

var ErrPolicyNotFound = fmt.Errorf("%w: policy not found", ErrNotFound)
