package core

import (
	"context"
	"fmt"
	"time"
)

// Insurance is the older contract concept kept alongside Policy: same shape,
// same invariants, separate repository. The policy side carries the
// discount-aware pricing and reporting; this side carries value updates and
// automatic renewal.
type Insurance struct {
	Number       string    `json:"number"`
	ClientCPF    string    `json:"client_cpf"`
	VehiclePlate string    `json:"vehicle_plate"`
	Value        float64   `json:"value"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
}

type InsuranceRepo interface {
	Add(ctx context.Context, ins Insurance) (created bool, err error)
	GetByNumber(ctx context.Context, number string) (Insurance, error)
	Update(ctx context.Context, ins Insurance) error
	Remove(ctx context.Context, number string) error
	List(ctx context.Context) ([]Insurance, error)
}

func (i Insurance) Validate() error {
	if i.Number == "" {
		return fmt.Errorf("%w: missing insurance number", ErrValidation)
	}
	if i.ClientCPF == "" {
		return fmt.Errorf("%w: missing client CPF on insurance", ErrValidation)
	}
	if i.VehiclePlate == "" {
		return fmt.Errorf("%w: missing vehicle plate on insurance", ErrValidation)
	}
	if i.EndDate.Before(i.StartDate) {
		return fmt.Errorf("%w: insurance end date precedes start date", ErrValidation)
	}
	if i.Value < 0 {
		return fmt.Errorf("%w: insurance value must not be negative", ErrValidation)
	}
	return nil
}

var ErrInsuranceNotFound = fmt.Errorf("%w: insurance not found", ErrNotFound)
