package core

import (
	"context"
	"fmt"
	"time"
)

// Claim is an event report filed against a policy. Location is the address
// where the event happened, owned by the claim itself; it need not match the
// client's registered address.
type Claim struct {
	Number       string    `json:"number"`
	ClientCPF    string    `json:"client_cpf"`
	PolicyNumber string    `json:"policy_number"`
	EventDate    time.Time `json:"event_date"`
	Location     Address   `json:"location"`
}

type ClaimRepo interface {
	Add(ctx context.Context, c Claim) (created bool, err error)
	GetByNumber(ctx context.Context, number string) (Claim, error)
	Update(ctx context.Context, c Claim) error
	Remove(ctx context.Context, number string) error
	List(ctx context.Context) ([]Claim, error)

	// FindByEventDate returns every claim whose event date falls on the
	// given calendar day, in insertion order.
	FindByEventDate(ctx context.Context, date time.Time) ([]Claim, error)
}

func (c Claim) Validate() error {
	if c.Number == "" {
		return fmt.Errorf("%w: missing claim number", ErrValidation)
	}
	if c.ClientCPF == "" {
		return fmt.Errorf("%w: missing client CPF on claim", ErrValidation)
	}
	if c.PolicyNumber == "" {
		return fmt.Errorf("%w: missing policy number on claim", ErrValidation)
	}
	if c.EventDate.IsZero() {
		return fmt.Errorf("%w: missing claim event date", ErrValidation)
	}
	return nil
}

var ErrClaimNotFound = fmt.Errorf("%w: claim not found", ErrNotFound)
