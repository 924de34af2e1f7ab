package core

import (
	"context"
	"fmt"
	"time"
)

// Address is a plain value: it has no identity of its own and belongs to
// whichever client or claim embeds it.
type Address struct {
	Street     string `json:"street"`
	Number     int    `json:"number"`
	PostalCode string `json:"postal_code"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
}

type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// Client is a policyholder. The CPF (national tax ID) is the natural key
// across the whole system; policies and claims refer to clients by CPF,
// never by live handle.
type Client struct {
	CPF          string    `json:"cpf"`
	Name         string    `json:"name"`
	Address      Address   `json:"address"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Sex          Sex       `json:"sex"`
	BirthDate    time.Time `json:"birth_date"`
	RegisteredAt time.Time `json:"registered_at"`
}

type ClientRepo interface {
	// Add inserts the client keyed by CPF. A duplicate CPF overwrites the
	// stored client in place; created reports whether this was an insert.
	Add(ctx context.Context, c Client) (created bool, err error)
	GetByCPF(ctx context.Context, cpf string) (Client, error)
	Update(ctx context.Context, c Client) error
	Remove(ctx context.Context, cpf string) error
	List(ctx context.Context) ([]Client, error)
}

func (c Client) Validate() error {
	if c.CPF == "" {
		return fmt.Errorf("%w: missing client CPF", ErrValidation)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: missing client name", ErrValidation)
	}
	return nil
}

var ErrClientNotFound = fmt.Errorf("%w: client not found", ErrNotFound)
