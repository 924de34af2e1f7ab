package core

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state transition")
)

// ErrUnknownCategory is a validation failure specific to the vehicle catalog:
// the caller asked for a category outside {car, motorcycle, truck, bus}.
var ErrUnknownCategory = fmt.Errorf("%w: unknown vehicle category", ErrValidation)
