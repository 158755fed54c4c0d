package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation         = errors.New("missing required fields")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")

	ErrEmployerNotFound = fmt.Errorf("employer %w", ErrNotFound)
	ErrHelperNotFound   = fmt.Errorf("helper %w", ErrNotFound)
	ErrContractNotFound = fmt.Errorf("contract %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
)

// MissingFields reports absent required fields while keeping ErrValidation matchable.
func MissingFields(fields ...string) error {
	if len(fields) == 0 {
		return ErrValidation
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(fields, ", "))
}
