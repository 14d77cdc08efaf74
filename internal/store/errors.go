package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store. Entity-specific variants below wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity violates a database
	// constraint. Check the wrapped error for details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUnavailable is returned when the backing database cannot be
	// reached at all, as opposed to an operation failing against a
	// healthy database. The API boundary maps it to 503.
	ErrUnavailable = errors.New("store unavailable")

	// Entity-specific "not found" errors.

	// ErrCompanyNotFound indicates that the requested company does not exist.
	ErrCompanyNotFound = fmt.Errorf("%w: company", ErrNotFound)

	// ErrServiceNotFound indicates that the requested service does not exist.
	ErrServiceNotFound = fmt.Errorf("%w: service", ErrNotFound)

	// ErrProjectNotFound indicates that the requested project does not exist.
	ErrProjectNotFound = fmt.Errorf("%w: project", ErrNotFound)

	// ErrEmployeeNotFound indicates that the requested employee does not exist.
	ErrEmployeeNotFound = fmt.Errorf("%w: employee", ErrNotFound)

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnavailableError checks if the error indicates the store could not
// be reached.
func IsUnavailableError(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
