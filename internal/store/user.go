package store

import (
	"context"

	"github.com/osconstruct/construct-api/internal/domain"
)

// UserStore defines the interface for reading API user accounts.
// Login is the only operation that touches users, so the interface is
// deliberately read-only; account provisioning happens out of band.
type UserStore interface {
	// GetByUsername retrieves a user by username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
