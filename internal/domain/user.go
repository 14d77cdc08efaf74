package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an API account that can obtain session tokens.
// Users are provisioned out of band; the API only reads them to verify
// login credentials.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"` // Never expose the password hash.
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
