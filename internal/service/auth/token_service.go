package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenService defines operations for managing session tokens.
// Tokens are stateless: the subject identity is reconstructed by
// verifying a signature on each request, never by a database lookup.
type TokenService interface {
	// Generate creates a signed session token for the given user.
	// Returns the token string and its expiry time.
	Generate(ctx context.Context, userID uuid.UUID, username string) (string, time.Time, error)

	// Validate checks the provided token's signature and expiry and
	// extracts the claims. Returns ErrExpiredToken for expired tokens
	// and ErrInvalidToken for malformed tokens or bad signatures.
	Validate(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified content of a session token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid"`

	// Username is the login name carried for display and logging.
	Username string `json:"username"`

	// Standard registered JWT claims.
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
