package auth

import "errors"

// Common authentication service errors.
var (
	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidToken indicates the token format is invalid or the
	// signature doesn't match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrInvalidCredentials indicates a login attempt with a wrong
	// username or password. Callers must not distinguish which.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden indicates an authenticated user lacks the role
	// required for an operation. Maps to 403, never 401.
	ErrForbidden = errors.New("admin privileges required")
)
