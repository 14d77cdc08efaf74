package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/osconstruct/construct-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing.
type MockTokenService struct {
	GenerateFn func(ctx context.Context, userID uuid.UUID, username string) (string, time.Time, error)
	ValidateFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Defaults used when the function fields are unset.
	Token       string
	ExpiresAt   time.Time
	GenerateErr error
	Claims      *auth.Claims
	ValidateErr error
}

var _ auth.TokenService = (*MockTokenService)(nil)

func (m *MockTokenService) Generate(ctx context.Context, userID uuid.UUID, username string) (string, time.Time, error) {
	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, userID, username)
	}
	return m.Token, m.ExpiresAt, m.GenerateErr
}

func (m *MockTokenService) Validate(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateFn != nil {
		return m.ValidateFn(ctx, tokenString)
	}
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	return m.Claims, nil
}

// MockPasswordVerifier implements auth.PasswordVerifier for testing.
type MockPasswordVerifier struct {
	CompareFn  func(hashedPassword, password string) error
	CompareErr error
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	return m.CompareErr
}
