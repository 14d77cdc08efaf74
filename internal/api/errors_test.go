package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osconstruct/construct-api/internal/api/shared"
	"github.com/osconstruct/construct-api/internal/domain"
	"github.com/osconstruct/construct-api/internal/service/auth"
	"github.com/osconstruct/construct-api/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantKind    string
		wantMessage string
	}{
		{
			name:        "field validation error",
			err:         domain.NewValidationError("founded_year", "must be between 1800 and the current year", domain.ErrInvalidFoundedYear),
			wantStatus:  http.StatusBadRequest,
			wantKind:    shared.KindValidation,
			wantMessage: "founded_year: must be between 1800 and the current year",
		},
		{
			name:       "wrapped validation error",
			err:        fmt.Errorf("decoding: %w", domain.ErrValidation),
			wantStatus: http.StatusBadRequest,
			wantKind:   shared.KindValidation,
		},
		{
			name:        "missing token",
			err:         auth.ErrMissingToken,
			wantStatus:  http.StatusUnauthorized,
			wantKind:    shared.KindAuthentication,
			wantMessage: "Token is missing",
		},
		{
			name:        "expired token",
			err:         auth.ErrExpiredToken,
			wantStatus:  http.StatusUnauthorized,
			wantKind:    shared.KindAuthentication,
			wantMessage: "Token expired. Please log in again.",
		},
		{
			name:        "invalid token",
			err:         auth.ErrInvalidToken,
			wantStatus:  http.StatusUnauthorized,
			wantKind:    shared.KindAuthentication,
			wantMessage: "Invalid token. Please log in again.",
		},
		{
			name:        "bad credentials",
			err:         auth.ErrInvalidCredentials,
			wantStatus:  http.StatusUnauthorized,
			wantKind:    shared.KindAuthentication,
			wantMessage: "Invalid credentials",
		},
		{
			name:        "forbidden",
			err:         auth.ErrForbidden,
			wantStatus:  http.StatusForbidden,
			wantKind:    shared.KindAuthorization,
			wantMessage: "Admin privileges required",
		},
		{
			name:        "company not found",
			err:         store.ErrCompanyNotFound,
			wantStatus:  http.StatusNotFound,
			wantKind:    shared.KindNotFound,
			wantMessage: "Company not found",
		},
		{
			name:        "employee not found",
			err:         fmt.Errorf("transfer: %w", store.ErrEmployeeNotFound),
			wantStatus:  http.StatusNotFound,
			wantKind:    shared.KindNotFound,
			wantMessage: "Employee not found",
		},
		{
			name:        "store unavailable",
			err:         fmt.Errorf("list companies: %w", store.ErrUnavailable),
			wantStatus:  http.StatusServiceUnavailable,
			wantKind:    shared.KindUnavailable,
			wantMessage: "The data store is currently unavailable",
		},
		{
			name:        "unclassified error",
			err:         errors.New("cosmic ray"),
			wantStatus:  http.StatusInternalServerError,
			wantKind:    shared.KindInternal,
			wantMessage: "An unexpected error occurred",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			status, kind, message := MapError(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantKind, kind)
			if tc.wantMessage != "" {
				assert.Equal(t, tc.wantMessage, message)
			}
		})
	}
}
