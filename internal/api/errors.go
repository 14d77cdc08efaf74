package api

import (
	"errors"
	"net/http"

	"github.com/osconstruct/construct-api/internal/api/shared"
	"github.com/osconstruct/construct-api/internal/domain"
	"github.com/osconstruct/construct-api/internal/service/auth"
	"github.com/osconstruct/construct-api/internal/store"
)

// MapError maps an internal error to the HTTP status, envelope kind, and
// safe client message. Handlers route every error through this single
// boundary so the taxonomy is applied exactly once and internal detail
// never leaks to clients.
func MapError(err error) (status int, kind string, message string) {
	var validationErr *domain.ValidationError

	switch {
	// Validation errors
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, shared.KindValidation, validationErr.Error()
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusBadRequest, shared.KindValidation, "Invalid request data"

	// Authentication errors
	case errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized, shared.KindAuthentication, "Token is missing"
	case errors.Is(err, auth.ErrExpiredToken):
		return http.StatusUnauthorized, shared.KindAuthentication, "Token expired. Please log in again."
	case errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized, shared.KindAuthentication, "Invalid token. Please log in again."
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, shared.KindAuthentication, "Invalid credentials"

	// Authorization errors
	case errors.Is(err, auth.ErrForbidden):
		return http.StatusForbidden, shared.KindAuthorization, "Admin privileges required"

	// Not found errors
	case errors.Is(err, store.ErrCompanyNotFound):
		return http.StatusNotFound, shared.KindNotFound, "Company not found"
	case errors.Is(err, store.ErrServiceNotFound):
		return http.StatusNotFound, shared.KindNotFound, "Service not found"
	case errors.Is(err, store.ErrProjectNotFound):
		return http.StatusNotFound, shared.KindNotFound, "Project not found"
	case errors.Is(err, store.ErrEmployeeNotFound):
		return http.StatusNotFound, shared.KindNotFound, "Employee not found"
	case errors.Is(err, store.ErrUserNotFound):
		return http.StatusNotFound, shared.KindNotFound, "User not found"
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, shared.KindNotFound, "Resource not found"

	// Store dependency failures
	case store.IsUnavailableError(err):
		return http.StatusServiceUnavailable, shared.KindUnavailable, "The data store is currently unavailable"

	// Default: unclassified
	default:
		return http.StatusInternalServerError, shared.KindInternal, "An unexpected error occurred"
	}
}

// HandleError maps err and writes the envelope. The raw error is logged
// (redacted) but never sent to the client.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	status, kind, message := MapError(err)
	shared.RespondWithErrorAndLog(w, r, status, kind, message, err)
}
