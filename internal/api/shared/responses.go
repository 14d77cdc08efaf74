package shared

import (
	"encoding/json"
	"net/http"

	"github.com/osconstruct/construct-api/internal/platform/logger"
	"github.com/osconstruct/construct-api/internal/redact"
)

// Error kind strings carried in the envelope's "error" field. Clients
// switch on these; the HTTP status is derived from the same taxonomy.
const (
	KindValidation     = "Validation Error"
	KindAuthentication = "Authentication Error"
	KindAuthorization  = "Authorization Error"
	KindNotFound       = "Not Found"
	KindUnavailable    = "Store Unavailable"
	KindInternal       = "Internal Server Error"
)

// ErrorResponse is the fixed envelope for all error payloads:
// a short machine-usable kind plus a human-readable message.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError names a single offending field in a validation failure.
// Responses carry one entry per failing field, never a single collapsed
// string when multiple fields fail.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MessageResponse is the envelope for successful operations that return
// no record, such as deletes.
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes the error envelope with the given status,
// kind, and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, kind, message string) {
	RespondWithFieldErrors(w, r, status, kind, message, nil)
}

// RespondWithFieldErrors writes the error envelope including per-field
// validation details.
func RespondWithFieldErrors(w http.ResponseWriter, r *http.Request, status int, kind, message string, fields []FieldError) {
	log := logger.FromContext(r.Context())
	log.Debug("sending error response",
		"status_code", status,
		"kind", kind,
		"message", message,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   kind,
		Message: message,
		Fields:  fields,
	})
}

// RespondWithErrorAndLog writes a sanitized error envelope to the client
// and logs the full (redacted) error detail. Server errors log at ERROR
// level; client errors at DEBUG.
func RespondWithErrorAndLog(w http.ResponseWriter, r *http.Request, status int, kind, userMessage string, err error) {
	log := logger.FromContext(r.Context())

	attrs := []any{
		"status_code", status,
		"kind", kind,
		"path", r.URL.Path,
		"method", r.Method,
		"user_message", userMessage,
	}
	if err != nil {
		// Raw error text never reaches the client; redacted text goes
		// to the logs only.
		attrs = append(attrs, "error", redact.Error(err))
	}

	if status >= http.StatusInternalServerError {
		log.Error("API error response", attrs...)
	} else {
		log.Debug("API error response", attrs...)
	}

	RespondWithJSON(w, r, status, ErrorResponse{Error: kind, Message: userMessage})
}
