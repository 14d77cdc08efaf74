package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/osconstruct/construct-api/internal/domain"
)

// maxRequestBody caps request payloads at 1 MiB.
const maxRequestBody = 1 << 20

// DecodeJSON decodes the request body into dst, mapping malformed JSON
// to a validation error.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBody))
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid request payload", fmt.Errorf("%w: %v", domain.ErrValidation, err))
	}
	return nil
}

// pathUUID extracts and parses a UUID route parameter. A malformed
// value yields a validation error so the caller can map it to 400.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid UUID", domain.ErrInvalidID)
	}
	return id, nil
}
