package api

import (
	"context"
	"net/http"
	"time"

	"github.com/osconstruct/construct-api/internal/api/shared"
	"github.com/osconstruct/construct-api/internal/platform/logger"
	"github.com/osconstruct/construct-api/internal/redact"
)

// Pinger reports database reachability. Satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler serves the health endpoint used by load balancers and
// monitoring.
type HealthHandler struct {
	db          Pinger
	environment string
}

// NewHealthHandler creates a HealthHandler with the given dependencies.
func NewHealthHandler(db Pinger, environment string) *HealthHandler {
	return &HealthHandler{db: db, environment: environment}
}

// Check handles GET /api/health. Reports 200 when the database answers
// a bounded ping, 503 otherwise.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:      "healthy",
		Database:    "connected",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: h.environment,
	}

	if err := h.db.PingContext(ctx); err != nil {
		logger.FromContext(r.Context()).Error("health check failed",
			"error", redact.Error(err))
		resp.Status = "unhealthy"
		resp.Database = "disconnected"
		shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, resp)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
