// Package middleware contains the request-scoped checks applied before
// handlers execute: trace ID injection, token authentication, and the
// admin role gate. Each middleware either passes the request on with an
// enriched context or rejects it with the standard error envelope.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/osconstruct/construct-api/internal/api/shared"
	"github.com/osconstruct/construct-api/internal/platform/logger"
)

// Trace adds a trace ID to the request context and attaches a logger
// enriched with it. Applied first so every later log line and error
// response can be correlated.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithContext(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
