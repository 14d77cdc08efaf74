package middleware

import (
	"net/http"
	"strings"

	"github.com/osconstruct/construct-api/internal/api/shared"
	"github.com/osconstruct/construct-api/internal/config"
	"github.com/osconstruct/construct-api/internal/platform/logger"
	"github.com/osconstruct/construct-api/internal/redact"
	"github.com/osconstruct/construct-api/internal/service/auth"
)

// AuthMiddleware is the authorization gate for protected routes. Per
// request it moves through token extraction, signature/expiry
// verification, and (for admin routes) the role check, rejecting at the
// first failed step. It performs no database I/O.
type AuthMiddleware struct {
	tokens auth.TokenService
	cfg    config.AuthConfig
}

// NewAuthMiddleware creates an AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokens auth.TokenService, cfg config.AuthConfig) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, cfg: cfg}
}

// Authenticate validates the bearer token from the Authorization header
// and attaches the verified identity to the request context. A missing
// token short-circuits before any other work.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized,
				shared.KindAuthentication, "Token is missing")
			return
		}

		claims, err := m.tokens.Validate(r.Context(), token)
		if err != nil {
			switch err {
			case auth.ErrExpiredToken:
				shared.RespondWithError(w, r, http.StatusUnauthorized,
					shared.KindAuthentication, "Token expired. Please log in again.")
			case auth.ErrInvalidToken:
				shared.RespondWithError(w, r, http.StatusUnauthorized,
					shared.KindAuthentication, "Invalid token. Please log in again.")
			default:
				logger.FromContext(r.Context()).Error("failed to validate token",
					"error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError,
					shared.KindInternal, "Authentication error")
			}
			return
		}

		ctx := shared.WithIdentity(r.Context(), shared.Identity{
			UserID:   claims.UserID,
			Username: claims.Username,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin admits only identities on the configured admin allow-list.
// It must run after Authenticate. A request that reaches it
// unauthenticated is rejected with 401; an authenticated non-admin
// gets 403.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := shared.IdentityFrom(r.Context())
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized,
				shared.KindAuthentication, "Token is missing")
			return
		}

		if !m.cfg.IsAdmin(identity.UserID.String()) {
			logger.FromContext(r.Context()).Debug("admin check failed",
				"user_id", identity.UserID,
				"username", identity.Username)
			shared.RespondWithError(w, r, http.StatusForbidden,
				shared.KindAuthorization, "Admin privileges required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Returns false when the header is absent, malformed, or empty.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
