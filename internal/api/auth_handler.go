package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/osconstruct/construct-api/internal/api/shared"
	"github.com/osconstruct/construct-api/internal/platform/logger"
	"github.com/osconstruct/construct-api/internal/service/auth"
	"github.com/osconstruct/construct-api/internal/store"
)

// AuthHandler serves the login endpoint.
type AuthHandler struct {
	users     store.UserStore
	passwords auth.PasswordVerifier
	tokens    auth.TokenService
	validator *Validator
}

// NewAuthHandler creates an AuthHandler with the given dependencies.
func NewAuthHandler(users store.UserStore, passwords auth.PasswordVerifier, tokens auth.TokenService, validator *Validator) *AuthHandler {
	return &AuthHandler{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
		validator: validator,
	}
}

// Login handles POST /api/auth/login.
// An unknown username and a wrong password produce the same response,
// so the endpoint does not reveal which usernames exist.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		HandleError(w, r, err)
		return
	}
	if fields := h.validator.Check(&req); fields != nil {
		shared.RespondWithFieldErrors(w, r, http.StatusBadRequest,
			shared.KindValidation, "Invalid request data", fields)
		return
	}

	user, err := h.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login attempt for unknown username")
			HandleError(w, r, auth.ErrInvalidCredentials)
			return
		}
		HandleError(w, r, err)
		return
	}

	if err := h.passwords.Compare(user.HashedPassword, req.Password); err != nil {
		log.Debug("login attempt with wrong password", "user_id", user.ID)
		HandleError(w, r, auth.ErrInvalidCredentials)
		return
	}

	token, expiresAt, err := h.tokens.Generate(ctx, user.ID, user.Username)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	log.Info("user logged in", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		User:      LoginUser{ID: user.ID, Username: user.Username},
	})
}
