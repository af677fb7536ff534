package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"ideavault/internal/domain"
	"ideavault/internal/domain/models"
	"ideavault/internal/domain/services"
	"ideavault/internal/httputil"
)

// AuthHandler handles registration and login HTTP requests
type AuthHandler struct {
	service services.AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service services.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// authUser is the user shape returned by register/login; it never includes
// the password hash.
type authUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type registerResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    authUser `json:"user"`
}

type loginResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token"`
	User    authUser `json:"user"`
}

// Register creates a new account
// POST /v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusLengthRequired, "incorrect input format")
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		// The frontend checks 411 for malformed signup input
		if errors.Is(err, domain.ErrValidation) {
			httputil.RespondError(w, http.StatusLengthRequired, err.Error())
			return
		}
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, registerResponse{
		Message: "User created successfully",
		Token:   result.Token,
		User:    toAuthUser(result.User),
	})
}

// Login verifies credentials and issues a session token
// POST /v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusLengthRequired, "incorrect inputs")
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			httputil.RespondError(w, http.StatusLengthRequired, err.Error())
			return
		}
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, loginResponse{
		Success: true,
		Token:   result.Token,
		User:    toAuthUser(result.User),
	})
}

func toAuthUser(u *models.User) authUser {
	return authUser{ID: u.ID, Email: u.Email, Name: u.Name}
}
