package handlers

import (
	"errors"
	"net/http"

	"github.com/fundlens/backoffice/internal/api/request"
	"github.com/fundlens/backoffice/internal/api/response"
	"github.com/fundlens/backoffice/internal/apperrors"
	"github.com/fundlens/backoffice/internal/service"
	"github.com/fundlens/backoffice/internal/validation"
)

// AuthHandler handles HTTP requests for authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler with the provided service dependency.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST requests to authenticate a user and issue a bearer token.
// An unknown email and a wrong password produce the same 401 so the response
// does not reveal which field was wrong.
//
// Endpoint: POST /v1/auth/login
// Request Body: LoginRequest (email, password)
// Response: 200 OK with LoginResponse (token plus user details)
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 401 Unauthorized if the credentials do not match
// Error: 403 Forbidden if the account exists but is not verified
// Error: 500 Internal Server Error if authentication fails
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.LoginRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateLogin(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	result, err := h.authService.Login(req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			response.RespondError(w, http.StatusUnauthorized, apperrors.ErrInvalidCredentials.Error(), "")
			return
		}
		if errors.Is(err, apperrors.ErrAccountNotVerified) {
			response.RespondError(w, http.StatusForbidden, apperrors.ErrAccountNotVerified.Error(), "")
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to authenticate", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}
