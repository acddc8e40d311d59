package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fundlens/backoffice/internal/api/request"
	"github.com/fundlens/backoffice/internal/api/response"
	"github.com/fundlens/backoffice/internal/apperrors"
	"github.com/fundlens/backoffice/internal/service"
	"github.com/fundlens/backoffice/internal/validation"
)

// UserHandler handles HTTP requests for user management endpoints.
// Responses never include password hashes; the service layer strips them.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler with the provided service dependency.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetUsers handles GET requests to retrieve all users.
//
// Endpoint: GET /v1/users
// Response: 200 OK with array of UserResponse
// Error: 500 Internal Server Error if retrieval fails
func (h *UserHandler) GetUsers(w http.ResponseWriter, _ *http.Request) {
	users, err := h.userService.GetUsers()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveUsers.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, users)
}

// GetUser handles GET requests to retrieve a single user by ID.
//
// Endpoint: GET /v1/users/{uuid}
// Response: 200 OK with UserResponse
// Error: 400 Bad Request if user ID is invalid (validated by middleware)
// Error: 404 Not Found if user not found
// Error: 500 Internal Server Error if retrieval fails
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "uuid")

	user, err := h.userService.GetUser(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrUserNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveUser.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, user)
}

// CreateUser handles POST requests to register a new user.
// Emails are stored lowercased and must be unique. New accounts default to the
// USER role and start unverified.
//
// Endpoint: POST /v1/users
// Request Body: CreateUserRequest (email, password, firstName, lastName, role?)
// Response: 201 Created with UserResponse
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 409 Conflict if the email is already registered
// Error: 500 Internal Server Error if creation fails
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateUserRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateUser(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	user, err := h.userService.CreateUser(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrEmailTaken.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create user", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, user)
}

// UpdateUser handles PUT requests to update an existing user.
// Only the fields present in the body are changed; a new password is re-hashed.
//
// Endpoint: PUT /v1/users/{uuid}
// Request Body: UpdateUserRequest (all fields optional)
// Response: 200 OK with updated UserResponse
// Error: 400 Bad Request if user ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if user not found
// Error: 409 Conflict if the new email is taken by another user
// Error: 500 Internal Server Error if update fails
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateUserRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateUser(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrUserNotFound.Error(), err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrEmailTaken) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrEmailTaken.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to update user", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE requests to remove a user account.
//
// Endpoint: DELETE /v1/users/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if user ID is invalid (validated by middleware)
// Error: 404 Not Found if user not found
// Error: 500 Internal Server Error if deletion fails
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "uuid")

	err := h.userService.DeleteUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrUserNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to delete user", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
