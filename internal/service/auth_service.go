package service

import (
	"fmt"
	"strings"

	"github.com/fundlens/backoffice/internal/api/request"
	"github.com/fundlens/backoffice/internal/apperrors"
	"github.com/fundlens/backoffice/internal/auth"
	"github.com/fundlens/backoffice/internal/model"
	"github.com/fundlens/backoffice/internal/repository"
)

// AuthService handles authentication. Token validity on subsequent requests
// is checked by the authorization middleware, not here; login is the only
// stateful-looking operation and it is stateless request/response.
type AuthService struct {
	userRepo *repository.UserRepository
	tokens   *auth.TokenManager
}

// NewAuthService creates a new AuthService with the provided dependencies.
func NewAuthService(userRepo *repository.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Login authenticates a user by email and password.
//
// An unknown email and a password mismatch both fail with
// apperrors.ErrInvalidCredentials so the response does not leak which field
// was wrong. A matching but unverified account fails with
// apperrors.ErrAccountNotVerified. On success the signed bearer token and
// the public user projection are returned; the password hash never is.
func (s *AuthService) Login(req request.LoginRequest) (model.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return model.LoginResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return model.LoginResponse{}, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return model.LoginResponse{}, apperrors.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return model.LoginResponse{}, apperrors.ErrAccountNotVerified
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return model.LoginResponse{}, fmt.Errorf("failed to issue token: %w", err)
	}

	return model.LoginResponse{
		Token: token,
		User:  toUserResponse(*user),
	}, nil
}
