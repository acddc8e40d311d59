package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fundlens/backoffice/internal/api/request"
	"github.com/fundlens/backoffice/internal/apperrors"
	"github.com/fundlens/backoffice/internal/auth"
	"github.com/fundlens/backoffice/internal/model"
	"github.com/fundlens/backoffice/internal/repository"
)

// UserService handles user management operations. Password hashes never
// leave this layer: every return value is the public projection.
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new UserService with the provided repository dependency.
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetUsers retrieves all users as public projections.
func (s *UserService) GetUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.GetUsers()
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toUserResponse(u))
	}
	return responses, nil
}

// GetUser retrieves a single user by ID.
func (s *UserService) GetUser(userID string) (model.UserResponse, error) {
	u, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return model.UserResponse{}, err
	}
	return toUserResponse(u), nil
}

// CreateUser registers a new user. The email is normalized to lowercase and
// must be unique; the password is stored only as a bcrypt hash. Role
// defaults to USER when omitted.
func (s *UserService) CreateUser(ctx context.Context, req request.CreateUserRequest) (model.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return model.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return model.UserResponse{}, apperrors.ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return model.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.InsertUser(ctx, user); err != nil {
		return model.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return toUserResponse(*user), nil
}

// UpdateUser applies a partial update: only supplied fields are merged into
// the stored record. A new password is re-hashed; a new email is normalized
// and checked for uniqueness.
func (s *UserService) UpdateUser(ctx context.Context, userID string, req request.UpdateUserRequest) (model.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return model.UserResponse{}, err
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != user.Email {
			existing, err := s.userRepo.GetUserByEmail(email)
			if err != nil {
				return model.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
			}
			if existing != nil {
				return model.UserResponse{}, apperrors.ErrEmailTaken
			}
			user.Email = email
		}
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return model.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsVerified != nil {
		user.IsVerified = *req.IsVerified
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.UpdateUser(ctx, &user); err != nil {
		return model.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

// DeleteUser removes a user by ID.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	return s.userRepo.DeleteUser(ctx, userID)
}

func toUserResponse(u model.User) model.UserResponse {
	return model.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Role:       u.Role,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  u.UpdatedAt.Format(time.RFC3339),
	}
}
