package validation

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/fundlens/backoffice/internal/api/request"
	"github.com/fundlens/backoffice/internal/model"
)

func ValidateCreateUser(req request.CreateUserRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Email) == "" {
		errors["email"] = "email is required"
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		errors["email"] = "email is not a valid address"
	}

	if req.Password == "" {
		errors["password"] = "password is required"
	} else if len(req.Password) < 8 {
		errors["password"] = "password must be at least 8 characters"
	}

	// Optional, defaults to USER in the service
	if req.Role != "" && !model.ValidRole[req.Role] {
		errors["role"] = fmt.Sprintf("invalid role: %s", req.Role)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateUser(req request.UpdateUserRequest) error {
	errors := make(map[string]string)

	if req.Email != nil {
		if strings.TrimSpace(*req.Email) == "" {
			errors["email"] = "email is required"
		} else if _, err := mail.ParseAddress(*req.Email); err != nil {
			errors["email"] = "email is not a valid address"
		}
	}
	if req.Password != nil && len(*req.Password) < 8 {
		errors["password"] = "password must be at least 8 characters"
	}
	if req.Role != nil && !model.ValidRole[*req.Role] {
		errors["role"] = fmt.Sprintf("invalid role: %s", *req.Role)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateLogin(req request.LoginRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Email) == "" {
		errors["email"] = "email is required"
	}
	if req.Password == "" {
		errors["password"] = "password is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
