package request

// CreateUserRequest represents the request body for registering a user.
// Role defaults to USER when omitted.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// UpdateUserRequest represents the request body for a partial user update.
// All fields are optional; only provided fields are merged into the record.
type UpdateUserRequest struct {
	Email      *string `json:"email,omitempty"`
	Password   *string `json:"password,omitempty"`
	Role       *string `json:"role,omitempty"`
	IsVerified *bool   `json:"isVerified,omitempty"`
}

// LoginRequest represents the request body for authenticating a user.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
