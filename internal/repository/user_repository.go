package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fundlens/backoffice/internal/apperrors"
	"github.com/fundlens/backoffice/internal/model"
)

// UserRepository provides data access methods for the user table.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository with the provided database connection.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, password_hash, role, is_verified, created_at, updated_at`

func scanUser(scan func(...any) error) (model.User, error) {
	var u model.User
	var createdAt, updatedAt string

	err := scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.IsVerified,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return model.User{}, err
	}

	if u.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.User{}, err
	}
	if u.UpdatedAt, err = ParseTime(updatedAt); err != nil {
		return model.User{}, err
	}

	return u, nil
}

// GetUsers retrieves all users ordered by email.
func (r *UserRepository) GetUsers() ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM user ORDER BY email ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query user table: %w", err)
	}
	defer rows.Close()

	users := []model.User{}

	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user table results: %w", err)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user table: %w", err)
	}

	return users, nil
}

// GetUserByID retrieves a single user by ID.
// Returns apperrors.ErrUserNotFound if no such user exists.
func (r *UserRepository) GetUserByID(userID string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM user WHERE id = ?`

	u, err := scanUser(r.db.QueryRow(query, userID).Scan)
	if err == sql.ErrNoRows {
		return model.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to query user table: %w", err)
	}

	return u, nil
}

// GetUserByEmail retrieves a user by email.
// Returns nil, nil if no user carries the email.
func (r *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM user WHERE email = ?`

	u, err := scanUser(r.db.QueryRow(query, email).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user table: %w", err)
	}

	return &u, nil
}

// InsertUser inserts a new user row.
func (r *UserRepository) InsertUser(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO user (` + userColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.IsVerified,
		formatDateTime(u.CreatedAt),
		formatDateTime(u.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// UpdateUser writes back a fully merged user row.
// Returns apperrors.ErrUserNotFound when the ID does not exist.
func (r *UserRepository) UpdateUser(ctx context.Context, u *model.User) error {
	query := `
		UPDATE user
		SET email = ?, password_hash = ?, role = ?, is_verified = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.IsVerified,
		formatDateTime(u.UpdatedAt),
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// DeleteUser removes a user by ID.
func (r *UserRepository) DeleteUser(ctx context.Context, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM user WHERE id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
