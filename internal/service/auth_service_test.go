package service_test

import (
	"errors"
	"testing"

	"github.com/fundlens/backoffice/internal/api/request"
	"github.com/fundlens/backoffice/internal/apperrors"
	"github.com/fundlens/backoffice/internal/auth"
	"github.com/fundlens/backoffice/internal/testutil"
)

func TestAuthService_Login(t *testing.T) {
	password := "correct-horse"
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		as := testutil.NewTestAuthService(t, db)

		testutil.NewUser().
			WithEmail("alice@example.com").
			WithPasswordHash(hash).
			Verified().
			Build(t, db)

		result, err := as.Login(request.LoginRequest{
			Email:    "alice@example.com",
			Password: password,
		})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}

		if result.Token == "" {
			t.Error("Expected a signed token")
		}
		if result.User.Email != "alice@example.com" {
			t.Errorf("Expected user email in response, got '%s'", result.User.Email)
		}

		claims, err := testutil.NewTestTokenManager(t).Verify(result.Token)
		if err != nil {
			t.Fatalf("Issued token failed verification: %v", err)
		}
		if claims.Email != "alice@example.com" {
			t.Errorf("Expected email claim 'alice@example.com', got '%s'", claims.Email)
		}
	})

	t.Run("accepts the email case-insensitively", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		as := testutil.NewTestAuthService(t, db)

		testutil.NewUser().
			WithEmail("alice@example.com").
			WithPasswordHash(hash).
			Verified().
			Build(t, db)

		_, err := as.Login(request.LoginRequest{
			Email:    "Alice@Example.COM",
			Password: password,
		})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
	})

	t.Run("rejects an unknown email with invalid credentials", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		as := testutil.NewTestAuthService(t, db)

		_, err := as.Login(request.LoginRequest{
			Email:    "nobody@example.com",
			Password: password,
		})

		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("rejects a wrong password with the same error as an unknown email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		as := testutil.NewTestAuthService(t, db)

		testutil.NewUser().
			WithEmail("alice@example.com").
			WithPasswordHash(hash).
			Verified().
			Build(t, db)

		_, err := as.Login(request.LoginRequest{
			Email:    "alice@example.com",
			Password: "wrong-password",
		})

		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("rejects an unverified account after the password check", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		as := testutil.NewTestAuthService(t, db)

		testutil.NewUser().
			WithEmail("alice@example.com").
			WithPasswordHash(hash).
			Build(t, db)

		_, err := as.Login(request.LoginRequest{
			Email:    "alice@example.com",
			Password: password,
		})

		if !errors.Is(err, apperrors.ErrAccountNotVerified) {
			t.Errorf("Expected ErrAccountNotVerified, got %v", err)
		}
	})

	t.Run("does not reveal verification state for a wrong password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		as := testutil.NewTestAuthService(t, db)

		testutil.NewUser().
			WithEmail("alice@example.com").
			WithPasswordHash(hash).
			Build(t, db)

		_, err := as.Login(request.LoginRequest{
			Email:    "alice@example.com",
			Password: "wrong-password",
		})

		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})
}
