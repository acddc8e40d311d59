package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fundlens/backoffice/internal/api/request"
	"github.com/fundlens/backoffice/internal/apperrors"
	"github.com/fundlens/backoffice/internal/model"
	"github.com/fundlens/backoffice/internal/testutil"
)

func TestUserService_CreateUser(t *testing.T) {
	t.Run("normalizes email and defaults role to USER", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		us := testutil.NewTestUserService(t, db)

		user, err := us.CreateUser(context.Background(), request.CreateUserRequest{
			Email:    "  Alice@Example.COM ",
			Password: "correct-horse",
		})
		if err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		if user.Email != "alice@example.com" {
			t.Errorf("Expected lowercased email, got '%s'", user.Email)
		}
		if user.Role != model.RoleUser {
			t.Errorf("Expected default role USER, got '%s'", user.Role)
		}
		if user.IsVerified {
			t.Error("New accounts should start unverified")
		}
	})

	t.Run("rejects a duplicate email regardless of case", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		us := testutil.NewTestUserService(t, db)

		testutil.NewUser().WithEmail("alice@example.com").Build(t, db)

		_, err := us.CreateUser(context.Background(), request.CreateUserRequest{
			Email:    "ALICE@example.com",
			Password: "correct-horse",
		})

		if !errors.Is(err, apperrors.ErrEmailTaken) {
			t.Errorf("Expected ErrEmailTaken, got %v", err)
		}

		testutil.AssertRowCount(t, db, "user", 1)
	})

	t.Run("never stores the plaintext password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		us := testutil.NewTestUserService(t, db)

		_, err := us.CreateUser(context.Background(), request.CreateUserRequest{
			Email:    "alice@example.com",
			Password: "correct-horse",
		})
		if err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		var hash string
		if err := db.QueryRow("SELECT password_hash FROM user").Scan(&hash); err != nil {
			t.Fatalf("Failed to read password hash: %v", err)
		}
		if hash == "correct-horse" {
			t.Error("Password stored in plaintext")
		}
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Run("merges only the supplied fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		us := testutil.NewTestUserService(t, db)

		created := testutil.NewUser().WithEmail("alice@example.com").Build(t, db)

		verified := true
		updated, err := us.UpdateUser(context.Background(), created.ID, request.UpdateUserRequest{
			IsVerified: &verified,
		})
		if err != nil {
			t.Fatalf("UpdateUser failed: %v", err)
		}

		if !updated.IsVerified {
			t.Error("Expected user to be verified after update")
		}
		if updated.Email != "alice@example.com" {
			t.Errorf("Email should be unchanged, got '%s'", updated.Email)
		}
	})

	t.Run("rejects changing to an email held by another user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		us := testutil.NewTestUserService(t, db)

		testutil.NewUser().WithEmail("alice@example.com").Build(t, db)
		other := testutil.NewUser().WithEmail("bob@example.com").Build(t, db)

		email := "alice@example.com"
		_, err := us.UpdateUser(context.Background(), other.ID, request.UpdateUserRequest{
			Email: &email,
		})

		if !errors.Is(err, apperrors.ErrEmailTaken) {
			t.Errorf("Expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("returns not found for unknown user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		us := testutil.NewTestUserService(t, db)

		role := model.RoleAdmin
		_, err := us.UpdateUser(context.Background(), testutil.MakeID(), request.UpdateUserRequest{
			Role: &role,
		})

		if !errors.Is(err, apperrors.ErrUserNotFound) {
			t.Errorf("Expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("deletes an existing user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		us := testutil.NewTestUserService(t, db)

		created := testutil.NewUser().Build(t, db)

		if err := us.DeleteUser(context.Background(), created.ID); err != nil {
			t.Fatalf("DeleteUser failed: %v", err)
		}

		testutil.AssertRowCount(t, db, "user", 0)
	})

	t.Run("returns not found for unknown user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		us := testutil.NewTestUserService(t, db)

		err := us.DeleteUser(context.Background(), testutil.MakeID())

		if !errors.Is(err, apperrors.ErrUserNotFound) {
			t.Errorf("Expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserService_GetUsers(t *testing.T) {
	t.Run("returns public projections without password hashes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		us := testutil.NewTestUserService(t, db)

		testutil.NewUser().WithEmail("alice@example.com").Build(t, db)
		testutil.NewUser().WithEmail("bob@example.com").Build(t, db)

		users, err := us.GetUsers()
		if err != nil {
			t.Fatalf("GetUsers failed: %v", err)
		}

		if len(users) != 2 {
			t.Errorf("Expected 2 users, got %d", len(users))
		}
	})
}
