package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fundlens/backoffice/internal/api/handlers"
	"github.com/fundlens/backoffice/internal/api/request"
	"github.com/fundlens/backoffice/internal/auth"
	"github.com/fundlens/backoffice/internal/model"
	"github.com/fundlens/backoffice/internal/testutil"
)

func TestAuthHandler_Login(t *testing.T) {
	password := "correct-horse"
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	t.Run("returns a token and user details for valid credentials", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAuthHandler(testutil.NewTestAuthService(t, db))

		testutil.NewUser().
			WithEmail("alice@example.com").
			WithPasswordHash(hash).
			Verified().
			Build(t, db)

		body := request.LoginRequest{Email: "alice@example.com", Password: password}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/auth/login", body, nil)
		w := httptest.NewRecorder()

		handler.Login(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.LoginResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if response.Token == "" {
			t.Error("Expected a token in the response")
		}
		if response.User.Email != "alice@example.com" {
			t.Errorf("Expected user email 'alice@example.com', got '%s'", response.User.Email)
		}
	})

	t.Run("returns 401 for a wrong password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAuthHandler(testutil.NewTestAuthService(t, db))

		testutil.NewUser().
			WithEmail("alice@example.com").
			WithPasswordHash(hash).
			Verified().
			Build(t, db)

		body := request.LoginRequest{Email: "alice@example.com", Password: "wrong-password"}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/auth/login", body, nil)
		w := httptest.NewRecorder()

		handler.Login(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", w.Code)
		}
	})

	t.Run("returns 401 for an unknown email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAuthHandler(testutil.NewTestAuthService(t, db))

		body := request.LoginRequest{Email: "nobody@example.com", Password: password}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/auth/login", body, nil)
		w := httptest.NewRecorder()

		handler.Login(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", w.Code)
		}
	})

	t.Run("returns 403 for an unverified account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAuthHandler(testutil.NewTestAuthService(t, db))

		testutil.NewUser().
			WithEmail("alice@example.com").
			WithPasswordHash(hash).
			Build(t, db)

		body := request.LoginRequest{Email: "alice@example.com", Password: password}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/auth/login", body, nil)
		w := httptest.NewRecorder()

		handler.Login(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("Expected status 403, got %d", w.Code)
		}
	})

	t.Run("returns 400 when a field is missing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAuthHandler(testutil.NewTestAuthService(t, db))

		body := request.LoginRequest{Email: "alice@example.com"}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/auth/login", body, nil)
		w := httptest.NewRecorder()

		handler.Login(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}
