package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	custommiddleware "github.com/fundlens/backoffice/internal/api/middleware"
	"github.com/fundlens/backoffice/internal/auth"
)

func newTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth(t *testing.T) {
	t.Run("passes a valid bearer token through", func(t *testing.T) {
		tm := newTokenManager()
		token, err := tm.Issue("user-1", "alice@example.com", "USER")
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}

		var gotRole string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotRole, _ = r.Context().Value(custommiddleware.UserRoleKey).(string)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/funds", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		custommiddleware.RequireAuth(tm)(next).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		if gotRole != "USER" {
			t.Errorf("Expected role 'USER' in context, got '%s'", gotRole)
		}
	})

	t.Run("rejects a missing Authorization header", func(t *testing.T) {
		tm := newTokenManager()

		req := httptest.NewRequest(http.MethodGet, "/v1/funds", nil)
		w := httptest.NewRecorder()

		custommiddleware.RequireAuth(tm)(okHandler()).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", w.Code)
		}
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		other := auth.NewTokenManager("other-secret", time.Hour)
		token, err := other.Issue("user-1", "alice@example.com", "USER")
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/funds", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		custommiddleware.RequireAuth(newTokenManager())(okHandler()).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", w.Code)
		}
	})

	t.Run("rejects a non-bearer Authorization header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/funds", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()

		custommiddleware.RequireAuth(newTokenManager())(okHandler()).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", w.Code)
		}
	})
}

func TestRequireRole(t *testing.T) {
	tm := newTokenManager()

	serve := func(t *testing.T, role string, required ...string) *httptest.ResponseRecorder {
		t.Helper()

		token, err := tm.Issue("user-1", "alice@example.com", role)
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}

		req := httptest.NewRequest(http.MethodDelete, "/v1/funds/abc", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		chain := custommiddleware.RequireAuth(tm)(custommiddleware.RequireRole(required...)(okHandler()))
		chain.ServeHTTP(w, req)

		return w
	}

	t.Run("allows a listed role", func(t *testing.T) {
		w := serve(t, "ADMIN", "ADMIN", "SUPERADMIN")
		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
	})

	t.Run("rejects an unlisted role", func(t *testing.T) {
		w := serve(t, "USER", "ADMIN", "SUPERADMIN")
		if w.Code != http.StatusForbidden {
			t.Errorf("Expected status 403, got %d", w.Code)
		}
	})
}
