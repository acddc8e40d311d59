package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/fundlens/backoffice/internal/api/response"
	"github.com/fundlens/backoffice/internal/apperrors"
	"github.com/fundlens/backoffice/internal/auth"
)

type contextKey string

// Context keys for the authenticated identity.
const (
	UserIDKey    = contextKey("userID")
	UserEmailKey = contextKey("userEmail")
	UserRoleKey  = contextKey("userRole")
)

// RequireAuth validates the Authorization bearer token and stores the
// authenticated identity in the request context. Missing, malformed, or
// expired tokens fail with 401.
func RequireAuth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				response.RespondError(w, http.StatusUnauthorized, apperrors.ErrInvalidToken.Error(), "missing bearer token")
				return
			}

			tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
			claims, err := tokens.Verify(tokenStr)
			if err != nil {
				response.RespondError(w, http.StatusUnauthorized, apperrors.ErrInvalidToken.Error(), "")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.Subject)
			ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
			ctx = context.WithValue(ctx, UserRoleKey, claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route to the given roles. It must be mounted after
// RequireAuth; a request whose role is not in the set fails with 403.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := r.Context().Value(UserRoleKey).(string)
			if !allowed[role] {
				response.RespondError(w, http.StatusForbidden, apperrors.ErrInsufficientRole.Error(), "")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
