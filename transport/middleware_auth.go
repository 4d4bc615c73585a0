package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/kelasfoto/kelasfoto/application/user"
	"github.com/kelasfoto/kelasfoto/constant"
	"github.com/kelasfoto/kelasfoto/utils/errors"
)

// AuthMiddleware returns a middleware that validates JWT sessions using UserApp.
// It allows public endpoints (like /login, /register, /swagger/) without token.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Public paths
			path := r.URL.Path
			if isPublicPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			// Validate token via UserApp
			userID, role, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			// Embed user identity into context
			ctx := context.WithValue(r.Context(), constant.UserIDKey, userID)
			ctx = context.WithValue(ctx, constant.UserRoleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if path == "/login" || path == "/register" || path == "/payment/callback" {
		return true
	}
	if path == "/institutions" || (strings.HasPrefix(path, "/institutions/") && strings.HasSuffix(path, "/academic-years")) {
		return true
	}

	return false
}
