package middlewareinternal

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/mkuznetsov/car-auction/internal/core"
	"github.com/mkuznetsov/car-auction/internal/types"
)

// JWTAuthMiddleware rejects requests without a valid session token.
func JWTAuthMiddleware(authService core.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := extractToken(r)
			if err != nil {
				zap.L().Debug("Failed to extract token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				writeUnauthorized(w, r)
				return
			}

			userID, err := authService.ValidateToken(tokenString)
			if err != nil {
				zap.L().Warn("Invalid token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				writeUnauthorized(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), types.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalJWTAuth injects the user id when a valid session token is
// present and lets the request through anonymously otherwise.
func OptionalJWTAuth(authService core.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := extractToken(r)
			if err == nil {
				if userID, err := authService.ValidateToken(tokenString); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), types.UserIDKey, userID))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, map[string]interface{}{
		"success": false,
		"message": "Not logged in",
	})
}

func extractToken(r *http.Request) (string, error) {
	cookie, err := r.Cookie("jwt")
	if err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", http.ErrNoCookie
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", http.ErrNoCookie
	}

	return parts[1], nil
}

func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(types.UserIDKey).(int64)
	return userID, ok
}
