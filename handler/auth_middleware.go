package handler

import (
	"context"
	"go-auth-api/common"
	"go-auth-api/service"
	"net/http"
	"strings"
)

type contextKey string

const (
	UserIDKey       contextKey = "userID"
	UserGroupKey    contextKey = "userGroup"
	RefreshTokenKey contextKey = "refreshToken"
)

// AuthMiddleware guards routes with the access token: it extracts the bearer
// token from the Authorization header, verifies it against the access secret
// and injects the authenticated identity into the request context. Failures
// short-circuit the request before any handler logic runs.
func AuthMiddleware(codec service.ITokenCodec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				err := common.NewAppError(http.StatusUnauthorized, "Authorization header is required", nil)
				err.Send(w)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				err := common.NewAppError(http.StatusUnauthorized, "Invalid authorization header format", nil)
				err.Send(w)
				return
			}

			claims, err := codec.VerifyAccess(headerParts[1])
			if err != nil {
				appErr := common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", err)
				appErr.Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, UserGroupKey, claims.Group)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
