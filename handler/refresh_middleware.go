// file: handler/refresh_middleware.go

package handler

import (
	"context"
	"go-auth-api/common"
	"go-auth-api/service"
	"net/http"
)

// RefreshCookieName is the fixed name of the refresh token cookie.
const RefreshCookieName = "refreshToken"

// RefreshMiddleware guards the refresh route: it reads the refresh token
// from the HTTP-only cookie, verifies it against the refresh secret and
// injects the decoded subject plus the raw token for the refresh handler.
// The stored-hash check happens later in the auth service.
func RefreshMiddleware(codec service.ITokenCodec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(RefreshCookieName)
			if err != nil || cookie.Value == "" {
				appErr := common.NewAppError(http.StatusUnauthorized, "Refresh token cookie is required", err)
				appErr.Send(w)
				return
			}

			claims, err := codec.VerifyRefresh(cookie.Value)
			if err != nil {
				appErr := common.NewAppError(http.StatusUnauthorized, "Invalid or expired refresh token", err)
				appErr.Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, RefreshTokenKey, cookie.Value)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
