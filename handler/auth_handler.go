// file: handler/auth_handler.go

package handler

import (
	"encoding/json"
	"errors"
	"go-auth-api/common"
	"go-auth-api/logger"
	"go-auth-api/model"
	"go-auth-api/service"
	"net/http"
	"time"
)

type AuthHandler struct {
	service    service.IAuthService
	refreshTTL time.Duration
}

func NewAuthHandler(service service.IAuthService, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{service: service, refreshTTL: refreshTTL}
}

// newRefreshCookie builds the HTTP-only cookie carrying the refresh token.
func newRefreshCookie(token string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     RefreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a user and logs it in; the refresh token is set as an HTTP-only cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      model.RegisterRequest  true  "Credentials"
// @Success      200      {object}  service.TokenPair
// @Failure      400      {object}  common.AppError
// @Failure      409      {object}  common.AppError
// @Router       /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	log := logger.Log.WithField("email", req.Email)
	log.Info("Register request received")

	if _, err := h.service.Register(req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrWeakPassword), errors.Is(err, service.ErrInvalidEmail):
			return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, service.ErrDuplicateEmail):
			return common.NewAppError(http.StatusConflict, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not register user", err)
		}
	}

	// Log the new user in right away so the response already carries tokens.
	tokens, _, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not log in after registration", err)
	}

	http.SetCookie(w, newRefreshCookie(tokens.RefreshToken, h.refreshTTL))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"accessToken": tokens.AccessToken})

	return nil
}

// Login godoc
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      model.LoginRequest  true  "Credentials"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  common.AppError
// @Failure      401      {object}  common.AppError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	log := logger.Log.WithField("email", req.Email)
	log.Info("Login request received")

	tokens, user, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return common.NewAppError(http.StatusUnauthorized, "Invalid email or password", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not process login", err)
	}

	http.SetCookie(w, newRefreshCookie(tokens.RefreshToken, h.refreshTTL))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"accessToken": tokens.AccessToken,
		"user":        user,
	})

	return nil
}

// Refresh godoc
// @Summary      Exchange a refresh token for a new access token
// @Description  Requires the refreshToken cookie; the refresh token itself is not rotated.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  service.TokenPair
// @Failure      401  {object}  common.AppError
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}
	refreshToken, ok := r.Context().Value(RefreshTokenKey).(string)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Refresh token missing from request", nil)
	}

	accessToken, err := h.service.Refresh(userID, refreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefreshToken) {
			return common.NewAppError(http.StatusUnauthorized, "Invalid refresh token", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not renew access token", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"accessToken": accessToken})

	return nil
}
