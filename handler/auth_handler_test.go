// file: handler/auth_handler_test.go

package handler

import (
	"context"
	"encoding/json"
	"go-auth-api/model"
	"go-auth-api/service"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(email, password string) (*model.User, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockAuthService) Login(email, password string) (*service.TokenPair, *model.User, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*service.TokenPair), args.Get(1).(*model.User), args.Error(2)
}

func (m *mockAuthService) Refresh(userID int, refreshToken string) (string, error) {
	args := m.Called(userID, refreshToken)
	return args.String(0), args.Error(1)
}

func refreshCookieFrom(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == RefreshCookieName {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Register(t *testing.T) {
	refreshTTL := 7 * 24 * time.Hour

	t.Run("success returns access token and sets cookie", func(t *testing.T) {
		mockService := new(mockAuthService)
		h := NewAuthHandler(mockService, refreshTTL)

		user := &model.User{ID: 1, Email: "a@b.com", Group: "USER"}
		tokens := &service.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}
		mockService.On("Register", "a@b.com", "secret1").Return(user, nil).Once()
		mockService.On("Login", "a@b.com", "secret1").Return(tokens, user, nil).Once()

		req := httptest.NewRequest("POST", "/auth/register", strings.NewReader(`{"email":"a@b.com","password":"secret1"}`))
		rr := httptest.NewRecorder()

		appErr := h.Register(rr, req)

		assert.Nil(t, appErr)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"accessToken":"access-token"}`, rr.Body.String())

		cookie := refreshCookieFrom(t, rr)
		assert.NotNil(t, cookie)
		assert.Equal(t, "refresh-token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
		assert.Equal(t, int(refreshTTL.Seconds()), cookie.MaxAge)
		mockService.AssertExpectations(t)
	})

	t.Run("missing fields", func(t *testing.T) {
		mockService := new(mockAuthService)
		h := NewAuthHandler(mockService, refreshTTL)

		req := httptest.NewRequest("POST", "/auth/register", strings.NewReader(`{"email":"a@b.com"}`))
		rr := httptest.NewRecorder()

		appErr := h.Register(rr, req)

		assert.Nil(t, appErr)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "Register")
	})

	t.Run("weak password", func(t *testing.T) {
		mockService := new(mockAuthService)
		h := NewAuthHandler(mockService, refreshTTL)

		mockService.On("Register", "a@b.com", "short").Return(nil, service.ErrWeakPassword).Once()

		req := httptest.NewRequest("POST", "/auth/register", strings.NewReader(`{"email":"a@b.com","password":"short"}`))
		rr := httptest.NewRecorder()

		appErr := h.Register(rr, req)

		assert.NotNil(t, appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		mockService.AssertNotCalled(t, "Login")
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockService := new(mockAuthService)
		h := NewAuthHandler(mockService, refreshTTL)

		mockService.On("Register", "a@b.com", "secret1").Return(nil, service.ErrDuplicateEmail).Once()

		req := httptest.NewRequest("POST", "/auth/register", strings.NewReader(`{"email":"a@b.com","password":"secret1"}`))
		rr := httptest.NewRecorder()

		appErr := h.Register(rr, req)

		assert.NotNil(t, appErr)
		assert.Equal(t, http.StatusConflict, appErr.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	refreshTTL := 7 * 24 * time.Hour

	t.Run("success returns token and public user", func(t *testing.T) {
		mockService := new(mockAuthService)
		h := NewAuthHandler(mockService, refreshTTL)

		user := &model.User{ID: 1, Email: "a@b.com", Group: "USER", Password: "hash", RefreshTokenHash: "rhash"}
		tokens := &service.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}
		mockService.On("Login", "a@b.com", "secret1").Return(tokens, user, nil).Once()

		req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"email":"a@b.com","password":"secret1"}`))
		rr := httptest.NewRecorder()

		appErr := h.Login(rr, req)

		assert.Nil(t, appErr)
		assert.Equal(t, http.StatusOK, rr.Code)

		var body map[string]json.RawMessage
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.JSONEq(t, `"access-token"`, string(body["accessToken"]))

		// Hashes must never leak into the response body.
		assert.NotContains(t, rr.Body.String(), "hash")
		assert.NotNil(t, refreshCookieFrom(t, rr))
		mockService.AssertExpectations(t)
	})

	t.Run("bad credentials map to a generic 401", func(t *testing.T) {
		mockService := new(mockAuthService)
		h := NewAuthHandler(mockService, refreshTTL)

		mockService.On("Login", "a@b.com", "wrong").Return(nil, nil, service.ErrInvalidCredentials).Once()

		req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"email":"a@b.com","password":"wrong"}`))
		rr := httptest.NewRecorder()

		appErr := h.Login(rr, req)

		assert.NotNil(t, appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
		assert.Equal(t, "Invalid email or password", appErr.Message)
	})

	t.Run("missing body", func(t *testing.T) {
		mockService := new(mockAuthService)
		h := NewAuthHandler(mockService, refreshTTL)

		req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{}`))
		rr := httptest.NewRecorder()

		appErr := h.Login(rr, req)

		assert.Nil(t, appErr)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "Login")
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	refreshTTL := 7 * 24 * time.Hour

	t.Run("success", func(t *testing.T) {
		mockService := new(mockAuthService)
		h := NewAuthHandler(mockService, refreshTTL)

		mockService.On("Refresh", 1, "refresh-token").Return("new-access-token", nil).Once()

		req := httptest.NewRequest("POST", "/auth/refresh", nil)
		ctx := context.WithValue(req.Context(), UserIDKey, 1)
		ctx = context.WithValue(ctx, RefreshTokenKey, "refresh-token")
		rr := httptest.NewRecorder()

		appErr := h.Refresh(rr, req.WithContext(ctx))

		assert.Nil(t, appErr)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"accessToken":"new-access-token"}`, rr.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		mockService := new(mockAuthService)
		h := NewAuthHandler(mockService, refreshTTL)

		mockService.On("Refresh", 1, "stale-token").Return("", service.ErrInvalidRefreshToken).Once()

		req := httptest.NewRequest("POST", "/auth/refresh", nil)
		ctx := context.WithValue(req.Context(), UserIDKey, 1)
		ctx = context.WithValue(ctx, RefreshTokenKey, "stale-token")
		rr := httptest.NewRecorder()

		appErr := h.Refresh(rr, req.WithContext(ctx))

		assert.NotNil(t, appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	})

	t.Run("missing context identity", func(t *testing.T) {
		mockService := new(mockAuthService)
		h := NewAuthHandler(mockService, refreshTTL)

		req := httptest.NewRequest("POST", "/auth/refresh", nil)
		rr := httptest.NewRecorder()

		appErr := h.Refresh(rr, req)

		assert.NotNil(t, appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
		mockService.AssertNotCalled(t, "Refresh")
	})
}
