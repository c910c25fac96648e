// file: app/test_app.go

package app

import (
	"database/sql"
	"go-auth-api/config"
	"go-auth-api/handler"
	"go-auth-api/repository"
	"go-auth-api/router"
	"go-auth-api/service"
	"net/http"
	"time"
)

// TestApp wires the full stack over an externally provided database and
// cache, for integration tests.
type TestApp struct {
	DB     *sql.DB
	Router http.Handler
}

func NewTestApp(db *sql.DB, cache service.ICacheClient) *TestApp {
	jwtCfg := config.AppConfig.JWT
	accessTTL := time.Duration(jwtCfg.AccessExpiresMin) * time.Minute
	refreshTTL := time.Duration(jwtCfg.RefreshExpiresDay) * 24 * time.Hour

	hasher := service.NewBcryptHasher()
	codec := service.NewTokenCodec(jwtCfg.SecretKey, jwtCfg.RefreshSecretKey, accessTTL, refreshTTL)

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, hasher, codec)
	authHandler := handler.NewAuthHandler(authService, refreshTTL)

	permissionRepo := repository.NewPermissionRepository(db)
	permissionService := service.NewPermissionService(permissionRepo, cache)
	permissionHandler := handler.NewPermissionHandler(permissionService)

	userHandler := handler.NewUserHandler()

	r := router.NewRouter(
		authHandler,
		permissionHandler,
		userHandler,
		handler.AuthMiddleware(codec),
		handler.RefreshMiddleware(codec),
	)

	return &TestApp{DB: db, Router: r}
}
