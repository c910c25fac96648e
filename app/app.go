// File: app/app.go
package app

import (
	"context"
	"go-auth-api/config"
	"go-auth-api/db"
	"go-auth-api/handler"
	"go-auth-api/logger"
	"go-auth-api/repository"
	"go-auth-api/router"
	"go-auth-api/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations("file://db/migrations"); err != nil {
		logger.Log.Fatalf("Error running migrations: %v", err)
	}

	// The permission cache is optional: without Redis every lookup simply
	// goes to the database.
	var cacheClient service.ICacheClient
	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.WithError(err).Warn("Redis unavailable, permission cache disabled")
	} else {
		defer redisClient.Close()
		cacheClient = redisClient
	}

	// --- Wiring All Layers Together ---
	// Repositories, services and handlers are constructed here and handed
	// their collaborators explicitly.

	jwtCfg := config.AppConfig.JWT
	accessTTL := time.Duration(jwtCfg.AccessExpiresMin) * time.Minute
	refreshTTL := time.Duration(jwtCfg.RefreshExpiresDay) * 24 * time.Hour

	hasher := service.NewBcryptHasher()
	codec := service.NewTokenCodec(jwtCfg.SecretKey, jwtCfg.RefreshSecretKey, accessTTL, refreshTTL)

	userRepo := repository.NewUserRepository(database)
	authService := service.NewAuthService(userRepo, hasher, codec)
	authHandler := handler.NewAuthHandler(authService, refreshTTL)

	permissionRepo := repository.NewPermissionRepository(database)
	permissionService := service.NewPermissionService(permissionRepo, cacheClient)
	permissionHandler := handler.NewPermissionHandler(permissionService)

	userHandler := handler.NewUserHandler()

	authGuard := handler.AuthMiddleware(codec)
	refreshGuard := handler.RefreshMiddleware(codec)

	r := router.NewRouter(authHandler, permissionHandler, userHandler, authGuard, refreshGuard)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
