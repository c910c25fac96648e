package router

import (
	"go-auth-api/handler"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(
	authHandler *handler.AuthHandler,
	permissionHandler *handler.PermissionHandler,
	userHandler *handler.UserHandler,
	authGuard func(http.Handler) http.Handler,
	refreshGuard func(http.Handler) http.Handler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", handler.HealthCheck)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	mux.Handle("/auth/register", handler.ErrorHandlingMiddleware(authHandler.Register))
	mux.Handle("/auth/login", handler.ErrorHandlingMiddleware(authHandler.Login))
	mux.Handle("/auth/refresh", refreshGuard(handler.ErrorHandlingMiddleware(authHandler.Refresh)))

	mux.Handle("/permission/group", authGuard(handler.ErrorHandlingMiddleware(permissionHandler.PermissionsByGroup)))
	mux.Handle("/user/test", authGuard(handler.ErrorHandlingMiddleware(userHandler.TestAuth)))

	return mux
}
