package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/lleva/services/auth/handler/http"
)

// Handler coordinates all protocol handlers for the auth service
type Handler struct {
	authHandler *http.AuthHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(authHandler *http.AuthHandler) *Handler {
	return &Handler{
		authHandler: authHandler,
	}
}

// RegisterRoutes registers the auth and profile routes. Registration and
// login are public and throttled by limiter.
func (h *Handler) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc, limiter echo.MiddlewareFunc) {
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.authHandler.Register, limiter)
	authGroup.POST("/login", h.authHandler.Login, limiter)
	authGroup.POST("/logout", h.authHandler.Logout, authMiddleware)

	profileGroup := e.Group("/profile", authMiddleware)
	profileGroup.GET("", h.authHandler.GetProfile)
	profileGroup.PATCH("", h.authHandler.UpdateProfile, limiter)
}
