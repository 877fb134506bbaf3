package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/lleva/internal/pkg/middleware"
	"github.com/piresc/lleva/internal/pkg/models"
	"github.com/piresc/lleva/services/driver/handler/http"
)

// Handler coordinates all protocol handlers for the driver service
type Handler struct {
	vehicleHandler *http.VehicleHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(vehicleHandler *http.VehicleHandler) *Handler {
	return &Handler{
		vehicleHandler: vehicleHandler,
	}
}

// RegisterRoutes registers the vehicle routes. Drivers and delivery people
// manage their own vehicles; reviews go through the admin group.
func (h *Handler) RegisterRoutes(e *echo.Echo, auth, limiter, admin echo.MiddlewareFunc) {
	e.GET("/vehicles/types", h.vehicleHandler.VehicleTypes)

	providers := middleware.RequireRole(string(models.UserTypeDriver), string(models.UserTypeDeliveryPerson))
	vehicles := e.Group("/vehicles", auth, providers)
	vehicles.GET("", h.vehicleHandler.ListVehicles)
	vehicles.POST("", h.vehicleHandler.RegisterVehicle, limiter)

	adminGroup := e.Group("/admin/vehicles", admin)
	adminGroup.GET("/pending", h.vehicleHandler.ListPendingVehicles)
	adminGroup.PATCH("/:id/status", h.vehicleHandler.UpdateVehicleStatus)
}
