package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/lleva/internal/pkg/logger"
	"github.com/piresc/lleva/internal/pkg/middleware"
	"github.com/piresc/lleva/internal/pkg/models"
	nrpkg "github.com/piresc/lleva/internal/pkg/newrelic"
	"github.com/piresc/lleva/internal/utils"
	"github.com/piresc/lleva/services/driver"
)

// VehicleHandler handles driver vehicle onboarding and review
type VehicleHandler struct {
	vehicleUC driver.VehicleUC
}

// NewVehicleHandler creates a new vehicle HTTP handler
func NewVehicleHandler(vehicleUC driver.VehicleUC) *VehicleHandler {
	return &VehicleHandler{
		vehicleUC: vehicleUC,
	}
}

// RegisterVehicle adds a vehicle to the authenticated driver's account
func (h *VehicleHandler) RegisterVehicle(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Driver.RegisterVehicle")

	driverID, ok := c.Get("user_id").(string)
	if !ok || driverID == "" {
		return utils.UnauthorizedResponse(c, "Unauthorized")
	}

	var req models.VehicleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	vehicle, err := h.vehicleUC.RegisterVehicle(c.Request().Context(), driverID, req)
	if err != nil {
		return h.writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Vehicle registered", vehicle)
}

// ListVehicles returns the authenticated driver's vehicles
func (h *VehicleHandler) ListVehicles(c echo.Context) error {
	driverID, ok := c.Get("user_id").(string)
	if !ok || driverID == "" {
		return utils.UnauthorizedResponse(c, "Unauthorized")
	}

	vehicles, err := h.vehicleUC.ListVehicles(c.Request().Context(), driverID)
	if err != nil {
		return h.writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", vehicles)
}

// VehicleTypes lists the vehicle types that can be registered
func (h *VehicleHandler) VehicleTypes(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", models.VehicleTypes)
}

// ListPendingVehicles returns the vehicles awaiting review
func (h *VehicleHandler) ListPendingVehicles(c echo.Context) error {
	vehicles, err := h.vehicleUC.ListPendingVehicles(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", vehicles)
}

// UpdateVehicleStatus verifies or rejects a vehicle
func (h *VehicleHandler) UpdateVehicleStatus(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Driver.UpdateVehicleStatus")

	vehicleID := c.Param("id")
	if vehicleID == "" {
		return utils.BadRequestResponse(c, "Vehicle ID is required")
	}

	var req models.VehicleStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	vehicle, err := h.vehicleUC.UpdateVehicleStatus(c.Request().Context(), vehicleID, req.Status)
	if err != nil {
		return h.writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle status updated", vehicle)
}

func (h *VehicleHandler) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, driver.ErrInvalidVehicle), errors.Is(err, driver.ErrInvalidStatus):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, driver.ErrVehicleNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, driver.ErrPlateTaken):
		return utils.ConflictResponse(c, err.Error())
	}

	middleware.NoticeError(c, err)
	logger.ErrorCtx(c.Request().Context(), "Vehicle request failed",
		logger.String("path", c.Path()),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, "Internal server error")
}
