package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/piresc/lleva/internal/pkg/logger"
	"github.com/piresc/lleva/internal/pkg/models"
	"github.com/piresc/lleva/services/driver"
)

const (
	minVehicleYear = 1990
	minDoors       = 2
	maxDoors       = 5
)

var plateRegex = regexp.MustCompile(`^[A-Z]{3}-\d{3}$`)

// VehicleUC implements the driver.VehicleUC interface
type VehicleUC struct {
	vehicles driver.VehicleRepo
	now      func() time.Time
}

// NewVehicleUC creates the vehicle onboarding use case
func NewVehicleUC(vehicles driver.VehicleRepo) *VehicleUC {
	return &VehicleUC{
		vehicles: vehicles,
		now:      time.Now,
	}
}

// RegisterVehicle validates the vehicle and stores it pending review
func (uc *VehicleUC) RegisterVehicle(ctx context.Context, driverID string, req models.VehicleRequest) (*models.Vehicle, error) {
	vehicle, err := uc.buildVehicle(driverID, req)
	if err != nil {
		return nil, err
	}

	if err := uc.vehicles.CreateVehicle(ctx, vehicle); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Vehicle registered",
		logger.String("driver_id", driverID),
		logger.String("vehicle_id", vehicle.ID),
		logger.String("type", string(vehicle.Type)))
	return vehicle, nil
}

func (uc *VehicleUC) buildVehicle(driverID string, req models.VehicleRequest) (*models.Vehicle, error) {
	typeConfig, ok := models.VehicleTypes[req.Type]
	if !ok {
		return nil, fmt.Errorf("%w: unknown vehicle type %q", driver.ErrInvalidVehicle, req.Type)
	}

	vehicleMake := strings.TrimSpace(req.Make)
	if utf8.RuneCountInString(vehicleMake) < 2 {
		return nil, fmt.Errorf("%w: make is required", driver.ErrInvalidVehicle)
	}
	model := strings.TrimSpace(req.Model)
	if model == "" {
		return nil, fmt.Errorf("%w: model is required", driver.ErrInvalidVehicle)
	}
	if !ValidateVehicleYear(req.Year, uc.now()) {
		return nil, fmt.Errorf("%w: year must be between %d and %d", driver.ErrInvalidVehicle, minVehicleYear, uc.now().Year()+1)
	}
	plate := strings.ToUpper(strings.TrimSpace(req.Plate))
	if !ValidatePlateNumber(plate) {
		return nil, fmt.Errorf("%w: plate must look like ABC-123", driver.ErrInvalidVehicle)
	}

	specificType := strings.ToLower(strings.TrimSpace(req.SpecificType))
	if specificType == "" && len(typeConfig.SpecificTypes) == 1 {
		specificType = typeConfig.SpecificTypes[0]
	}
	if !contains(typeConfig.SpecificTypes, specificType) {
		return nil, fmt.Errorf("%w: specific type must be one of %s", driver.ErrInvalidVehicle,
			strings.Join(typeConfig.SpecificTypes, ", "))
	}

	var doors *int
	if typeConfig.DoorsRequired {
		if req.Doors == nil || *req.Doors < minDoors || *req.Doors > maxDoors {
			return nil, fmt.Errorf("%w: doors must be between %d and %d", driver.ErrInvalidVehicle, minDoors, maxDoors)
		}
		d := *req.Doors
		doors = &d
	}

	return &models.Vehicle{
		ID:           uuid.NewString(),
		DriverID:     driverID,
		Type:         req.Type,
		Make:         vehicleMake,
		Model:        model,
		Year:         req.Year,
		Plate:        plate,
		SpecificType: &specificType,
		Doors:        doors,
		Status:       models.VehicleStatusPending,
	}, nil
}

// ListVehicles returns the driver's vehicles, newest first
func (uc *VehicleUC) ListVehicles(ctx context.Context, driverID string) ([]models.Vehicle, error) {
	return uc.vehicles.GetVehiclesByDriver(ctx, driverID)
}

// ListPendingVehicles returns the vehicles awaiting review, oldest first
func (uc *VehicleUC) ListPendingVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return uc.vehicles.GetVehiclesByStatus(ctx, models.VehicleStatusPending)
}

// UpdateVehicleStatus records the outcome of a vehicle review
func (uc *VehicleUC) UpdateVehicleStatus(ctx context.Context, vehicleID string, status models.VehicleStatus) (*models.Vehicle, error) {
	switch status {
	case models.VehicleStatusVerified, models.VehicleStatusRejected, models.VehicleStatusPending:
	default:
		return nil, fmt.Errorf("%w: %q", driver.ErrInvalidStatus, status)
	}

	vehicle, err := uc.vehicles.UpdateVehicleStatus(ctx, vehicleID, status)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, driver.ErrVehicleNotFound
	}

	logger.InfoCtx(ctx, "Vehicle reviewed",
		logger.String("vehicle_id", vehicleID),
		logger.String("status", string(status)))
	return vehicle, nil
}

// ValidatePlateNumber checks the ABC-123 plate format
func ValidatePlateNumber(plate string) bool {
	return plateRegex.MatchString(strings.ToUpper(plate))
}

// ValidateVehicleYear accepts years from 1990 up to next year
func ValidateVehicleYear(year int, now time.Time) bool {
	return year >= minVehicleYear && year <= now.Year()+1
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
