package driver

import (
	"context"

	"github.com/piresc/lleva/internal/pkg/models"
)

// VehicleRepo stores registered vehicles
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/lleva/services/driver VehicleRepo
type VehicleRepo interface {
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	GetVehiclesByDriver(ctx context.Context, driverID string) ([]models.Vehicle, error)
	GetVehiclesByStatus(ctx context.Context, status models.VehicleStatus) ([]models.Vehicle, error)
	// UpdateVehicleStatus returns nil without error when vehicleID does not exist
	UpdateVehicleStatus(ctx context.Context, vehicleID string, status models.VehicleStatus) (*models.Vehicle, error)
}
