package driver

import (
	"context"

	"github.com/piresc/lleva/internal/pkg/models"
)

// VehicleUC onboards the vehicles drivers and delivery people offer services with
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/lleva/services/driver VehicleUC
type VehicleUC interface {
	RegisterVehicle(ctx context.Context, driverID string, req models.VehicleRequest) (*models.Vehicle, error)
	ListVehicles(ctx context.Context, driverID string) ([]models.Vehicle, error)
	ListPendingVehicles(ctx context.Context) ([]models.Vehicle, error)
	UpdateVehicleStatus(ctx context.Context, vehicleID string, status models.VehicleStatus) (*models.Vehicle, error)
}
