package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/lleva/internal/pkg/models"
	nr "github.com/piresc/lleva/internal/pkg/newrelic"
	"github.com/piresc/lleva/services/driver"
)

const pgUniqueViolation = "23505"

const vehicleColumns = `id, driver_id, type, make, model, year, plate, specific_type, doors, status, created_at, updated_at`

type vehicleRepo struct {
	db *sqlx.DB
}

// NewVehicleRepository creates the Postgres backed vehicle repository
func NewVehicleRepository(db *sqlx.DB) driver.VehicleRepo {
	return &vehicleRepo{db: db}
}

func (r *vehicleRepo) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	return nr.WithDatastoreSegment(ctx, "vehicles", "INSERT", func() error {
		err := r.db.QueryRowxContext(ctx, `
			INSERT INTO vehicles (id, driver_id, type, make, model, year, plate, specific_type, doors, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING created_at, updated_at
		`, vehicle.ID, vehicle.DriverID, vehicle.Type, vehicle.Make, vehicle.Model, vehicle.Year,
			vehicle.Plate, vehicle.SpecificType, vehicle.Doors, vehicle.Status).
			Scan(&vehicle.CreatedAt, &vehicle.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return driver.ErrPlateTaken
			}
			return fmt.Errorf("failed to insert vehicle: %w", err)
		}
		return nil
	})
}

func (r *vehicleRepo) GetVehiclesByDriver(ctx context.Context, driverID string) ([]models.Vehicle, error) {
	vehicles := []models.Vehicle{}
	err := nr.WithDatastoreSegment(ctx, "vehicles", "SELECT", func() error {
		return r.db.SelectContext(ctx, &vehicles, `
			SELECT `+vehicleColumns+`
			FROM vehicles
			WHERE driver_id = $1
			ORDER BY created_at DESC
		`, driverID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list driver vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *vehicleRepo) GetVehiclesByStatus(ctx context.Context, status models.VehicleStatus) ([]models.Vehicle, error) {
	vehicles := []models.Vehicle{}
	err := nr.WithDatastoreSegment(ctx, "vehicles", "SELECT", func() error {
		return r.db.SelectContext(ctx, &vehicles, `
			SELECT `+vehicleColumns+`
			FROM vehicles
			WHERE status = $1
			ORDER BY created_at ASC
		`, status)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles by status: %w", err)
	}
	return vehicles, nil
}

func (r *vehicleRepo) UpdateVehicleStatus(ctx context.Context, vehicleID string, status models.VehicleStatus) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := nr.WithDatastoreSegment(ctx, "vehicles", "UPDATE", func() error {
		return r.db.GetContext(ctx, &vehicle, `
			UPDATE vehicles
			SET status = $2, updated_at = NOW()
			WHERE id = $1
			RETURNING `+vehicleColumns, vehicleID, status)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update vehicle status: %w", err)
	}
	return &vehicle, nil
}
