package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/lleva/internal/pkg/models"
	nr "github.com/piresc/lleva/internal/pkg/newrelic"
	"github.com/piresc/lleva/services/session"
)

const (
	msgMerchantUnavailable = "El comercio seleccionado no está disponible."
	msgCustomerUnknown     = "Tu cuenta no está habilitada para solicitar servicios."
	msgInvalidBooking      = "Los datos de la solicitud no son válidos."
)

type bookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates the Postgres backed booking backend
func NewBookingRepository(cfg *models.Config, db *sqlx.DB) session.BookingBackend {
	return &bookingRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateTrip inserts a pending trip for customerID
func (r *bookingRepo) CreateTrip(ctx context.Context, customerID string, req models.BookingRequest) (*models.Trip, error) {
	trip := &models.Trip{
		ID:             uuid.NewString(),
		CustomerID:     customerID,
		PickupLocation: req.PickupLocation,
		Destination:    req.Destination,
		Status:         models.TripStatusPending,
		VehicleType:    req.VehicleType,
		ScheduledTime:  req.ScheduledAt,
	}
	if req.TaxiTier != "" {
		tier := req.TaxiTier
		trip.TaxiType = &tier
	}

	query := `
		INSERT INTO trips (
			id, customer_id, pickup_location, destination,
			vehicle_type, taxi_type, scheduled_time, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := nr.WithDatastoreSegment(ctx, "trips", "INSERT", func() error {
		return r.db.QueryRowxContext(ctx, query,
			trip.ID,
			trip.CustomerID,
			trip.PickupLocation,
			trip.Destination,
			trip.VehicleType,
			trip.TaxiType,
			trip.ScheduledTime,
			trip.Status,
		).Scan(&trip.CreatedAt)
	})
	if err != nil {
		return nil, bookingError("trip", err)
	}

	return trip, nil
}

// CreateDeliveryOrder inserts a pending delivery order for customerID
func (r *bookingRepo) CreateDeliveryOrder(ctx context.Context, customerID string, req models.BookingRequest) (*models.DeliveryOrder, error) {
	order := &models.DeliveryOrder{
		ID:               uuid.NewString(),
		CustomerID:       customerID,
		MerchantID:       req.MerchantID,
		PickupLocation:   req.PickupLocation,
		DeliveryLocation: req.Destination,
		OrderDetails:     req.OrderDetails,
		Status:           models.DeliveryStatusPending,
		ScheduledTime:    req.ScheduledAt,
	}

	query := `
		INSERT INTO delivery_orders (
			id, customer_id, merchant_id, pickup_location,
			delivery_location, order_details, scheduled_time, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := nr.WithDatastoreSegment(ctx, "delivery_orders", "INSERT", func() error {
		return r.db.QueryRowxContext(ctx, query,
			order.ID,
			order.CustomerID,
			order.MerchantID,
			order.PickupLocation,
			order.DeliveryLocation,
			order.OrderDetails,
			order.ScheduledTime,
			order.Status,
		).Scan(&order.CreatedAt)
	})
	if err != nil {
		return nil, bookingError("delivery order", err)
	}

	return order, nil
}

// GetHistory lists the customer's trips and delivery orders, newest first
func (r *bookingRepo) GetHistory(ctx context.Context, customerID string) (*models.ServiceHistory, error) {
	history := &models.ServiceHistory{
		Trips:          []models.Trip{},
		DeliveryOrders: []models.DeliveryOrder{},
	}

	tripsQuery := `
		SELECT id, customer_id, driver_id, vehicle_id, pickup_location, destination,
			status, vehicle_type, taxi_type, scheduled_time, started_at, completed_at,
			cancelled_at, cancellation_reason, amount, created_at
		FROM trips
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`
	err := nr.WithDatastoreSegment(ctx, "trips", "SELECT", func() error {
		return r.db.SelectContext(ctx, &history.Trips, tripsQuery, customerID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	ordersQuery := `
		SELECT id, customer_id, delivery_person_id, merchant_id, pickup_location,
			delivery_location, order_details, status, scheduled_time, picked_up_at,
			delivered_at, cancelled_at, cancellation_reason, amount, created_at
		FROM delivery_orders
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`
	err = nr.WithDatastoreSegment(ctx, "delivery_orders", "SELECT", func() error {
		return r.db.SelectContext(ctx, &history.DeliveryOrders, ordersQuery, customerID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list delivery orders: %w", err)
	}

	return history, nil
}

// bookingError turns constraint violations into messages the customer can
// act on and wraps everything else
func bookingError(entity string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			if strings.Contains(pgErr.ConstraintName, "merchant") {
				return &session.BackendError{Message: msgMerchantUnavailable, Err: err}
			}
			return &session.BackendError{Message: msgCustomerUnknown, Err: err}
		case pgCheckViolation:
			return &session.BackendError{Message: msgInvalidBooking, Err: err}
		}
	}
	return fmt.Errorf("failed to create %s: %w", entity, err)
}
