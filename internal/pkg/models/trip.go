package models

import (
	"time"
)

// TripStatus represents the current status of a trip
type TripStatus string

const (
	TripStatusPending    TripStatus = "pending"
	TripStatusAccepted   TripStatus = "accepted"
	TripStatusInProgress TripStatus = "in_progress"
	TripStatusCompleted  TripStatus = "completed"
	TripStatusCancelled  TripStatus = "cancelled"
)

// Trip represents a trip record in the booking backend
type Trip struct {
	ID                 string      `json:"id" db:"id"`
	CustomerID         string      `json:"customer_id" db:"customer_id"`
	DriverID           *string     `json:"driver_id,omitempty" db:"driver_id"`
	VehicleID          *string     `json:"vehicle_id,omitempty" db:"vehicle_id"`
	PickupLocation     string      `json:"pickup_location" db:"pickup_location"`
	Destination        string      `json:"destination" db:"destination"`
	Status             TripStatus  `json:"status" db:"status"`
	VehicleType        VehicleType `json:"vehicle_type" db:"vehicle_type"`
	TaxiType           *TaxiTier   `json:"taxi_type,omitempty" db:"taxi_type"`
	ScheduledTime      *time.Time  `json:"scheduled_time,omitempty" db:"scheduled_time"`
	StartedAt          *time.Time  `json:"started_at,omitempty" db:"started_at"`
	CompletedAt        *time.Time  `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt        *time.Time  `json:"cancelled_at,omitempty" db:"cancelled_at"`
	CancellationReason *string     `json:"cancellation_reason,omitempty" db:"cancellation_reason"`
	Amount             *float64    `json:"amount,omitempty" db:"amount"`
	CreatedAt          time.Time   `json:"created_at" db:"created_at"`
}

// DeliveryStatus represents the current status of a delivery order
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusAccepted  DeliveryStatus = "accepted"
	DeliveryStatusPickedUp  DeliveryStatus = "picked_up"
	DeliveryStatusInTransit DeliveryStatus = "in_transit"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusCancelled DeliveryStatus = "cancelled"
)

// DeliveryOrder represents a delivery order record in the booking backend
type DeliveryOrder struct {
	ID                 string         `json:"id" db:"id"`
	CustomerID         string         `json:"customer_id" db:"customer_id"`
	DeliveryPersonID   *string        `json:"delivery_person_id,omitempty" db:"delivery_person_id"`
	MerchantID         string         `json:"merchant_id" db:"merchant_id"`
	PickupLocation     string         `json:"pickup_location" db:"pickup_location"`
	DeliveryLocation   string         `json:"delivery_location" db:"delivery_location"`
	OrderDetails       string         `json:"order_details" db:"order_details"`
	Status             DeliveryStatus `json:"status" db:"status"`
	ScheduledTime      *time.Time     `json:"scheduled_time,omitempty" db:"scheduled_time"`
	PickedUpAt         *time.Time     `json:"picked_up_at,omitempty" db:"picked_up_at"`
	DeliveredAt        *time.Time     `json:"delivered_at,omitempty" db:"delivered_at"`
	CancelledAt        *time.Time     `json:"cancelled_at,omitempty" db:"cancelled_at"`
	CancellationReason *string        `json:"cancellation_reason,omitempty" db:"cancellation_reason"`
	Amount             *float64       `json:"amount,omitempty" db:"amount"`
	CreatedAt          time.Time      `json:"created_at" db:"created_at"`
}

// ServiceHistory lists the trips and delivery orders of a customer
type ServiceHistory struct {
	Trips          []Trip          `json:"trips"`
	DeliveryOrders []DeliveryOrder `json:"delivery_orders"`
}
