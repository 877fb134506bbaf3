package models

import "time"

// BookingKind distinguishes trips from delivery orders
type BookingKind string

const (
	BookingKindTrip     BookingKind = "trip"
	BookingKindDelivery BookingKind = "delivery_order"
)

// VehicleType is the vehicle requested for a trip
type VehicleType string

const (
	VehicleTypeTaxi     VehicleType = "taxi"
	VehicleTypeMotoTaxi VehicleType = "moto-taxi"
)

// TaxiTier is the service level of a taxi trip
type TaxiTier string

const (
	TaxiTierBasic   TaxiTier = "básico"
	TaxiTierPremium TaxiTier = "premium"
)

// BookingMode tells whether the booking is immediate or scheduled
type BookingMode string

const (
	BookingModeNow   BookingMode = "now"
	BookingModeLater BookingMode = "later"
)

// BookingRequest is the form a customer submits to start a service
type BookingRequest struct {
	Kind           BookingKind `json:"kind"`
	PickupLocation string      `json:"pickup_location"`
	Destination    string      `json:"destination"`
	VehicleType    VehicleType `json:"vehicle_type,omitempty"`
	TaxiTier       TaxiTier    `json:"taxi_tier,omitempty"`
	MerchantID     string      `json:"merchant_id,omitempty"`
	OrderDetails   string      `json:"order_details,omitempty"`
	Mode           BookingMode `json:"booking_mode,omitempty"`
	ScheduledAt    *time.Time  `json:"scheduled_at,omitempty"`
}

// TripBookingRequest is the HTTP body for a trip booking
type TripBookingRequest struct {
	PickupLocation string      `json:"pickup_location"`
	Destination    string      `json:"destination"`
	VehicleType    VehicleType `json:"vehicle_type"`
	TaxiTier       TaxiTier    `json:"taxi_tier,omitempty"`
	Mode           BookingMode `json:"booking_mode,omitempty"`
	ScheduledAt    *time.Time  `json:"scheduled_at,omitempty"`
}

// ToBookingRequest converts the HTTP body to a BookingRequest
func (r TripBookingRequest) ToBookingRequest() BookingRequest {
	return BookingRequest{
		Kind:           BookingKindTrip,
		PickupLocation: r.PickupLocation,
		Destination:    r.Destination,
		VehicleType:    r.VehicleType,
		TaxiTier:       r.TaxiTier,
		Mode:           r.Mode,
		ScheduledAt:    r.ScheduledAt,
	}
}

// DeliveryBookingRequest is the HTTP body for a delivery booking
type DeliveryBookingRequest struct {
	MerchantID     string      `json:"merchant_id"`
	OrderDetails   string      `json:"order_details"`
	PickupLocation string      `json:"pickup_location"`
	Destination    string      `json:"destination"`
	Mode           BookingMode `json:"booking_mode,omitempty"`
	ScheduledAt    *time.Time  `json:"scheduled_at,omitempty"`
}

// ToBookingRequest converts the HTTP body to a BookingRequest
func (r DeliveryBookingRequest) ToBookingRequest() BookingRequest {
	return BookingRequest{
		Kind:           BookingKindDelivery,
		PickupLocation: r.PickupLocation,
		Destination:    r.Destination,
		MerchantID:     r.MerchantID,
		OrderDetails:   r.OrderDetails,
		Mode:           r.Mode,
		ScheduledAt:    r.ScheduledAt,
	}
}
