package models

import "time"

// VehicleStatus is the review state of a registered vehicle
type VehicleStatus string

const (
	VehicleStatusPending  VehicleStatus = "pending"
	VehicleStatusVerified VehicleStatus = "verified"
	VehicleStatusRejected VehicleStatus = "rejected"
)

// Vehicle is a car or motorcycle a driver registered to offer services with
type Vehicle struct {
	ID           string        `json:"id" db:"id"`
	DriverID     string        `json:"driver_id" db:"driver_id"`
	Type         VehicleType   `json:"type" db:"type"`
	Make         string        `json:"make" db:"make"`
	Model        string        `json:"model" db:"model"`
	Year         int           `json:"year" db:"year"`
	Plate        string        `json:"plate" db:"plate"`
	SpecificType *string       `json:"specific_type,omitempty" db:"specific_type"`
	Doors        *int          `json:"doors,omitempty" db:"doors"`
	Status       VehicleStatus `json:"status" db:"status"`
	CreatedAt    time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" db:"updated_at"`
}

// VehicleRequest is the HTTP body a driver registers a vehicle with
type VehicleRequest struct {
	Type         VehicleType `json:"type"`
	Make         string      `json:"make"`
	Model        string      `json:"model"`
	Year         int         `json:"year"`
	Plate        string      `json:"plate"`
	SpecificType string      `json:"specific_type,omitempty"`
	Doors        *int        `json:"doors,omitempty"`
}

// VehicleStatusRequest is the HTTP body of a vehicle review
type VehicleStatusRequest struct {
	Status VehicleStatus `json:"status"`
}

// VehicleTypeConfig describes what a vehicle type must declare
type VehicleTypeConfig struct {
	Label         string   `json:"label"`
	SpecificTypes []string `json:"specific_types"`
	DoorsRequired bool     `json:"doors_required"`
}

// VehicleTypes lists the vehicle types drivers can register
var VehicleTypes = map[VehicleType]VehicleTypeConfig{
	VehicleTypeTaxi: {
		Label:         "Taxi",
		SpecificTypes: []string{string(TaxiTierBasic), string(TaxiTierPremium)},
		DoorsRequired: true,
	},
	VehicleTypeMotoTaxi: {
		Label:         "Moto-taxi",
		SpecificTypes: []string{"motocicleta"},
		DoorsRequired: false,
	},
}
