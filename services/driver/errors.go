package driver

import "errors"

var (
	// ErrInvalidVehicle wraps every vehicle registration input problem
	ErrInvalidVehicle = errors.New("invalid vehicle")
	// ErrPlateTaken means another vehicle is registered with the plate
	ErrPlateTaken = errors.New("plate is already registered")
	// ErrVehicleNotFound means no vehicle has the requested id
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrInvalidStatus means a review used an unknown status
	ErrInvalidStatus = errors.New("invalid vehicle status")
)
