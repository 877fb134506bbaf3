package auth

import "errors"

var (
	// ErrInvalidInput wraps every registration or login input problem
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmailTaken means an account already exists for the email
	ErrEmailTaken = errors.New("email is already registered")
	// ErrInvalidCredentials means the email or password did not match
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrProfileNotFound means the user has no profile
	ErrProfileNotFound = errors.New("profile not found")
)
