package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/piresc/lleva/internal/pkg/models"
)

// ErrSessionReset is returned to a caller whose in-flight request was
// overtaken by a teardown of the session
var ErrSessionReset = errors.New("session was reset")

// FieldError names one missing or invalid booking field
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError blocks a transition because of missing or invalid input
type ValidationError struct {
	Fields  []FieldError
	Message string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field+" "+f.Reason)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// HasField reports whether field is among the failures
func (e *ValidationError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// BackendError means the booking backend rejected or failed a create call
type BackendError struct {
	Message string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("booking backend error: %s", e.Message)
}

func (e *BackendError) Unwrap() error { return e.Err }

// RatingError means a rating could not be persisted
type RatingError struct {
	Message string
	Err     error
}

func (e *RatingError) Error() string {
	return fmt.Sprintf("rating error: %s", e.Message)
}

func (e *RatingError) Unwrap() error { return e.Err }

// AuthRequiredError means no authenticated user was found
type AuthRequiredError struct{}

func (e *AuthRequiredError) Error() string { return "authentication required" }

// InvalidStateError means the operation is not allowed in the current state
type InvalidStateError struct {
	Operation string
	State     models.SessionState
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s while session is %s", e.Operation, e.State)
}

// RateLimitedError means the customer is sending chat messages too fast
type RateLimitedError struct{}

func (e *RateLimitedError) Error() string { return "too many messages" }
