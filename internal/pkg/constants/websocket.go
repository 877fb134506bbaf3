package constants

// WebSocket event types
const (
	EventError         = "error"
	EventPing          = "ping"
	EventPong          = "pong"
	EventNotification  = "notification"
	EventSessionUpdate = "session_update"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
	ErrorUnauthorized  = "unauthorized"
	ErrorInternalError = "internal_error"
)
