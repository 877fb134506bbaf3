package models

import "time"

// SessionState is the lifecycle state of a customer's service session
type SessionState string

const (
	SessionStateIdle                 SessionState = "idle"
	SessionStateRequesting           SessionState = "requesting"
	SessionStateAwaitingAssignment   SessionState = "awaiting_assignment"
	SessionStateActive               SessionState = "active"
	SessionStateAwaitingRating       SessionState = "awaiting_rating"
	SessionStateAwaitingReceiptClose SessionState = "awaiting_receipt_close"
)

// ActiveService describes the service currently assigned to the customer
type ActiveService struct {
	ID                  string      `json:"id"`
	Kind                BookingKind `json:"kind"`
	RecordID            string      `json:"record_id"`
	ServiceType         string      `json:"service_type"`
	ProviderDisplayName string      `json:"provider_display_name"`
	VehicleType         VehicleType `json:"vehicle_type,omitempty"`
	TaxiTier            TaxiTier    `json:"taxi_tier,omitempty"`
	MerchantName        string      `json:"merchant_name,omitempty"`
	StartedAt           time.Time   `json:"started_at"`
}

// ChatSender identifies the author of a chat message
type ChatSender string

const (
	ChatSenderUser     ChatSender = "user"
	ChatSenderProvider ChatSender = "provider"
)

// ChatMessage is one entry of the session chat
type ChatMessage struct {
	ID        string     `json:"id"`
	Sender    ChatSender `json:"sender"`
	Text      string     `json:"text"`
	Timestamp time.Time  `json:"timestamp"`
}

// RatingSubmission is the customer's rating of a finished service
type RatingSubmission struct {
	Stars    int    `json:"stars"`
	Feedback string `json:"feedback,omitempty"`
}

// ChatMessageRequest is the HTTP body for sending a chat message
type ChatMessageRequest struct {
	Text string `json:"text"`
}

// Receipt is the display-only summary shown after a service
type Receipt struct {
	ServiceType             string    `json:"service_type"`
	ProviderName            string    `json:"provider_name"`
	MerchantName            string    `json:"merchant_name,omitempty"`
	Timestamp               time.Time `json:"timestamp"`
	Amount                  string    `json:"amount"`
	PaymentMethodDescriptor string    `json:"payment_method"`
	TransactionID           string    `json:"transaction_id"`
	RatingPersisted         bool      `json:"rating_persisted"`
}

// SessionSnapshot is a read-only projection of a session. Version grows
// with every pushed change so clients can discard stale updates.
type SessionSnapshot struct {
	Version          uint64          `json:"version"`
	State            SessionState    `json:"state"`
	Request          *BookingRequest `json:"request,omitempty"`
	ActiveService    *ActiveService  `json:"active_service,omitempty"`
	Progress         int             `json:"progress"`
	Chat             []ChatMessage   `json:"chat"`
	Receipt          *Receipt        `json:"receipt,omitempty"`
	EstimatedArrival string          `json:"estimated_arrival,omitempty"`
}

// NotificationLevel is the severity of a user notification
type NotificationLevel string

const (
	NotificationInfo        NotificationLevel = "info"
	NotificationDestructive NotificationLevel = "destructive"
)

// Notification is a transient, dismissable message for the customer
type Notification struct {
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Level     NotificationLevel `json:"level"`
	Timestamp time.Time         `json:"timestamp"`
}

// ServiceEvent is published on the message bus on lifecycle changes
type ServiceEvent struct {
	ServiceID  string       `json:"service_id,omitempty"`
	RecordID   string       `json:"record_id"`
	CustomerID string       `json:"customer_id"`
	Kind       BookingKind  `json:"kind"`
	State      SessionState `json:"state"`
	Stars      int          `json:"stars,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}
