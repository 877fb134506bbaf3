package constants

// NATS subjects of the session lifecycle
const (
	SubjectTripCreated      = "trip.created"
	SubjectDeliveryCreated  = "delivery.created"
	SubjectServiceAssigned  = "service.assigned"
	SubjectServiceCompleted = "service.completed"
	SubjectRatingCreated    = "rating.created"
)
