package session

import (
	"context"

	"github.com/piresc/lleva/internal/pkg/models"
)

// EventGW publishes session lifecycle events to the message bus
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/lleva/services/session EventGW,Notifier
type EventGW interface {
	PublishServiceEvent(ctx context.Context, subject string, event models.ServiceEvent) error
}

// Notifier pushes transient notifications and state snapshots to the
// customer's connected client
type Notifier interface {
	Notify(userID string, notification models.Notification)
	PushSnapshot(userID string, snapshot models.SessionSnapshot)
}
