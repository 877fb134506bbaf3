package gateway

import (
	"github.com/piresc/lleva/internal/pkg/constants"
	"github.com/piresc/lleva/internal/pkg/models"
	"github.com/piresc/lleva/services/session"
)

// ClientNotifier is the part of the WebSocket manager the notifier needs
type ClientNotifier interface {
	NotifyClient(userID string, event string, data interface{})
}

// WSNotifier delivers notifications and snapshots over WebSocket.
// Customers without an open connection miss transient notifications and
// fetch the snapshot over HTTP instead.
type WSNotifier struct {
	clients ClientNotifier
}

// NewWSNotifier creates a new WebSocket notifier
func NewWSNotifier(clients ClientNotifier) session.Notifier {
	return &WSNotifier{clients: clients}
}

// Notify sends a transient notification to userID
func (n *WSNotifier) Notify(userID string, notification models.Notification) {
	n.clients.NotifyClient(userID, constants.EventNotification, notification)
}

// PushSnapshot sends the latest session state to userID
func (n *WSNotifier) PushSnapshot(userID string, snapshot models.SessionSnapshot) {
	n.clients.NotifyClient(userID, constants.EventSessionUpdate, snapshot)
}
