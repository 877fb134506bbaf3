package websocket

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/lleva/internal/pkg/constants"
	"github.com/piresc/lleva/internal/pkg/logger"
	"github.com/piresc/lleva/internal/pkg/models"
)

const writeWait = 5 * time.Second

// Client is one connected customer. Writes are serialized per connection.
type Client struct {
	UserID string
	conn   *websocket.Conn
	mu     sync.Mutex
}

func (cl *Client) send(msg models.WSMessage) error {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return cl.conn.WriteJSON(msg)
}

// Manager manages WebSocket connections, one per user
type Manager struct {
	sync.RWMutex
	clients  map[string]*Client
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*Client),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades an authenticated request and keeps the
// connection registered until the client disconnects. onConnect runs once
// the client is reachable through NotifyClient.
func (m *Manager) HandleConnection(c echo.Context, onConnect func(userID string)) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &Client{UserID: userID, conn: ws}
	m.addClient(client)
	defer m.removeClient(client)

	logger.Info("WebSocket client connected", logger.String("user_id", userID))
	if onConnect != nil {
		onConnect(userID)
	}

	for {
		var msg models.WSMessage
		if err := ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read failed", logger.String("user_id", userID), logger.Err(err))
			}
			return nil
		}

		switch msg.Event {
		case constants.EventPing:
			m.NotifyClient(userID, constants.EventPong, nil)
		default:
			m.SendErrorMessage(userID, constants.ErrorInvalidFormat, "Unsupported event")
		}
	}
}

func (m *Manager) addClient(client *Client) {
	m.Lock()
	previous, exists := m.clients[client.UserID]
	m.clients[client.UserID] = client
	m.Unlock()

	if exists {
		previous.conn.Close()
	}
}

func (m *Manager) removeClient(client *Client) {
	m.Lock()
	if current, ok := m.clients[client.UserID]; ok && current == client {
		delete(m.clients, client.UserID)
	}
	m.Unlock()

	client.conn.Close()
	logger.Info("WebSocket client disconnected", logger.String("user_id", client.UserID))
}

// IsConnected reports whether userID has an open connection
func (m *Manager) IsConnected(userID string) bool {
	m.RLock()
	defer m.RUnlock()
	_, ok := m.clients[userID]
	return ok
}

// NotifyClient sends an event to a specific client. Users without an open
// connection are skipped.
func (m *Manager) NotifyClient(userID string, event string, data interface{}) {
	m.RLock()
	client, exists := m.clients[userID]
	m.RUnlock()

	if !exists {
		return
	}

	msg, err := models.NewWSMessage(event, data)
	if err != nil {
		logger.Error("Error marshaling websocket payload",
			logger.String("event", event),
			logger.Err(err))
		return
	}

	if err := client.send(msg); err != nil {
		logger.Warn("Error sending message to client",
			logger.String("user_id", userID),
			logger.String("event", event),
			logger.Err(err))
	}
}

// SendErrorMessage sends an error event to a client
func (m *Manager) SendErrorMessage(userID string, code string, message string) {
	m.NotifyClient(userID, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// CloseAll closes every open connection
func (m *Manager) CloseAll() {
	m.Lock()
	clients := m.clients
	m.clients = make(map[string]*Client)
	m.Unlock()

	for _, client := range clients {
		client.mu.Lock()
		_ = client.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"),
			time.Now().Add(writeWait))
		client.mu.Unlock()
		client.conn.Close()
	}
	logger.Info(fmt.Sprintf("Closed %d websocket connections", len(clients)))
}
