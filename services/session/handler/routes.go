package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/piresc/lleva/internal/pkg/constants"
	"github.com/piresc/lleva/internal/pkg/logger"
	"github.com/piresc/lleva/internal/pkg/websocket"
	"github.com/piresc/lleva/services/session"
	"github.com/piresc/lleva/services/session/handler/http"
)

// Handler coordinates all protocol handlers for the session service
type Handler struct {
	sessionHandler *http.SessionHandler
	sessionUC      session.SessionUC
	wsManager      *websocket.Manager
}

// NewHandler creates and initializes all handlers
func NewHandler(
	sessionHandler *http.SessionHandler,
	sessionUC session.SessionUC,
	wsManager *websocket.Manager,
) *Handler {
	return &Handler{
		sessionHandler: sessionHandler,
		sessionUC:      sessionUC,
		wsManager:      wsManager,
	}
}

// HandleWebSocket keeps a customer's notification channel open and sends
// the current session state as soon as it is reachable
func (h *Handler) HandleWebSocket(c echo.Context) error {
	return h.wsManager.HandleConnection(c, h.pushCurrentState)
}

func (h *Handler) pushCurrentState(userID string) {
	snap, err := h.sessionUC.Snapshot(context.Background(), userID)
	if err != nil {
		logger.Warn("Failed to load session for new connection",
			logger.String("user_id", userID),
			logger.Err(err))
		return
	}
	h.wsManager.NotifyClient(userID, constants.EventSessionUpdate, snap)
}

// RegisterRoutes registers all protocol handlers and their routes.
// auth authenticates customers; limiter throttles booking and rating writes.
func (h *Handler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc, limiter echo.MiddlewareFunc) {
	// Public routes
	e.GET("/merchants", h.sessionHandler.ListMerchants)
	e.GET("/ratings/:userID/stats", h.sessionHandler.RatingStats)

	protected := e.Group("/session", auth)
	protected.GET("", h.sessionHandler.GetSession)
	protected.GET("/history", h.sessionHandler.History)
	protected.GET("/ratings/stats", h.sessionHandler.GivenRatingStats)
	protected.POST("/trips", h.sessionHandler.RequestTrip, limiter)
	protected.POST("/deliveries", h.sessionHandler.RequestDelivery, limiter)
	protected.POST("/messages", h.sessionHandler.SendMessage)
	protected.POST("/end", h.sessionHandler.EndService)
	protected.POST("/rating", h.sessionHandler.SubmitRating, limiter)
	protected.POST("/rating/skip", h.sessionHandler.SkipRating)
	protected.POST("/receipt/close", h.sessionHandler.CloseReceipt)

	e.GET("/ws", h.HandleWebSocket, auth)
}
