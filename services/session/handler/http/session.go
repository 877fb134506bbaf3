package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/lleva/internal/pkg/logger"
	"github.com/piresc/lleva/internal/pkg/middleware"
	"github.com/piresc/lleva/internal/pkg/models"
	nrpkg "github.com/piresc/lleva/internal/pkg/newrelic"
	"github.com/piresc/lleva/internal/utils"
	"github.com/piresc/lleva/services/session"
)

// SessionHandler handles HTTP requests for the customer's service session
type SessionHandler struct {
	sessionUC session.SessionUC
}

// NewSessionHandler creates a new session HTTP handler
func NewSessionHandler(sessionUC session.SessionUC) *SessionHandler {
	return &SessionHandler{
		sessionUC: sessionUC,
	}
}

func currentUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get("user_id").(string)
	return userID, ok && userID != ""
}

// RequestTrip submits a trip booking
func (h *SessionHandler) RequestTrip(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Session.RequestTrip")

	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Unauthorized")
	}

	var req models.TripBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	return h.submit(c, userID, req.ToBookingRequest())
}

// RequestDelivery submits a delivery order
func (h *SessionHandler) RequestDelivery(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Session.RequestDelivery")

	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Unauthorized")
	}

	var req models.DeliveryBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	return h.submit(c, userID, req.ToBookingRequest())
}

func (h *SessionHandler) submit(c echo.Context, userID string, req models.BookingRequest) error {
	middleware.SetUserID(c, userID)
	middleware.AddAttribute(c, "booking.kind", string(req.Kind))

	snap, err := h.sessionUC.Submit(c.Request().Context(), userID, req)
	if err != nil {
		return h.writeError(c, err)
	}

	middleware.SetSessionState(c, string(snap.State))
	logger.InfoCtx(c.Request().Context(), "Booking submitted",
		logger.String("user_id", userID),
		logger.String("kind", string(req.Kind)))

	return utils.SuccessResponse(c, http.StatusAccepted, "Request submitted", snap)
}

// GetSession returns the current session snapshot
func (h *SessionHandler) GetSession(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Unauthorized")
	}

	snap, err := h.sessionUC.Snapshot(c.Request().Context(), userID)
	if err != nil {
		return h.writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", snap)
}

// SendMessage appends a chat message to the active service
func (h *SessionHandler) SendMessage(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Unauthorized")
	}

	var req models.ChatMessageRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	msg, err := h.sessionUC.SendMessage(c.Request().Context(), userID, req.Text)
	if err != nil {
		return h.writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Message sent", msg)
}

// EndService finishes the active service
func (h *SessionHandler) EndService(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Session.EndService")

	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Unauthorized")
	}

	snap, err := h.sessionUC.EndService(c.Request().Context(), userID)
	if err != nil {
		return h.writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Service finished", snap)
}

// SubmitRating rates the finished service
func (h *SessionHandler) SubmitRating(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Session.SubmitRating")

	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Unauthorized")
	}

	var req models.RatingSubmission
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	snap, err := h.sessionUC.SubmitRating(c.Request().Context(), userID, req)
	if err != nil {
		return h.writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rating processed", snap)
}

// SkipRating moves on to the receipt without rating
func (h *SessionHandler) SkipRating(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Unauthorized")
	}

	snap, err := h.sessionUC.SkipRating(c.Request().Context(), userID)
	if err != nil {
		return h.writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rating skipped", snap)
}

// CloseReceipt dismisses the receipt
func (h *SessionHandler) CloseReceipt(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Unauthorized")
	}

	snap, err := h.sessionUC.CloseReceipt(c.Request().Context(), userID)
	if err != nil {
		return h.writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Receipt closed", snap)
}

// History lists the customer's past trips and delivery orders
func (h *SessionHandler) History(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Unauthorized")
	}

	history, err := h.sessionUC.History(c.Request().Context(), userID)
	if err != nil {
		return h.writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", history)
}

// ListMerchants returns the merchants available for delivery orders
func (h *SessionHandler) ListMerchants(c echo.Context) error {
	merchants, err := h.sessionUC.ListMerchants(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", merchants)
}

// RatingStats summarizes the ratings received by a provider
func (h *SessionHandler) RatingStats(c echo.Context) error {
	ratedUserID := c.Param("userID")
	if ratedUserID == "" {
		return utils.BadRequestResponse(c, "User ID is required")
	}

	stats, err := h.sessionUC.RatingStats(c.Request().Context(), ratedUserID)
	if err != nil {
		return h.writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", stats)
}

// GivenRatingStats summarizes the ratings the customer has given
func (h *SessionHandler) GivenRatingStats(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Unauthorized")
	}

	stats, err := h.sessionUC.GivenRatingStats(c.Request().Context(), userID)
	if err != nil {
		return h.writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", stats)
}

// writeError maps session errors to HTTP responses
func (h *SessionHandler) writeError(c echo.Context, err error) error {
	var (
		validationErr *session.ValidationError
		authErr       *session.AuthRequiredError
		stateErr      *session.InvalidStateError
		limitErr      *session.RateLimitedError
		backendErr    *session.BackendError
		ratingErr     *session.RatingError
	)

	switch {
	case errors.As(err, &validationErr):
		message := validationErr.Message
		if message == "" {
			message = "Validation failed"
		}
		return utils.ErrorResponseWithDetails(c, http.StatusBadRequest, message, validationErr.Fields)
	case errors.As(err, &authErr):
		return utils.UnauthorizedResponse(c, err.Error())
	case errors.As(err, &stateErr):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, session.ErrSessionReset):
		return utils.ConflictResponse(c, err.Error())
	case errors.As(err, &limitErr):
		return utils.TooManyRequestsResponse(c, err.Error())
	case errors.As(err, &backendErr):
		middleware.NoticeError(c, err)
		return utils.BadGatewayResponse(c, backendErr.Message)
	case errors.As(err, &ratingErr):
		middleware.NoticeError(c, err)
		return utils.BadGatewayResponse(c, ratingErr.Message)
	}

	middleware.NoticeError(c, err)
	logger.ErrorCtx(c.Request().Context(), "Session request failed",
		logger.String("path", c.Path()),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, "Internal server error")
}
