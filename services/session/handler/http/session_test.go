package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/lleva/internal/pkg/models"
	"github.com/piresc/lleva/internal/utils"
	"github.com/piresc/lleva/services/session"
	"github.com/piresc/lleva/services/session/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, path, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
	}
	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorResponse {
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestNewSessionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	handler := NewSessionHandler(mockUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockUC, handler.sessionUC)
}

func TestRequestTrip_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	handler := NewSessionHandler(mockUC)

	mockUC.EXPECT().
		Submit(gomock.Any(), "user-1", models.BookingRequest{
			Kind:           models.BookingKindTrip,
			PickupLocation: "Av. Principal 123",
			Destination:    "Centro",
			VehicleType:    models.VehicleTypeTaxi,
			TaxiTier:       models.TaxiTierBasic,
			Mode:           models.BookingModeNow,
		}).
		Return(&models.SessionSnapshot{State: models.SessionStateAwaitingAssignment, EstimatedArrival: "7 minutos"}, nil)

	body := `{"pickup_location":"Av. Principal 123","destination":"Centro","vehicle_type":"taxi","taxi_tier":"básico","booking_mode":"now"}`
	c, rec := newContext(http.MethodPost, "/session/trips", body, "user-1")

	require.NoError(t, handler.RequestTrip(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	var resp struct {
		Success bool                   `json:"success"`
		Data    models.SessionSnapshot `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, models.SessionStateAwaitingAssignment, resp.Data.State)
	assert.Equal(t, "7 minutos", resp.Data.EstimatedArrival)
}

func TestRequestDelivery_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	handler := NewSessionHandler(mockUC)

	mockUC.EXPECT().
		Submit(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, req models.BookingRequest) (*models.SessionSnapshot, error) {
			assert.Equal(t, models.BookingKindDelivery, req.Kind)
			assert.Equal(t, "Casa", req.Destination)
			return &models.SessionSnapshot{State: models.SessionStateIdle}, &session.ValidationError{
				Fields:  []session.FieldError{{Field: "merchant_id", Reason: "is required"}},
				Message: "Por favor, selecciona un comercio, ingresa detalles del pedido, origen y destino.",
			}
		})

	c, rec := newContext(http.MethodPost, "/session/deliveries", `{"destination":"Casa"}`, "user-1")

	require.NoError(t, handler.RequestDelivery(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeError(t, rec)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "selecciona un comercio")
	assert.Contains(t, rec.Body.String(), `"field":"merchant_id"`)
}

func TestRequestTrip_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewSessionHandler(mocks.NewMockSessionUC(ctrl))
	c, rec := newContext(http.MethodPost, "/session/trips", `{}`, "")

	require.NoError(t, handler.RequestTrip(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequestTrip_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewSessionHandler(mocks.NewMockSessionUC(ctrl))
	c, rec := newContext(http.MethodPost, "/session/trips", `{"pickup_location":`, "user-1")

	require.NoError(t, handler.RequestTrip(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"auth required", &session.AuthRequiredError{}, http.StatusUnauthorized, "authentication required"},
		{"invalid state", &session.InvalidStateError{Operation: "end the service", State: models.SessionStateIdle}, http.StatusConflict, "cannot end the service while session is idle"},
		{"session reset", session.ErrSessionReset, http.StatusConflict, "session was reset"},
		{"rate limited", &session.RateLimitedError{}, http.StatusTooManyRequests, "too many messages"},
		{"backend", &session.BackendError{Message: "No se pudo crear tu solicitud."}, http.StatusBadGateway, "No se pudo crear tu solicitud."},
		{"rating", &session.RatingError{Message: "No pudimos guardar tu calificación."}, http.StatusBadGateway, "No pudimos guardar tu calificación."},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockSessionUC(ctrl)
			handler := NewSessionHandler(mockUC)
			mockUC.EXPECT().EndService(gomock.Any(), "user-1").Return(nil, tt.err)

			c, rec := newContext(http.MethodPost, "/session/end", "", "user-1")
			require.NoError(t, handler.EndService(c))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, decodeError(t, rec).Error)
		})
	}
}

func TestSendMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	handler := NewSessionHandler(mockUC)

	mockUC.EXPECT().
		SendMessage(gomock.Any(), "user-1", "Estoy afuera").
		Return(&models.ChatMessage{ID: "msg-000002", Sender: models.ChatSenderUser, Text: "Estoy afuera"}, nil)

	c, rec := newContext(http.MethodPost, "/session/messages", `{"text":"Estoy afuera"}`, "user-1")
	require.NoError(t, handler.SendMessage(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"msg-000002"`)
}

func TestSubmitRating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	handler := NewSessionHandler(mockUC)

	mockUC.EXPECT().
		SubmitRating(gomock.Any(), "user-1", models.RatingSubmission{Stars: 4, Feedback: "Bien"}).
		Return(&models.SessionSnapshot{
			State:   models.SessionStateAwaitingReceiptClose,
			Receipt: &models.Receipt{TransactionID: "TXN-1-ABCDEF", RatingPersisted: true},
		}, nil)

	c, rec := newContext(http.MethodPost, "/session/rating", `{"stars":4,"feedback":"Bien"}`, "user-1")
	require.NoError(t, handler.SubmitRating(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"transaction_id":"TXN-1-ABCDEF"`)
}

func TestSkipRatingAndCloseReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	handler := NewSessionHandler(mockUC)

	gomock.InOrder(
		mockUC.EXPECT().SkipRating(gomock.Any(), "user-1").
			Return(&models.SessionSnapshot{State: models.SessionStateAwaitingReceiptClose}, nil),
		mockUC.EXPECT().CloseReceipt(gomock.Any(), "user-1").
			Return(&models.SessionSnapshot{State: models.SessionStateIdle}, nil),
	)

	c, rec := newContext(http.MethodPost, "/session/rating/skip", "", "user-1")
	require.NoError(t, handler.SkipRating(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodPost, "/session/receipt/close", "", "user-1")
	require.NoError(t, handler.CloseReceipt(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"idle"`)
}

func TestGetSessionAndHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	handler := NewSessionHandler(mockUC)

	mockUC.EXPECT().Snapshot(gomock.Any(), "user-1").
		Return(&models.SessionSnapshot{State: models.SessionStateActive, Progress: 35, Chat: []models.ChatMessage{}}, nil)
	mockUC.EXPECT().History(gomock.Any(), "user-1").
		Return(nil, errors.New("db down"))

	c, rec := newContext(http.MethodGet, "/session", "", "user-1")
	require.NoError(t, handler.GetSession(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"progress":35`)

	c, rec = newContext(http.MethodGet, "/session/history", "", "user-1")
	require.NoError(t, handler.History(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPublicEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	handler := NewSessionHandler(mockUC)

	mockUC.EXPECT().ListMerchants(gomock.Any()).
		Return([]models.Merchant{{ID: "m-1", Name: "Farmacia La Saludable"}}, nil)
	mockUC.EXPECT().RatingStats(gomock.Any(), "driver-1").
		Return(&models.RatingStats{AverageRating: 4.7, TotalRatings: 12}, nil)

	c, rec := newContext(http.MethodGet, "/merchants", "", "")
	require.NoError(t, handler.ListMerchants(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Farmacia La Saludable")

	c, rec = newContext(http.MethodGet, "/ratings/driver-1/stats", "", "")
	c.SetParamNames("userID")
	c.SetParamValues("driver-1")
	require.NoError(t, handler.RatingStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"average_rating":4.7`)

	c, rec = newContext(http.MethodGet, "/ratings//stats", "", "")
	require.NoError(t, handler.RatingStats(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGivenRatingStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	handler := NewSessionHandler(mockUC)

	mockUC.EXPECT().GivenRatingStats(gomock.Any(), "user-1").
		Return(&models.RatingStats{AverageRating: 4, TotalRatings: 3}, nil)

	c, rec := newContext(http.MethodGet, "/session/ratings/stats", "", "user-1")
	require.NoError(t, handler.GivenRatingStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_ratings":3`)

	c, rec = newContext(http.MethodGet, "/session/ratings/stats", "", "")
	require.NoError(t, handler.GivenRatingStats(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
