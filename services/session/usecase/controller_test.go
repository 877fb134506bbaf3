package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/lleva/internal/pkg/constants"
	"github.com/piresc/lleva/internal/pkg/logger"
	"github.com/piresc/lleva/internal/pkg/models"
	"github.com/piresc/lleva/internal/pkg/simulation"
	"github.com/piresc/lleva/services/session"
	"github.com/piresc/lleva/services/session/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "user-1"

type recordingNotifier struct {
	mu            sync.Mutex
	notifications []models.Notification
	snapshots     []models.SessionSnapshot
}

func (n *recordingNotifier) Notify(userID string, notification models.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, notification)
}

func (n *recordingNotifier) PushSnapshot(userID string, snapshot models.SessionSnapshot) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.snapshots = append(n.snapshots, snapshot)
}

func (n *recordingNotifier) countMessage(message string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	count := 0
	for _, notification := range n.notifications {
		if notification.Message == message {
			count++
		}
	}
	return count
}

func (n *recordingNotifier) last() models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.notifications) == 0 {
		return models.Notification{}
	}
	return n.notifications[len(n.notifications)-1]
}

type harness struct {
	backend  *mocks.MockBookingBackend
	ratings  *mocks.MockRatingStore
	identity *mocks.MockIdentityProvider
	events   *mocks.MockEventGW
	notifier *recordingNotifier
	clock    *simulation.FakeClock
	deps     *Dependencies
	registry *Registry
}

func newHarness(t *testing.T) *harness {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	h := &harness{
		backend:  mocks.NewMockBookingBackend(ctrl),
		ratings:  mocks.NewMockRatingStore(ctrl),
		identity: mocks.NewMockIdentityProvider(ctrl),
		events:   mocks.NewMockEventGW(ctrl),
		notifier: &recordingNotifier{},
		clock:    simulation.NewFakeClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)),
	}

	h.deps = &Dependencies{
		Backend:  h.backend,
		Ratings:  h.ratings,
		Identity: h.identity,
		Events:   h.events,
		Notifier: h.notifier,
		Merchants: NewMerchantDirectory([]models.Merchant{
			{ID: "m-1", Name: "Farmacia La Saludable", Category: "Farmacia", Status: models.MerchantStatusActive},
		}),
		Clock:  h.clock,
		Random: simulation.FixedRandom{Fraction: 0.5},
		Sim: models.SimulationConfig{
			AssignmentDelay:   3 * time.Second,
			ProgressInterval:  2 * time.Second,
			ProgressStep:      5,
			ChatReplyDelay:    1500 * time.Millisecond,
			ChatRatePerSecond: 2,
			ChatBurst:         5,
			MinEstimateMin:    5,
			MaxEstimateMin:    15,
		},
		Receipt: models.ReceiptConfig{MinAmount: 3, MaxAmount: 30, Currency: "USD"},
		Logger:  logger.NewNopLogger(),
	}
	h.registry = NewRegistry(h.deps)
	return h
}

func (h *harness) expectUser() {
	h.identity.EXPECT().
		CurrentUser(gomock.Any(), testUserID).
		Return(&models.User{ID: testUserID, Email: "ana@example.com"}, nil).
		AnyTimes()
}

func (h *harness) allowEvents() {
	h.events.EXPECT().
		PublishServiceEvent(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
}

func (h *harness) controller() *Controller {
	return h.registry.Get(testUserID)
}

func taxiRequest() models.BookingRequest {
	return models.BookingRequest{
		Kind:           models.BookingKindTrip,
		PickupLocation: "Av. Principal 123",
		Destination:    "Centro Comercial",
		VehicleType:    models.VehicleTypeTaxi,
		TaxiTier:       models.TaxiTierPremium,
		Mode:           models.BookingModeNow,
	}
}

func deliveryRequest() models.BookingRequest {
	return models.BookingRequest{
		Kind:           models.BookingKindDelivery,
		PickupLocation: "Farmacia",
		Destination:    "Casa",
		MerchantID:     "m-1",
		OrderDetails:   "Paracetamol",
		Mode:           models.BookingModeNow,
	}
}

// activeTrip drives a taxi trip up to the Active state
func (h *harness) activeTrip(t *testing.T) *Controller {
	t.Helper()
	h.backend.EXPECT().
		CreateTrip(gomock.Any(), testUserID, gomock.Any()).
		Return(&models.Trip{ID: "trip-1"}, nil)

	c := h.controller()
	_, err := c.Submit(context.Background(), taxiRequest())
	require.NoError(t, err)
	h.clock.Advance(3 * time.Second)
	require.Equal(t, models.SessionStateActive, c.State())
	return c
}

func TestSubmit_TripHappyPath(t *testing.T) {
	h := newHarness(t)
	h.expectUser()

	var subjects []string
	h.events.EXPECT().
		PublishServiceEvent(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, subject string, event models.ServiceEvent) error {
			assert.Equal(t, testUserID, event.CustomerID)
			assert.Equal(t, "trip-1", event.RecordID)
			subjects = append(subjects, subject)
			return nil
		}).
		AnyTimes()

	h.backend.EXPECT().
		CreateTrip(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, customerID string, req models.BookingRequest) (*models.Trip, error) {
			assert.Equal(t, models.TaxiTierPremium, req.TaxiTier)
			return &models.Trip{ID: "trip-1", Status: models.TripStatusPending}, nil
		})

	c := h.controller()
	snap, err := c.Submit(context.Background(), taxiRequest())
	require.NoError(t, err)
	assert.Equal(t, models.SessionStateAwaitingAssignment, snap.State)
	assert.Equal(t, "10 minutos", snap.EstimatedArrival)
	assert.Equal(t, constants.MessageSearchingDriver, h.notifier.last().Message)

	h.clock.Advance(2999 * time.Millisecond)
	assert.Equal(t, models.SessionStateAwaitingAssignment, c.State())

	h.clock.Advance(time.Millisecond)
	snap = c.Snapshot()
	require.Equal(t, models.SessionStateActive, snap.State)
	require.NotNil(t, snap.ActiveService)
	assert.Equal(t, "Taxi", snap.ActiveService.ServiceType)
	assert.Equal(t, "Taxista Asignado", snap.ActiveService.ProviderDisplayName)
	assert.Equal(t, "trip-1", snap.ActiveService.RecordID)
	require.Len(t, snap.Chat, 1)
	assert.Equal(t, models.ChatSenderProvider, snap.Chat[0].Sender)
	assert.Equal(t, "¡Hola! Tu taxi premium está en camino.", snap.Chat[0].Text)
	assert.Equal(t, "Tu taxi premium (Taxista Asignado) ha sido asignado y está en camino.", h.notifier.last().Message)
	assert.Equal(t, 0, snap.Progress)

	h.clock.Advance(2 * time.Second)
	assert.Equal(t, 5, c.Snapshot().Progress)

	snap, err = c.EndService()
	require.NoError(t, err)
	assert.Equal(t, models.SessionStateAwaitingRating, snap.State)
	assert.Equal(t, 100, snap.Progress)
	assert.Equal(t, constants.MessageServiceFinished, h.notifier.last().Message)

	h.ratings.EXPECT().
		CreateRating(gomock.Any(), models.CreateRatingInput{
			UserID:    testUserID,
			SubjectID: "trip-1",
			Kind:      models.BookingKindTrip,
			Stars:     5,
			Feedback:  "Excelente",
		}).
		Return(&models.Rating{ID: "rating-1", Rating: 5}, nil)

	snap, err = c.SubmitRating(context.Background(), models.RatingSubmission{Stars: 5, Feedback: " Excelente "})
	require.NoError(t, err)
	assert.Equal(t, models.SessionStateAwaitingReceiptClose, snap.State)
	require.NotNil(t, snap.Receipt)
	assert.Equal(t, "Taxi premium", snap.Receipt.ServiceType)
	assert.Equal(t, "Taxista Asignado", snap.Receipt.ProviderName)
	assert.Equal(t, "$16.50 USD", snap.Receipt.Amount)
	assert.Equal(t, "Tarjeta terminada en 5500", snap.Receipt.PaymentMethodDescriptor)
	assert.True(t, strings.HasPrefix(snap.Receipt.TransactionID, "TXN-"))
	assert.True(t, strings.HasSuffix(snap.Receipt.TransactionID, "-IIIIII"))
	assert.True(t, snap.Receipt.RatingPersisted)
	assert.Equal(t, constants.MessageRatingThanks, h.notifier.last().Message)

	snap, err = c.CloseReceipt()
	require.NoError(t, err)
	assert.Equal(t, models.SessionStateIdle, snap.State)
	assert.Empty(t, snap.Chat)
	assert.Nil(t, snap.ActiveService)
	assert.Nil(t, snap.Receipt)
	assert.Nil(t, snap.Request)
	assert.Equal(t, 0, snap.Progress)
	assert.Equal(t, constants.TitleReady, h.notifier.last().Title)
	assert.Empty(t, c.PendingTimers())

	assert.Equal(t, []string{
		constants.SubjectTripCreated,
		constants.SubjectServiceAssigned,
		constants.SubjectServiceCompleted,
		constants.SubjectRatingCreated,
	}, subjects)
}

func TestSubmit_DeliveryHappyPath(t *testing.T) {
	h := newHarness(t)
	h.expectUser()
	h.allowEvents()

	h.backend.EXPECT().
		CreateDeliveryOrder(gomock.Any(), testUserID, gomock.Any()).
		Return(&models.DeliveryOrder{ID: "order-1"}, nil)

	c := h.controller()
	snap, err := c.Submit(context.Background(), deliveryRequest())
	require.NoError(t, err)
	assert.Equal(t, models.SessionStateAwaitingAssignment, snap.State)
	assert.Empty(t, snap.EstimatedArrival)
	assert.Equal(t, "Estamos buscando un repartidor para tu pedido de Farmacia La Saludable...", h.notifier.last().Message)

	h.clock.Advance(3 * time.Second)
	snap = c.Snapshot()
	require.Equal(t, models.SessionStateActive, snap.State)
	assert.Equal(t, "Entrega de Comercio", snap.ActiveService.ServiceType)
	assert.Equal(t, "Repartidor Asignado", snap.ActiveService.ProviderDisplayName)
	assert.Equal(t, "Farmacia La Saludable", snap.ActiveService.MerchantName)
	require.Len(t, snap.Chat, 1)
	assert.Equal(t, "¡Hola! Estoy gestionando tu pedido de Farmacia La Saludable. Estaré en camino pronto.", snap.Chat[0].Text)
	assert.Equal(t, constants.TitleCourierAssigned, h.notifier.last().Title)

	_, err = c.EndService()
	require.NoError(t, err)

	h.ratings.EXPECT().
		CreateRating(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input models.CreateRatingInput) (*models.Rating, error) {
			assert.Equal(t, "order-1", input.SubjectID)
			assert.Equal(t, models.BookingKindDelivery, input.Kind)
			return &models.Rating{ID: "rating-1"}, nil
		})

	snap, err = c.SubmitRating(context.Background(), models.RatingSubmission{Stars: 4})
	require.NoError(t, err)
	require.NotNil(t, snap.Receipt)
	assert.Equal(t, "Entrega de Comercio", snap.Receipt.ServiceType)
	assert.Equal(t, "Farmacia La Saludable", snap.Receipt.MerchantName)
}

func TestSubmit_MotoTaxiDropsTier(t *testing.T) {
	h := newHarness(t)
	h.expectUser()
	h.allowEvents()

	req := taxiRequest()
	req.VehicleType = models.VehicleTypeMotoTaxi

	h.backend.EXPECT().
		CreateTrip(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, customerID string, req models.BookingRequest) (*models.Trip, error) {
			assert.Empty(t, req.TaxiTier)
			return &models.Trip{ID: "trip-2"}, nil
		})

	c := h.controller()
	_, err := c.Submit(context.Background(), req)
	require.NoError(t, err)

	h.clock.Advance(3 * time.Second)
	snap := c.Snapshot()
	assert.Equal(t, "Mototaxista Asignado", snap.ActiveService.ProviderDisplayName)
	assert.Equal(t, "¡Hola! Tu moto-taxi está en camino.", snap.Chat[0].Text)
}

func TestSubmit_ValidationErrors(t *testing.T) {
	future := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)
	past := time.Date(2024, 12, 31, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     func() models.BookingRequest
		field   string
		message string
	}{
		{
			name: "trip without destination",
			req: func() models.BookingRequest {
				r := taxiRequest()
				r.Destination = "   "
				return r
			},
			field:   "destination",
			message: constants.MessageIncompleteTrip,
		},
		{
			name: "taxi without tier",
			req: func() models.BookingRequest {
				r := taxiRequest()
				r.TaxiTier = ""
				return r
			},
			field:   "taxi_tier",
			message: constants.MessageIncompleteTrip,
		},
		{
			name: "trip without vehicle",
			req: func() models.BookingRequest {
				r := taxiRequest()
				r.VehicleType = ""
				return r
			},
			field:   "vehicle_type",
			message: constants.MessageIncompleteTrip,
		},
		{
			name: "delivery without merchant",
			req: func() models.BookingRequest {
				r := deliveryRequest()
				r.MerchantID = ""
				return r
			},
			field:   "merchant_id",
			message: constants.MessageIncompleteDelivery,
		},
		{
			name: "delivery with unknown merchant",
			req: func() models.BookingRequest {
				r := deliveryRequest()
				r.MerchantID = "m-404"
				return r
			},
			field:   "merchant_id",
			message: constants.MessageIncompleteDelivery,
		},
		{
			name: "delivery without order details",
			req: func() models.BookingRequest {
				r := deliveryRequest()
				r.OrderDetails = ""
				return r
			},
			field:   "order_details",
			message: constants.MessageIncompleteDelivery,
		},
		{
			name: "scheduled without time",
			req: func() models.BookingRequest {
				r := taxiRequest()
				r.Mode = models.BookingModeLater
				return r
			},
			field:   "scheduled_at",
			message: constants.MessageIncompleteTrip,
		},
		{
			name: "scheduled in the past",
			req: func() models.BookingRequest {
				r := taxiRequest()
				r.Mode = models.BookingModeLater
				r.ScheduledAt = &past
				return r
			},
			field:   "scheduled_at",
			message: constants.MessageIncompleteTrip,
		},
		{
			name: "unknown kind",
			req: func() models.BookingRequest {
				r := taxiRequest()
				r.Kind = "parcel"
				return r
			},
			field:   "kind",
			message: constants.MessageIncompleteTrip,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.expectUser()

			c := h.controller()
			snap, err := c.Submit(context.Background(), tt.req())

			var verr *session.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.True(t, verr.HasField(tt.field), "fields: %v", verr.Fields)
			assert.Equal(t, tt.message, verr.Message)
			assert.Equal(t, models.SessionStateIdle, snap.State)

			last := h.notifier.last()
			assert.Equal(t, constants.TitleIncompleteFields, last.Title)
			assert.Equal(t, models.NotificationDestructive, last.Level)
			assert.Empty(t, c.PendingTimers())
		})
	}

	t.Run("scheduled in the future is accepted", func(t *testing.T) {
		h := newHarness(t)
		h.expectUser()
		h.allowEvents()
		h.backend.EXPECT().
			CreateTrip(gomock.Any(), testUserID, gomock.Any()).
			DoAndReturn(func(ctx context.Context, customerID string, req models.BookingRequest) (*models.Trip, error) {
				require.NotNil(t, req.ScheduledAt)
				assert.True(t, req.ScheduledAt.Equal(future))
				return &models.Trip{ID: "trip-3"}, nil
			})

		r := taxiRequest()
		r.Mode = models.BookingModeLater
		r.ScheduledAt = &future

		snap, err := h.controller().Submit(context.Background(), r)
		require.NoError(t, err)
		assert.Equal(t, models.SessionStateAwaitingAssignment, snap.State)
		assert.Empty(t, snap.EstimatedArrival)
	})
}

func TestSubmit_AuthRequired(t *testing.T) {
	h := newHarness(t)
	h.identity.EXPECT().CurrentUser(gomock.Any(), testUserID).Return(nil, nil)

	snap, err := h.controller().Submit(context.Background(), taxiRequest())

	var authErr *session.AuthRequiredError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, models.SessionStateIdle, snap.State)
	assert.Equal(t, constants.TitleAuthRequired, h.notifier.last().Title)
}

func TestSubmit_IdentityFailure(t *testing.T) {
	h := newHarness(t)
	h.identity.EXPECT().CurrentUser(gomock.Any(), testUserID).Return(nil, errors.New("db down"))

	snap, err := h.controller().Submit(context.Background(), taxiRequest())
	require.Error(t, err)

	var authErr *session.AuthRequiredError
	assert.False(t, errors.As(err, &authErr))
	assert.Equal(t, models.SessionStateIdle, snap.State)
}

func TestSubmit_BackendError(t *testing.T) {
	t.Run("generic failure uses fallback message", func(t *testing.T) {
		h := newHarness(t)
		h.expectUser()
		h.backend.EXPECT().
			CreateTrip(gomock.Any(), testUserID, gomock.Any()).
			Return(nil, errors.New("connection refused"))

		c := h.controller()
		snap, err := c.Submit(context.Background(), taxiRequest())

		var berr *session.BackendError
		require.True(t, errors.As(err, &berr))
		assert.Equal(t, constants.MessageBookingFallback, berr.Message)
		assert.Equal(t, models.SessionStateIdle, snap.State)
		assert.Nil(t, snap.Request)
		assert.Equal(t, constants.TitleBookingError, h.notifier.last().Title)
		assert.Empty(t, c.PendingTimers())

		h.clock.Advance(10 * time.Second)
		assert.Equal(t, models.SessionStateIdle, c.State())
	})

	t.Run("backend message is passed through", func(t *testing.T) {
		h := newHarness(t)
		h.expectUser()
		h.backend.EXPECT().
			CreateDeliveryOrder(gomock.Any(), testUserID, gomock.Any()).
			Return(nil, &session.BackendError{Message: "El comercio seleccionado no está disponible."})

		_, err := h.controller().Submit(context.Background(), deliveryRequest())

		var berr *session.BackendError
		require.True(t, errors.As(err, &berr))
		assert.Equal(t, "El comercio seleccionado no está disponible.", berr.Message)
		assert.Equal(t, berr.Message, h.notifier.last().Message)
	})
}

func TestSubmit_RejectedOutsideIdle(t *testing.T) {
	h := newHarness(t)
	h.expectUser()
	h.allowEvents()
	h.backend.EXPECT().
		CreateTrip(gomock.Any(), testUserID, gomock.Any()).
		Return(&models.Trip{ID: "trip-1"}, nil).
		Times(1)

	c := h.controller()
	_, err := c.Submit(context.Background(), taxiRequest())
	require.NoError(t, err)

	_, err = c.Submit(context.Background(), taxiRequest())
	var stateErr *session.InvalidStateError
	require.True(t, errors.As(err, &stateErr))
	assert.Equal(t, models.SessionStateAwaitingAssignment, stateErr.State)
}

func TestEndService_OnlyWhenActive(t *testing.T) {
	h := newHarness(t)
	h.expectUser()
	h.allowEvents()
	h.backend.EXPECT().
		CreateTrip(gomock.Any(), testUserID, gomock.Any()).
		Return(&models.Trip{ID: "trip-1"}, nil)

	c := h.controller()
	_, err := c.EndService()
	var stateErr *session.InvalidStateError
	require.True(t, errors.As(err, &stateErr))

	_, err = c.Submit(context.Background(), taxiRequest())
	require.NoError(t, err)

	_, err = c.EndService()
	require.True(t, errors.As(err, &stateErr))
	assert.Equal(t, models.SessionStateAwaitingAssignment, c.State())
	assert.Equal(t, []string{timerAssignment}, c.PendingTimers())
}

func TestProgress_ThresholdNotificationsOnce(t *testing.T) {
	h := newHarness(t)
	h.expectUser()
	h.allowEvents()
	c := h.activeTrip(t)

	h.clock.Advance(18 * time.Second)
	assert.Equal(t, 45, c.Snapshot().Progress)
	assert.Equal(t, 0, h.notifier.countMessage(constants.MessageHalfway))

	h.clock.Advance(2 * time.Second)
	assert.Equal(t, 50, c.Snapshot().Progress)
	assert.Equal(t, 1, h.notifier.countMessage(constants.MessageHalfway))

	h.clock.Advance(16 * time.Second)
	assert.Equal(t, 90, c.Snapshot().Progress)
	assert.Equal(t, 1, h.notifier.countMessage(constants.MessageArriving))

	h.clock.Advance(time.Minute)
	snap := c.Snapshot()
	assert.Equal(t, 100, snap.Progress)
	assert.Equal(t, models.SessionStateActive, snap.State)
	assert.Equal(t, 1, h.notifier.countMessage(constants.MessageHalfway))
	assert.Equal(t, 1, h.notifier.countMessage(constants.MessageArriving))
	assert.NotContains(t, c.PendingTimers(), timerProgress)
}

func TestProgress_StopsAfterEndService(t *testing.T) {
	h := newHarness(t)
	h.expectUser()
	h.allowEvents()
	c := h.activeTrip(t)

	h.clock.Advance(4 * time.Second)
	assert.Equal(t, 10, c.Snapshot().Progress)

	_, err := c.EndService()
	require.NoError(t, err)
	assert.Empty(t, c.PendingTimers())

	h.clock.Advance(time.Minute)
	snap := c.Snapshot()
	assert.Equal(t, 100, snap.Progress)
	assert.Equal(t, 0, h.notifier.countMessage(constants.MessageHalfway))
}

func TestChat_MessageAndDelayedReply(t *testing.T) {
	h := newHarness(t)
	h.expectUser()
	h.allowEvents()
	c := h.activeTrip(t)

	msg, err := c.SendMessage("  Estoy en la puerta  ")
	require.NoError(t, err)
	assert.Equal(t, "msg-000002", msg.ID)
	assert.Equal(t, models.ChatSenderUser, msg.Sender)
	assert.Equal(t, "Estoy en la puerta", msg.Text)

	h.clock.Advance(1499 * time.Millisecond)
	assert.Len(t, c.Snapshot().Chat, 2)

	h.clock.Advance(time.Millisecond)
	chat := c.Snapshot().Chat
	require.Len(t, chat, 3)
	assert.Equal(t, models.ChatSenderProvider, chat[2].Sender)
	assert.Equal(t, constants.ChatAutoReply, chat[2].Text)
	assert.Equal(t, "msg-000003", chat[2].ID)
}

func TestChat_Rejections(t *testing.T) {
	h := newHarness(t)
	h.expectUser()
	h.allowEvents()

	c := h.controller()
	_, err := c.SendMessage("hola")
	var stateErr *session.InvalidStateError
	require.True(t, errors.As(err, &stateErr))

	h.activeTrip(t)

	_, err = c.SendMessage("   ")
	var verr *session.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.HasField("text"))

	_, err = c.SendMessage(strings.Repeat("a", MaxChatLength+1))
	require.True(t, errors.As(err, &verr))

	assert.Len(t, c.Snapshot().Chat, 1)
}

func TestChat_ReplyDroppedWhenServiceEnds(t *testing.T) {
	h := newHarness(t)
	h.expectUser()
	h.allowEvents()
	c := h.activeTrip(t)

	_, err := c.SendMessage("¿Dónde estás?")
	require.NoError(t, err)

	_, err = c.EndService()
	require.NoError(t, err)

	h.clock.Advance(5 * time.Second)
	chat := c.Snapshot().Chat
	require.Len(t, chat, 2)
	assert.Equal(t, models.ChatSenderUser, chat[1].Sender)
}

func TestChat_RateLimited(t *testing.T) {
	h := newHarness(t)
	h.deps.Sim.ChatBurst = 2
	h.deps.Sim.ChatRatePerSecond = 0.5
	h.expectUser()
	h.allowEvents()
	c := h.activeTrip(t)

	_, err := c.SendMessage("uno")
	require.NoError(t, err)
	_, err = c.SendMessage("dos")
	require.NoError(t, err)

	_, err = c.SendMessage("tres")
	var limited *session.RateLimitedError
	require.True(t, errors.As(err, &limited))

	h.clock.Advance(2 * time.Second)
	_, err = c.SendMessage("cuatro")
	assert.NoError(t, err)
}

func TestChat_IDsUniqueAcrossServices(t *testing.T) {
	h := newHarness(t)
	h.expectUser()
	h.allowEvents()
	h.ratings.EXPECT().CreateRating(gomock.Any(), gomock.Any()).Return(&models.Rating{}, nil)

	c := h.activeTrip(t)
	first := c.Snapshot().Chat[0].ID

	_, err := c.EndService()
	require.NoError(t, err)
	_, err = c.SubmitRating(context.Background(), models.RatingSubmission{Stars: 3})
	require.NoError(t, err)
	_, err = c.CloseReceipt()
	require.NoError(t, err)

	h.activeTrip(t)
	second := c.Snapshot().Chat[0].ID
	assert.NotEqual(t, first, second)
	assert.Greater(t, second, first)
}

func TestSubmitRating_Validation(t *testing.T) {
	h := newHarness(t)
	h.expectUser()
	h.allowEvents()
	c := h.activeTrip(t)

	_, err := c.SubmitRating(context.Background(), models.RatingSubmission{Stars: 4})
	var stateErr *session.InvalidStateError
	require.True(t, errors.As(err, &stateErr))

	_, err = c.EndService()
	require.NoError(t, err)

	for _, stars := range []int{0, 6, -1} {
		_, err = c.SubmitRating(context.Background(), models.RatingSubmission{Stars: stars})
		var verr *session.ValidationError
		require.True(t, errors.As(err, &verr), "stars %d", stars)
		assert.True(t, verr.HasField("stars"))
	}

	_, err = c.SubmitRating(context.Background(), models.RatingSubmission{
		Stars:    5,
		Feedback: strings.Repeat("ñ", MaxFeedbackLength+1),
	})
	var verr *session.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.HasField("feedback"))

	assert.Equal(t, models.SessionStateAwaitingRating, c.State())
}

func TestSubmitRating_StoreFailureStillShowsReceipt(t *testing.T) {
	h := newHarness(t)
	h.expectUser()

	var subjects []string
	h.events.EXPECT().
		PublishServiceEvent(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, subject string, event models.ServiceEvent) error {
			subjects = append(subjects, subject)
			return nil
		}).
		AnyTimes()

	c := h.activeTrip(t)
	_, err := c.EndService()
	require.NoError(t, err)

	h.ratings.EXPECT().
		CreateRating(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("unique violation"))

	snap, err := c.SubmitRating(context.Background(), models.RatingSubmission{Stars: 2})
	require.NoError(t, err)
	assert.Equal(t, models.SessionStateAwaitingReceiptClose, snap.State)
	require.NotNil(t, snap.Receipt)
	assert.False(t, snap.Receipt.RatingPersisted)

	last := h.notifier.last()
	assert.Equal(t, constants.TitleRatingError, last.Title)
	assert.Equal(t, models.NotificationDestructive, last.Level)
	assert.NotContains(t, subjects, constants.SubjectRatingCreated)
}

func TestSkipRating(t *testing.T) {
	h := newHarness(t)
	h.expectUser()
	h.allowEvents()

	c := h.controller()
	_, err := c.SkipRating()
	var stateErr *session.InvalidStateError
	require.True(t, errors.As(err, &stateErr))

	h.activeTrip(t)
	_, err = c.EndService()
	require.NoError(t, err)

	snap, err := c.SkipRating()
	require.NoError(t, err)
	assert.Equal(t, models.SessionStateAwaitingReceiptClose, snap.State)
	require.NotNil(t, snap.Receipt)
	assert.False(t, snap.Receipt.RatingPersisted)
	assert.Equal(t, constants.MessageRatingSkipped, h.notifier.last().Message)

	snap, err = c.CloseReceipt()
	require.NoError(t, err)
	assert.Equal(t, models.SessionStateIdle, snap.State)
}

func TestCloseReceipt_OnlyWithReceipt(t *testing.T) {
	h := newHarness(t)

	_, err := h.controller().CloseReceipt()
	var stateErr *session.InvalidStateError
	require.True(t, errors.As(err, &stateErr))
	assert.Equal(t, models.SessionStateIdle, stateErr.State)
}

func TestReset_CancelsAssignment(t *testing.T) {
	h := newHarness(t)
	h.expectUser()
	h.allowEvents()
	h.backend.EXPECT().
		CreateTrip(gomock.Any(), testUserID, gomock.Any()).
		Return(&models.Trip{ID: "trip-1"}, nil)

	c := h.controller()
	_, err := c.Submit(context.Background(), taxiRequest())
	require.NoError(t, err)

	c.Reset()
	first := c.Snapshot()
	c.Reset()
	assert.Equal(t, first, c.Snapshot())
	assert.Empty(t, c.PendingTimers())
	assert.Equal(t, 0, h.clock.Pending())

	h.clock.Advance(10 * time.Second)
	snap := c.Snapshot()
	assert.Equal(t, models.SessionStateIdle, snap.State)
	assert.Nil(t, snap.ActiveService)
	assert.Empty(t, snap.Chat)
}

func TestReset_ClearsActiveTimers(t *testing.T) {
	h := newHarness(t)
	h.expectUser()
	h.allowEvents()
	c := h.activeTrip(t)

	_, err := c.SendMessage("hola")
	require.NoError(t, err)
	assert.Len(t, c.PendingTimers(), 2)

	h.registry.Teardown(testUserID)
	assert.Empty(t, c.PendingTimers())
	assert.Equal(t, 0, h.clock.Pending())
	assert.Equal(t, 0, h.registry.Len())

	h.clock.Advance(time.Minute)
	snap := c.Snapshot()
	assert.Equal(t, models.SessionStateIdle, snap.State)
	assert.Empty(t, snap.Chat)
	assert.Equal(t, 0, snap.Progress)
}

func TestTeardown_DuringBackendCall(t *testing.T) {
	h := newHarness(t)
	h.expectUser()

	h.backend.EXPECT().
		CreateTrip(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, customerID string, req models.BookingRequest) (*models.Trip, error) {
			h.registry.Teardown(testUserID)
			return &models.Trip{ID: "trip-1"}, nil
		})

	c := h.controller()
	snap, err := c.Submit(context.Background(), taxiRequest())
	assert.ErrorIs(t, err, session.ErrSessionReset)
	assert.Equal(t, models.SessionStateIdle, snap.State)
	assert.Empty(t, c.PendingTimers())

	h.clock.Advance(10 * time.Second)
	assert.Equal(t, models.SessionStateIdle, c.State())
}

func TestRegistry_ResetAll(t *testing.T) {
	h := newHarness(t)
	h.expectUser()
	h.allowEvents()
	c := h.activeTrip(t)
	h.registry.Get("user-2")

	assert.Equal(t, 2, h.registry.Len())
	h.registry.ResetAll()
	assert.Equal(t, 0, h.registry.Len())
	assert.Equal(t, models.SessionStateIdle, c.State())
	assert.Equal(t, 0, h.clock.Pending())

	_, ok := h.registry.Lookup(testUserID)
	assert.False(t, ok)
}

func (n *recordingNotifier) lastSnapshot() models.SessionSnapshot {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.snapshots) == 0 {
		return models.SessionSnapshot{}
	}
	return n.snapshots[len(n.snapshots)-1]
}

func TestPushSnapshot_SlowPublishDoesNotDeliverStaleState(t *testing.T) {
	h := newHarness(t)
	h.expectUser()

	var c *Controller
	endDone := make(chan struct{})
	h.events.EXPECT().
		PublishServiceEvent(gomock.Any(), constants.SubjectServiceAssigned, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ models.ServiceEvent) error {
			go func() {
				defer close(endDone)
				_, err := c.EndService()
				assert.NoError(t, err)
			}()
			<-endDone
			return nil
		})
	h.allowEvents()
	h.backend.EXPECT().
		CreateTrip(gomock.Any(), testUserID, gomock.Any()).
		Return(&models.Trip{ID: "trip-1"}, nil)

	c = h.controller()
	_, err := c.Submit(context.Background(), taxiRequest())
	require.NoError(t, err)
	h.clock.Advance(3 * time.Second)

	require.Equal(t, models.SessionStateAwaitingRating, c.State())
	last := h.notifier.lastSnapshot()
	assert.Equal(t, models.SessionStateAwaitingRating, last.State)
	assert.Equal(t, c.Snapshot().Version, last.Version)

	h.notifier.mu.Lock()
	defer h.notifier.mu.Unlock()
	for i := 1; i < len(h.notifier.snapshots); i++ {
		assert.Greater(t, h.notifier.snapshots[i].Version, h.notifier.snapshots[i-1].Version)
	}
}
