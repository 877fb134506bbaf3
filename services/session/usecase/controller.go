package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/lleva/internal/pkg/constants"
	"github.com/piresc/lleva/internal/pkg/logger"
	"github.com/piresc/lleva/internal/pkg/models"
	"github.com/piresc/lleva/internal/pkg/simulation"
	"github.com/piresc/lleva/services/session"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Dependencies are the collaborators shared by every session controller
type Dependencies struct {
	Backend   session.BookingBackend
	Ratings   session.RatingStore
	Identity  session.IdentityProvider
	Events    session.EventGW
	Notifier  session.Notifier
	Merchants *MerchantDirectory
	Clock     simulation.Clock
	Random    simulation.RandomSource
	Sim       models.SimulationConfig
	Receipt   models.ReceiptConfig
	Logger    *logger.ZapLogger
}

// Controller owns the service session of one customer. Every state change
// happens under mu; notifications, snapshots and bus events produced while
// holding it are queued and delivered after it is released.
type Controller struct {
	mu     sync.Mutex
	userID string
	deps   *Dependencies
	log    *zap.Logger

	state models.SessionState
	// gen identifies the current service instance. Timer callbacks and
	// in-flight calls carry the gen they were started with and give up when
	// it has moved on.
	gen              uint64
	request          *models.BookingRequest
	recordID         string
	active           *models.ActiveService
	subject          *models.ActiveService
	progress         int
	halfwayNotified  bool
	arrivingNotified bool
	chat             []models.ChatMessage
	msgSeq           int
	receipt          *models.Receipt
	estimatedArrival string
	ratingInFlight   bool
	// retired is set once the registry dropped this controller
	retired bool

	// version numbers the snapshots pushed to the customer; pushMu and
	// pushedVersion keep a slow effect from delivering an older one last.
	version       uint64
	pushMu        sync.Mutex
	pushedVersion uint64

	timers  *timerArena
	limiter *rate.Limiter
	outbox  []func()
}

// NewController returns an idle controller for userID
func NewController(userID string, deps *Dependencies) *Controller {
	log := zap.NewNop()
	if deps.Logger != nil {
		log = deps.Logger.ForSession(userID)
	}

	ratePerSecond := deps.Sim.ChatRatePerSecond
	limit := rate.Inf
	if ratePerSecond > 0 {
		limit = rate.Limit(ratePerSecond)
	}
	burst := deps.Sim.ChatBurst
	if burst <= 0 {
		burst = 1
	}

	return &Controller{
		userID:  userID,
		deps:    deps,
		log:     log,
		state:   models.SessionStateIdle,
		timers:  newTimerArena(deps.Clock),
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (c *Controller) lock() {
	c.mu.Lock()
}

// unlock releases mu and then delivers the queued effects in order
func (c *Controller) unlock() {
	effects := c.outbox
	c.outbox = nil
	c.mu.Unlock()
	for _, fn := range effects {
		fn()
	}
}

// State returns the current lifecycle state
func (c *Controller) State() models.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns a copy of the session as the client sees it
func (c *Controller) Snapshot() models.SessionSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() models.SessionSnapshot {
	snap := models.SessionSnapshot{
		Version:          c.version,
		State:            c.state,
		Progress:         c.progress,
		Chat:             append(make([]models.ChatMessage, 0, len(c.chat)), c.chat...),
		EstimatedArrival: c.estimatedArrival,
	}
	if c.request != nil {
		req := *c.request
		snap.Request = &req
	}
	if c.active != nil {
		active := *c.active
		snap.ActiveService = &active
	}
	if c.receipt != nil {
		receipt := *c.receipt
		snap.Receipt = &receipt
	}
	return snap
}

// PendingTimers lists the names of the armed timers
func (c *Controller) PendingTimers() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timers.names()
}

func (c *Controller) notify(title, message string, level models.NotificationLevel) {
	if c.deps.Notifier == nil {
		return
	}
	n := models.Notification{
		Title:     title,
		Message:   message,
		Level:     level,
		Timestamp: c.deps.Clock.Now(),
	}
	userID := c.userID
	c.outbox = append(c.outbox, func() {
		c.deps.Notifier.Notify(userID, n)
	})
}

func (c *Controller) pushSnapshot() {
	if c.deps.Notifier == nil {
		return
	}
	c.version++
	snap := c.snapshotLocked()
	userID := c.userID
	c.outbox = append(c.outbox, func() {
		c.pushMu.Lock()
		defer c.pushMu.Unlock()
		if snap.Version <= c.pushedVersion {
			return
		}
		c.pushedVersion = snap.Version
		c.deps.Notifier.PushSnapshot(userID, snap)
	})
}

func (c *Controller) publish(subject string, stars int) {
	if c.deps.Events == nil {
		return
	}
	event := models.ServiceEvent{
		RecordID:   c.recordID,
		CustomerID: c.userID,
		State:      c.state,
		Stars:      stars,
		OccurredAt: c.deps.Clock.Now(),
	}
	if c.request != nil {
		event.Kind = c.request.Kind
	}
	if c.active != nil {
		event.ServiceID = c.active.ID
		event.Kind = c.active.Kind
	}
	log := c.log
	c.outbox = append(c.outbox, func() {
		if err := c.deps.Events.PublishServiceEvent(context.Background(), subject, event); err != nil {
			log.Warn("Failed to publish service event",
				logger.String("subject", subject),
				logger.String("record_id", event.RecordID),
				logger.Err(err))
		}
	})
}

// Submit validates req and asks the booking backend to record it. On
// success the session waits for the simulated assignment.
func (c *Controller) Submit(ctx context.Context, req models.BookingRequest) (models.SessionSnapshot, error) {
	user, err := c.deps.Identity.CurrentUser(ctx, c.userID)
	if err != nil {
		return c.Snapshot(), fmt.Errorf("failed to resolve current user: %w", err)
	}
	if user == nil {
		c.lock()
		defer c.unlock()
		c.notify(constants.TitleAuthRequired, constants.MessageAuthRequired, models.NotificationDestructive)
		return c.snapshotLocked(), &session.AuthRequiredError{}
	}

	c.lock()
	if c.retired {
		c.unlock()
		return c.Snapshot(), errRetired
	}
	if c.state != models.SessionStateIdle {
		state := c.state
		c.unlock()
		return c.Snapshot(), &session.InvalidStateError{Operation: "submit a request", State: state}
	}

	normalized := normalizeBookingRequest(req)
	if verr := validateBookingRequest(normalized, c.deps.Clock.Now(), c.deps.Merchants); verr != nil {
		c.notify(constants.TitleIncompleteFields, verr.Message, models.NotificationDestructive)
		snap := c.snapshotLocked()
		c.unlock()
		return snap, verr
	}

	c.gen++
	gen := c.gen
	c.state = models.SessionStateRequesting
	c.request = &normalized
	c.pushSnapshot()
	c.unlock()

	recordID, createErr := c.createRecord(ctx, normalized)

	c.lock()
	defer c.unlock()
	if c.gen != gen || c.state != models.SessionStateRequesting {
		return c.snapshotLocked(), session.ErrSessionReset
	}

	if createErr != nil {
		berr := toBackendError(createErr)
		c.log.Error("Booking backend rejected request",
			logger.String("kind", string(normalized.Kind)),
			logger.Err(createErr))
		c.state = models.SessionStateIdle
		c.request = nil
		c.notify(constants.TitleBookingError, berr.Message, models.NotificationDestructive)
		c.pushSnapshot()
		return c.snapshotLocked(), berr
	}

	c.recordID = recordID
	c.state = models.SessionStateAwaitingAssignment
	c.progress = 0
	c.halfwayNotified = false
	c.arrivingNotified = false
	c.estimatedArrival = ""
	if normalized.Kind == models.BookingKindTrip && normalized.Mode == models.BookingModeNow {
		minutes := simulation.IntBetween(c.deps.Random, c.deps.Sim.MinEstimateMin, c.deps.Sim.MaxEstimateMin)
		c.estimatedArrival = fmt.Sprintf(constants.EstimatedArrival, minutes)
	}

	if normalized.Kind == models.BookingKindTrip {
		c.notify(constants.TitleSearchingDriver, constants.MessageSearchingDriver, models.NotificationInfo)
		c.publish(constants.SubjectTripCreated, 0)
	} else {
		c.notify(constants.TitleSearchingCourier,
			fmt.Sprintf(constants.MessageSearchingCourier, c.merchantName(normalized.MerchantID)),
			models.NotificationInfo)
		c.publish(constants.SubjectDeliveryCreated, 0)
	}

	c.timers.arm(timerAssignment, c.deps.Sim.AssignmentDelay, func() {
		c.onAssignment(gen)
	})
	c.pushSnapshot()

	c.log.Info("Service requested",
		logger.String("kind", string(normalized.Kind)),
		logger.String("record_id", recordID))
	return c.snapshotLocked(), nil
}

func (c *Controller) createRecord(ctx context.Context, req models.BookingRequest) (string, error) {
	switch req.Kind {
	case models.BookingKindTrip:
		trip, err := c.deps.Backend.CreateTrip(ctx, c.userID, req)
		if err != nil {
			return "", err
		}
		if trip == nil {
			return "", errors.New("booking backend returned no trip")
		}
		return trip.ID, nil
	default:
		order, err := c.deps.Backend.CreateDeliveryOrder(ctx, c.userID, req)
		if err != nil {
			return "", err
		}
		if order == nil {
			return "", errors.New("booking backend returned no delivery order")
		}
		return order.ID, nil
	}
}

// toBackendError keeps a user-facing message from the backend when it
// provided one and falls back to a generic message otherwise
func toBackendError(err error) *session.BackendError {
	var berr *session.BackendError
	if errors.As(err, &berr) && berr.Message != "" {
		return berr
	}
	return &session.BackendError{Message: constants.MessageBookingFallback, Err: err}
}

func (c *Controller) merchantName(merchantID string) string {
	if c.deps.Merchants != nil {
		if m, ok := c.deps.Merchants.Lookup(merchantID); ok {
			return m.Name
		}
	}
	return constants.UnknownMerchant
}

func (c *Controller) onAssignment(gen uint64) {
	c.lock()
	defer c.unlock()
	if c.gen != gen || c.state != models.SessionStateAwaitingAssignment {
		return
	}
	c.timers.forget(timerAssignment)

	active := c.buildActiveService()
	c.active = &active
	c.state = models.SessionStateActive
	c.progress = 0
	c.halfwayNotified = false
	c.arrivingNotified = false

	if active.Kind == models.BookingKindTrip {
		label := tripLabel(active)
		c.appendChatLocked(models.ChatSenderProvider, fmt.Sprintf(constants.ChatTripGreeting, label))
		c.notify(constants.TitleDriverFound,
			fmt.Sprintf(constants.MessageDriverFound, label, active.ProviderDisplayName),
			models.NotificationInfo)
	} else {
		c.appendChatLocked(models.ChatSenderProvider, fmt.Sprintf(constants.ChatDeliveryGreeting, active.MerchantName))
		c.notify(constants.TitleCourierAssigned,
			fmt.Sprintf(constants.MessageCourierAssigned, active.MerchantName),
			models.NotificationInfo)
	}

	c.timers.arm(timerProgress, c.deps.Sim.ProgressInterval, func() {
		c.onProgressTick(gen)
	})
	c.publish(constants.SubjectServiceAssigned, 0)
	c.pushSnapshot()

	c.log.Info("Provider assigned",
		logger.String("service_id", active.ID),
		logger.String("provider", active.ProviderDisplayName))
}

func (c *Controller) buildActiveService() models.ActiveService {
	req := c.request
	active := models.ActiveService{
		ID:        uuid.NewString(),
		Kind:      req.Kind,
		RecordID:  c.recordID,
		StartedAt: c.deps.Clock.Now(),
	}

	switch req.Kind {
	case models.BookingKindTrip:
		active.VehicleType = req.VehicleType
		active.TaxiTier = req.TaxiTier
		if req.VehicleType == models.VehicleTypeTaxi {
			active.ServiceType = constants.ServiceTypeTaxi
			active.ProviderDisplayName = constants.ProviderTaxi
		} else {
			active.ServiceType = constants.ServiceTypeMotoTaxi
			active.ProviderDisplayName = constants.ProviderMotoTaxi
		}
	default:
		active.ServiceType = constants.ServiceTypeDelivery
		active.ProviderDisplayName = constants.ProviderCourier
		active.MerchantName = c.merchantName(req.MerchantID)
	}
	return active
}

// tripLabel renders the vehicle and tier as used in the provider copy,
// for example "taxi premium" or "moto-taxi"
func tripLabel(active models.ActiveService) string {
	return strings.TrimSpace(strings.ToLower(active.ServiceType) + " " + string(active.TaxiTier))
}

// EndService completes the active service and asks for a rating
func (c *Controller) EndService() (models.SessionSnapshot, error) {
	c.lock()
	defer c.unlock()
	if c.state != models.SessionStateActive {
		return c.snapshotLocked(), &session.InvalidStateError{Operation: "end the service", State: c.state}
	}

	c.timers.cancel(timerProgress)
	c.timers.cancelPrefix(timerChatPrefix)
	c.progress = 100
	subject := *c.active
	c.subject = &subject
	c.state = models.SessionStateAwaitingRating

	c.notify(constants.TitleServiceFinished, constants.MessageServiceFinished, models.NotificationInfo)
	c.publish(constants.SubjectServiceCompleted, 0)
	c.pushSnapshot()

	c.log.Info("Service finished", logger.String("service_id", subject.ID))
	return c.snapshotLocked(), nil
}

// SubmitRating persists the rating of the finished service and shows the
// receipt. A store failure is reported to the customer but does not block
// the receipt.
func (c *Controller) SubmitRating(ctx context.Context, rating models.RatingSubmission) (models.SessionSnapshot, error) {
	c.lock()
	if c.state != models.SessionStateAwaitingRating || c.ratingInFlight {
		state := c.state
		c.unlock()
		return c.Snapshot(), &session.InvalidStateError{Operation: "rate the service", State: state}
	}
	if err := ValidateRating(rating.Stars); err != nil {
		snap := c.snapshotLocked()
		c.unlock()
		return snap, err
	}
	if err := ValidateFeedback(rating.Feedback); err != nil {
		snap := c.snapshotLocked()
		c.unlock()
		return snap, err
	}
	if c.subject == nil {
		c.resetLocked()
		c.notify(constants.TitleReady, constants.MessageReady, models.NotificationInfo)
		c.pushSnapshot()
		snap := c.snapshotLocked()
		c.unlock()
		return snap, nil
	}

	gen := c.gen
	subject := *c.subject
	c.ratingInFlight = true
	c.unlock()

	_, storeErr := c.deps.Ratings.CreateRating(ctx, models.CreateRatingInput{
		UserID:    c.userID,
		SubjectID: subject.RecordID,
		Kind:      subject.Kind,
		Stars:     rating.Stars,
		Feedback:  strings.TrimSpace(rating.Feedback),
	})

	c.lock()
	defer c.unlock()
	if c.gen != gen || c.state != models.SessionStateAwaitingRating {
		return c.snapshotLocked(), session.ErrSessionReset
	}
	c.ratingInFlight = false

	persisted := storeErr == nil
	if persisted {
		c.notify(constants.TitleRatingThanks, constants.MessageRatingThanks, models.NotificationInfo)
		c.publish(constants.SubjectRatingCreated, rating.Stars)
	} else {
		rerr := toRatingError(storeErr)
		c.log.Error("Failed to persist rating",
			logger.String("record_id", subject.RecordID),
			logger.Err(storeErr))
		c.notify(constants.TitleRatingError, rerr.Message, models.NotificationDestructive)
	}

	c.receipt = buildReceipt(subject, c.deps.Clock.Now(), c.deps.Random, c.deps.Receipt, persisted)
	c.state = models.SessionStateAwaitingReceiptClose
	c.pushSnapshot()
	return c.snapshotLocked(), nil
}

func toRatingError(err error) *session.RatingError {
	var rerr *session.RatingError
	if errors.As(err, &rerr) && rerr.Message != "" {
		return rerr
	}
	return &session.RatingError{Message: constants.MessageRatingFallback, Err: err}
}

// SkipRating moves on without rating. The receipt is still shown when a
// finished service exists.
func (c *Controller) SkipRating() (models.SessionSnapshot, error) {
	c.lock()
	defer c.unlock()
	if c.state != models.SessionStateAwaitingRating || c.ratingInFlight {
		return c.snapshotLocked(), &session.InvalidStateError{Operation: "skip the rating", State: c.state}
	}

	c.notify(constants.TitleRatingSkipped, constants.MessageRatingSkipped, models.NotificationInfo)
	if c.subject != nil {
		c.receipt = buildReceipt(*c.subject, c.deps.Clock.Now(), c.deps.Random, c.deps.Receipt, false)
		c.state = models.SessionStateAwaitingReceiptClose
	} else {
		c.resetLocked()
	}
	c.pushSnapshot()
	return c.snapshotLocked(), nil
}

// CloseReceipt dismisses the receipt and returns the session to idle
func (c *Controller) CloseReceipt() (models.SessionSnapshot, error) {
	c.lock()
	defer c.unlock()
	if c.state != models.SessionStateAwaitingReceiptClose {
		return c.snapshotLocked(), &session.InvalidStateError{Operation: "close the receipt", State: c.state}
	}

	c.resetLocked()
	c.notify(constants.TitleReady, constants.MessageReady, models.NotificationInfo)
	c.pushSnapshot()
	return c.snapshotLocked(), nil
}

func (c *Controller) retireIfIdle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != models.SessionStateIdle || c.retired {
		return false
	}
	c.timers.cancelAll()
	c.retired = true
	return true
}

// Reset cancels every timer and returns the session to an empty idle
// state. It is safe to call in any state and more than once.
func (c *Controller) Reset() {
	c.lock()
	defer c.unlock()
	c.resetLocked()
}

func (c *Controller) resetLocked() {
	c.timers.cancelAll()
	c.gen++
	c.state = models.SessionStateIdle
	c.request = nil
	c.recordID = ""
	c.active = nil
	c.subject = nil
	c.progress = 0
	c.halfwayNotified = false
	c.arrivingNotified = false
	c.chat = nil
	c.receipt = nil
	c.estimatedArrival = ""
	c.ratingInFlight = false
}

func (c *Controller) now() time.Time {
	return c.deps.Clock.Now()
}
