package usecase

import (
	"context"
	"errors"

	"github.com/piresc/lleva/internal/pkg/models"
	nr "github.com/piresc/lleva/internal/pkg/newrelic"
	"github.com/piresc/lleva/services/session"
)

// sessionUC implements the session.SessionUC interface
type sessionUC struct {
	cfg      *models.Config
	registry *Registry
	deps     *Dependencies
}

// NewSessionUC creates the session use case on top of a registry
func NewSessionUC(cfg *models.Config, registry *Registry) (session.SessionUC, error) {
	if registry == nil || registry.deps == nil {
		return nil, errors.New("session registry is required")
	}
	deps := registry.deps
	if deps.Backend == nil || deps.Ratings == nil || deps.Identity == nil {
		return nil, errors.New("booking backend, rating store and identity provider are required")
	}
	if deps.Clock == nil || deps.Random == nil {
		return nil, errors.New("clock and random source are required")
	}
	return &sessionUC{
		cfg:      cfg,
		registry: registry,
		deps:     deps,
	}, nil
}

func (uc *sessionUC) Submit(ctx context.Context, userID string, req models.BookingRequest) (*models.SessionSnapshot, error) {
	var snap models.SessionSnapshot
	err := nr.WithSegment(ctx, "Session/Submit", func() error {
		var err error
		snap, err = uc.registry.Get(userID).Submit(ctx, req)
		if errors.Is(err, errRetired) {
			snap, err = uc.registry.Get(userID).Submit(ctx, req)
		}
		return err
	})
	if err != nil {
		uc.registry.Retire(userID)
	}
	return &snap, err
}

// existing returns the controller of userID. Users without one are idle.
func (uc *sessionUC) existing(userID, operation string) (*Controller, error) {
	c, ok := uc.registry.Lookup(userID)
	if !ok {
		return nil, &session.InvalidStateError{Operation: operation, State: models.SessionStateIdle}
	}
	return c, nil
}

func idleSnapshot() *models.SessionSnapshot {
	return &models.SessionSnapshot{State: models.SessionStateIdle, Chat: []models.ChatMessage{}}
}

func (uc *sessionUC) SendMessage(ctx context.Context, userID string, text string) (*models.ChatMessage, error) {
	c, err := uc.existing(userID, "send a message")
	if err != nil {
		return nil, err
	}
	msg, err := c.SendMessage(text)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (uc *sessionUC) EndService(ctx context.Context, userID string) (*models.SessionSnapshot, error) {
	c, err := uc.existing(userID, "end the service")
	if err != nil {
		return idleSnapshot(), err
	}
	snap, err := c.EndService()
	return &snap, err
}

func (uc *sessionUC) SubmitRating(ctx context.Context, userID string, rating models.RatingSubmission) (*models.SessionSnapshot, error) {
	c, err := uc.existing(userID, "rate the service")
	if err != nil {
		return idleSnapshot(), err
	}
	var snap models.SessionSnapshot
	err = nr.WithSegment(ctx, "Session/SubmitRating", func() error {
		var err error
		snap, err = c.SubmitRating(ctx, rating)
		return err
	})
	return &snap, err
}

func (uc *sessionUC) SkipRating(ctx context.Context, userID string) (*models.SessionSnapshot, error) {
	c, err := uc.existing(userID, "skip the rating")
	if err != nil {
		return idleSnapshot(), err
	}
	snap, err := c.SkipRating()
	if err == nil && snap.State == models.SessionStateIdle {
		uc.registry.Retire(userID)
	}
	return &snap, err
}

func (uc *sessionUC) CloseReceipt(ctx context.Context, userID string) (*models.SessionSnapshot, error) {
	c, err := uc.existing(userID, "close the receipt")
	if err != nil {
		return idleSnapshot(), err
	}
	snap, err := c.CloseReceipt()
	if err == nil {
		uc.registry.Retire(userID)
	}
	return &snap, err
}

// Snapshot reads the session without creating a controller for users that
// never booked anything
func (uc *sessionUC) Snapshot(ctx context.Context, userID string) (*models.SessionSnapshot, error) {
	c, ok := uc.registry.Lookup(userID)
	if !ok {
		return idleSnapshot(), nil
	}
	snap := c.Snapshot()
	return &snap, nil
}

func (uc *sessionUC) Teardown(userID string) {
	uc.registry.Teardown(userID)
}

func (uc *sessionUC) ListMerchants(ctx context.Context) ([]models.Merchant, error) {
	if uc.deps.Merchants == nil {
		return []models.Merchant{}, nil
	}
	return uc.deps.Merchants.List(), nil
}

func (uc *sessionUC) History(ctx context.Context, userID string) (*models.ServiceHistory, error) {
	return uc.deps.Backend.GetHistory(ctx, userID)
}

func (uc *sessionUC) GivenRatingStats(ctx context.Context, userID string) (*models.RatingStats, error) {
	return uc.deps.Ratings.GetGivenRatingStats(ctx, userID)
}

func (uc *sessionUC) RatingStats(ctx context.Context, ratedUserID string) (*models.RatingStats, error) {
	return uc.deps.Ratings.GetRatingStats(ctx, ratedUserID)
}
