package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/lleva/internal/pkg/models"
	nr "github.com/piresc/lleva/internal/pkg/newrelic"
	"github.com/piresc/lleva/internal/pkg/retry"
	"github.com/piresc/lleva/services/session"
)

var errNoSubject = errors.New("subject is required")

// JSONPublisher is the part of the NATS client the gateway needs
type JSONPublisher interface {
	PublishJSON(subject string, message interface{}) error
}

// EventGW publishes session lifecycle events to NATS
type EventGW struct {
	publisher JSONPublisher
	retrier   *retry.Retrier
}

// NewEventGW creates a new event gateway. A nil retrier publishes once.
func NewEventGW(publisher JSONPublisher, retrier *retry.Retrier) session.EventGW {
	if retrier == nil {
		retrier = retry.New(retry.Policy{Attempts: 1}, nil)
	}
	return &EventGW{
		publisher: publisher,
		retrier:   retrier,
	}
}

// PublishServiceEvent publishes event on subject as JSON
func (g *EventGW) PublishServiceEvent(ctx context.Context, subject string, event models.ServiceEvent) error {
	if subject == "" {
		return errNoSubject
	}
	return nr.WithMessageProducerSegment(ctx, subject, func() error {
		return g.retrier.Do(ctx, fmt.Sprintf("publish %s", subject), func(context.Context) error {
			return g.publisher.PublishJSON(subject, event)
		})
	})
}
