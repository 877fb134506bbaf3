package repository

import (
	"context"
	"errors"

	"github.com/piresc/lleva/internal/pkg/circuitbreaker"
	"github.com/piresc/lleva/internal/pkg/constants"
	"github.com/piresc/lleva/internal/pkg/models"
	"github.com/piresc/lleva/services/session"
)

type guardedBackend struct {
	next    session.BookingBackend
	breaker *circuitbreaker.Breaker
}

// NewGuardedBookingBackend fails booking calls fast while next is unreachable.
// Business rejections from next do not count against it.
func NewGuardedBookingBackend(next session.BookingBackend, breaker *circuitbreaker.Breaker) session.BookingBackend {
	return &guardedBackend{next: next, breaker: breaker}
}

// IsInfrastructureFailure tells unreachable-backend errors apart from
// business rejections carried as *session.BackendError
func IsInfrastructureFailure(err error) bool {
	if err == nil {
		return false
	}
	var berr *session.BackendError
	return !errors.As(err, &berr)
}

func (g *guardedBackend) CreateTrip(ctx context.Context, customerID string, req models.BookingRequest) (*models.Trip, error) {
	var trip *models.Trip
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		trip, err = g.next.CreateTrip(ctx, customerID, req)
		return err
	})
	if err != nil {
		return nil, unavailable(err)
	}
	return trip, nil
}

func (g *guardedBackend) CreateDeliveryOrder(ctx context.Context, customerID string, req models.BookingRequest) (*models.DeliveryOrder, error) {
	var order *models.DeliveryOrder
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		order, err = g.next.CreateDeliveryOrder(ctx, customerID, req)
		return err
	})
	if err != nil {
		return nil, unavailable(err)
	}
	return order, nil
}

func (g *guardedBackend) GetHistory(ctx context.Context, customerID string) (*models.ServiceHistory, error) {
	var history *models.ServiceHistory
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		history, err = g.next.GetHistory(ctx, customerID)
		return err
	})
	if err != nil {
		return nil, unavailable(err)
	}
	return history, nil
}

func unavailable(err error) error {
	if errors.Is(err, circuitbreaker.ErrOpen) {
		return &session.BackendError{Message: constants.MessageBookingUnavailable, Err: err}
	}
	return err
}
