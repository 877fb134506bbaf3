package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/lleva/internal/pkg/circuitbreaker"
	"github.com/piresc/lleva/internal/pkg/constants"
	"github.com/piresc/lleva/internal/pkg/models"
	"github.com/piresc/lleva/services/session"
	"github.com/piresc/lleva/services/session/mocks"
	"github.com/piresc/lleva/services/session/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuarded(t *testing.T) (*mocks.MockBookingBackend, *circuitbreaker.Breaker, session.BookingBackend) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBookingBackend(ctrl)
	breaker := circuitbreaker.New(circuitbreaker.Config{
		Name:             "booking-backend",
		FailureThreshold: 2,
		IsFailure:        repository.IsInfrastructureFailure,
	}, nil)
	return backend, breaker, repository.NewGuardedBookingBackend(backend, breaker)
}

func TestGuardedBackend_PassesThrough(t *testing.T) {
	backend, _, guarded := newGuarded(t)
	req := models.BookingRequest{Kind: models.BookingKindTrip}

	backend.EXPECT().CreateTrip(gomock.Any(), "user-1", req).Return(&models.Trip{ID: "trip-1"}, nil)

	trip, err := guarded.CreateTrip(context.Background(), "user-1", req)
	require.NoError(t, err)
	assert.Equal(t, "trip-1", trip.ID)
}

func TestGuardedBackend_OpensOnInfrastructureFailures(t *testing.T) {
	backend, breaker, guarded := newGuarded(t)
	req := models.BookingRequest{Kind: models.BookingKindDelivery}

	backend.EXPECT().CreateDeliveryOrder(gomock.Any(), "user-1", req).
		Return(nil, errors.New("failed to create delivery order: connection refused")).Times(2)

	for i := 0; i < 2; i++ {
		_, err := guarded.CreateDeliveryOrder(context.Background(), "user-1", req)
		assert.Error(t, err)
	}
	require.Equal(t, circuitbreaker.StateOpen, breaker.State())

	_, err := guarded.CreateDeliveryOrder(context.Background(), "user-1", req)
	var berr *session.BackendError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, constants.MessageBookingUnavailable, berr.Message)
	assert.ErrorIs(t, err, circuitbreaker.ErrOpen)
}

func TestGuardedBackend_BusinessRejectionsKeepItClosed(t *testing.T) {
	backend, breaker, guarded := newGuarded(t)
	rejection := &session.BackendError{Message: "El comercio seleccionado no está disponible."}

	backend.EXPECT().CreateDeliveryOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, rejection).Times(3)

	for i := 0; i < 3; i++ {
		_, err := guarded.CreateDeliveryOrder(context.Background(), "user-1", models.BookingRequest{})
		assert.Equal(t, rejection, err)
	}
	assert.Equal(t, circuitbreaker.StateClosed, breaker.State())
}

func TestGuardedBackend_History(t *testing.T) {
	backend, _, guarded := newGuarded(t)

	backend.EXPECT().GetHistory(gomock.Any(), "user-1").Return(&models.ServiceHistory{}, nil)

	history, err := guarded.GetHistory(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotNil(t, history)
}

func TestIsInfrastructureFailure(t *testing.T) {
	assert.False(t, repository.IsInfrastructureFailure(nil))
	assert.False(t, repository.IsInfrastructureFailure(&session.BackendError{Message: "x"}))
	assert.True(t, repository.IsInfrastructureFailure(errors.New("timeout")))
}
