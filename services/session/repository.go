package session

import (
	"context"
	"time"

	"github.com/piresc/lleva/internal/pkg/models"
)

// BookingBackend is the system of record for trips and delivery orders
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/lleva/services/session BookingBackend,RatingStore,MerchantCatalog,IdentityProvider
type BookingBackend interface {
	CreateTrip(ctx context.Context, customerID string, req models.BookingRequest) (*models.Trip, error)
	CreateDeliveryOrder(ctx context.Context, customerID string, req models.BookingRequest) (*models.DeliveryOrder, error)
	GetHistory(ctx context.Context, customerID string) (*models.ServiceHistory, error)
}

// RatingStore persists customer ratings
type RatingStore interface {
	CreateRating(ctx context.Context, input models.CreateRatingInput) (*models.Rating, error)
	GetRatingStats(ctx context.Context, ratedUserID string) (*models.RatingStats, error)
	GetGivenRatingStats(ctx context.Context, userID string) (*models.RatingStats, error)
}

// MerchantCatalog lists the merchants that accept delivery orders
type MerchantCatalog interface {
	ListActiveMerchants(ctx context.Context) ([]models.Merchant, error)
}

// IdentityProvider resolves the authenticated customer and signs them out
type IdentityProvider interface {
	// CurrentUser returns nil without error when userID has no account
	CurrentUser(ctx context.Context, userID string) (*models.User, error)
	CurrentProfile(ctx context.Context, userID string) (*models.Profile, error)
	// SignOut invalidates tokenID until it would have expired anyway
	SignOut(ctx context.Context, userID, tokenID string, expiresAt time.Time) error
}
