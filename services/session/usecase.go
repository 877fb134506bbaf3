package session

import (
	"context"

	"github.com/piresc/lleva/internal/pkg/models"
)

// SessionUC drives the service sessions of authenticated customers
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/lleva/services/session SessionUC
type SessionUC interface {
	Submit(ctx context.Context, userID string, req models.BookingRequest) (*models.SessionSnapshot, error)
	SendMessage(ctx context.Context, userID string, text string) (*models.ChatMessage, error)
	EndService(ctx context.Context, userID string) (*models.SessionSnapshot, error)
	SubmitRating(ctx context.Context, userID string, rating models.RatingSubmission) (*models.SessionSnapshot, error)
	SkipRating(ctx context.Context, userID string) (*models.SessionSnapshot, error)
	CloseReceipt(ctx context.Context, userID string) (*models.SessionSnapshot, error)
	Snapshot(ctx context.Context, userID string) (*models.SessionSnapshot, error)
	Teardown(userID string)

	ListMerchants(ctx context.Context) ([]models.Merchant, error)
	History(ctx context.Context, userID string) (*models.ServiceHistory, error)
	RatingStats(ctx context.Context, ratedUserID string) (*models.RatingStats, error)
	GivenRatingStats(ctx context.Context, userID string) (*models.RatingStats, error)
}
