package auth

import (
	"context"
	"time"

	"github.com/piresc/lleva/internal/pkg/models"
)

// UserRepo stores accounts and their profiles
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/lleva/services/auth UserRepo,TokenRepo
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User, profile *models.Profile) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	// UpdateProfile returns nil without error when the user has no profile
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.Profile, error)
}

// TokenRepo tracks tokens revoked before their expiry
type TokenRepo interface {
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
