package auth

import (
	"context"
	"time"

	"github.com/piresc/lleva/internal/pkg/models"
)

// AuthUC registers customers and issues their tokens
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/lleva/services/auth AuthUC,SessionCloser
type AuthUC interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Logout(ctx context.Context, userID, tokenID string, expiresAt time.Time) error
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.Profile, error)
}

// SessionCloser tears down whatever session state a signed-out user left behind
type SessionCloser interface {
	Teardown(userID string)
}
