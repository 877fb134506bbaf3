package usecase

import (
	"context"
	"time"

	"github.com/piresc/lleva/internal/pkg/logger"
	"github.com/piresc/lleva/internal/pkg/models"
	"github.com/piresc/lleva/services/auth"
)

// Identity resolves the signed-in customer for service sessions and signs
// them out
type Identity struct {
	users  auth.UserRepo
	tokens auth.TokenRepo
}

// NewIdentity creates the identity provider backed by the account stores
func NewIdentity(users auth.UserRepo, tokens auth.TokenRepo) *Identity {
	return &Identity{users: users, tokens: tokens}
}

// CurrentUser returns nil without error when userID has no account
func (i *Identity) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	return i.users.GetUserByID(ctx, userID)
}

// CurrentProfile returns nil without error when userID has no profile
func (i *Identity) CurrentProfile(ctx context.Context, userID string) (*models.Profile, error) {
	return i.users.GetProfile(ctx, userID)
}

// SignOut revokes tokenID for the rest of its lifetime. Tokens without an id
// cannot be revoked and are left to expire.
func (i *Identity) SignOut(ctx context.Context, userID, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return nil
	}
	if err := i.tokens.RevokeToken(ctx, tokenID, time.Until(expiresAt)); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "User signed out", logger.String("user_id", userID))
	return nil
}
