package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/lleva/internal/pkg/constants"
	"github.com/piresc/lleva/internal/pkg/database"
	"github.com/piresc/lleva/services/auth"
)

type tokenRepo struct {
	redis *database.RedisClient
}

// NewTokenRepository creates the Redis backed token revocation list
func NewTokenRepository(redis *database.RedisClient) auth.TokenRepo {
	return &tokenRepo{redis: redis}
}

// RevokeToken remembers tokenID until the token would have expired anyway
func (r *tokenRepo) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	key := fmt.Sprintf(constants.KeyRevokedToken, tokenID)
	if err := r.redis.Set(ctx, key, "1", ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (r *tokenRepo) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := fmt.Sprintf(constants.KeyRevokedToken, tokenID)
	revoked, err := r.redis.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to check token: %w", err)
	}
	return revoked, nil
}
