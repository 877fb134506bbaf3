package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/lleva/internal/pkg/constants"
	"github.com/piresc/lleva/internal/pkg/database"
	"github.com/piresc/lleva/internal/pkg/logger"
	"github.com/piresc/lleva/internal/pkg/models"
	nr "github.com/piresc/lleva/internal/pkg/newrelic"
)

const placeholderImage = "https://placehold.co/100x100.png"

// DefaultMerchants is the catalog seeded into an empty merchants table
var DefaultMerchants = []models.Merchant{
	{Name: "Restaurante El Buen Sabor", Category: "Comida"},
	{Name: "Farmacia La Saludable", Category: "Farmacia"},
	{Name: "Supermercado Todo Fresco", Category: "Supermercado"},
	{Name: "Tienda de Regalos Detallitos", Category: "Regalos"},
}

// MerchantRepo reads the merchant catalog from Postgres through a Redis cache
type MerchantRepo struct {
	db    *sqlx.DB
	cache *database.RedisClient
}

// NewMerchantRepository creates the merchant catalog. cache may be nil.
func NewMerchantRepository(db *sqlx.DB, cache *database.RedisClient) *MerchantRepo {
	return &MerchantRepo{
		db:    db,
		cache: cache,
	}
}

// ListActiveMerchants returns the active merchants ordered by name
func (r *MerchantRepo) ListActiveMerchants(ctx context.Context) ([]models.Merchant, error) {
	if merchants, ok := r.cached(ctx); ok {
		return merchants, nil
	}

	query := `
		SELECT id, name, category, image_url, status, created_at, updated_at
		FROM merchants
		WHERE status = $1
		ORDER BY name
	`

	merchants := []models.Merchant{}
	err := nr.WithDatastoreSegment(ctx, "merchants", "SELECT", func() error {
		return r.db.SelectContext(ctx, &merchants, query, models.MerchantStatusActive)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list merchants: %w", err)
	}

	r.store(ctx, merchants)
	return merchants, nil
}

func (r *MerchantRepo) cached(ctx context.Context) ([]models.Merchant, bool) {
	if r.cache == nil {
		return nil, false
	}

	raw, err := r.cache.Get(ctx, constants.KeyActiveMerchants)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("Merchant cache read failed", logger.Err(err))
		}
		return nil, false
	}

	var merchants []models.Merchant
	if err := json.Unmarshal([]byte(raw), &merchants); err != nil {
		logger.Warn("Discarding malformed merchant cache entry", logger.Err(err))
		return nil, false
	}
	return merchants, true
}

func (r *MerchantRepo) store(ctx context.Context, merchants []models.Merchant) {
	if r.cache == nil {
		return
	}

	payload, err := json.Marshal(merchants)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, constants.KeyActiveMerchants, payload, constants.MerchantCacheTTL); err != nil {
		logger.Warn("Merchant cache write failed", logger.Err(err))
	}
}

// SeedDefaultMerchants fills an empty catalog with DefaultMerchants. It
// reports how many merchants were inserted.
func (r *MerchantRepo) SeedDefaultMerchants(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM merchants`); err != nil {
		return 0, fmt.Errorf("failed to count merchants: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO merchants (id, name, category, image_url, status)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, m := range DefaultMerchants {
		if _, err := tx.ExecContext(ctx, query, uuid.NewString(), m.Name, m.Category, placeholderImage, models.MerchantStatusActive); err != nil {
			return 0, fmt.Errorf("failed to seed merchant %q: %w", m.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit merchant seed: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Delete(ctx, constants.KeyActiveMerchants); err != nil {
			logger.Warn("Merchant cache invalidation failed", logger.Err(err))
		}
	}
	return len(DefaultMerchants), nil
}
