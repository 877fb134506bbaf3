package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/lleva/internal/pkg/models"
	nr "github.com/piresc/lleva/internal/pkg/newrelic"
	"github.com/piresc/lleva/services/auth"
)

const (
	pgUniqueViolation = "23505"
	profileColumns    = "id, full_name, avatar_url, phone, city, age, user_type, created_at, updated_at"
)

// UserRepo is the Postgres store of accounts and profiles
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepository creates the Postgres backed user repository
func NewUserRepository(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// CreateUser inserts the account and its profile in one transaction
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User, profile *models.Profile) error {
	return nr.WithDatastoreSegment(ctx, "users", "INSERT", func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		defer tx.Rollback()

		err = tx.QueryRowxContext(ctx, `
			INSERT INTO users (id, email, password_hash)
			VALUES ($1, $2, $3)
			RETURNING created_at
		`, user.ID, user.Email, user.PasswordHash).Scan(&user.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return auth.ErrEmailTaken
			}
			return fmt.Errorf("failed to insert user: %w", err)
		}

		err = tx.QueryRowxContext(ctx, `
			INSERT INTO profiles (id, full_name, user_type)
			VALUES ($1, $2, $3)
			RETURNING created_at, updated_at
		`, profile.ID, profile.FullName, profile.UserType).Scan(&profile.CreatedAt, &profile.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert profile: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit user: %w", err)
		}
		return nil
	})
}

// GetUserByEmail returns nil without error when no account uses email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUser(ctx, `SELECT id, email, password_hash, created_at FROM users WHERE email = $1`, email)
}

// GetUserByID returns nil without error when userID has no account
func (r *UserRepo) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return r.getUser(ctx, `SELECT id, email, password_hash, created_at FROM users WHERE id = $1`, userID)
}

func (r *UserRepo) getUser(ctx context.Context, query string, arg string) (*models.User, error) {
	var user models.User
	err := nr.WithDatastoreSegment(ctx, "users", "SELECT", func() error {
		return r.db.GetContext(ctx, &user, query, arg)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetProfile returns nil without error when the user has no profile
func (r *UserRepo) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := nr.WithDatastoreSegment(ctx, "profiles", "SELECT", func() error {
		return r.db.GetContext(ctx, &profile, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, userID)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile writes the non-nil fields of update and returns the stored
// profile, or nil without error when the user has no profile
func (r *UserRepo) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.Profile, error) {
	var profile models.Profile
	err := nr.WithDatastoreSegment(ctx, "profiles", "UPDATE", func() error {
		return r.db.GetContext(ctx, &profile, `
			UPDATE profiles
			SET full_name = COALESCE($2, full_name),
				avatar_url = COALESCE($3, avatar_url),
				phone = COALESCE($4, phone),
				city = COALESCE($5, city),
				age = COALESCE($6, age),
				updated_at = NOW()
			WHERE id = $1
			RETURNING `+profileColumns,
			userID, update.FullName, update.AvatarURL, update.Phone, update.City, update.Age)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &profile, nil
}
