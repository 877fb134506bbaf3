package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/lleva/internal/pkg/models"
	nr "github.com/piresc/lleva/internal/pkg/newrelic"
	"github.com/piresc/lleva/internal/utils"
	"github.com/piresc/lleva/services/session"
)

const (
	recentFeedbackLimit = 5
	msgAlreadyRated     = "Ya calificaste este servicio."
)

type ratingRepo struct {
	db *sqlx.DB
}

// NewRatingRepository creates the Postgres backed rating store
func NewRatingRepository(db *sqlx.DB) session.RatingStore {
	return &ratingRepo{db: db}
}

// CreateRating stores a customer's rating of a trip or delivery order.
// The provider is left empty since services are not tied to a real one.
func (r *ratingRepo) CreateRating(ctx context.Context, input models.CreateRatingInput) (*models.Rating, error) {
	rating := &models.Rating{
		ID:     uuid.NewString(),
		UserID: input.UserID,
		Rating: input.Stars,
	}
	subjectID := input.SubjectID
	if input.Kind == models.BookingKindDelivery {
		rating.DeliveryOrderID = &subjectID
	} else {
		rating.TripID = &subjectID
	}
	if feedback := utils.SanitizeString(input.Feedback); feedback != "" {
		rating.Feedback = &feedback
	}

	query := `
		INSERT INTO ratings (
			id, user_id, rated_user_id, trip_id, delivery_order_id, rating, feedback
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := nr.WithDatastoreSegment(ctx, "ratings", "INSERT", func() error {
		return r.db.QueryRowxContext(ctx, query,
			rating.ID,
			rating.UserID,
			rating.RatedUserID,
			rating.TripID,
			rating.DeliveryOrderID,
			rating.Rating,
			rating.Feedback,
		).Scan(&rating.CreatedAt)
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, &session.RatingError{Message: msgAlreadyRated, Err: err}
		}
		return nil, fmt.Errorf("failed to create rating: %w", err)
	}

	return rating, nil
}

type ratingRow struct {
	Rating   int            `db:"rating"`
	Feedback sql.NullString `db:"feedback"`
}

// GetRatingStats summarizes the ratings received by ratedUserID. Services
// are not assigned to real providers yet, so nothing written by the session
// shows up here.
func (r *ratingRepo) GetRatingStats(ctx context.Context, ratedUserID string) (*models.RatingStats, error) {
	return r.stats(ctx, `
		SELECT rating, feedback
		FROM ratings
		WHERE rated_user_id = $1
		ORDER BY created_at DESC
	`, ratedUserID)
}

// GetGivenRatingStats summarizes the ratings userID gave to finished services
func (r *ratingRepo) GetGivenRatingStats(ctx context.Context, userID string) (*models.RatingStats, error) {
	return r.stats(ctx, `
		SELECT rating, feedback
		FROM ratings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
}

func (r *ratingRepo) stats(ctx context.Context, query string, id string) (*models.RatingStats, error) {
	var rows []ratingRow
	err := nr.WithDatastoreSegment(ctx, "ratings", "SELECT", func() error {
		return r.db.SelectContext(ctx, &rows, query, id)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get rating stats: %w", err)
	}

	return computeRatingStats(rows), nil
}

// computeRatingStats expects rows newest first
func computeRatingStats(rows []ratingRow) *models.RatingStats {
	stats := &models.RatingStats{
		RatingDistribution: map[int]int{5: 0, 4: 0, 3: 0, 2: 0, 1: 0},
		RecentFeedback:     []models.RatingFeedback{},
	}
	if len(rows) == 0 {
		return stats
	}

	sum := 0
	for _, row := range rows {
		sum += row.Rating
		if _, ok := stats.RatingDistribution[row.Rating]; ok {
			stats.RatingDistribution[row.Rating]++
		}

		feedback := strings.TrimSpace(row.Feedback.String)
		if row.Feedback.Valid && feedback != "" && len(stats.RecentFeedback) < recentFeedbackLimit {
			stats.RecentFeedback = append(stats.RecentFeedback, models.RatingFeedback{
				Rating:   row.Rating,
				Feedback: row.Feedback.String,
			})
		}
	}

	stats.TotalRatings = len(rows)
	stats.AverageRating = math.Round(float64(sum)/float64(len(rows))*10) / 10
	return stats
}
