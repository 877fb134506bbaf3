package models

import "time"

// Rating is a persisted customer rating of a trip or delivery order
type Rating struct {
	ID              string    `json:"id" db:"id"`
	UserID          string    `json:"user_id" db:"user_id"`
	RatedUserID     *string   `json:"rated_user_id,omitempty" db:"rated_user_id"`
	TripID          *string   `json:"trip_id,omitempty" db:"trip_id"`
	DeliveryOrderID *string   `json:"delivery_order_id,omitempty" db:"delivery_order_id"`
	Rating          int       `json:"rating" db:"rating"`
	Feedback        *string   `json:"feedback,omitempty" db:"feedback"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// CreateRatingInput is what the session hands to the rating store
type CreateRatingInput struct {
	UserID    string
	SubjectID string
	Kind      BookingKind
	Stars     int
	Feedback  string
}

// RatingFeedback is a rating that came with a written comment
type RatingFeedback struct {
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
}

// RatingStats summarizes the ratings a provider has received
type RatingStats struct {
	AverageRating      float64          `json:"average_rating"`
	TotalRatings       int              `json:"total_ratings"`
	RatingDistribution map[int]int      `json:"rating_distribution"`
	RecentFeedback     []RatingFeedback `json:"recent_feedback"`
}
