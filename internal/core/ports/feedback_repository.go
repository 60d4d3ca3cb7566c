package ports

import (
	"context"
	"time"

	"github.com/jobtrackr/jobtracker-api/internal/core/domain"
)

// FeedbackFilter carries all query parameters for listing feedback.
type FeedbackFilter struct {
	Status     string // empty = no filter
	Category   string // empty = no filter
	Rating     int    // 0 = no filter
	PublicOnly bool   // true = is_public=true only (public listing)
	Search     string // optional: case-insensitive substring match on name or email
	Page       int
	Limit      int
	SortField  string
	SortOrder  string
}

// FeedbackRepository defines persistence operations for feedback entries.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error)
	FindByID(ctx context.Context, id string) (*domain.Feedback, error)
	List(ctx context.Context, filter FeedbackFilter) ([]*domain.Feedback, int64, error)
	UpdateStatus(ctx context.Context, id string, status domain.FeedbackStatus) (*domain.Feedback, error)
	Delete(ctx context.Context, id string) error
	// RatingCounts groups all feedback by rating value. Unseen ratings are
	// absent from the map; zero-filling is the service's job.
	RatingCounts(ctx context.Context) (map[int]int64, error)
	// AverageRating is the mean rating over all feedback, 0 when none exists.
	AverageRating(ctx context.Context) (float64, error)
	Count(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
