package ports

import (
	"context"

	"github.com/jobtrackr/jobtracker-api/internal/core/domain"
)

// CreateFeedbackInput carries a public feedback submission.
type CreateFeedbackInput struct {
	Name     string
	Email    string
	Text     string
	Rating   int
	Category string // optional; defaults to "general"
	IsPublic *bool  // optional; defaults to true
}

// ListFeedbackInput carries all parameters for feedback list endpoints.
type ListFeedbackInput struct {
	Status    string
	Category  string
	Rating    int
	Search    string
	Page      int
	Limit     int
	SortField string
	SortOrder string
}

// FeedbackList is a page of feedback plus the pagination envelope fields.
type FeedbackList struct {
	Items []*domain.Feedback
	Total int64
	Page  PageInfo
}

// FeedbackStats is the public rating overview, recomputed on every call.
type FeedbackStats struct {
	Total         int64
	AverageRating float64
	RatingCounts  map[int]int64 // zero-filled over ratings 1..5
}

// FeedbackService defines use-case operations for feedback.
type FeedbackService interface {
	Create(ctx context.Context, input CreateFeedbackInput) (*domain.Feedback, error)
	// PublicList returns is_public entries with the email field stripped.
	PublicList(ctx context.Context, input ListFeedbackInput) (*FeedbackList, error)
	Stats(ctx context.Context) (*FeedbackStats, error)
}
