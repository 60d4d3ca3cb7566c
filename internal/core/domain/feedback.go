package domain

import (
	"errors"
	"time"
)

// FeedbackStatus is the moderation state of a feedback entry.
type FeedbackStatus string

const (
	FeedbackPending  FeedbackStatus = "pending"
	FeedbackReviewed FeedbackStatus = "reviewed"
	FeedbackResolved FeedbackStatus = "resolved"
)

// FeedbackCategory classifies a feedback entry.
type FeedbackCategory string

const (
	CategoryGeneral     FeedbackCategory = "general"
	CategoryBug         FeedbackCategory = "bug"
	CategoryFeature     FeedbackCategory = "feature"
	CategoryImprovement FeedbackCategory = "improvement"
	CategoryOther       FeedbackCategory = "other"
)

const (
	MinRating = 1
	MaxRating = 5
)

var ErrFeedbackNotFound = errors.New("feedback not found")
var ErrInvalidFeedbackStatus = errors.New("invalid feedback status")
var ErrRateLimited = errors.New("too many requests")

// ValidFeedbackStatus reports whether s is a member of the status enum.
func ValidFeedbackStatus(s FeedbackStatus) bool {
	switch s {
	case FeedbackPending, FeedbackReviewed, FeedbackResolved:
		return true
	}
	return false
}

// Feedback is a public feedback entry. It carries no owner: submissions may
// be anonymous.
type Feedback struct {
	ID        string           `json:"id" bson:"_id,omitempty"`
	Name      string           `json:"name,omitempty" bson:"name,omitempty"`
	Email     string           `json:"email,omitempty" bson:"email,omitempty"`
	Text      string           `json:"feedback" bson:"feedback"`
	Rating    int              `json:"rating" bson:"rating"`
	Category  FeedbackCategory `json:"category" bson:"category"`
	IsPublic  bool             `json:"is_public" bson:"is_public"`
	Status    FeedbackStatus   `json:"status" bson:"status"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" bson:"updated_at"`
}

// PublicView returns a copy safe for unauthenticated listings: the email is
// never exposed outside the admin surface.
func (f Feedback) PublicView() Feedback {
	f.Email = ""
	return f
}
