package ports

import (
	"context"

	"github.com/jobtrackr/jobtracker-api/internal/core/domain"
)

// AdminUserStats summarises the user collection.
type AdminUserStats struct {
	Total         int64
	Active        int64
	NewLast30Days int64
}

// AdminJobStats summarises the job collection across all users.
type AdminJobStats struct {
	Total         int64
	ByStatus      map[domain.JobStatus]int64 // zero-filled over the full enum
	NewLast30Days int64
}

// AdminFeedbackStats summarises the feedback collection.
type AdminFeedbackStats struct {
	Total         int64
	AverageRating float64
	NewLast30Days int64
}

// AdminOverview is the aggregate statistics view. It is recomputed on every
// call; the 30-day window is relative to the invocation time.
type AdminOverview struct {
	Users    AdminUserStats
	Jobs     AdminJobStats
	Feedback AdminFeedbackStats
}

// UserWithJobCount pairs a user with the number of jobs they own. The counts
// are independent reads, not a snapshot-consistent join.
type UserWithJobCount struct {
	User     *domain.User
	JobCount int64
}

// ListUsersInput carries all parameters for the admin user listing.
type ListUsersInput struct {
	Role      string
	Search    string
	Page      int
	Limit     int
	SortField string
	SortOrder string
}

// UserList is a page of users plus the pagination envelope fields.
type UserList struct {
	Items []UserWithJobCount
	Total int64
	Page  PageInfo
}

// AdminService defines the admin-only moderation and statistics operations.
type AdminService interface {
	Overview(ctx context.Context) (*AdminOverview, error)
	ListUsers(ctx context.Context, input ListUsersInput) (*UserList, error)
	// ListJobs lists jobs across all users (no owner scoping).
	ListJobs(ctx context.Context, input ListJobsInput) (*JobList, error)
	ListFeedback(ctx context.Context, input ListFeedbackInput) (*FeedbackList, error)
	UpdateFeedbackStatus(ctx context.Context, id, status string) (*domain.Feedback, error)
	DeleteFeedback(ctx context.Context, id string) error
	// ToggleUserStatus flips the user's active flag and returns the result.
	ToggleUserStatus(ctx context.Context, id string) (*domain.User, error)
}
