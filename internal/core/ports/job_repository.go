package ports

import (
	"context"
	"time"

	"github.com/jobtrackr/jobtracker-api/internal/core/domain"
)

// JobFilter carries all query parameters for listing jobs. It is a plain
// value so filter construction can be unit tested away from the database.
type JobFilter struct {
	UserID    string // empty = no owner scoping (admin); non-empty = scoped to owner
	Status    string // empty = no filter
	Search    string // optional: case-insensitive substring match on company or position
	Page      int    // 1-based
	Limit     int    // rows per page (capped at MaxLimit by the service)
	SortField string
	SortOrder string // "asc" or "desc"
}

// JobUpdate is a partial update descriptor. Nil fields are left untouched.
type JobUpdate struct {
	Company     *string
	Position    *string
	Status      *domain.JobStatus
	AppliedDate *time.Time
	Notes       *string
	Salary      *float64
	Location    *string
	JobURL      *string
}

// Empty reports whether the update would touch nothing.
func (u JobUpdate) Empty() bool {
	return u.Company == nil && u.Position == nil && u.Status == nil &&
		u.AppliedDate == nil && u.Notes == nil && u.Salary == nil &&
		u.Location == nil && u.JobURL == nil
}

// JobRepository defines persistence operations for jobs.
// Wherever a userID parameter is non-empty the operation is additionally
// scoped to that owner; a job owned by someone else behaves as absent.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id, userID string) (*domain.Job, error)
	// List returns a page of jobs matching filter and the total count
	// matching the same filter independent of pagination.
	List(ctx context.Context, filter JobFilter) ([]*domain.Job, int64, error)
	Update(ctx context.Context, id, userID string, update JobUpdate) (*domain.Job, error)
	Delete(ctx context.Context, id, userID string) error
	// CountByStatus groups the owner's jobs by status. Statuses absent from
	// the data are absent from the map; zero-filling is the service's job.
	CountByStatus(ctx context.Context, userID string) (map[domain.JobStatus]int64, error)
	RecentlyUpdated(ctx context.Context, userID string, limit int) ([]*domain.Job, error)
	Count(ctx context.Context) (int64, error)
	CountForUser(ctx context.Context, userID string) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
