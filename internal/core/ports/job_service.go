package ports

import (
	"context"
	"time"

	"github.com/jobtrackr/jobtracker-api/internal/core/domain"
)

// CreateJobInput carries all data needed to create a job application.
type CreateJobInput struct {
	UserID      string
	Company     string
	Position    string
	Status      string    // optional; defaults to "applied"
	AppliedDate time.Time // optional; defaults to the creation instant
	Notes       string
	Salary      float64
	Location    string
	JobURL      string
}

// UpdateJobInput is the partial-update DTO from the transport layer.
type UpdateJobInput struct {
	UserID      string
	JobID       string
	Company     *string
	Position    *string
	Status      *string
	AppliedDate *time.Time
	Notes       *string
	Salary      *float64
	Location    *string
	JobURL      *string
}

// ListJobsInput carries all parameters for the list endpoint.
type ListJobsInput struct {
	UserID    string
	Status    string // already resolved: "" means no filter
	Search    string
	Page      int
	Limit     int
	SortField string
	SortOrder string
}

// JobList is a page of jobs plus the pagination envelope fields.
type JobList struct {
	Items []*domain.Job
	Total int64
	Page  PageInfo
}

// JobStats is the per-user statistics overview.
type JobStats struct {
	Total        int64
	StatusCounts map[domain.JobStatus]int64 // zero-filled over the full enum
	Recent       []*domain.Job              // most recently updated, newest first
}

// JobService defines use-case operations for job applications.
type JobService interface {
	Create(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	Get(ctx context.Context, id, userID string) (*domain.Job, error)
	List(ctx context.Context, input ListJobsInput) (*JobList, error)
	Update(ctx context.Context, input UpdateJobInput) (*domain.Job, error)
	Delete(ctx context.Context, id, userID string) error
	Stats(ctx context.Context, userID string) (*JobStats, error)
}
