package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jobtrackr/jobtracker-api/internal/api/metrics"
	"github.com/jobtrackr/jobtracker-api/internal/core/domain"
	"github.com/jobtrackr/jobtracker-api/internal/core/ports"
)

// JobService implements the job application use cases. Every operation is
// scoped to the owning user: a job owned by someone else is indistinguishable
// from a missing one.
type JobService struct {
	repo      ports.JobRepository
	publisher ports.Publisher
	logger    zerolog.Logger
}

func NewJobService(repo ports.JobRepository, publisher ports.Publisher, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, publisher: publisher, logger: logger}
}

// Create inserts a new job application. Status defaults to "applied" and
// AppliedDate to the creation instant when omitted. Emits one job-created
// notification after the write commits.
func (s *JobService) Create(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	status := domain.StatusApplied
	if input.Status != "" {
		status = domain.JobStatus(input.Status)
		if !domain.ValidJobStatus(status) {
			return nil, invalidStatusError(input.Status)
		}
	}

	now := time.Now().UTC()
	appliedDate := input.AppliedDate
	if appliedDate.IsZero() {
		appliedDate = now
	}

	job := &domain.Job{
		UserID:      input.UserID,
		Company:     input.Company,
		Position:    input.Position,
		Status:      status,
		AppliedDate: appliedDate,
		Notes:       input.Notes,
		Salary:      input.Salary,
		Location:    input.Location,
		JobURL:      input.JobURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, job)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create job")
		return nil, err
	}

	s.logger.Info().Str("job_id", created.ID).Str("user_id", created.UserID).Msg("job created")

	s.notify(ctx, domain.Notification{
		Event:    domain.EventJobCreated,
		Message:  fmt.Sprintf("New application for %s at %s", created.Position, created.Company),
		Payload:  created,
		Audience: domain.AudienceAll,
	})

	return created, nil
}

// Get retrieves a single job owned by userID.
func (s *JobService) Get(ctx context.Context, id, userID string) (*domain.Job, error) {
	return s.repo.FindByID(ctx, id, userID)
}

// List returns a filtered, sorted page of the user's jobs plus the total
// count matching the filter.
func (s *JobService) List(ctx context.Context, input ports.ListJobsInput) (*ports.JobList, error) {
	if input.Status != "" && !domain.ValidJobStatus(domain.JobStatus(input.Status)) {
		return nil, invalidStatusError(input.Status)
	}

	page, limit := ports.NormalizePage(input.Page, input.Limit)
	sortField, sortOrder := ports.NormalizeSort(input.SortField, input.SortOrder)

	items, total, err := s.repo.List(ctx, ports.JobFilter{
		UserID:    input.UserID,
		Status:    input.Status,
		Search:    input.Search,
		Page:      page,
		Limit:     limit,
		SortField: sortField,
		SortOrder: sortOrder,
	})
	if err != nil {
		return nil, err
	}

	return &ports.JobList{
		Items: items,
		Total: total,
		Page:  ports.NewPageInfo(total, page, limit),
	}, nil
}

// Update applies a partial update to an owned job. A status change emits
// exactly one job-status-updated notification carrying both the old and new
// status; updates that leave the status unchanged emit nothing.
func (s *JobService) Update(ctx context.Context, input ports.UpdateJobInput) (*domain.Job, error) {
	update := ports.JobUpdate{
		Company:     input.Company,
		Position:    input.Position,
		AppliedDate: input.AppliedDate,
		Notes:       input.Notes,
		Salary:      input.Salary,
		Location:    input.Location,
		JobURL:      input.JobURL,
	}
	if input.Status != nil {
		status := domain.JobStatus(*input.Status)
		if !domain.ValidJobStatus(status) {
			return nil, invalidStatusError(*input.Status)
		}
		update.Status = &status
	}

	current, err := s.repo.FindByID(ctx, input.JobID, input.UserID)
	if err != nil {
		return nil, err
	}

	if update.Empty() {
		return current, nil
	}

	updated, err := s.repo.Update(ctx, input.JobID, input.UserID, update)
	if err != nil {
		s.logger.Error().Err(err).Str("job_id", input.JobID).Msg("failed to update job")
		return nil, err
	}

	if update.Status != nil && *update.Status != current.Status {
		metrics.JobStatusChangesTotal.WithLabelValues(string(current.Status), string(updated.Status)).Inc()
		s.notify(ctx, domain.Notification{
			Event:     domain.EventJobStatusUpdated,
			Message:   fmt.Sprintf("%s at %s moved from %s to %s", updated.Position, updated.Company, current.Status, updated.Status),
			Payload:   updated,
			OldStatus: string(current.Status),
			NewStatus: string(updated.Status),
			Audience:  domain.AudienceAll,
		})
	}

	return updated, nil
}

// Delete removes an owned job and emits one job-deleted notification.
func (s *JobService) Delete(ctx context.Context, id, userID string) error {
	job, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		s.logger.Error().Err(err).Str("job_id", id).Msg("failed to delete job")
		return err
	}

	s.logger.Info().Str("job_id", id).Str("user_id", userID).Msg("job deleted")

	s.notify(ctx, domain.Notification{
		Event:    domain.EventJobDeleted,
		Message:  fmt.Sprintf("Application for %s at %s deleted", job.Position, job.Company),
		Payload:  job,
		Audience: domain.AudienceAll,
	})

	return nil
}

// Stats returns the per-status distribution of the user's jobs, zero-filled
// over the full enum, plus the five most recently updated applications.
func (s *JobService) Stats(ctx context.Context, userID string) (*ports.JobStats, error) {
	observed, err := s.repo.CountByStatus(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.JobStatus]int64, len(domain.AllJobStatuses()))
	var total int64
	for _, status := range domain.AllJobStatuses() {
		counts[status] = observed[status]
		total += observed[status]
	}

	recent, err := s.repo.RecentlyUpdated(ctx, userID, 5)
	if err != nil {
		return nil, err
	}

	return &ports.JobStats{
		Total:        total,
		StatusCounts: counts,
		Recent:       recent,
	}, nil
}

// notify stamps and publishes a notification. Publish is fire-and-forget;
// it never fails the surrounding mutation.
func (s *JobService) notify(ctx context.Context, n domain.Notification) {
	n.ID = uuid.NewString()
	n.Timestamp = time.Now().UTC()
	s.publisher.Publish(ctx, n)
}

func invalidStatusError(status string) error {
	return domain.NewValidationError(domain.FieldError{
		Field:   "status",
		Message: fmt.Sprintf("status must be one of: applied interview offer rejected accepted (got %q)", status),
	})
}
