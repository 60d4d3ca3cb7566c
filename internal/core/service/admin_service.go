package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobtrackr/jobtracker-api/internal/core/domain"
	"github.com/jobtrackr/jobtracker-api/internal/core/ports"
)

const recencyWindow = 30 * 24 * time.Hour

// AdminService implements the admin-only statistics and moderation use cases.
type AdminService struct {
	users    ports.UserRepository
	jobs     ports.JobRepository
	feedback ports.FeedbackRepository
	logger   zerolog.Logger
}

func NewAdminService(
	users ports.UserRepository,
	jobs ports.JobRepository,
	feedback ports.FeedbackRepository,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{users: users, jobs: jobs, feedback: feedback, logger: logger}
}

// Overview computes aggregate statistics over all three collections. The
// 30-day window is relative to the invocation time; nothing is cached.
func (s *AdminService) Overview(ctx context.Context) (*ports.AdminOverview, error) {
	since := time.Now().UTC().Add(-recencyWindow)

	userTotal, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	userActive, err := s.users.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	userNew, err := s.users.CountCreatedSince(ctx, since)
	if err != nil {
		return nil, err
	}

	observed, err := s.jobs.CountByStatus(ctx, "")
	if err != nil {
		return nil, err
	}
	byStatus := make(map[domain.JobStatus]int64, len(domain.AllJobStatuses()))
	var jobTotal int64
	for _, status := range domain.AllJobStatuses() {
		byStatus[status] = observed[status]
		jobTotal += observed[status]
	}
	jobNew, err := s.jobs.CountCreatedSince(ctx, since)
	if err != nil {
		return nil, err
	}

	fbTotal, err := s.feedback.Count(ctx)
	if err != nil {
		return nil, err
	}
	fbAverage := 0.0
	if fbTotal > 0 {
		fbAverage, err = s.feedback.AverageRating(ctx)
		if err != nil {
			return nil, err
		}
	}
	fbNew, err := s.feedback.CountCreatedSince(ctx, since)
	if err != nil {
		return nil, err
	}

	return &ports.AdminOverview{
		Users:    ports.AdminUserStats{Total: userTotal, Active: userActive, NewLast30Days: userNew},
		Jobs:     ports.AdminJobStats{Total: jobTotal, ByStatus: byStatus, NewLast30Days: jobNew},
		Feedback: ports.AdminFeedbackStats{Total: fbTotal, AverageRating: fbAverage, NewLast30Days: fbNew},
	}, nil
}

// ListUsers returns a page of users, each paired with the count of jobs they
// own. The per-user counts are independent reads; a concurrent write may make
// them momentarily stale relative to the page.
func (s *AdminService) ListUsers(ctx context.Context, input ports.ListUsersInput) (*ports.UserList, error) {
	page, limit := ports.NormalizePage(input.Page, input.Limit)
	sortField, sortOrder := ports.NormalizeSort(input.SortField, input.SortOrder)

	users, total, err := s.users.List(ctx, ports.UserFilter{
		Role:      input.Role,
		Search:    input.Search,
		Page:      page,
		Limit:     limit,
		SortField: sortField,
		SortOrder: sortOrder,
	})
	if err != nil {
		return nil, err
	}

	items := make([]ports.UserWithJobCount, 0, len(users))
	for _, user := range users {
		count, err := s.jobs.CountForUser(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, ports.UserWithJobCount{User: user, JobCount: count})
	}

	return &ports.UserList{
		Items: items,
		Total: total,
		Page:  ports.NewPageInfo(total, page, limit),
	}, nil
}

// ListJobs lists jobs across all users.
func (s *AdminService) ListJobs(ctx context.Context, input ports.ListJobsInput) (*ports.JobList, error) {
	if input.Status != "" && !domain.ValidJobStatus(domain.JobStatus(input.Status)) {
		return nil, invalidStatusError(input.Status)
	}

	page, limit := ports.NormalizePage(input.Page, input.Limit)
	sortField, sortOrder := ports.NormalizeSort(input.SortField, input.SortOrder)

	items, total, err := s.jobs.List(ctx, ports.JobFilter{
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

// ListFeedback lists all feedback entries, public or not, for moderation.
func (s *AdminService) ListFeedback(ctx context.Context, input ports.ListFeedbackInput) (*ports.FeedbackList, error) {
	page, limit := ports.NormalizePage(input.Page, input.Limit)
	sortField, sortOrder := ports.NormalizeSort(input.SortField, input.SortOrder)

	items, total, err := s.feedback.List(ctx, ports.FeedbackFilter{
		Status:    input.Status,
		Category:  input.Category,
		Rating:    input.Rating,
		Search:    input.Search,
		Page:      page,
		Limit:     limit,
		SortField: sortField,
		SortOrder: sortOrder,
	})
	if err != nil {
		return nil, err
	}

	return &ports.FeedbackList{
		Items: items,
		Total: total,
		Page:  ports.NewPageInfo(total, page, limit),
	}, nil
}

// UpdateFeedbackStatus moves a feedback entry through the moderation states.
func (s *AdminService) UpdateFeedbackStatus(ctx context.Context, id, status string) (*domain.Feedback, error) {
	next := domain.FeedbackStatus(status)
	if !domain.ValidFeedbackStatus(next) {
		return nil, domain.NewValidationError(domain.FieldError{
			Field:   "status",
			Message: "status must be one of: pending reviewed resolved",
		})
	}

	updated, err := s.feedback.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("feedback_id", id).Str("status", status).Msg("feedback status updated")
	return updated, nil
}

// DeleteFeedback removes a feedback entry.
func (s *AdminService) DeleteFeedback(ctx context.Context, id string) error {
	if err := s.feedback.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("feedback_id", id).Msg("feedback deleted")
	return nil
}

// ToggleUserStatus flips the user's active flag. The user's jobs are left in
// place either way.
func (s *AdminService) ToggleUserStatus(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.users.SetActive(ctx, id, !user.IsActive)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Bool("is_active", updated.IsActive).Msg("user status toggled")
	return updated, nil
}
