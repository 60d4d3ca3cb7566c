package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobtrackr/jobtracker-api/internal/core/domain"
	"github.com/jobtrackr/jobtracker-api/internal/core/ports"
)

type stubUserRepo struct {
	findByIDFn   func(ctx context.Context, id string) (*domain.User, error)
	listFn       func(ctx context.Context, filter ports.UserFilter) ([]*domain.User, int64, error)
	setActiveFn  func(ctx context.Context, id string, active bool) (*domain.User, error)
	count        int64
	countActive  int64
	countCreated int64
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func (r *stubUserRepo) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findByIDFn(ctx, id)
}

func (r *stubUserRepo) List(ctx context.Context, filter ports.UserFilter) ([]*domain.User, int64, error) {
	return r.listFn(ctx, filter)
}

func (r *stubUserRepo) SetActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	return r.setActiveFn(ctx, id, active)
}

func (r *stubUserRepo) Count(context.Context) (int64, error)       { return r.count, nil }
func (r *stubUserRepo) CountActive(context.Context) (int64, error) { return r.countActive, nil }
func (r *stubUserRepo) CountCreatedSince(context.Context, time.Time) (int64, error) {
	return r.countCreated, nil
}

func TestAdminService_Overview(t *testing.T) {
	users := &stubUserRepo{count: 10, countActive: 8, countCreated: 2}
	jobs := &stubJobRepo{
		countByStatusFn: func(_ context.Context, userID string) (map[domain.JobStatus]int64, error) {
			if userID != "" {
				t.Fatalf("overview must not be owner-scoped, got user %q", userID)
			}
			return map[domain.JobStatus]int64{domain.StatusApplied: 7}, nil
		},
	}
	feedback := &stubFeedbackRepo{
		averageRatingFn: func(context.Context) (float64, error) {
			t.Fatalf("average should not be computed with zero feedback")
			return 0, nil
		},
	}
	svc := NewAdminService(users, jobs, feedback, zerolog.Nop())

	overview, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview returned error: %v", err)
	}

	if overview.Users.Total != 10 || overview.Users.Active != 8 || overview.Users.NewLast30Days != 2 {
		t.Fatalf("unexpected user stats: %+v", overview.Users)
	}
	if overview.Jobs.Total != 7 {
		t.Fatalf("expected job total 7, got %d", overview.Jobs.Total)
	}
	if len(overview.Jobs.ByStatus) != len(domain.AllJobStatuses()) {
		t.Fatalf("expected zero-filled status map, got %+v", overview.Jobs.ByStatus)
	}
	if overview.Feedback.Total != 0 || overview.Feedback.AverageRating != 0 {
		t.Fatalf("expected zeroed feedback stats, got %+v", overview.Feedback)
	}
}

func TestAdminService_ListUsers_JobCounts(t *testing.T) {
	users := &stubUserRepo{
		listFn: func(_ context.Context, filter ports.UserFilter) ([]*domain.User, int64, error) {
			return []*domain.User{{ID: "u1"}, {ID: "u2"}}, 2, nil
		},
	}
	jobs := &stubJobRepo{}
	counts := map[string]int64{"u1": 3, "u2": 0}
	jobsWithCounts := &countingJobRepo{stubJobRepo: jobs, counts: counts}
	svc := NewAdminService(users, jobsWithCounts, &stubFeedbackRepo{}, zerolog.Nop())

	result, err := svc.ListUsers(context.Background(), ports.ListUsersInput{})
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	if result.Items[0].JobCount != 3 || result.Items[1].JobCount != 0 {
		t.Fatalf("unexpected job counts: %+v", result.Items)
	}
}

// countingJobRepo overrides CountForUser with a fixed table.
type countingJobRepo struct {
	*stubJobRepo
	counts map[string]int64
}

func (r *countingJobRepo) CountForUser(_ context.Context, userID string) (int64, error) {
	return r.counts[userID], nil
}

func TestAdminService_ListJobs_InvalidStatus(t *testing.T) {
	svc := NewAdminService(&stubUserRepo{}, &stubJobRepo{}, &stubFeedbackRepo{}, zerolog.Nop())

	_, err := svc.ListJobs(context.Background(), ports.ListJobsInput{Status: "bogus"})
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAdminService_ListJobs_Unscoped(t *testing.T) {
	jobs := &stubJobRepo{
		listFn: func(_ context.Context, filter ports.JobFilter) ([]*domain.Job, int64, error) {
			if filter.UserID != "" {
				t.Fatalf("admin listing must not be owner-scoped, got %q", filter.UserID)
			}
			return []*domain.Job{{ID: "job1"}}, 1, nil
		},
	}
	svc := NewAdminService(&stubUserRepo{}, jobs, &stubFeedbackRepo{}, zerolog.Nop())

	result, err := svc.ListJobs(context.Background(), ports.ListJobsInput{})
	if err != nil {
		t.Fatalf("ListJobs returned error: %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(result.Items))
	}
}

func TestAdminService_UpdateFeedbackStatus_InvalidStatus(t *testing.T) {
	svc := NewAdminService(&stubUserRepo{}, &stubJobRepo{}, &stubFeedbackRepo{}, zerolog.Nop())

	_, err := svc.UpdateFeedbackStatus(context.Background(), "fb1", "archived")
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAdminService_ToggleUserStatus(t *testing.T) {
	users := &stubUserRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, IsActive: true}, nil
		},
		setActiveFn: func(_ context.Context, id string, active bool) (*domain.User, error) {
			if active {
				t.Fatalf("expected toggle to deactivate an active user")
			}
			return &domain.User{ID: id, IsActive: active}, nil
		},
	}
	svc := NewAdminService(users, &stubJobRepo{}, &stubFeedbackRepo{}, zerolog.Nop())

	user, err := svc.ToggleUserStatus(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ToggleUserStatus returned error: %v", err)
	}
	if user.IsActive {
		t.Fatalf("expected user deactivated")
	}
}

func TestAdminService_ToggleUserStatus_NotFound(t *testing.T) {
	users := &stubUserRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	svc := NewAdminService(users, &stubJobRepo{}, &stubFeedbackRepo{}, zerolog.Nop())

	if _, err := svc.ToggleUserStatus(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
