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

type stubJobRepo struct {
	createFn          func(ctx context.Context, job *domain.Job) (*domain.Job, error)
	findByIDFn        func(ctx context.Context, id, userID string) (*domain.Job, error)
	listFn            func(ctx context.Context, filter ports.JobFilter) ([]*domain.Job, int64, error)
	updateFn          func(ctx context.Context, id, userID string, update ports.JobUpdate) (*domain.Job, error)
	deleteFn          func(ctx context.Context, id, userID string) error
	countByStatusFn   func(ctx context.Context, userID string) (map[domain.JobStatus]int64, error)
	recentlyUpdatedFn func(ctx context.Context, userID string, limit int) ([]*domain.Job, error)
}

func (r *stubJobRepo) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	return r.createFn(ctx, job)
}

func (r *stubJobRepo) FindByID(ctx context.Context, id, userID string) (*domain.Job, error) {
	return r.findByIDFn(ctx, id, userID)
}

func (r *stubJobRepo) List(ctx context.Context, filter ports.JobFilter) ([]*domain.Job, int64, error) {
	return r.listFn(ctx, filter)
}

func (r *stubJobRepo) Update(ctx context.Context, id, userID string, update ports.JobUpdate) (*domain.Job, error) {
	return r.updateFn(ctx, id, userID, update)
}

func (r *stubJobRepo) Delete(ctx context.Context, id, userID string) error {
	return r.deleteFn(ctx, id, userID)
}

func (r *stubJobRepo) CountByStatus(ctx context.Context, userID string) (map[domain.JobStatus]int64, error) {
	return r.countByStatusFn(ctx, userID)
}

func (r *stubJobRepo) RecentlyUpdated(ctx context.Context, userID string, limit int) ([]*domain.Job, error) {
	return r.recentlyUpdatedFn(ctx, userID, limit)
}

func (r *stubJobRepo) Count(context.Context) (int64, error)                  { return 0, nil }
func (r *stubJobRepo) CountForUser(context.Context, string) (int64, error)   { return 0, nil }
func (r *stubJobRepo) CountCreatedSince(context.Context, time.Time) (int64, error) {
	return 0, nil
}

// recordingPublisher captures every notification handed to it.
type recordingPublisher struct {
	published []domain.Notification
}

func (p *recordingPublisher) Publish(_ context.Context, n domain.Notification) {
	p.published = append(p.published, n)
}

func strPtr(s string) *string { return &s }

func TestJobService_Create_Defaults(t *testing.T) {
	var inserted *domain.Job
	repo := &stubJobRepo{
		createFn: func(_ context.Context, job *domain.Job) (*domain.Job, error) {
			inserted = job
			created := *job
			created.ID = "job1"
			return &created, nil
		},
	}
	pub := &recordingPublisher{}
	svc := NewJobService(repo, pub, zerolog.Nop())

	before := time.Now().UTC()
	job, err := svc.Create(context.Background(), ports.CreateJobInput{
		UserID:   "u1",
		Company:  "Acme",
		Position: "Engineer",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if job.Status != domain.StatusApplied {
		t.Fatalf("expected default status applied, got %s", job.Status)
	}
	if inserted.AppliedDate.Before(before) {
		t.Fatalf("expected applied date defaulted to now, got %v", inserted.AppliedDate)
	}
	if len(pub.published) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(pub.published))
	}
	n := pub.published[0]
	if n.Event != domain.EventJobCreated || n.Audience != domain.AudienceAll {
		t.Fatalf("unexpected notification: %+v", n)
	}
	if n.ID == "" || n.Timestamp.IsZero() {
		t.Fatalf("notification must be stamped with id and timestamp: %+v", n)
	}
}

func TestJobService_Create_InvalidStatus(t *testing.T) {
	repo := &stubJobRepo{
		createFn: func(_ context.Context, job *domain.Job) (*domain.Job, error) {
			t.Fatalf("repo should not be called")
			return nil, nil
		},
	}
	pub := &recordingPublisher{}
	svc := NewJobService(repo, pub, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateJobInput{
		UserID:   "u1",
		Company:  "Acme",
		Position: "Engineer",
		Status:   "hired",
	})

	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(pub.published) != 0 {
		t.Fatalf("no notification expected on validation failure")
	}
}

func TestJobService_List_NormalizesPaging(t *testing.T) {
	var captured ports.JobFilter
	repo := &stubJobRepo{
		listFn: func(_ context.Context, filter ports.JobFilter) ([]*domain.Job, int64, error) {
			captured = filter
			return []*domain.Job{}, 25, nil
		},
	}
	svc := NewJobService(repo, &recordingPublisher{}, zerolog.Nop())

	result, err := svc.List(context.Background(), ports.ListJobsInput{
		UserID: "u1",
		Page:   0,
		Limit:  1000,
	})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if captured.Page != 1 || captured.Limit != ports.MaxLimit {
		t.Fatalf("expected normalized page=1 limit=%d, got page=%d limit=%d",
			ports.MaxLimit, captured.Page, captured.Limit)
	}
	if captured.SortField != ports.DefaultSortField || captured.SortOrder != ports.SortDesc {
		t.Fatalf("expected default sort, got %s %s", captured.SortField, captured.SortOrder)
	}
	if result.Page.Pages != 1 {
		t.Fatalf("25 rows at limit 100 must be 1 page, got %d", result.Page.Pages)
	}
}

func TestJobService_List_InvalidStatus(t *testing.T) {
	repo := &stubJobRepo{
		listFn: func(_ context.Context, _ ports.JobFilter) ([]*domain.Job, int64, error) {
			t.Fatalf("repo should not be called")
			return nil, 0, nil
		},
	}
	svc := NewJobService(repo, &recordingPublisher{}, zerolog.Nop())

	_, err := svc.List(context.Background(), ports.ListJobsInput{UserID: "u1", Status: "ghosted"})
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestJobService_Update_StatusChangeNotifies(t *testing.T) {
	current := &domain.Job{ID: "job1", UserID: "u1", Company: "Acme", Position: "Engineer", Status: domain.StatusApplied}
	repo := &stubJobRepo{
		findByIDFn: func(_ context.Context, id, userID string) (*domain.Job, error) {
			return current, nil
		},
		updateFn: func(_ context.Context, id, userID string, update ports.JobUpdate) (*domain.Job, error) {
			updated := *current
			updated.Status = *update.Status
			return &updated, nil
		},
	}
	pub := &recordingPublisher{}
	svc := NewJobService(repo, pub, zerolog.Nop())

	status := string(domain.StatusInterview)
	job, err := svc.Update(context.Background(), ports.UpdateJobInput{
		UserID: "u1",
		JobID:  "job1",
		Status: &status,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if job.Status != domain.StatusInterview {
		t.Fatalf("unexpected status: %s", job.Status)
	}

	if len(pub.published) != 1 {
		t.Fatalf("expected exactly 1 notification, got %d", len(pub.published))
	}
	n := pub.published[0]
	if n.Event != domain.EventJobStatusUpdated {
		t.Fatalf("unexpected event: %s", n.Event)
	}
	if n.OldStatus != string(domain.StatusApplied) || n.NewStatus != string(domain.StatusInterview) {
		t.Fatalf("expected old/new status applied→interview, got %s→%s", n.OldStatus, n.NewStatus)
	}
}

func TestJobService_Update_SameStatusSilent(t *testing.T) {
	current := &domain.Job{ID: "job1", UserID: "u1", Status: domain.StatusApplied}
	repo := &stubJobRepo{
		findByIDFn: func(_ context.Context, id, userID string) (*domain.Job, error) {
			return current, nil
		},
		updateFn: func(_ context.Context, id, userID string, update ports.JobUpdate) (*domain.Job, error) {
			updated := *current
			if update.Notes != nil {
				updated.Notes = *update.Notes
			}
			return &updated, nil
		},
	}
	pub := &recordingPublisher{}
	svc := NewJobService(repo, pub, zerolog.Nop())

	status := string(domain.StatusApplied)
	if _, err := svc.Update(context.Background(), ports.UpdateJobInput{
		UserID: "u1",
		JobID:  "job1",
		Status: &status,
		Notes:  strPtr("followed up"),
	}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if len(pub.published) != 0 {
		t.Fatalf("no notification expected when status is unchanged, got %d", len(pub.published))
	}
}

func TestJobService_Update_EmptyUpdateReturnsCurrent(t *testing.T) {
	current := &domain.Job{ID: "job1", UserID: "u1", Status: domain.StatusOffer}
	repo := &stubJobRepo{
		findByIDFn: func(_ context.Context, id, userID string) (*domain.Job, error) {
			return current, nil
		},
		updateFn: func(_ context.Context, id, userID string, update ports.JobUpdate) (*domain.Job, error) {
			t.Fatalf("repo update should not be called for an empty update")
			return nil, nil
		},
	}
	svc := NewJobService(repo, &recordingPublisher{}, zerolog.Nop())

	job, err := svc.Update(context.Background(), ports.UpdateJobInput{UserID: "u1", JobID: "job1"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if job != current {
		t.Fatalf("expected current job returned unchanged")
	}
}

func TestJobService_Update_NotOwned(t *testing.T) {
	repo := &stubJobRepo{
		findByIDFn: func(_ context.Context, id, userID string) (*domain.Job, error) {
			return nil, domain.ErrJobNotFound
		},
	}
	pub := &recordingPublisher{}
	svc := NewJobService(repo, pub, zerolog.Nop())

	status := string(domain.StatusOffer)
	_, err := svc.Update(context.Background(), ports.UpdateJobInput{
		UserID: "intruder",
		JobID:  "job1",
		Status: &status,
	})
	if !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
	if len(pub.published) != 0 {
		t.Fatalf("no notification expected, got %d", len(pub.published))
	}
}

func TestJobService_Delete_Notifies(t *testing.T) {
	job := &domain.Job{ID: "job1", UserID: "u1", Company: "Acme", Position: "Engineer"}
	repo := &stubJobRepo{
		findByIDFn: func(_ context.Context, id, userID string) (*domain.Job, error) {
			return job, nil
		},
		deleteFn: func(_ context.Context, id, userID string) error {
			return nil
		},
	}
	pub := &recordingPublisher{}
	svc := NewJobService(repo, pub, zerolog.Nop())

	if err := svc.Delete(context.Background(), "job1", "u1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(pub.published) != 1 || pub.published[0].Event != domain.EventJobDeleted {
		t.Fatalf("expected one job-deleted notification, got %+v", pub.published)
	}
}

func TestJobService_Stats_ZeroFilled(t *testing.T) {
	repo := &stubJobRepo{
		countByStatusFn: func(_ context.Context, userID string) (map[domain.JobStatus]int64, error) {
			return map[domain.JobStatus]int64{
				domain.StatusApplied:   3,
				domain.StatusInterview: 1,
			}, nil
		},
		recentlyUpdatedFn: func(_ context.Context, userID string, limit int) ([]*domain.Job, error) {
			if limit != 5 {
				t.Fatalf("expected recent limit 5, got %d", limit)
			}
			return []*domain.Job{{ID: "job1"}}, nil
		},
	}
	svc := NewJobService(repo, &recordingPublisher{}, zerolog.Nop())

	stats, err := svc.Stats(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.Total != 4 {
		t.Fatalf("expected total 4, got %d", stats.Total)
	}
	if len(stats.StatusCounts) != len(domain.AllJobStatuses()) {
		t.Fatalf("expected all %d statuses present, got %d", len(domain.AllJobStatuses()), len(stats.StatusCounts))
	}
	for _, status := range []domain.JobStatus{domain.StatusOffer, domain.StatusRejected, domain.StatusAccepted} {
		if count, ok := stats.StatusCounts[status]; !ok || count != 0 {
			t.Fatalf("expected %s zero-filled, got %d (present=%v)", status, count, ok)
		}
	}
	if len(stats.Recent) != 1 {
		t.Fatalf("expected 1 recent job, got %d", len(stats.Recent))
	}
}
