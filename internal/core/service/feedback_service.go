package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jobtrackr/jobtracker-api/internal/core/domain"
	"github.com/jobtrackr/jobtracker-api/internal/core/ports"
)

// FeedbackService implements the public feedback use cases.
type FeedbackService struct {
	repo      ports.FeedbackRepository
	publisher ports.Publisher
	logger    zerolog.Logger
}

func NewFeedbackService(repo ports.FeedbackRepository, publisher ports.Publisher, logger zerolog.Logger) *FeedbackService {
	return &FeedbackService{repo: repo, publisher: publisher, logger: logger}
}

// Create inserts a feedback entry. Category defaults to "general", IsPublic
// to true, status to "pending". Emits one new-feedback notification to the
// admin audience after the write commits.
func (s *FeedbackService) Create(ctx context.Context, input ports.CreateFeedbackInput) (*domain.Feedback, error) {
	if input.Rating < domain.MinRating || input.Rating > domain.MaxRating {
		return nil, domain.NewValidationError(domain.FieldError{
			Field:   "rating",
			Message: fmt.Sprintf("rating must be an integer between %d and %d", domain.MinRating, domain.MaxRating),
		})
	}

	category := domain.CategoryGeneral
	if input.Category != "" {
		category = domain.FeedbackCategory(input.Category)
	}
	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}

	now := time.Now().UTC()
	fb := &domain.Feedback{
		Name:      input.Name,
		Email:     input.Email,
		Text:      input.Text,
		Rating:    input.Rating,
		Category:  category,
		IsPublic:  isPublic,
		Status:    domain.FeedbackPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, fb)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create feedback")
		return nil, err
	}

	s.logger.Info().Str("feedback_id", created.ID).Int("rating", created.Rating).Msg("feedback submitted")

	s.publisher.Publish(ctx, domain.Notification{
		ID:        uuid.NewString(),
		Event:     domain.EventNewFeedback,
		Message:   fmt.Sprintf("New %d-star feedback received", created.Rating),
		Payload:   created,
		Audience:  domain.AudienceAdmin,
		Timestamp: now,
	})

	return created, nil
}

// PublicList returns is_public entries only, with the email field stripped
// from every item.
func (s *FeedbackService) PublicList(ctx context.Context, input ports.ListFeedbackInput) (*ports.FeedbackList, error) {
	page, limit := ports.NormalizePage(input.Page, input.Limit)
	sortField, sortOrder := ports.NormalizeSort(input.SortField, input.SortOrder)

	items, total, err := s.repo.List(ctx, ports.FeedbackFilter{
		Category:   input.Category,
		Rating:     input.Rating,
		PublicOnly: true,
		Page:       page,
		Limit:      limit,
		SortField:  sortField,
		SortOrder:  sortOrder,
	})
	if err != nil {
		return nil, err
	}

	sanitized := make([]*domain.Feedback, 0, len(items))
	for _, fb := range items {
		v := fb.PublicView()
		sanitized = append(sanitized, &v)
	}

	return &ports.FeedbackList{
		Items: sanitized,
		Total: total,
		Page:  ports.NewPageInfo(total, page, limit),
	}, nil
}

// Stats returns the rating histogram zero-filled over 1..5 plus the overall
// average (0 when no feedback exists). Recomputed on every call.
func (s *FeedbackService) Stats(ctx context.Context) (*ports.FeedbackStats, error) {
	observed, err := s.repo.RatingCounts(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int64, domain.MaxRating)
	var total int64
	for rating := domain.MinRating; rating <= domain.MaxRating; rating++ {
		counts[rating] = observed[rating]
		total += observed[rating]
	}

	average := 0.0
	if total > 0 {
		average, err = s.repo.AverageRating(ctx)
		if err != nil {
			return nil, err
		}
	}

	return &ports.FeedbackStats{
		Total:         total,
		AverageRating: average,
		RatingCounts:  counts,
	}, nil
}
