package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jobtrackr/jobtracker-api/internal/api/metrics"
	"github.com/jobtrackr/jobtracker-api/internal/core/ports"
)

// RateLimiter guards the unauthenticated submission endpoint. A nil limiter
// disables the check.
type RateLimiter interface {
	Allow(ctx context.Context, scope, key string) (bool, error)
}

// FeedbackHandler handles the public feedback surface: anonymous submission,
// public listing, and the rating overview.
type FeedbackHandler struct {
	service ports.FeedbackService
	limiter RateLimiter
}

func NewFeedbackHandler(service ports.FeedbackService, limiter RateLimiter) *FeedbackHandler {
	return &FeedbackHandler{service: service, limiter: limiter}
}

// Create handles POST /feedback. No authentication required.
//
// @Summary      Submit feedback
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body      createFeedbackRequest  true  "Feedback details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  errorEnvelope
// @Failure      429   {object}  errorEnvelope
// @Router       /feedback [post]
func (h *FeedbackHandler) Create(c echo.Context) error {
	if h.limiter != nil {
		// Fail open: a broken limiter must not take the endpoint down.
		allowed, err := h.limiter.Allow(c.Request().Context(), "feedback", c.RealIP())
		if err == nil && !allowed {
			metrics.FeedbackRateLimitedTotal.Inc()
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many submissions, try again later")
		}
	}

	var req createFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	fb, err := h.service.Create(c.Request().Context(), ports.CreateFeedbackInput{
		Name:     req.Name,
		Email:    req.Email,
		Text:     req.Feedback,
		Rating:   *req.Rating,
		Category: req.Category,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		return err
	}

	metrics.FeedbackSubmittedTotal.WithLabelValues(strconv.Itoa(fb.Rating)).Inc()
	return respondMessage(c, http.StatusCreated, "feedback submitted", fb)
}

// PublicList handles GET /feedback/public. Only is_public entries are
// returned and the email field is stripped from every item.
//
// @Summary      List public feedback
// @Tags         feedback
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Param        rating    query     int     false  "Filter by rating"
// @Param        page      query     int     false  "Page number (default 1)"
// @Param        limit     query     int     false  "Page size (default 10, max 100)"
// @Success      200       {object}  listEnvelope
// @Router       /feedback/public [get]
func (h *FeedbackHandler) PublicList(c echo.Context) error {
	category, err := filterParam(c, "category")
	if err != nil {
		return err
	}
	page, limit := pageParams(c)
	sortField, sortOrder := sortParams(c)

	result, err := h.service.PublicList(c.Request().Context(), ports.ListFeedbackInput{
		Category:  category,
		Rating:    ratingParam(c),
		Page:      page,
		Limit:     limit,
		SortField: sortField,
		SortOrder: sortOrder,
	})
	if err != nil {
		return err
	}

	return respondList(c, http.StatusOK, len(result.Items), result.Total, result.Page, result.Items)
}

// Stats handles GET /feedback/stats.
//
// @Summary      Rating histogram and average
// @Tags         feedback
// @Produce      json
// @Success      200  {object}  envelope
// @Router       /feedback/stats [get]
func (h *FeedbackHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	counts := make(map[string]int64, len(stats.RatingCounts))
	for rating, count := range stats.RatingCounts {
		counts[strconv.Itoa(rating)] = count
	}

	return respond(c, http.StatusOK, feedbackStatsResponse{
		Total:         stats.Total,
		AverageRating: stats.AverageRating,
		RatingCounts:  counts,
	})
}
