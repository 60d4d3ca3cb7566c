package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jobtrackr/jobtracker-api/internal/api/metrics"
	"github.com/jobtrackr/jobtracker-api/internal/core/ports"
)

// JobHandler handles HTTP requests for job application operations. Every
// route is owner-scoped: the caller only ever sees their own jobs.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List handles GET /jobs.
//
// @Summary      List own job applications
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status, or \"all\""
// @Param        search  query     string  false  "Substring match on company or position"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Page size (default 10, max 100)"
// @Success      200     {object}  listEnvelope
// @Failure      400     {object}  errorEnvelope
// @Failure      401     {object}  errorEnvelope
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	status, err := statusParam(c)
	if err != nil {
		return err
	}
	page, limit := pageParams(c)
	sortField, sortOrder := sortParams(c)

	result, err := h.service.List(c.Request().Context(), ports.ListJobsInput{
		UserID:    userID,
		Status:    status,
		Search:    c.QueryParam("search"),
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

// Get handles GET /jobs/:id.
//
// @Summary      Get one job application
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  errorEnvelope
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	job, err := h.service.Get(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, job)
}

// Create handles POST /jobs.
//
// @Summary      Create a job application
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job application details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  errorEnvelope
// @Failure      401   {object}  errorEnvelope
// @Router       /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var appliedDate time.Time
	if req.AppliedDate != nil {
		appliedDate = *req.AppliedDate
	}

	job, err := h.service.Create(c.Request().Context(), ports.CreateJobInput{
		UserID:      userID,
		Company:     req.Company,
		Position:    req.Position,
		Status:      req.Status,
		AppliedDate: appliedDate,
		Notes:       req.Notes,
		Salary:      req.Salary,
		Location:    req.Location,
		JobURL:      req.JobURL,
	})
	if err != nil {
		return err
	}

	metrics.JobsCreatedTotal.WithLabelValues(string(job.Status)).Inc()
	return respondMessage(c, http.StatusCreated, "job created", job)
}

// Update handles PUT /jobs/:id.
//
// @Summary      Update a job application
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Job id"
// @Param        body  body      updateJobRequest  true  "Fields to change"
// @Success      200   {object}  envelope
// @Failure      400   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := h.service.Update(c.Request().Context(), ports.UpdateJobInput{
		UserID:      userID,
		JobID:       c.Param("id"),
		Company:     req.Company,
		Position:    req.Position,
		Status:      req.Status,
		AppliedDate: req.AppliedDate,
		Notes:       req.Notes,
		Salary:      req.Salary,
		Location:    req.Location,
		JobURL:      req.JobURL,
	})
	if err != nil {
		return err
	}

	return respondMessage(c, http.StatusOK, "job updated", job)
}

// Delete handles DELETE /jobs/:id.
//
// @Summary      Delete a job application
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  errorEnvelope
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "job deleted", nil)
}

// Stats handles GET /jobs/stats/overview.
//
// @Summary      Per-status counts and recent activity for own jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  errorEnvelope
// @Router       /jobs/stats/overview [get]
func (h *JobHandler) Stats(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Stats(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	counts := make(map[string]int64, len(stats.StatusCounts))
	for status, count := range stats.StatusCounts {
		counts[string(status)] = count
	}

	return respond(c, http.StatusOK, jobStatsResponse{
		Total:        stats.Total,
		StatusCounts: counts,
		Recent:       stats.Recent,
	})
}
