package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobtrackr/jobtracker-api/internal/core/ports"
)

// AdminHandler handles the admin-only statistics and moderation surface.
// Role enforcement happens in the RBAC middleware, not here.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Overview handles GET /admin/stats.
//
// @Summary      Aggregate statistics over users, jobs, and feedback
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      403  {object}  errorEnvelope
// @Router       /admin/stats [get]
func (h *AdminHandler) Overview(c echo.Context) error {
	overview, err := h.service.Overview(c.Request().Context())
	if err != nil {
		return err
	}

	byStatus := make(map[string]int64, len(overview.Jobs.ByStatus))
	for status, count := range overview.Jobs.ByStatus {
		byStatus[string(status)] = count
	}

	return respond(c, http.StatusOK, adminOverviewResponse{
		Users: adminUserStatsResponse{
			Total:         overview.Users.Total,
			Active:        overview.Users.Active,
			NewLast30Days: overview.Users.NewLast30Days,
		},
		Jobs: adminJobStatsResponse{
			Total:         overview.Jobs.Total,
			ByStatus:      byStatus,
			NewLast30Days: overview.Jobs.NewLast30Days,
		},
		Feedback: adminFeedbackStatsResponse{
			Total:         overview.Feedback.Total,
			AverageRating: overview.Feedback.AverageRating,
			NewLast30Days: overview.Feedback.NewLast30Days,
		},
	})
}

// ListUsers handles GET /admin/users.
//
// @Summary      List users with per-user job counts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        role    query     string  false  "Filter by role"
// @Param        search  query     string  false  "Substring match on name or email"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Page size (default 10, max 100)"
// @Success      200     {object}  listEnvelope
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, limit := pageParams(c)
	sortField, sortOrder := sortParams(c)

	result, err := h.service.ListUsers(c.Request().Context(), ports.ListUsersInput{
		Role:      c.QueryParam("role"),
		Search:    c.QueryParam("search"),
		Page:      page,
		Limit:     limit,
		SortField: sortField,
		SortOrder: sortOrder,
	})
	if err != nil {
		return err
	}

	users := make([]adminUserResponse, 0, len(result.Items))
	for _, item := range result.Items {
		users = append(users, toAdminUserResponse(item))
	}

	return respondList(c, http.StatusOK, len(users), result.Total, result.Page, users)
}

// ListJobs handles GET /admin/jobs — jobs across all users.
//
// @Summary      List jobs across all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status, or \"all\""
// @Param        search  query     string  false  "Substring match on company or position"
// @Success      200     {object}  listEnvelope
// @Router       /admin/jobs [get]
func (h *AdminHandler) ListJobs(c echo.Context) error {
	status, err := statusParam(c)
	if err != nil {
		return err
	}
	page, limit := pageParams(c)
	sortField, sortOrder := sortParams(c)

	result, err := h.service.ListJobs(c.Request().Context(), ports.ListJobsInput{
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

// ListFeedback handles GET /admin/feedback — all entries, public or not.
//
// @Summary      List all feedback for moderation
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status    query     string  false  "Filter by moderation status"
// @Param        category  query     string  false  "Filter by category"
// @Param        rating    query     int     false  "Filter by rating"
// @Success      200       {object}  listEnvelope
// @Router       /admin/feedback [get]
func (h *AdminHandler) ListFeedback(c echo.Context) error {
	status, err := statusParam(c)
	if err != nil {
		return err
	}
	category, err := filterParam(c, "category")
	if err != nil {
		return err
	}
	page, limit := pageParams(c)
	sortField, sortOrder := sortParams(c)

	result, err := h.service.ListFeedback(c.Request().Context(), ports.ListFeedbackInput{
		Status:    status,
		Category:  category,
		Rating:    ratingParam(c),
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

// UpdateFeedbackStatus handles PUT /admin/feedback/:id/status.
//
// @Summary      Update the moderation status of a feedback entry
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                       true  "Feedback id"
// @Param        body  body      updateFeedbackStatusRequest  true  "New status"
// @Success      200   {object}  envelope
// @Failure      404   {object}  errorEnvelope
// @Router       /admin/feedback/{id}/status [put]
func (h *AdminHandler) UpdateFeedbackStatus(c echo.Context) error {
	var req updateFeedbackStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	fb, err := h.service.UpdateFeedbackStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "feedback status updated", fb)
}

// DeleteFeedback handles DELETE /admin/feedback/:id.
//
// @Summary      Delete a feedback entry
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Feedback id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  errorEnvelope
// @Router       /admin/feedback/{id} [delete]
func (h *AdminHandler) DeleteFeedback(c echo.Context) error {
	if err := h.service.DeleteFeedback(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "feedback deleted", nil)
}

// ToggleUserStatus handles PUT /admin/users/:id/toggle-status.
//
// @Summary      Flip a user's active flag
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  errorEnvelope
// @Router       /admin/users/{id}/toggle-status [put]
func (h *AdminHandler) ToggleUserStatus(c echo.Context) error {
	user, err := h.service.ToggleUserStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "user status updated", user)
}
