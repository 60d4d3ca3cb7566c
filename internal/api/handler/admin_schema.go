package handler

import (
	"time"

	"github.com/jobtrackr/jobtracker-api/internal/core/ports"
)

// --- Request types ---

type updateFeedbackStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed resolved"`
}

// --- Response types ---

type adminUserStatsResponse struct {
	Total         int64 `json:"total"`
	Active        int64 `json:"active"`
	NewLast30Days int64 `json:"new_last_30_days"`
}

type adminJobStatsResponse struct {
	Total         int64            `json:"total"`
	ByStatus      map[string]int64 `json:"by_status"`
	NewLast30Days int64            `json:"new_last_30_days"`
}

type adminFeedbackStatsResponse struct {
	Total         int64   `json:"total"`
	AverageRating float64 `json:"average_rating"`
	NewLast30Days int64   `json:"new_last_30_days"`
}

type adminOverviewResponse struct {
	Users    adminUserStatsResponse     `json:"users"`
	Jobs     adminJobStatsResponse      `json:"jobs"`
	Feedback adminFeedbackStatsResponse `json:"feedback"`
}

// adminUserResponse pairs a user with the number of jobs they own.
type adminUserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	JobCount  int64     `json:"job_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toAdminUserResponse(item ports.UserWithJobCount) adminUserResponse {
	return adminUserResponse{
		ID:        item.User.ID,
		Name:      item.User.Name,
		Email:     item.User.Email,
		Role:      item.User.Role,
		IsActive:  item.User.IsActive,
		JobCount:  item.JobCount,
		CreatedAt: item.User.CreatedAt,
		UpdatedAt: item.User.UpdatedAt,
	}
}
