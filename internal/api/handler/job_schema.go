package handler

import "time"

// --- Request types ---

type createJobRequest struct {
	Company     string     `json:"company"      validate:"required,max=100"`
	Position    string     `json:"position"     validate:"required,max=100"`
	Status      string     `json:"status"       validate:"omitempty,oneof=applied interview offer rejected accepted"`
	AppliedDate *time.Time `json:"applied_date"`
	Notes       string     `json:"notes"        validate:"max=500"`
	Salary      float64    `json:"salary"       validate:"gte=0"`
	Location    string     `json:"location"     validate:"max=100"`
	JobURL      string     `json:"job_url"      validate:"omitempty,url"`
}

// updateJobRequest is a partial update: nil fields are left untouched.
// Company and position use omitnil, not omitempty: a pointer to "" must be
// validated (and rejected), otherwise required fields could be blanked.
type updateJobRequest struct {
	Company     *string    `json:"company"      validate:"omitnil,min=1,max=100"`
	Position    *string    `json:"position"     validate:"omitnil,min=1,max=100"`
	Status      *string    `json:"status"       validate:"omitempty,oneof=applied interview offer rejected accepted"`
	AppliedDate *time.Time `json:"applied_date"`
	Notes       *string    `json:"notes"        validate:"omitempty,max=500"`
	Salary      *float64   `json:"salary"       validate:"omitempty,gte=0"`
	Location    *string    `json:"location"     validate:"omitempty,max=100"`
	JobURL      *string    `json:"job_url"      validate:"omitempty,url"`
}

// --- Response types ---

// jobStatsResponse is the per-user statistics overview.
type jobStatsResponse struct {
	Total        int64            `json:"total"`
	StatusCounts map[string]int64 `json:"status_counts"`
	Recent       any              `json:"recent"`
}
