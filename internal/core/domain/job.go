package domain

import (
	"errors"
	"time"
)

// JobStatus represents the lifecycle state of a job application.
type JobStatus string

const (
	StatusApplied   JobStatus = "applied"
	StatusInterview JobStatus = "interview"
	StatusOffer     JobStatus = "offer"
	StatusRejected  JobStatus = "rejected"
	StatusAccepted  JobStatus = "accepted"
)

var ErrJobNotFound = errors.New("job not found")
var ErrInvalidJobStatus = errors.New("invalid job status")

// AllJobStatuses returns every status in a stable order, used to seed
// zero-filled histograms.
func AllJobStatuses() []JobStatus {
	return []JobStatus{StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusAccepted}
}

// ValidJobStatus reports whether s is a member of the status enum.
func ValidJobStatus(s JobStatus) bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

// Job is a single tracked job application. UserID is the owning user and is
// immutable after creation.
type Job struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	UserID      string    `json:"user_id" bson:"user_id"`
	Company     string    `json:"company" bson:"company"`
	Position    string    `json:"position" bson:"position"`
	Status      JobStatus `json:"status" bson:"status"`
	AppliedDate time.Time `json:"applied_date" bson:"applied_date"`
	Notes       string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Salary      float64   `json:"salary,omitempty" bson:"salary,omitempty"`
	Location    string    `json:"location,omitempty" bson:"location,omitempty"`
	JobURL      string    `json:"job_url,omitempty" bson:"job_url,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
