package domain

import "time"

// Notification event names, matched by connected clients.
const (
	EventJobCreated       = "job-created"
	EventJobStatusUpdated = "job-status-updated"
	EventJobDeleted       = "job-deleted"
	EventNewFeedback      = "new-feedback"
)

// Audience selects which subscriber group receives a notification.
type Audience string

const (
	AudienceAll   Audience = "all"
	AudienceAdmin Audience = "admin"
)

// Notification describes a single state change pushed to connected clients.
// Delivery is best-effort: the mutation it describes is the source of truth.
type Notification struct {
	ID        string    `json:"id"`
	Event     string    `json:"event"`
	Message   string    `json:"message"`
	Payload   any       `json:"payload,omitempty"`
	OldStatus string    `json:"old_status,omitempty"`
	NewStatus string    `json:"new_status,omitempty"`
	Audience  Audience  `json:"-"`
	Timestamp time.Time `json:"timestamp"`
}
