package handler

// errorEnvelope documents the error shape rendered by the central error
// handler; it is never constructed here.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Errors  []any  `json:"errors,omitempty"`
}

// --- Request types ---

type createFeedbackRequest struct {
	Name     string `json:"name"      validate:"max=50"`
	Email    string `json:"email"     validate:"omitempty,email"`
	Feedback string `json:"feedback"  validate:"required,max=1000"`
	Rating   *int   `json:"rating"    validate:"required,gte=1,lte=5"`
	Category string `json:"category"  validate:"omitempty,oneof=general bug feature improvement other"`
	IsPublic *bool  `json:"is_public"`
}

// --- Response types ---

// feedbackStatsResponse is the public rating overview.
type feedbackStatsResponse struct {
	Total         int64            `json:"total"`
	AverageRating float64          `json:"average_rating"`
	RatingCounts  map[string]int64 `json:"rating_counts"`
}
