package dto

import "errors"

// Custom errors
var (
	ErrNoFiles    = errors.New("no files provided")
	ErrEmptyQuery = errors.New("no query provided")
)

// ManualMatchRequest is the body of POST /match. Fields mirror StudentProfile;
// all optional.
type ManualMatchRequest struct {
	Name       *string  `json:"name"`
	Percentage *float64 `json:"percentage"`
	Income     *int     `json:"income"`
	Category   *string  `json:"category"`
	Stream     *string  `json:"stream"`
	State      *string  `json:"state"`
}

// Profile converts the request into the profile the matcher consumes.
func (r *ManualMatchRequest) Profile() StudentProfile {
	return StudentProfile{
		Name:       r.Name,
		Percentage: r.Percentage,
		Income:     r.Income,
		Category:   r.Category,
		Stream:     r.Stream,
		State:      r.State,
	}
}

// ChatRequest is the body of POST /chatbot.
type ChatRequest struct {
	Query  string `json:"query" binding:"required"`
	UserID string `json:"user_id"`
}
