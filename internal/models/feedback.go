package models

// FeedbackDB represents a post-completion rating tied to a work request.
// At most one feedback row per request.
type FeedbackDB struct {
	FeedbackID int64   `json:"feedback_id" db:"feedback_id"` // Primary key
	RequestID  int64   `json:"request_id" db:"request_id"`   // Rated work request (unique)
	Comments   *string `json:"comments" db:"comments"`       // Free-text comments
	Rating     int     `json:"rating" db:"rating"`           // Rating in [1,5]
}

// FeedbackDetail is a feedback row joined with request and party context,
// used by admin and per-worker listings.
type FeedbackDetail struct {
	FeedbackDB
	SkillName     string  `json:"skill_name" db:"skill_name"`
	UserFirstName *string `json:"user_first_name" db:"user_first_name"`
	UserLastName  *string `json:"user_last_name" db:"user_last_name"`
}
