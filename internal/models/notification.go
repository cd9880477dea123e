package models

import "time"

// Notification read states.
const (
	NotificationUnread = "Unread"
	NotificationRead   = "Read"
)

// NotificationDB represents a lifecycle notification in the database.
// Recipients are addressed explicitly by role and profile id.
type NotificationDB struct {
	NotificationID int64     `json:"notification_id" db:"notification_id"` // Primary key
	RequestID      int64     `json:"request_id" db:"request_id"`           // Owning work request
	RecipientRole  string    `json:"recipient_role" db:"recipient_role"`   // RoleUser or RoleWorker
	RecipientID    int64     `json:"recipient_id" db:"recipient_id"`       // user_id or worker_id of the addressee
	Message        string    `json:"message" db:"message"`                 // Human-readable message
	Status         string    `json:"status" db:"status"`                   // Unread or Read
	CreatedAt      time.Time `json:"created_at" db:"created_at"`           // Emission timestamp
}
