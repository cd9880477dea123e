package models

import "time"

// Work request lifecycle statuses. Pending requests carry no worker;
// Accepted and Completed requests always do.
const (
	StatusPending   = "Pending"
	StatusAccepted  = "Accepted"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// User confirmation statuses for a worker's announced arrival time.
const (
	ConfirmationPending   = "Pending"
	ConfirmationConfirmed = "Confirmed"
	ConfirmationRejected  = "Rejected"
)

// WorkRequestDB represents a work request row in the database
type WorkRequestDB struct {
	RequestID        int64      `json:"request_id" db:"request_id"`                             // Primary key
	UserID           int64      `json:"user_id" db:"user_id"`                                   // Requesting user
	WorkerID         *int64     `json:"worker_id" db:"worker_id"`                               // Assigned worker, NULL while Pending/Cancelled
	SkillID          int64      `json:"skill_id" db:"skill_id"`                                 // Required skill
	Description      string     `json:"description" db:"description"`                           // Free-text job description
	RequestDate      time.Time  `json:"request_date" db:"request_date"`                         // Requested service date
	Status           string     `json:"status" db:"status"`                                     // Lifecycle status
	Location         *string    `json:"location" db:"location"`                                 // Location summary
	City             *string    `json:"city" db:"city"`                                         // City
	Pincode          *string    `json:"pincode" db:"pincode"`                                   // Postal code
	DoorNo           *string    `json:"door_no" db:"door_no"`                                   // Door number
	StreetName       *string    `json:"street_name" db:"street_name"`                           // Street name
	Area             *string    `json:"area" db:"area"`                                         // Area or locality
	ArrivalTime      *string    `json:"worker_arrival_time" db:"worker_arrival_time"`           // Announced arrival time, e.g. "15:30"
	ConfirmationStat string     `json:"user_confirmation_status" db:"user_confirmation_status"` // User confirmation of arrival time
	Amount           *float64   `json:"amount" db:"amount"`                                     // Amount, recorded at completion
	CompletedDate    *time.Time `json:"completed_date" db:"completed_date"`                     // Completion date
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`                             // Creation timestamp
}

// WorkRequestDetail is a work request joined with its skill name and the
// names of the counterpart parties, used by every listing surface.
type WorkRequestDetail struct {
	WorkRequestDB
	SkillName       string  `json:"skill_name" db:"skill_name"`
	UserFirstName   *string `json:"user_first_name" db:"user_first_name"`
	UserLastName    *string `json:"user_last_name" db:"user_last_name"`
	WorkerFirstName *string `json:"worker_first_name" db:"worker_first_name"`
	WorkerLastName  *string `json:"worker_last_name" db:"worker_last_name"`
}
