package models

// Lifecycle event names published to the event stream.
const (
	EventCreated   = "created"
	EventAccepted  = "accepted"
	EventDeclined  = "declined"
	EventCompleted = "completed"
	EventCancelled = "cancelled"
)

// WorkRequestEvent represents a lifecycle transition published to Kafka.
type WorkRequestEvent struct {
	EventID   string `json:"event_id"`   // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"`  // Timestamp is the Unix timestamp (in seconds) when the transition occurred.
	RequestID int64  `json:"request_id"` // RequestID is the work request the transition applies to.
	Event     string `json:"event"`      // Event names the transition, e.g. "accepted" or "cancelled".
	ActorRole string `json:"actor_role"` // ActorRole is the role that drove the transition.
	ActorID   int64  `json:"actor_id"`   // ActorID is the profile id of the acting party.
}
