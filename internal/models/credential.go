package models

import "time"

// Roles stored on a credential row.
const (
	RoleUser   = "User"
	RoleWorker = "Worker"
	RoleAdmin  = "Admin"
)

// CredentialDB represents a login record in the database
type CredentialDB struct {
	CredentialID int64     `json:"login_id" db:"credential_id"` // Primary key
	Username     string    `json:"username" db:"username"`      // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`        // bcrypt hash, never serialized
	Role         string    `json:"role" db:"role"`              // One of RoleUser, RoleWorker, RoleAdmin
	CreatedAt    time.Time `json:"created_at" db:"created_at"`  // Creation timestamp
}
