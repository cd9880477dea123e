package models

// UserDB represents a requester profile in the database
type UserDB struct {
	UserID       int64   `json:"user_id" db:"user_id"`             // Primary key
	FirstName    string  `json:"first_name" db:"first_name"`       // First name
	LastName     string  `json:"last_name" db:"last_name"`         // Last name
	Email        string  `json:"email" db:"email"`                 // Unique email
	PhoneNumber1 *string `json:"phone_number1" db:"phone_number1"` // Primary phone
	PhoneNumber2 *string `json:"phone_number2" db:"phone_number2"` // Secondary phone
	CredentialID int64   `json:"login_id" db:"credential_id"`      // Owning credential (1:1)
}
