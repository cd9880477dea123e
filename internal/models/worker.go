package models

// Default availability status for a freshly registered worker.
const WorkerAvailable = "Available"

// WorkerDB represents a worker profile in the database
type WorkerDB struct {
	WorkerID        int64   `json:"worker_id" db:"worker_id"`               // Primary key
	FirstName       string  `json:"first_name" db:"first_name"`             // First name
	LastName        string  `json:"last_name" db:"last_name"`               // Last name
	Address         *string `json:"address" db:"address"`                   // Street address
	City            *string `json:"city" db:"city"`                         // City
	Pincode         *string `json:"pincode" db:"pincode"`                   // Postal code
	DoorNo          *string `json:"door_no" db:"door_no"`                   // Door number
	StreetName      *string `json:"street_name" db:"street_name"`           // Street name
	Area            *string `json:"area" db:"area"`                         // Area or locality
	ExperienceYears *int    `json:"experience_years" db:"experience_years"` // Years of experience
	AvailableStatus string  `json:"available_status" db:"available_status"` // Free-text availability status
	PhoneNumber1    *string `json:"phone_number1" db:"phone_number1"`       // Primary phone
	PhoneNumber2    *string `json:"phone_number2" db:"phone_number2"`       // Secondary phone
	CredentialID    int64   `json:"login_id" db:"credential_id"`            // Owning credential (1:1)
}

// WorkerAccount is a worker profile joined with its login username,
// returned by admin listings.
type WorkerAccount struct {
	WorkerDB
	Username string `json:"username" db:"username"`
}
