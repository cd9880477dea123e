package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/NithinS0/Skill-Hive/internal/logger"
	"github.com/NithinS0/Skill-Hive/internal/models"
	"github.com/NithinS0/Skill-Hive/internal/services"
)

// UserRegisterer defines the interface that the service must implement.
type UserRegisterer interface {
	RegisterUser(ctx context.Context, username, password string, profile models.UserDB) error
}

// WorkerRegisterer defines the interface that the service must implement.
type WorkerRegisterer interface {
	RegisterWorker(ctx context.Context, username, password string, profile models.WorkerDB, skillIDs []int64) error
}

// RegisterUserRequest represents the JSON body for user registration
// swagger:model RegisterUserRequest
type RegisterUserRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// First name
	// required: true
	// default: John
	FirstName string `json:"first_name"`

	// Last name
	// required: true
	// default: Doe
	LastName string `json:"last_name"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Primary phone
	PhoneNumber1 *string `json:"phone_number1"`

	// Secondary phone
	PhoneNumber2 *string `json:"phone_number2"`
}

// RegisterWorkerRequest represents the JSON body for worker registration
// swagger:model RegisterWorkerRequest
type RegisterWorkerRequest struct {
	// Username
	// required: true
	// default: jane_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// First name
	// required: true
	// default: Jane
	FirstName string `json:"first_name"`

	// Last name
	// required: true
	// default: Doe
	LastName string `json:"last_name"`

	// Street address
	Address *string `json:"address"`

	// City
	City *string `json:"city"`

	// Postal code
	Pincode *string `json:"pincode"`

	// Door number
	DoorNo *string `json:"door_no"`

	// Street name
	StreetName *string `json:"street_name"`

	// Area or locality
	Area *string `json:"area"`

	// Years of experience
	ExperienceYears *int `json:"experience_years"`

	// Primary phone
	PhoneNumber1 *string `json:"phone_number1"`

	// Secondary phone
	PhoneNumber2 *string `json:"phone_number2"`

	// Offered skill ids
	// default: [1,2]
	SkillIDs []int64 `json:"skill_ids"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: Account registered successfully
	Message string `json:"message"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// default: Username already exists
	Error string `json:"error"`
}

// NewRegisterUserHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user account with a profile. Ensures unique username. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerUserRequest body handlers.RegisterUserRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.RegisterErrorResponse "Username already exists / invalid request"
// @Router /register/user [post]
func NewRegisterUserHandler(svc UserRegisterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Username == "" || req.Password == "" || req.FirstName == "" || req.Email == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "Missing required fields"})
			return
		}

		profile := models.UserDB{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			PhoneNumber1: req.PhoneNumber1,
			PhoneNumber2: req.PhoneNumber2,
		}

		err := svc.RegisterUser(r.Context(), req.Username, req.Password, profile)
		if err != nil {
			switch err {
			case services.ErrUsernameTaken:
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "Username already exists"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{Message: "User registered successfully"})
	}
}

// NewRegisterWorkerHandler returns an HTTP handler for worker registration.
// @Summary Register a new worker
// @Description Creates a worker account with a profile and offered skills. Every skill id must exist in the catalog.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerWorkerRequest body handlers.RegisterWorkerRequest true "Worker registration request"
// @Success 201 {object} handlers.RegisterResponse "Worker successfully registered"
// @Failure 400 {object} handlers.RegisterErrorResponse "Unknown skill / invalid request"
// @Failure 409 {object} handlers.RegisterErrorResponse "Username already exists"
// @Router /register/worker [post]
func NewRegisterWorkerHandler(svc WorkerRegisterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterWorkerRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Username == "" || req.Password == "" || req.FirstName == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "Missing required fields"})
			return
		}

		profile := models.WorkerDB{
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			Address:         req.Address,
			City:            req.City,
			Pincode:         req.Pincode,
			DoorNo:          req.DoorNo,
			StreetName:      req.StreetName,
			Area:            req.Area,
			ExperienceYears: req.ExperienceYears,
			PhoneNumber1:    req.PhoneNumber1,
			PhoneNumber2:    req.PhoneNumber2,
		}

		err := svc.RegisterWorker(r.Context(), req.Username, req.Password, profile, req.SkillIDs)
		if err != nil {
			switch err {
			case services.ErrUsernameTaken:
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "Username already exists"})
			case services.ErrUnknownSkill:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "Unknown skill id"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{Message: "Worker registered successfully"})
	}
}
