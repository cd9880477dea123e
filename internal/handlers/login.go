package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/NithinS0/Skill-Hive/internal/logger"
	"github.com/NithinS0/Skill-Hive/internal/models"
	"github.com/NithinS0/Skill-Hive/internal/services"
)

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password, role string) (*models.CredentialDB, string, error)
}

// LoginRequest represents the JSON body for authentication
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Expected role, optional. One of User, Worker, Admin.
	// default: User
	Role string `json:"role"`
}

// LoginResponse represents a successful authentication response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	Token string `json:"token"`

	// Credential id of the authenticated account
	LoginID int64 `json:"login_id"`

	// Role of the authenticated account
	// default: User
	Role string `json:"role"`
}

// LoginErrorResponse represents an error response for authentication
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// default: Invalid username or password
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler for authentication.
// @Summary Authenticate an account
// @Description Verifies credentials and returns a JWT token. When a role is supplied, the account must hold that role.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Successfully authenticated"
// @Failure 401 {object} handlers.LoginErrorResponse "Invalid username or password"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{Error: "Invalid request body"})
			return
		}

		cred, token, err := svc.Login(r.Context(), req.Username, req.Password, req.Role)
		if err != nil {
			switch err {
			case services.ErrInvalidCredentials:
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LoginErrorResponse{Error: "Invalid username or password"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			Token:   token,
			LoginID: cred.CredentialID,
			Role:    cred.Role,
		})
	}
}
