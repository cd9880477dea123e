package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/NithinS0/Skill-Hive/internal/jwt"
	"github.com/NithinS0/Skill-Hive/internal/logger"
	"github.com/NithinS0/Skill-Hive/internal/models"
	"github.com/NithinS0/Skill-Hive/internal/services"
)

// WorkerTokener defines only the methods needed by the worker profile handlers.
type WorkerTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// WorkerProfileGetter defines the interface that the service must implement.
// All operations are keyed by the login id carried in the token.
type WorkerProfileGetter interface {
	GetWorker(ctx context.Context, loginID int64) (*models.WorkerDB, error)
	GetWorkerSkills(ctx context.Context, loginID int64) ([]models.SkillDB, error)
}

// WorkerProfilePutter defines the interface that the service must implement.
type WorkerProfilePutter interface {
	UpdateWorker(ctx context.Context, loginID int64, profile models.WorkerDB, skillIDs []int64) error
	UpdateWorkerStatus(ctx context.Context, loginID int64, status string) error
}

// WorkerProfileRequest represents the JSON body for a worker profile update
// swagger:model WorkerProfileRequest
type WorkerProfileRequest struct {
	// First name
	// required: true
	// default: Jane
	FirstName string `json:"first_name"`

	// Last name
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

	// Offered skill ids. Omit to keep the current skill set.
	SkillIDs []int64 `json:"skill_ids"`
}

// WorkerStatusRequest represents the JSON body for an availability update
// swagger:model WorkerStatusRequest
type WorkerStatusRequest struct {
	// Availability status
	// required: true
	// default: Available
	AvailableStatus string `json:"available_status"`
}

// WorkerProfileResponse represents a worker profile
// swagger:model WorkerProfileResponse
type WorkerProfileResponse struct {
	Worker models.WorkerDB `json:"worker"`
}

// WorkerSkillsResponse represents a worker's offered skills
// swagger:model WorkerSkillsResponse
type WorkerSkillsResponse struct {
	Skills []models.SkillDB `json:"skills"`
}

// WorkerMessageResponse represents a successful worker profile mutation
// swagger:model WorkerMessageResponse
type WorkerMessageResponse struct {
	// Success message
	// default: Profile updated successfully
	Message string `json:"message"`
}

// WorkerErrorResponse represents an error response for worker operations
// swagger:model WorkerErrorResponse
type WorkerErrorResponse struct {
	// Error message
	// default: Worker not found
	Error string `json:"error"`
}

// workerClaims authenticates the request and returns its claims.
func workerClaims(w http.ResponseWriter, r *http.Request, tokenGetter WorkerTokener) *jwt.Claims {
	ctx := r.Context()

	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(WorkerErrorResponse{Error: "Unauthorized"})
		return nil
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(WorkerErrorResponse{Error: "Unauthorized"})
		return nil
	}

	return claims
}

// NewGetWorkerHandler returns an HTTP handler fetching the caller's worker profile.
// @Summary Get worker profile
// @Description Returns the worker profile owned by the authenticated login.
// @Tags workers
// @Produce json
// @Success 200 {object} handlers.WorkerProfileResponse "Worker profile"
// @Failure 401 {object} handlers.WorkerErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.WorkerErrorResponse "Worker not found"
// @Router /workers/me [get]
// @Security BearerAuth
func NewGetWorkerHandler(svc WorkerProfileGetter, tokenGetter WorkerTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := workerClaims(w, r, tokenGetter)
		if claims == nil {
			return
		}

		worker, err := svc.GetWorker(r.Context(), claims.LoginID)
		if err != nil {
			switch err {
			case services.ErrWorkerNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(WorkerErrorResponse{Error: "Worker not found"})
			default:
				logger.Log.Errorw("failed to get worker", "login_id", claims.LoginID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(WorkerErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WorkerProfileResponse{Worker: *worker})
	}
}

// NewGetWorkerSkillsHandler returns an HTTP handler fetching the caller's skill set.
// @Summary Get worker skills
// @Description Returns the skills offered by the authenticated worker.
// @Tags workers
// @Produce json
// @Success 200 {object} handlers.WorkerSkillsResponse "Offered skills"
// @Failure 404 {object} handlers.WorkerErrorResponse "Worker not found"
// @Router /workers/me/skills [get]
// @Security BearerAuth
func NewGetWorkerSkillsHandler(svc WorkerProfileGetter, tokenGetter WorkerTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := workerClaims(w, r, tokenGetter)
		if claims == nil {
			return
		}

		skills, err := svc.GetWorkerSkills(r.Context(), claims.LoginID)
		if err != nil {
			switch err {
			case services.ErrWorkerNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(WorkerErrorResponse{Error: "Worker not found"})
			default:
				logger.Log.Errorw("failed to get worker skills", "login_id", claims.LoginID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(WorkerErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WorkerSkillsResponse{Skills: skills})
	}
}

// NewUpdateWorkerHandler returns an HTTP handler updating the caller's worker profile.
// @Summary Update worker profile
// @Description Updates the mutable fields of the authenticated worker's profile. When skill ids are supplied, the offered skill set is replaced.
// @Tags workers
// @Accept json
// @Produce json
// @Param workerProfileRequest body handlers.WorkerProfileRequest true "Profile update request"
// @Success 200 {object} handlers.WorkerMessageResponse "Profile updated"
// @Failure 400 {object} handlers.WorkerErrorResponse "Unknown skill id"
// @Failure 404 {object} handlers.WorkerErrorResponse "Worker not found"
// @Router /workers/me [put]
// @Security BearerAuth
func NewUpdateWorkerHandler(svc WorkerProfilePutter, tokenGetter WorkerTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := workerClaims(w, r, tokenGetter)
		if claims == nil {
			return
		}

		var req WorkerProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkerErrorResponse{Error: "Invalid request body"})
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

		if err := svc.UpdateWorker(r.Context(), claims.LoginID, profile, req.SkillIDs); err != nil {
			switch err {
			case services.ErrWorkerNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(WorkerErrorResponse{Error: "Worker not found"})
			case services.ErrUnknownSkill:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WorkerErrorResponse{Error: "Unknown skill id"})
			default:
				logger.Log.Errorw("failed to update worker", "login_id", claims.LoginID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(WorkerErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WorkerMessageResponse{Message: "Profile updated successfully"})
	}
}

// NewUpdateWorkerStatusHandler returns an HTTP handler updating availability.
// @Summary Update worker availability
// @Description Updates the authenticated worker's availability status.
// @Tags workers
// @Accept json
// @Produce json
// @Param workerStatusRequest body handlers.WorkerStatusRequest true "Status update request"
// @Success 200 {object} handlers.WorkerMessageResponse "Status updated"
// @Failure 404 {object} handlers.WorkerErrorResponse "Worker not found"
// @Router /workers/me/status [put]
// @Security BearerAuth
func NewUpdateWorkerStatusHandler(svc WorkerProfilePutter, tokenGetter WorkerTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := workerClaims(w, r, tokenGetter)
		if claims == nil {
			return
		}

		var req WorkerStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AvailableStatus == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkerErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := svc.UpdateWorkerStatus(r.Context(), claims.LoginID, req.AvailableStatus); err != nil {
			switch err {
			case services.ErrWorkerNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(WorkerErrorResponse{Error: "Worker not found"})
			default:
				logger.Log.Errorw("failed to update worker status", "login_id", claims.LoginID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(WorkerErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WorkerMessageResponse{Message: "Status updated successfully"})
	}
}
