package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/NithinS0/Skill-Hive/internal/jwt"
	"github.com/NithinS0/Skill-Hive/internal/logger"
	"github.com/NithinS0/Skill-Hive/internal/models"
	"github.com/NithinS0/Skill-Hive/internal/services"
)

// UserTokener defines only the methods needed by the user profile handlers.
type UserTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserProfileGetter defines the interface that the service must implement.
type UserProfileGetter interface {
	GetUser(ctx context.Context, userID int64) (*models.UserDB, error)
}

// UserProfilePutter defines the interface that the service must implement.
type UserProfilePutter interface {
	UpdateUser(ctx context.Context, profile models.UserDB) error
}

// UserProfileRequest represents the JSON body for a profile update
// swagger:model UserProfileRequest
type UserProfileRequest struct {
	// First name
	// required: true
	// default: John
	FirstName string `json:"first_name"`

	// Last name
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

// UserProfileResponse represents a user profile
// swagger:model UserProfileResponse
type UserProfileResponse struct {
	User models.UserDB `json:"user"`
}

// UserProfileMessageResponse represents a successful profile mutation
// swagger:model UserProfileMessageResponse
type UserProfileMessageResponse struct {
	// Success message
	// default: Profile updated successfully
	Message string `json:"message"`
}

// UserProfileErrorResponse represents an error response for profile operations
// swagger:model UserProfileErrorResponse
type UserProfileErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// requireClaims authenticates the request and returns its claims.
func requireClaims(w http.ResponseWriter, r *http.Request, tokenGetter UserTokener) *jwt.Claims {
	ctx := r.Context()

	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(UserProfileErrorResponse{Error: "Unauthorized"})
		return nil
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(UserProfileErrorResponse{Error: "Unauthorized"})
		return nil
	}

	return claims
}

// pathID parses a numeric chi URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// NewGetUserHandler returns an HTTP handler fetching a user profile.
// @Summary Get user profile
// @Description Returns the profile of a registered user.
// @Tags users
// @Produce json
// @Param user_id path int true "User id"
// @Success 200 {object} handlers.UserProfileResponse "User profile"
// @Failure 401 {object} handlers.UserProfileErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.UserProfileErrorResponse "User not found"
// @Router /users/{user_id} [get]
// @Security BearerAuth
func NewGetUserHandler(svc UserProfileGetter, tokenGetter UserTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if requireClaims(w, r, tokenGetter) == nil {
			return
		}

		userID, err := pathID(r, "user_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserProfileErrorResponse{Error: "Invalid user id"})
			return
		}

		user, err := svc.GetUser(r.Context(), userID)
		if err != nil {
			switch err {
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UserProfileErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("failed to get user", "user_id", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UserProfileErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserProfileResponse{User: *user})
	}
}

// NewUpdateUserHandler returns an HTTP handler updating a user profile.
// @Summary Update user profile
// @Description Updates the mutable fields of a user profile.
// @Tags users
// @Accept json
// @Produce json
// @Param user_id path int true "User id"
// @Param userProfileRequest body handlers.UserProfileRequest true "Profile update request"
// @Success 200 {object} handlers.UserProfileMessageResponse "Profile updated"
// @Failure 404 {object} handlers.UserProfileErrorResponse "User not found"
// @Router /users/{user_id} [put]
// @Security BearerAuth
func NewUpdateUserHandler(svc UserProfilePutter, tokenGetter UserTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if requireClaims(w, r, tokenGetter) == nil {
			return
		}

		userID, err := pathID(r, "user_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserProfileErrorResponse{Error: "Invalid user id"})
			return
		}

		var req UserProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserProfileErrorResponse{Error: "Invalid request body"})
			return
		}

		profile := models.UserDB{
			UserID:       userID,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			PhoneNumber1: req.PhoneNumber1,
			PhoneNumber2: req.PhoneNumber2,
		}

		if err := svc.UpdateUser(r.Context(), profile); err != nil {
			switch err {
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UserProfileErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("failed to update user", "user_id", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UserProfileErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserProfileMessageResponse{Message: "Profile updated successfully"})
	}
}
