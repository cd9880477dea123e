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

// SkillTokener defines only the methods needed by the skill handlers.
type SkillTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SkillLister defines the interface that the service must implement.
type SkillLister interface {
	List(ctx context.Context) ([]models.SkillDB, error)
}

// SkillEditor defines the admin-side catalog mutations.
type SkillEditor interface {
	Create(ctx context.Context, name string) (int64, error)
	Update(ctx context.Context, skillID int64, name string) error
	Delete(ctx context.Context, skillID int64) error
}

// SkillRequest represents the JSON body for creating or renaming a skill
// swagger:model SkillRequest
type SkillRequest struct {
	// Skill name
	// required: true
	// default: Plumbing
	SkillName string `json:"skill_name"`
}

// SkillListResponse represents the skill catalog
// swagger:model SkillListResponse
type SkillListResponse struct {
	Skills []models.SkillDB `json:"skills"`
}

// SkillCreateResponse represents a successful skill creation
// swagger:model SkillCreateResponse
type SkillCreateResponse struct {
	// Success message
	// default: Skill created successfully
	Message string `json:"message"`

	// Id of the new skill
	SkillID int64 `json:"skill_id"`
}

// SkillMessageResponse represents a successful skill mutation
// swagger:model SkillMessageResponse
type SkillMessageResponse struct {
	// Success message
	// default: Skill updated successfully
	Message string `json:"message"`
}

// SkillErrorResponse represents an error response for skill operations
// swagger:model SkillErrorResponse
type SkillErrorResponse struct {
	// Error message
	// default: Skill not found
	Error string `json:"error"`
}

// adminClaims authenticates the request and requires the Admin role.
func adminClaims(w http.ResponseWriter, r *http.Request, tokenGetter SkillTokener) *jwt.Claims {
	ctx := r.Context()

	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(SkillErrorResponse{Error: "Unauthorized"})
		return nil
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(SkillErrorResponse{Error: "Unauthorized"})
		return nil
	}

	if claims.Role != models.RoleAdmin {
		logger.Log.Warnw("non-admin access to admin operation", "login_id", claims.LoginID, "role", claims.Role)
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(SkillErrorResponse{Error: "Admin access required"})
		return nil
	}

	return claims
}

// NewListSkillsHandler returns an HTTP handler listing the skill catalog.
// @Summary List skills
// @Description Returns the full skill catalog.
// @Tags skills
// @Produce json
// @Success 200 {object} handlers.SkillListResponse "Skill catalog"
// @Router /skills [get]
// @Security BearerAuth
func NewListSkillsHandler(svc SkillLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list skills", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SkillErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SkillListResponse{Skills: skills})
	}
}

// NewCreateSkillHandler returns an HTTP handler creating a catalog skill.
// @Summary Create a skill
// @Description Adds a skill to the catalog. Admin only. Skill names are unique.
// @Tags skills
// @Accept json
// @Produce json
// @Param skillRequest body handlers.SkillRequest true "Skill create request"
// @Success 201 {object} handlers.SkillCreateResponse "Skill created"
// @Failure 401 {object} handlers.SkillErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.SkillErrorResponse "Admin access required"
// @Failure 409 {object} handlers.SkillErrorResponse "Skill already exists"
// @Router /skills [post]
// @Security BearerAuth
func NewCreateSkillHandler(svc SkillEditor, tokenGetter SkillTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if adminClaims(w, r, tokenGetter) == nil {
			return
		}

		var req SkillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SkillName == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SkillErrorResponse{Error: "Invalid request body"})
			return
		}

		skillID, err := svc.Create(r.Context(), req.SkillName)
		if err != nil {
			switch err {
			case services.ErrSkillExists:
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(SkillErrorResponse{Error: "Skill already exists"})
			default:
				logger.Log.Errorw("failed to create skill", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SkillErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SkillCreateResponse{
			Message: "Skill created successfully",
			SkillID: skillID,
		})
	}
}

// NewUpdateSkillHandler returns an HTTP handler renaming a catalog skill.
// @Summary Rename a skill
// @Description Renames a catalog skill. Admin only.
// @Tags skills
// @Accept json
// @Produce json
// @Param skill_id path int true "Skill id"
// @Param skillRequest body handlers.SkillRequest true "Skill update request"
// @Success 200 {object} handlers.SkillMessageResponse "Skill updated"
// @Failure 404 {object} handlers.SkillErrorResponse "Skill not found"
// @Router /skills/{skill_id} [put]
// @Security BearerAuth
func NewUpdateSkillHandler(svc SkillEditor, tokenGetter SkillTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if adminClaims(w, r, tokenGetter) == nil {
			return
		}

		skillID, err := strconv.ParseInt(chi.URLParam(r, "skill_id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SkillErrorResponse{Error: "Invalid skill id"})
			return
		}

		var req SkillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SkillName == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SkillErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := svc.Update(r.Context(), skillID, req.SkillName); err != nil {
			switch err {
			case services.ErrSkillNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SkillErrorResponse{Error: "Skill not found"})
			default:
				logger.Log.Errorw("failed to update skill", "skill_id", skillID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SkillErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SkillMessageResponse{Message: "Skill updated successfully"})
	}
}

// NewDeleteSkillHandler returns an HTTP handler removing a catalog skill.
// @Summary Delete a skill
// @Description Removes a catalog skill. Admin only.
// @Tags skills
// @Produce json
// @Param skill_id path int true "Skill id"
// @Success 200 {object} handlers.SkillMessageResponse "Skill deleted"
// @Failure 404 {object} handlers.SkillErrorResponse "Skill not found"
// @Router /skills/{skill_id} [delete]
// @Security BearerAuth
func NewDeleteSkillHandler(svc SkillEditor, tokenGetter SkillTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if adminClaims(w, r, tokenGetter) == nil {
			return
		}

		skillID, err := strconv.ParseInt(chi.URLParam(r, "skill_id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SkillErrorResponse{Error: "Invalid skill id"})
			return
		}

		if err := svc.Delete(r.Context(), skillID); err != nil {
			switch err {
			case services.ErrSkillNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SkillErrorResponse{Error: "Skill not found"})
			default:
				logger.Log.Errorw("failed to delete skill", "skill_id", skillID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SkillErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SkillMessageResponse{Message: "Skill deleted successfully"})
	}
}
