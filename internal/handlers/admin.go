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

// AdminTokener defines only the methods needed by the admin handlers.
type AdminTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AccountAdmin defines the interface that the service must implement.
type AccountAdmin interface {
	ListUsers(ctx context.Context) ([]models.UserDB, error)
	ListWorkers(ctx context.Context) ([]models.WorkerAccount, error)
	DeleteUser(ctx context.Context, userID int64) error
	DeleteWorker(ctx context.Context, workerID int64) error
}

// RequestAdmin lists every work request.
type RequestAdmin interface {
	ListAll(ctx context.Context) ([]models.WorkRequestDetail, error)
}

// NotificationAdmin lists every notification.
type NotificationAdmin interface {
	ListAll(ctx context.Context) ([]models.NotificationDB, error)
}

// FeedbackAdmin lists every feedback entry.
type FeedbackAdmin interface {
	ListAll(ctx context.Context) ([]models.FeedbackDetail, error)
}

// AdminUserListResponse represents the user account listing
// swagger:model AdminUserListResponse
type AdminUserListResponse struct {
	Users []models.UserDB `json:"users"`
}

// AdminWorkerListResponse represents the worker account listing
// swagger:model AdminWorkerListResponse
type AdminWorkerListResponse struct {
	Workers []models.WorkerAccount `json:"workers"`
}

// AdminMessageResponse represents a successful admin mutation
// swagger:model AdminMessageResponse
type AdminMessageResponse struct {
	// Success message
	// default: Account deleted successfully
	Message string `json:"message"`
}

// AdminErrorResponse represents an error response for admin operations
// swagger:model AdminErrorResponse
type AdminErrorResponse struct {
	// Error message
	// default: Admin access required
	Error string `json:"error"`
}

// adminOnly authenticates the request and requires the Admin role.
func adminOnly(w http.ResponseWriter, r *http.Request, tokenGetter AdminTokener) *jwt.Claims {
	ctx := r.Context()

	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Unauthorized"})
		return nil
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Unauthorized"})
		return nil
	}

	if claims.Role != models.RoleAdmin {
		logger.Log.Warnw("non-admin access to admin operation", "login_id", claims.LoginID, "role", claims.Role)
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Admin access required"})
		return nil
	}

	return claims
}

// NewAdminListUsersHandler returns an HTTP handler listing all user accounts.
// @Summary List all users
// @Description Returns every registered user profile. Admin only.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.AdminUserListResponse "User accounts"
// @Failure 403 {object} handlers.AdminErrorResponse "Admin access required"
// @Router /admin/users [get]
// @Security BearerAuth
func NewAdminListUsersHandler(svc AccountAdmin, tokenGetter AdminTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if adminOnly(w, r, tokenGetter) == nil {
			return
		}

		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminUserListResponse{Users: users})
	}
}

// NewAdminListWorkersHandler returns an HTTP handler listing all worker accounts.
// @Summary List all workers
// @Description Returns every registered worker account with its login name. Admin only.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.AdminWorkerListResponse "Worker accounts"
// @Failure 403 {object} handlers.AdminErrorResponse "Admin access required"
// @Router /admin/workers [get]
// @Security BearerAuth
func NewAdminListWorkersHandler(svc AccountAdmin, tokenGetter AdminTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if adminOnly(w, r, tokenGetter) == nil {
			return
		}

		workers, err := svc.ListWorkers(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list workers", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminWorkerListResponse{Workers: workers})
	}
}

// NewAdminDeleteUserHandler returns an HTTP handler removing a user account.
// @Summary Delete a user account
// @Description Removes a user account and its profile. Admin only.
// @Tags admin
// @Produce json
// @Param user_id path int true "User id"
// @Success 200 {object} handlers.AdminMessageResponse "Account deleted"
// @Failure 404 {object} handlers.AdminErrorResponse "User not found"
// @Router /admin/users/{user_id} [delete]
// @Security BearerAuth
func NewAdminDeleteUserHandler(svc AccountAdmin, tokenGetter AdminTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if adminOnly(w, r, tokenGetter) == nil {
			return
		}

		userID, err := pathID(r, "user_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Invalid user id"})
			return
		}

		if err := svc.DeleteUser(r.Context(), userID); err != nil {
			switch err {
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("failed to delete user", "user_id", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminMessageResponse{Message: "Account deleted successfully"})
	}
}

// NewAdminDeleteWorkerHandler returns an HTTP handler removing a worker account.
// @Summary Delete a worker account
// @Description Removes a worker account, its profile, and its skill links. Admin only.
// @Tags admin
// @Produce json
// @Param worker_id path int true "Worker id"
// @Success 200 {object} handlers.AdminMessageResponse "Account deleted"
// @Failure 404 {object} handlers.AdminErrorResponse "Worker not found"
// @Router /admin/workers/{worker_id} [delete]
// @Security BearerAuth
func NewAdminDeleteWorkerHandler(svc AccountAdmin, tokenGetter AdminTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if adminOnly(w, r, tokenGetter) == nil {
			return
		}

		workerID, err := pathID(r, "worker_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Invalid worker id"})
			return
		}

		if err := svc.DeleteWorker(r.Context(), workerID); err != nil {
			switch err {
			case services.ErrWorkerNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Worker not found"})
			default:
				logger.Log.Errorw("failed to delete worker", "worker_id", workerID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminMessageResponse{Message: "Account deleted successfully"})
	}
}

// NewAdminListRequestsHandler returns an HTTP handler listing all work requests.
// @Summary List all work requests
// @Description Returns every work request in the system, newest first. Admin only.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.WorkRequestListResponse "Work requests"
// @Failure 403 {object} handlers.AdminErrorResponse "Admin access required"
// @Router /admin/requests [get]
// @Security BearerAuth
func NewAdminListRequestsHandler(svc RequestAdmin, tokenGetter AdminTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if adminOnly(w, r, tokenGetter) == nil {
			return
		}

		requests, err := svc.ListAll(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list work requests", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WorkRequestListResponse{Requests: requests})
	}
}

// NewAdminListNotificationsHandler returns an HTTP handler listing all notifications.
// @Summary List all notifications
// @Description Returns every notification in the system, newest first. Admin only.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.NotificationListResponse "Notifications"
// @Failure 403 {object} handlers.AdminErrorResponse "Admin access required"
// @Router /admin/notifications [get]
// @Security BearerAuth
func NewAdminListNotificationsHandler(svc NotificationAdmin, tokenGetter AdminTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if adminOnly(w, r, tokenGetter) == nil {
			return
		}

		notifications, err := svc.ListAll(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list notifications", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(NotificationListResponse{Notifications: notifications})
	}
}

// NewAdminListFeedbackHandler returns an HTTP handler listing all feedback.
// @Summary List all feedback
// @Description Returns every feedback entry in the system. Admin only.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.FeedbackListResponse "Feedback entries"
// @Failure 403 {object} handlers.AdminErrorResponse "Admin access required"
// @Router /admin/feedback [get]
// @Security BearerAuth
func NewAdminListFeedbackHandler(svc FeedbackAdmin, tokenGetter AdminTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if adminOnly(w, r, tokenGetter) == nil {
			return
		}

		feedback, err := svc.ListAll(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list feedback", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FeedbackListResponse{Feedback: feedback})
	}
}
