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

// NotificationTokener defines only the methods needed by the notification handlers.
type NotificationTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// NotificationLister defines the interface that the service must implement.
type NotificationLister interface {
	ListForUser(ctx context.Context, userID int64) ([]models.NotificationDB, error)
	ListForWorker(ctx context.Context, loginID int64) ([]models.NotificationDB, error)
}

// NotificationMarker marks notifications read on behalf of a login.
type NotificationMarker interface {
	MarkRead(ctx context.Context, loginID int64, role string, notificationID int64) error
}

// NotificationListResponse represents a notification feed
// swagger:model NotificationListResponse
type NotificationListResponse struct {
	Notifications []models.NotificationDB `json:"notifications"`
}

// NotificationMessageResponse represents a successful notification mutation
// swagger:model NotificationMessageResponse
type NotificationMessageResponse struct {
	// Success message
	// default: Notification marked as read
	Message string `json:"message"`
}

// NotificationErrorResponse represents an error response for notifications
// swagger:model NotificationErrorResponse
type NotificationErrorResponse struct {
	// Error message
	// default: Notification not found
	Error string `json:"error"`
}

// notificationClaims authenticates the request and returns its claims.
func notificationClaims(w http.ResponseWriter, r *http.Request, tokenGetter NotificationTokener) *jwt.Claims {
	ctx := r.Context()

	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(NotificationErrorResponse{Error: "Unauthorized"})
		return nil
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(NotificationErrorResponse{Error: "Unauthorized"})
		return nil
	}

	return claims
}

// NewListUserNotificationsHandler returns an HTTP handler for a user's feed.
// @Summary List user notifications
// @Description Returns the notifications addressed to the given user, newest first.
// @Tags notifications
// @Produce json
// @Param user_id path int true "User id"
// @Success 200 {object} handlers.NotificationListResponse "Notifications"
// @Failure 401 {object} handlers.NotificationErrorResponse "Unauthorized"
// @Router /users/{user_id}/notifications [get]
// @Security BearerAuth
func NewListUserNotificationsHandler(svc NotificationLister, tokenGetter NotificationTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if notificationClaims(w, r, tokenGetter) == nil {
			return
		}

		userID, err := pathID(r, "user_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(NotificationErrorResponse{Error: "Invalid user id"})
			return
		}

		notifications, err := svc.ListForUser(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to list user notifications", "user_id", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(NotificationErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(NotificationListResponse{Notifications: notifications})
	}
}

// NewListWorkerNotificationsHandler returns an HTTP handler for a worker's feed.
// @Summary List worker notifications
// @Description Returns the notifications addressed to the authenticated worker, newest first.
// @Tags notifications
// @Produce json
// @Success 200 {object} handlers.NotificationListResponse "Notifications"
// @Failure 404 {object} handlers.NotificationErrorResponse "Worker not found"
// @Router /worker/notifications [get]
// @Security BearerAuth
func NewListWorkerNotificationsHandler(svc NotificationLister, tokenGetter NotificationTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := notificationClaims(w, r, tokenGetter)
		if claims == nil {
			return
		}

		notifications, err := svc.ListForWorker(r.Context(), claims.LoginID)
		if err != nil {
			switch err {
			case services.ErrWorkerNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(NotificationErrorResponse{Error: "Worker not found"})
			default:
				logger.Log.Errorw("failed to list worker notifications", "login_id", claims.LoginID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(NotificationErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(NotificationListResponse{Notifications: notifications})
	}
}

// NewMarkNotificationReadHandler returns an HTTP handler marking a notification read.
// @Summary Mark notification read
// @Description Marks a notification as read. Marking an already-read notification succeeds.
// @Tags notifications
// @Produce json
// @Param notification_id path int true "Notification id"
// @Success 200 {object} handlers.NotificationMessageResponse "Marked as read"
// @Failure 404 {object} handlers.NotificationErrorResponse "Notification not found"
// @Router /notifications/{notification_id}/read [post]
// @Security BearerAuth
func NewMarkNotificationReadHandler(svc NotificationMarker, tokenGetter NotificationTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := notificationClaims(w, r, tokenGetter)
		if claims == nil {
			return
		}

		notificationID, err := pathID(r, "notification_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(NotificationErrorResponse{Error: "Invalid notification id"})
			return
		}

		if err := svc.MarkRead(r.Context(), claims.LoginID, claims.Role, notificationID); err != nil {
			switch err {
			case services.ErrNotificationNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(NotificationErrorResponse{Error: "Notification not found"})
			default:
				logger.Log.Errorw("failed to mark notification read", "notification_id", notificationID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(NotificationErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(NotificationMessageResponse{Message: "Notification marked as read"})
	}
}
