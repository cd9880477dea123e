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

// FeedbackTokener defines only the methods needed by the feedback handlers.
type FeedbackTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// FeedbackSubmitter defines the interface that the service must implement.
type FeedbackSubmitter interface {
	Submit(ctx context.Context, userID int64, fb models.FeedbackDB) error
}

// FeedbackGetter defines the read side of the feedback service.
type FeedbackGetter interface {
	GetByRequest(ctx context.Context, requestID int64) (*models.FeedbackDetail, error)
	ListForWorker(ctx context.Context, loginID int64) ([]models.FeedbackDetail, error)
}

// FeedbackRequest represents the JSON body for submitting feedback
// swagger:model FeedbackRequest
type FeedbackRequest struct {
	// Work request id
	// required: true
	// default: 1
	RequestID int64 `json:"request_id"`

	// Rating from 1 to 5
	// required: true
	// default: 5
	Rating int `json:"rating"`

	// Free-text comments, optional
	// default: Great work
	Comments *string `json:"comments"`
}

// FeedbackResponse represents a single feedback entry
// swagger:model FeedbackResponse
type FeedbackResponse struct {
	Feedback models.FeedbackDetail `json:"feedback"`
}

// FeedbackListResponse represents a feedback listing
// swagger:model FeedbackListResponse
type FeedbackListResponse struct {
	Feedback []models.FeedbackDetail `json:"feedback"`
}

// FeedbackMessageResponse represents a successful feedback submission
// swagger:model FeedbackMessageResponse
type FeedbackMessageResponse struct {
	// Success message
	// default: Feedback submitted successfully
	Message string `json:"message"`
}

// FeedbackErrorResponse represents an error response for feedback operations
// swagger:model FeedbackErrorResponse
type FeedbackErrorResponse struct {
	// Error message
	// default: Feedback already submitted for this work request
	Error string `json:"error"`
}

// feedbackClaims authenticates the request and returns its claims.
func feedbackClaims(w http.ResponseWriter, r *http.Request, tokenGetter FeedbackTokener) *jwt.Claims {
	ctx := r.Context()

	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "Unauthorized"})
		return nil
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "Unauthorized"})
		return nil
	}

	return claims
}

// NewSubmitFeedbackHandler returns an HTTP handler submitting feedback.
// @Summary Submit feedback
// @Description Records feedback from the given user on one of their work requests. A request takes at most one feedback entry.
// @Tags feedback
// @Accept json
// @Produce json
// @Param user_id path int true "User id"
// @Param feedbackRequest body handlers.FeedbackRequest true "Feedback"
// @Success 201 {object} handlers.FeedbackMessageResponse "Feedback submitted"
// @Failure 400 {object} handlers.FeedbackErrorResponse "Invalid rating"
// @Failure 404 {object} handlers.FeedbackErrorResponse "Work request not found"
// @Failure 409 {object} handlers.FeedbackErrorResponse "Feedback already submitted"
// @Router /users/{user_id}/feedback [post]
// @Security BearerAuth
func NewSubmitFeedbackHandler(svc FeedbackSubmitter, tokenGetter FeedbackTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if feedbackClaims(w, r, tokenGetter) == nil {
			return
		}

		userID, err := pathID(r, "user_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "Invalid user id"})
			return
		}

		var req FeedbackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "Invalid request body"})
			return
		}

		err = svc.Submit(r.Context(), userID, models.FeedbackDB{
			RequestID: req.RequestID,
			Rating:    req.Rating,
			Comments:  req.Comments,
		})
		if err != nil {
			switch err {
			case services.ErrInvalidRating:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "Rating must be between 1 and 5"})
			case services.ErrWorkRequestNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "Work request not found"})
			case services.ErrFeedbackExists:
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "Feedback already submitted for this work request"})
			default:
				logger.Log.Errorw("failed to submit feedback", "request_id", req.RequestID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(FeedbackMessageResponse{Message: "Feedback submitted successfully"})
	}
}

// NewGetFeedbackHandler returns an HTTP handler fetching feedback for a request.
// @Summary Get feedback for a work request
// @Description Returns the feedback entry recorded for the given work request.
// @Tags feedback
// @Produce json
// @Param request_id path int true "Work request id"
// @Success 200 {object} handlers.FeedbackResponse "Feedback"
// @Failure 404 {object} handlers.FeedbackErrorResponse "Feedback not found"
// @Router /requests/{request_id}/feedback [get]
// @Security BearerAuth
func NewGetFeedbackHandler(svc FeedbackGetter, tokenGetter FeedbackTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if feedbackClaims(w, r, tokenGetter) == nil {
			return
		}

		requestID, err := pathID(r, "request_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "Invalid request id"})
			return
		}

		fb, err := svc.GetByRequest(r.Context(), requestID)
		if err != nil {
			switch err {
			case services.ErrFeedbackNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "Feedback not found"})
			default:
				logger.Log.Errorw("failed to get feedback", "request_id", requestID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FeedbackResponse{Feedback: *fb})
	}
}

// NewListWorkerFeedbackHandler returns an HTTP handler for a worker's feedback.
// @Summary List worker feedback
// @Description Returns the feedback left on requests handled by the authenticated worker.
// @Tags feedback
// @Produce json
// @Success 200 {object} handlers.FeedbackListResponse "Feedback entries"
// @Failure 404 {object} handlers.FeedbackErrorResponse "Worker not found"
// @Router /worker/feedback [get]
// @Security BearerAuth
func NewListWorkerFeedbackHandler(svc FeedbackGetter, tokenGetter FeedbackTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := feedbackClaims(w, r, tokenGetter)
		if claims == nil {
			return
		}

		feedback, err := svc.ListForWorker(r.Context(), claims.LoginID)
		if err != nil {
			switch err {
			case services.ErrWorkerNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "Worker not found"})
			default:
				logger.Log.Errorw("failed to list worker feedback", "login_id", claims.LoginID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FeedbackListResponse{Feedback: feedback})
	}
}
