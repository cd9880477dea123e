package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/NithinS0/Skill-Hive/internal/jwt"
	"github.com/NithinS0/Skill-Hive/internal/logger"
	"github.com/NithinS0/Skill-Hive/internal/models"
	"github.com/NithinS0/Skill-Hive/internal/services"
)

// WorkRequestTokener defines only the methods needed by the work request handlers.
type WorkRequestTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// WorkRequestCreator defines the interface that the service must implement.
type WorkRequestCreator interface {
	Create(ctx context.Context, req models.WorkRequestDB) (int64, error)
}

// WorkRequestListers defines the listing side of the lifecycle service.
type WorkRequestListers interface {
	ListForUser(ctx context.Context, userID int64) ([]models.WorkRequestDetail, error)
	ListForWorker(ctx context.Context, loginID int64) ([]models.WorkRequestDetail, error)
	ListAvailable(ctx context.Context, loginID int64) ([]models.WorkRequestDetail, error)
}

// WorkRequestTransitioner defines the lifecycle transitions.
type WorkRequestTransitioner interface {
	Accept(ctx context.Context, loginID, requestID int64, timeSlot, arrivalTime *string) error
	Decline(ctx context.Context, loginID, requestID int64) error
	Complete(ctx context.Context, loginID, requestID int64, amount *float64) error
	Cancel(ctx context.Context, userID, requestID int64) error
	SetArrivalTime(ctx context.Context, loginID, requestID int64, arrivalTime string) error
	ConfirmArrival(ctx context.Context, userID, requestID int64, confirmation string) error
}

// CreateWorkRequestRequest represents the JSON body for opening a work request
// swagger:model CreateWorkRequestRequest
type CreateWorkRequestRequest struct {
	// Required skill id
	// required: true
	// default: 1
	SkillID int64 `json:"skill_id"`

	// Job description
	// required: true
	// default: Fix the kitchen sink
	Description string `json:"description"`

	// Requested service date, YYYY-MM-DD
	// required: true
	// default: 2025-06-01
	RequestDate string `json:"request_date"`

	// Location summary
	Location *string `json:"location"`

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
}

// AcceptWorkRequestRequest represents the JSON body for accepting a request
// swagger:model AcceptWorkRequestRequest
type AcceptWorkRequestRequest struct {
	// Agreed time slot, optional
	// default: Morning
	TimeSlot *string `json:"time_slot"`

	// Announced arrival time, optional
	// default: 09:30
	ArrivalTime *string `json:"arrival_time"`
}

// CompleteWorkRequestRequest represents the JSON body for completing a request
// swagger:model CompleteWorkRequestRequest
type CompleteWorkRequestRequest struct {
	// Amount charged, optional
	// default: 500.0
	Amount *float64 `json:"amount"`
}

// ArrivalTimeRequest represents the JSON body for announcing an arrival time
// swagger:model ArrivalTimeRequest
type ArrivalTimeRequest struct {
	// Arrival time
	// required: true
	// default: 15:30
	ArrivalTime string `json:"arrival_time"`
}

// ConfirmArrivalRequest represents the JSON body for confirming an arrival time
// swagger:model ConfirmArrivalRequest
type ConfirmArrivalRequest struct {
	// Confirmation, one of Confirmed or Rejected
	// required: true
	// default: Confirmed
	Confirmation string `json:"confirmation"`
}

// CreateWorkRequestResponse represents a successful request creation
// swagger:model CreateWorkRequestResponse
type CreateWorkRequestResponse struct {
	// Success message
	// default: Work request created successfully
	Message string `json:"message"`

	// Id of the new work request
	RequestID int64 `json:"request_id"`
}

// WorkRequestListResponse represents a listing of work requests
// swagger:model WorkRequestListResponse
type WorkRequestListResponse struct {
	Requests []models.WorkRequestDetail `json:"requests"`
}

// WorkRequestMessageResponse represents a successful lifecycle transition
// swagger:model WorkRequestMessageResponse
type WorkRequestMessageResponse struct {
	// Success message
	// default: Work request accepted successfully
	Message string `json:"message"`
}

// WorkRequestErrorResponse represents an error response for lifecycle operations
// swagger:model WorkRequestErrorResponse
type WorkRequestErrorResponse struct {
	// Error message
	// default: Work request is not available
	Error string `json:"error"`
}

// requestClaims authenticates the request and returns its claims.
func requestClaims(w http.ResponseWriter, r *http.Request, tokenGetter WorkRequestTokener) *jwt.Claims {
	ctx := r.Context()

	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Unauthorized"})
		return nil
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Unauthorized"})
		return nil
	}

	return claims
}

// writeLifecycleError maps lifecycle service errors onto HTTP statuses.
func writeLifecycleError(w http.ResponseWriter, err error) {
	switch err {
	case services.ErrUserNotFound:
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "User not found"})
	case services.ErrWorkerNotFound:
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Worker not found"})
	case services.ErrWorkRequestNotFound:
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Work request not found"})
	case services.ErrUnknownSkill:
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Unknown skill id"})
	case services.ErrInvalidConfirmation:
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Confirmation must be Confirmed or Rejected"})
	case services.ErrWorkRequestUnavailable:
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Work request is not available"})
	case services.ErrSkillMismatch:
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Worker does not have the required skill"})
	case services.ErrNotAssigned:
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Work request is not assigned to this worker"})
	case services.ErrNotCancellable:
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Work request cannot be cancelled"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Internal server error"})
	}
}

// NewCreateWorkRequestHandler returns an HTTP handler opening a work request.
// @Summary Create a work request
// @Description Opens a Pending work request for the given user. The skill id must exist in the catalog.
// @Tags requests
// @Accept json
// @Produce json
// @Param user_id path int true "User id"
// @Param createWorkRequestRequest body handlers.CreateWorkRequestRequest true "Work request"
// @Success 201 {object} handlers.CreateWorkRequestResponse "Work request created"
// @Failure 400 {object} handlers.WorkRequestErrorResponse "Unknown skill / invalid request"
// @Failure 404 {object} handlers.WorkRequestErrorResponse "User not found"
// @Router /users/{user_id}/requests [post]
// @Security BearerAuth
func NewCreateWorkRequestHandler(svc WorkRequestCreator, tokenGetter WorkRequestTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if requestClaims(w, r, tokenGetter) == nil {
			return
		}

		userID, err := pathID(r, "user_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Invalid user id"})
			return
		}

		var req CreateWorkRequestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.SkillID == 0 || req.Description == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Missing required fields"})
			return
		}

		requestDate, err := time.Parse("2006-01-02", req.RequestDate)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Invalid request date, expected YYYY-MM-DD"})
			return
		}

		requestID, err := svc.Create(r.Context(), models.WorkRequestDB{
			UserID:      userID,
			SkillID:     req.SkillID,
			Description: req.Description,
			RequestDate: requestDate,
			Location:    req.Location,
			City:        req.City,
			Pincode:     req.Pincode,
			DoorNo:      req.DoorNo,
			StreetName:  req.StreetName,
			Area:        req.Area,
		})
		if err != nil {
			writeLifecycleError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateWorkRequestResponse{
			Message:   "Work request created successfully",
			RequestID: requestID,
		})
	}
}

// NewListUserRequestsHandler returns an HTTP handler listing a user's requests.
// @Summary List user work requests
// @Description Returns every work request created by the given user, newest first.
// @Tags requests
// @Produce json
// @Param user_id path int true "User id"
// @Success 200 {object} handlers.WorkRequestListResponse "Work requests"
// @Failure 404 {object} handlers.WorkRequestErrorResponse "User not found"
// @Router /users/{user_id}/requests [get]
// @Security BearerAuth
func NewListUserRequestsHandler(svc WorkRequestListers, tokenGetter WorkRequestTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if requestClaims(w, r, tokenGetter) == nil {
			return
		}

		userID, err := pathID(r, "user_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Invalid user id"})
			return
		}

		requests, err := svc.ListForUser(r.Context(), userID)
		if err != nil {
			writeLifecycleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WorkRequestListResponse{Requests: requests})
	}
}

// NewListAvailableRequestsHandler returns an HTTP handler listing the open pool.
// @Summary List available work requests
// @Description Returns the Pending, unassigned requests matching the authenticated worker's skills.
// @Tags requests
// @Produce json
// @Success 200 {object} handlers.WorkRequestListResponse "Available work requests"
// @Failure 404 {object} handlers.WorkRequestErrorResponse "Worker not found"
// @Router /worker/requests/available [get]
// @Security BearerAuth
func NewListAvailableRequestsHandler(svc WorkRequestListers, tokenGetter WorkRequestTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(w, r, tokenGetter)
		if claims == nil {
			return
		}

		requests, err := svc.ListAvailable(r.Context(), claims.LoginID)
		if err != nil {
			writeLifecycleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WorkRequestListResponse{Requests: requests})
	}
}

// NewListWorkerRequestsHandler returns an HTTP handler listing a worker's assignments.
// @Summary List worker work requests
// @Description Returns every request assigned to the authenticated worker, newest first.
// @Tags requests
// @Produce json
// @Success 200 {object} handlers.WorkRequestListResponse "Assigned work requests"
// @Failure 404 {object} handlers.WorkRequestErrorResponse "Worker not found"
// @Router /worker/requests [get]
// @Security BearerAuth
func NewListWorkerRequestsHandler(svc WorkRequestListers, tokenGetter WorkRequestTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(w, r, tokenGetter)
		if claims == nil {
			return
		}

		requests, err := svc.ListForWorker(r.Context(), claims.LoginID)
		if err != nil {
			writeLifecycleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WorkRequestListResponse{Requests: requests})
	}
}

// NewAcceptWorkRequestHandler returns an HTTP handler accepting a request.
// @Summary Accept a work request
// @Description Assigns a Pending request to the authenticated worker. Exactly one concurrent accept wins; the rest receive a conflict.
// @Tags requests
// @Accept json
// @Produce json
// @Param request_id path int true "Work request id"
// @Param acceptWorkRequestRequest body handlers.AcceptWorkRequestRequest false "Accept parameters"
// @Success 200 {object} handlers.WorkRequestMessageResponse "Work request accepted"
// @Failure 404 {object} handlers.WorkRequestErrorResponse "Work request not found"
// @Failure 409 {object} handlers.WorkRequestErrorResponse "Not available / skill mismatch"
// @Router /worker/requests/{request_id}/accept [post]
// @Security BearerAuth
func NewAcceptWorkRequestHandler(svc WorkRequestTransitioner, tokenGetter WorkRequestTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(w, r, tokenGetter)
		if claims == nil {
			return
		}

		requestID, err := pathID(r, "request_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Invalid request id"})
			return
		}

		// The body is optional: accepting without a time slot is allowed.
		var req AcceptWorkRequestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := svc.Accept(r.Context(), claims.LoginID, requestID, req.TimeSlot, req.ArrivalTime); err != nil {
			writeLifecycleError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WorkRequestMessageResponse{Message: "Work request accepted successfully"})
	}
}

// NewDeclineWorkRequestHandler returns an HTTP handler declining a held request.
// @Summary Decline a work request
// @Description Releases an Accepted request held by the authenticated worker back into the pool.
// @Tags requests
// @Produce json
// @Param request_id path int true "Work request id"
// @Success 200 {object} handlers.WorkRequestMessageResponse "Work request declined"
// @Failure 409 {object} handlers.WorkRequestErrorResponse "Not assigned to this worker"
// @Router /worker/requests/{request_id}/decline [post]
// @Security BearerAuth
func NewDeclineWorkRequestHandler(svc WorkRequestTransitioner, tokenGetter WorkRequestTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(w, r, tokenGetter)
		if claims == nil {
			return
		}

		requestID, err := pathID(r, "request_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Invalid request id"})
			return
		}

		if err := svc.Decline(r.Context(), claims.LoginID, requestID); err != nil {
			writeLifecycleError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WorkRequestMessageResponse{Message: "Work request declined successfully"})
	}
}

// NewCompleteWorkRequestHandler returns an HTTP handler completing a held request.
// @Summary Complete a work request
// @Description Marks an Accepted request held by the authenticated worker as Completed, recording the amount.
// @Tags requests
// @Accept json
// @Produce json
// @Param request_id path int true "Work request id"
// @Param completeWorkRequestRequest body handlers.CompleteWorkRequestRequest false "Completion parameters"
// @Success 200 {object} handlers.WorkRequestMessageResponse "Work request completed"
// @Failure 409 {object} handlers.WorkRequestErrorResponse "Not assigned to this worker"
// @Router /worker/requests/{request_id}/complete [post]
// @Security BearerAuth
func NewCompleteWorkRequestHandler(svc WorkRequestTransitioner, tokenGetter WorkRequestTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(w, r, tokenGetter)
		if claims == nil {
			return
		}

		requestID, err := pathID(r, "request_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Invalid request id"})
			return
		}

		// The body is optional: completing without an amount is allowed.
		var req CompleteWorkRequestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Amount != nil && *req.Amount < 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Invalid amount"})
			return
		}

		if err := svc.Complete(r.Context(), claims.LoginID, requestID, req.Amount); err != nil {
			writeLifecycleError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WorkRequestMessageResponse{Message: "Work request completed successfully"})
	}
}

// NewCancelWorkRequestHandler returns an HTTP handler cancelling a user's request.
// @Summary Cancel a work request
// @Description Cancels a Pending or Accepted request owned by the given user. Completed and Cancelled requests cannot be cancelled.
// @Tags requests
// @Produce json
// @Param user_id path int true "User id"
// @Param request_id path int true "Work request id"
// @Success 200 {object} handlers.WorkRequestMessageResponse "Work request cancelled"
// @Failure 404 {object} handlers.WorkRequestErrorResponse "Work request not found"
// @Failure 409 {object} handlers.WorkRequestErrorResponse "Cannot be cancelled"
// @Router /users/{user_id}/requests/{request_id}/cancel [post]
// @Security BearerAuth
func NewCancelWorkRequestHandler(svc WorkRequestTransitioner, tokenGetter WorkRequestTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if requestClaims(w, r, tokenGetter) == nil {
			return
		}

		userID, err := pathID(r, "user_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Invalid user id"})
			return
		}

		requestID, err := pathID(r, "request_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Invalid request id"})
			return
		}

		if err := svc.Cancel(r.Context(), userID, requestID); err != nil {
			writeLifecycleError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WorkRequestMessageResponse{Message: "Work request cancelled successfully"})
	}
}

// NewSetArrivalTimeHandler returns an HTTP handler announcing an arrival time.
// @Summary Set arrival time
// @Description Updates the announced arrival time on an Accepted request held by the authenticated worker.
// @Tags requests
// @Accept json
// @Produce json
// @Param request_id path int true "Work request id"
// @Param arrivalTimeRequest body handlers.ArrivalTimeRequest true "Arrival time"
// @Success 200 {object} handlers.WorkRequestMessageResponse "Arrival time set"
// @Failure 409 {object} handlers.WorkRequestErrorResponse "Not assigned to this worker"
// @Router /worker/requests/{request_id}/arrival-time [put]
// @Security BearerAuth
func NewSetArrivalTimeHandler(svc WorkRequestTransitioner, tokenGetter WorkRequestTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(w, r, tokenGetter)
		if claims == nil {
			return
		}

		requestID, err := pathID(r, "request_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Invalid request id"})
			return
		}

		var req ArrivalTimeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ArrivalTime == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := svc.SetArrivalTime(r.Context(), claims.LoginID, requestID, req.ArrivalTime); err != nil {
			writeLifecycleError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WorkRequestMessageResponse{Message: "Arrival time set successfully"})
	}
}

// NewConfirmArrivalHandler returns an HTTP handler confirming an arrival time.
// @Summary Confirm arrival time
// @Description Records the user's confirmation or rejection of the worker's announced arrival time.
// @Tags requests
// @Accept json
// @Produce json
// @Param user_id path int true "User id"
// @Param request_id path int true "Work request id"
// @Param confirmArrivalRequest body handlers.ConfirmArrivalRequest true "Confirmation"
// @Success 200 {object} handlers.WorkRequestMessageResponse "Arrival time confirmed"
// @Failure 400 {object} handlers.WorkRequestErrorResponse "Invalid confirmation"
// @Failure 404 {object} handlers.WorkRequestErrorResponse "Work request not found"
// @Router /users/{user_id}/requests/{request_id}/confirm-arrival [post]
// @Security BearerAuth
func NewConfirmArrivalHandler(svc WorkRequestTransitioner, tokenGetter WorkRequestTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if requestClaims(w, r, tokenGetter) == nil {
			return
		}

		userID, err := pathID(r, "user_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Invalid user id"})
			return
		}

		requestID, err := pathID(r, "request_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Invalid request id"})
			return
		}

		var req ConfirmArrivalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkRequestErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := svc.ConfirmArrival(r.Context(), userID, requestID, req.Confirmation); err != nil {
			writeLifecycleError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WorkRequestMessageResponse{Message: "Arrival time confirmation recorded"})
	}
}
