package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/NithinS0/Skill-Hive/internal/logger"
	"github.com/NithinS0/Skill-Hive/internal/models"
)

// Error variables
var (
	ErrWorkRequestNotFound    = errors.New("work request not found")
	ErrWorkRequestUnavailable = errors.New("work request is not available")
	ErrSkillMismatch          = errors.New("worker does not have the required skill for this request")
	ErrNotAssigned            = errors.New("work request is not assigned to this worker")
	ErrNotCancellable         = errors.New("work request cannot be cancelled")
	ErrInvalidConfirmation    = errors.New("confirmation status must be Confirmed or Rejected")
)

// WorkRequestReader defines read operations over work requests.
type WorkRequestReader interface {
	GetByID(ctx context.Context, requestID int64) (*models.WorkRequestDB, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.WorkRequestDetail, error)
	ListByWorkerID(ctx context.Context, workerID int64) ([]models.WorkRequestDetail, error)
	ListAll(ctx context.Context) ([]models.WorkRequestDetail, error)
	ListAvailableForWorker(ctx context.Context, workerID int64) ([]models.WorkRequestDetail, error)
	WorkerHasSkill(ctx context.Context, workerID, skillID int64) (bool, error)
}

// WorkRequestWriter defines the lifecycle mutations. Assign, Release,
// Complete, SetArrivalTime, and SetConfirmation are conditional updates:
// false means the precondition no longer held.
type WorkRequestWriter interface {
	Save(ctx context.Context, req models.WorkRequestDB) (int64, error)
	Assign(ctx context.Context, requestID, workerID int64, arrivalTime *string) (bool, error)
	Release(ctx context.Context, requestID, workerID int64) (bool, error)
	Complete(ctx context.Context, requestID, workerID int64, amount *float64) (bool, error)
	Cancel(ctx context.Context, requestID, userID int64) (*int64, error)
	SetArrivalTime(ctx context.Context, requestID, workerID int64, arrivalTime string) (bool, error)
	SetConfirmation(ctx context.Context, requestID, userID int64, confirmation string) (bool, error)
}

// NotificationAppender appends lifecycle notifications to the feed.
type NotificationAppender interface {
	Save(ctx context.Context, requestID int64, recipientRole string, recipientID int64, message string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// WorkRequestService is the lifecycle engine: it governs creation, skill
// matched visibility, assignment, arrival-time negotiation, completion, and
// cancellation, emitting notifications and Kafka events along the way.
type WorkRequestService struct {
	reader        WorkRequestReader
	writer        WorkRequestWriter
	creds         CredentialRoleReader
	users         UserProfileReader
	workers       WorkerProfileReader
	skills        SkillVerifier
	notifications NotificationAppender
	kafkaWriter   KafkaWriter
}

// NewWorkRequestService creates a new WorkRequestService.
func NewWorkRequestService(
	reader WorkRequestReader,
	writer WorkRequestWriter,
	creds CredentialRoleReader,
	users UserProfileReader,
	workers WorkerProfileReader,
	skills SkillVerifier,
	notifications NotificationAppender,
	kafkaWriter KafkaWriter,
) *WorkRequestService {
	return &WorkRequestService{
		reader:        reader,
		writer:        writer,
		creds:         creds,
		users:         users,
		workers:       workers,
		skills:        skills,
		notifications: notifications,
		kafkaWriter:   kafkaWriter,
	}
}

// resolveUser re-checks the User role and returns the profile.
func (svc *WorkRequestService) resolveUser(ctx context.Context, userID int64) (*models.UserDB, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	cred, err := svc.creds.GetByIDAndRole(ctx, user.CredentialID, models.RoleUser)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// resolveWorker re-checks the Worker role and returns the profile owned by
// the login.
func (svc *WorkRequestService) resolveWorker(ctx context.Context, loginID int64) (*models.WorkerDB, error) {
	cred, err := svc.creds.GetByIDAndRole(ctx, loginID, models.RoleWorker)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, ErrWorkerNotFound
	}

	worker, err := svc.workers.GetByCredentialID(ctx, loginID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, ErrWorkerNotFound
	}
	return worker, nil
}

// Create validates the requester and skill, then opens a Pending request
// with no worker and an unconfirmed arrival time.
func (svc *WorkRequestService) Create(ctx context.Context, req models.WorkRequestDB) (int64, error) {
	user, err := svc.resolveUser(ctx, req.UserID)
	if err != nil {
		logger.Log.Errorw("requester validation failed", "user_id", req.UserID, "err", err)
		return 0, err
	}

	skill, err := svc.skills.GetByID(ctx, req.SkillID)
	if err != nil {
		return 0, err
	}
	if skill == nil {
		logger.Log.Errorw("unknown skill at request creation", "skill_id", req.SkillID)
		return 0, ErrUnknownSkill
	}

	requestID, err := svc.writer.Save(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to save work request", "err", err)
		return 0, err
	}

	svc.publishEvent(ctx, models.EventCreated, requestID, models.RoleUser, user.UserID)
	return requestID, nil
}

// ListAvailable returns the Pending, unassigned requests matching the
// worker's skill set. A worker with no skills gets an empty list.
func (svc *WorkRequestService) ListAvailable(ctx context.Context, loginID int64) ([]models.WorkRequestDetail, error) {
	worker, err := svc.resolveWorker(ctx, loginID)
	if err != nil {
		return nil, err
	}
	return svc.reader.ListAvailableForWorker(ctx, worker.WorkerID)
}

// Accept assigns a Pending request to the worker. The assignment itself is
// a conditional update, so concurrent accepts on the same request produce
// exactly one winner; everyone else fails the availability precondition.
func (svc *WorkRequestService) Accept(ctx context.Context, loginID, requestID int64, timeSlot, arrivalTime *string) error {
	worker, err := svc.resolveWorker(ctx, loginID)
	if err != nil {
		return err
	}

	req, err := svc.reader.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return ErrWorkRequestNotFound
	}
	if req.Status != models.StatusPending || req.WorkerID != nil {
		return ErrWorkRequestUnavailable
	}

	hasSkill, err := svc.reader.WorkerHasSkill(ctx, worker.WorkerID, req.SkillID)
	if err != nil {
		return err
	}
	if !hasSkill {
		logger.Log.Errorw("skill mismatch on accept", "worker_id", worker.WorkerID, "skill_id", req.SkillID)
		return ErrSkillMismatch
	}

	ok, err := svc.writer.Assign(ctx, requestID, worker.WorkerID, arrivalTime)
	if err != nil {
		return err
	}
	if !ok {
		// Lost the race: someone else claimed the request first.
		return ErrWorkRequestUnavailable
	}

	timeSlotInfo := "Time Slot: To be confirmed"
	if timeSlot != nil {
		timeSlotInfo = fmt.Sprintf("Time Slot: %s", *timeSlot)
	}
	arrivalInfo := "Arrival Time: To be confirmed"
	if arrivalTime != nil {
		arrivalInfo = fmt.Sprintf("Arrival Time: %s", *arrivalTime)
	}
	phoneInfo := "Worker Phone: Not available"
	if worker.PhoneNumber1 != nil {
		phoneInfo = fmt.Sprintf("Worker Phone: %s", *worker.PhoneNumber1)
	}

	message := fmt.Sprintf("Your work request for '%s' has been accepted. %s. %s. %s. Please confirm arrival time.",
		truncateDescription(req.Description), timeSlotInfo, arrivalInfo, phoneInfo)
	if err := svc.notifications.Save(ctx, requestID, models.RoleUser, req.UserID, message); err != nil {
		return err
	}

	svc.publishEvent(ctx, models.EventAccepted, requestID, models.RoleWorker, worker.WorkerID)
	return nil
}

// Decline releases an Accepted request held by this worker back into the
// pool: worker cleared, status reverted to Pending.
func (svc *WorkRequestService) Decline(ctx context.Context, loginID, requestID int64) error {
	worker, err := svc.resolveWorker(ctx, loginID)
	if err != nil {
		return err
	}

	req, err := svc.reader.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return ErrWorkRequestNotFound
	}

	ok, err := svc.writer.Release(ctx, requestID, worker.WorkerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotAssigned
	}

	message := fmt.Sprintf("Your work request for '%s' has been declined by %s %s. The request is now available for other workers.",
		truncateDescription(req.Description), worker.FirstName, worker.LastName)
	if err := svc.notifications.Save(ctx, requestID, models.RoleUser, req.UserID, message); err != nil {
		return err
	}

	svc.publishEvent(ctx, models.EventDeclined, requestID, models.RoleWorker, worker.WorkerID)
	return nil
}

// Complete finishes an Accepted request held by this worker, recording the
// amount and stamping the completion date.
func (svc *WorkRequestService) Complete(ctx context.Context, loginID, requestID int64, amount *float64) error {
	worker, err := svc.resolveWorker(ctx, loginID)
	if err != nil {
		return err
	}

	req, err := svc.reader.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return ErrWorkRequestNotFound
	}

	ok, err := svc.writer.Complete(ctx, requestID, worker.WorkerID, amount)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotAssigned
	}

	amountInfo := "Amount: Not specified"
	if amount != nil {
		amountInfo = fmt.Sprintf("Amount: %.2f", *amount)
	}
	message := fmt.Sprintf("Your work request for '%s' has been completed by %s %s. %s.",
		truncateDescription(req.Description), worker.FirstName, worker.LastName, amountInfo)
	if err := svc.notifications.Save(ctx, requestID, models.RoleUser, req.UserID, message); err != nil {
		return err
	}

	svc.publishEvent(ctx, models.EventCompleted, requestID, models.RoleWorker, worker.WorkerID)
	return nil
}

// Cancel cancels a Pending or Accepted request owned by this user. When the
// request had an assigned worker, that worker is notified; a never-assigned
// request cancels silently.
func (svc *WorkRequestService) Cancel(ctx context.Context, userID, requestID int64) error {
	user, err := svc.resolveUser(ctx, userID)
	if err != nil {
		return err
	}

	req, err := svc.reader.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req == nil || req.UserID != user.UserID {
		return ErrWorkRequestNotFound
	}

	workerID, err := svc.writer.Cancel(ctx, requestID, user.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		// Already Completed or Cancelled.
		return ErrNotCancellable
	}
	if err != nil {
		return err
	}

	if workerID != nil {
		message := fmt.Sprintf("Work request #%d for '%s' has been cancelled by the user.",
			requestID, truncateDescription(req.Description))
		if err := svc.notifications.Save(ctx, requestID, models.RoleWorker, *workerID, message); err != nil {
			return err
		}
	}

	svc.publishEvent(ctx, models.EventCancelled, requestID, models.RoleUser, user.UserID)
	return nil
}

// SetArrivalTime updates the announced arrival time on an Accepted request
// held by this worker and re-notifies the user. The status is unchanged.
func (svc *WorkRequestService) SetArrivalTime(ctx context.Context, loginID, requestID int64, arrivalTime string) error {
	worker, err := svc.resolveWorker(ctx, loginID)
	if err != nil {
		return err
	}

	req, err := svc.reader.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return ErrWorkRequestNotFound
	}

	ok, err := svc.writer.SetArrivalTime(ctx, requestID, worker.WorkerID, arrivalTime)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotAssigned
	}

	message := fmt.Sprintf("Worker has set arrival time to %s for your work request. Please confirm.", arrivalTime)
	return svc.notifications.Save(ctx, requestID, models.RoleUser, req.UserID, message)
}

// ConfirmArrival records the user's confirmation (or rejection) of the
// announced arrival time on an Accepted request they own and notifies the
// assigned worker. The status is unchanged.
func (svc *WorkRequestService) ConfirmArrival(ctx context.Context, userID, requestID int64, confirmation string) error {
	if confirmation != models.ConfirmationConfirmed && confirmation != models.ConfirmationRejected {
		return ErrInvalidConfirmation
	}

	user, err := svc.resolveUser(ctx, userID)
	if err != nil {
		return err
	}

	req, err := svc.reader.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req == nil || req.UserID != user.UserID || req.WorkerID == nil {
		return ErrWorkRequestNotFound
	}

	ok, err := svc.writer.SetConfirmation(ctx, requestID, user.UserID, confirmation)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWorkRequestNotFound
	}

	message := fmt.Sprintf("%s %s has %s your arrival time for work request #%d.",
		user.FirstName, user.LastName, strings.ToLower(confirmation), requestID)
	return svc.notifications.Save(ctx, requestID, models.RoleWorker, *req.WorkerID, message)
}

// ListForUser returns all requests created by this user.
func (svc *WorkRequestService) ListForUser(ctx context.Context, userID int64) ([]models.WorkRequestDetail, error) {
	user, err := svc.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return svc.reader.ListByUserID(ctx, user.UserID)
}

// ListForWorker returns all requests assigned to the worker owned by the login.
func (svc *WorkRequestService) ListForWorker(ctx context.Context, loginID int64) ([]models.WorkRequestDetail, error) {
	worker, err := svc.resolveWorker(ctx, loginID)
	if err != nil {
		return nil, err
	}
	return svc.reader.ListByWorkerID(ctx, worker.WorkerID)
}

// ListAll returns every work request, for the admin surface.
func (svc *WorkRequestService) ListAll(ctx context.Context) ([]models.WorkRequestDetail, error) {
	return svc.reader.ListAll(ctx)
}

// publishEvent publishes a lifecycle transition to Kafka. Publication is
// best effort: failures are logged and never fail the operation.
func (svc *WorkRequestService) publishEvent(ctx context.Context, event string, requestID int64, actorRole string, actorID int64) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "request_id", requestID, "event", event)
		return
	}

	evt := models.WorkRequestEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		RequestID: requestID,
		Event:     event,
		ActorRole: actorRole,
		ActorID:   actorID,
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal work request event", "request_id", requestID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.EventID),
		Value: data,
	}
	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish work request event", "request_id", requestID, "event", event, "error", err)
		return
	}

	logger.Log.Infow("Work request event published", "request_id", requestID, "event", event)
}

// truncateDescription shortens long descriptions for notification bodies.
func truncateDescription(s string) string {
	if len(s) <= 50 {
		return s
	}
	return s[:50] + "..."
}
