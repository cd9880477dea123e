package services

import (
	"context"
	"errors"

	"github.com/NithinS0/Skill-Hive/internal/models"
)

// Error variables
var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationReader defines read operations over the notification feed.
type NotificationReader interface {
	ListByRecipient(ctx context.Context, recipientRole string, recipientID int64) ([]models.NotificationDB, error)
	ListAll(ctx context.Context) ([]models.NotificationDB, error)
}

// NotificationUpdater marks notifications read on behalf of a recipient.
type NotificationUpdater interface {
	MarkRead(ctx context.Context, notificationID int64, recipientRole string, recipientID int64) (bool, error)
}

// UserAccountReader resolves the user profile owned by a login.
type UserAccountReader interface {
	GetByCredentialID(ctx context.Context, credentialID int64) (*models.UserDB, error)
}

// NotificationService serves per-recipient notification feeds.
type NotificationService struct {
	reader  NotificationReader
	updater NotificationUpdater
	creds   CredentialRoleReader
	users   UserAccountReader
	workers WorkerProfileReader
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(
	reader NotificationReader,
	updater NotificationUpdater,
	creds CredentialRoleReader,
	users UserAccountReader,
	workers WorkerProfileReader,
) *NotificationService {
	return &NotificationService{
		reader:  reader,
		updater: updater,
		creds:   creds,
		users:   users,
		workers: workers,
	}
}

// ListForUser returns the notifications addressed to this user, newest first.
func (svc *NotificationService) ListForUser(ctx context.Context, userID int64) ([]models.NotificationDB, error) {
	return svc.reader.ListByRecipient(ctx, models.RoleUser, userID)
}

// ListForWorker returns the notifications addressed to the worker owned by
// the login, newest first.
func (svc *NotificationService) ListForWorker(ctx context.Context, loginID int64) ([]models.NotificationDB, error) {
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

	return svc.reader.ListByRecipient(ctx, models.RoleWorker, worker.WorkerID)
}

// ListAll returns every notification, for the admin surface.
func (svc *NotificationService) ListAll(ctx context.Context) ([]models.NotificationDB, error) {
	return svc.reader.ListAll(ctx)
}

// MarkRead marks a notification as read on behalf of the login that received
// it. A notification addressed to someone else reads as not found, so callers
// cannot probe or flip other recipients' feeds. Marking an already-read
// notification succeeds and changes nothing.
func (svc *NotificationService) MarkRead(ctx context.Context, loginID int64, role string, notificationID int64) error {
	recipientRole, recipientID, err := svc.resolveRecipient(ctx, loginID, role)
	if err != nil {
		return err
	}

	ok, err := svc.updater.MarkRead(ctx, notificationID, recipientRole, recipientID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}

// resolveRecipient maps a login to the recipient identity notifications are
// addressed to. Logins without a matching profile own no notifications.
func (svc *NotificationService) resolveRecipient(ctx context.Context, loginID int64, role string) (string, int64, error) {
	switch role {
	case models.RoleUser:
		user, err := svc.users.GetByCredentialID(ctx, loginID)
		if err != nil {
			return "", 0, err
		}
		if user == nil {
			return "", 0, ErrNotificationNotFound
		}
		return models.RoleUser, user.UserID, nil
	case models.RoleWorker:
		worker, err := svc.workers.GetByCredentialID(ctx, loginID)
		if err != nil {
			return "", 0, err
		}
		if worker == nil {
			return "", 0, ErrNotificationNotFound
		}
		return models.RoleWorker, worker.WorkerID, nil
	default:
		return "", 0, ErrNotificationNotFound
	}
}
