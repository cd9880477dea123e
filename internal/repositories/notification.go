package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/NithinS0/Skill-Hive/internal/logger"
	"github.com/NithinS0/Skill-Hive/internal/models"
)

const notificationColumns = `notification_id, request_id, recipient_role, recipient_id, message, status, created_at`

// NotificationReadRepository handles notification feed read operations
type NotificationReadRepository struct {
	db *sqlx.DB
}

func NewNotificationReadRepository(db *sqlx.DB) *NotificationReadRepository {
	return &NotificationReadRepository{db: db}
}

// ListByRecipient returns the feed for one recipient, newest first.
func (r *NotificationReadRepository) ListByRecipient(ctx context.Context, role string, recipientID int64) ([]models.NotificationDB, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE recipient_role = $1 AND recipient_id = $2
		ORDER BY created_at DESC, notification_id DESC
	`

	notifications := []models.NotificationDB{}
	err := r.db.SelectContext(ctx, &notifications, query, role, recipientID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{role, recipientID},
		"result", len(notifications),
		"error", err,
	)

	return notifications, err
}

// ListAll returns every notification, for the admin surface.
func (r *NotificationReadRepository) ListAll(ctx context.Context) ([]models.NotificationDB, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		ORDER BY created_at DESC, notification_id DESC
	`

	notifications := []models.NotificationDB{}
	err := r.db.SelectContext(ctx, &notifications, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(notifications),
		"error", err,
	)

	return notifications, err
}

// NotificationWriteRepository handles notification feed write operations
type NotificationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewNotificationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *NotificationWriteRepository {
	return &NotificationWriteRepository{db: db, txGetter: txGetter}
}

func (r *NotificationWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save appends an unread notification to the feed.
func (r *NotificationWriteRepository) Save(ctx context.Context, requestID int64, recipientRole string, recipientID int64, message string) error {
	query := `
		INSERT INTO notifications (request_id, recipient_role, recipient_id, message, status, created_at)
		VALUES ($1, $2, $3, $4, 'Unread', NOW())
	`
	args := []any{requestID, recipientRole, recipientID, message}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// MarkRead flips one notification to Read, guarded by its recipient.
// Returns true when a notification with that id and recipient existed.
func (r *NotificationWriteRepository) MarkRead(ctx context.Context, notificationID int64, recipientRole string, recipientID int64) (bool, error) {
	query := `
		UPDATE notifications
		SET status = 'Read'
		WHERE notification_id = $1 AND recipient_role = $2 AND recipient_id = $3
	`
	args := []any{notificationID, recipientRole, recipientID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}
