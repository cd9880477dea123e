package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/NithinS0/Skill-Hive/internal/logger"
	"github.com/NithinS0/Skill-Hive/internal/models"
)

const feedbackDetailSelect = `
	SELECT f.feedback_id, f.request_id, f.comments, f.rating,
	       s.skill_name,
	       u.first_name AS user_first_name, u.last_name AS user_last_name
	FROM feedback f
	JOIN work_requests wr ON f.request_id = wr.request_id
	JOIN skills s ON wr.skill_id = s.skill_id
	JOIN users u ON wr.user_id = u.user_id`

// FeedbackReadRepository handles feedback ledger read operations
type FeedbackReadRepository struct {
	db *sqlx.DB
}

func NewFeedbackReadRepository(db *sqlx.DB) *FeedbackReadRepository {
	return &FeedbackReadRepository{db: db}
}

// GetByRequestID returns the feedback for a request, or nil if absent.
func (r *FeedbackReadRepository) GetByRequestID(ctx context.Context, requestID int64) (*models.FeedbackDetail, error) {
	query := feedbackDetailSelect + ` WHERE f.request_id = $1`

	var fb models.FeedbackDetail
	err := r.db.GetContext(ctx, &fb, query, requestID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{requestID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &fb, nil
}

// ListAll returns every feedback entry with request context, newest first.
func (r *FeedbackReadRepository) ListAll(ctx context.Context) ([]models.FeedbackDetail, error) {
	query := feedbackDetailSelect + ` ORDER BY f.feedback_id DESC`

	feedbacks := []models.FeedbackDetail{}
	err := r.db.SelectContext(ctx, &feedbacks, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(feedbacks),
		"error", err,
	)

	return feedbacks, err
}

// ListByWorkerID returns feedback on requests assigned to the given worker.
func (r *FeedbackReadRepository) ListByWorkerID(ctx context.Context, workerID int64) ([]models.FeedbackDetail, error) {
	query := feedbackDetailSelect + ` WHERE wr.worker_id = $1 ORDER BY f.feedback_id DESC`

	feedbacks := []models.FeedbackDetail{}
	err := r.db.SelectContext(ctx, &feedbacks, query, workerID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{workerID},
		"result", len(feedbacks),
		"error", err,
	)

	return feedbacks, err
}

// FeedbackWriteRepository handles feedback ledger write operations
type FeedbackWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewFeedbackWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FeedbackWriteRepository {
	return &FeedbackWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts feedback for a request. The request carries at most one
// feedback row; a second submission affects zero rows and returns false.
func (r *FeedbackWriteRepository) Save(ctx context.Context, fb models.FeedbackDB) (bool, error) {
	query := `
		INSERT INTO feedback (request_id, comments, rating)
		VALUES ($1, $2, $3)
		ON CONFLICT (request_id) DO NOTHING
	`
	args := []any{fb.RequestID, fb.Comments, fb.Rating}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, args...)
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
