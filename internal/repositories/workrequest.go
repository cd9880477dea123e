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

const workRequestColumns = `request_id, user_id, worker_id, skill_id, description, request_date,
	status, location, city, pincode, door_no, street_name, area, worker_arrival_time,
	user_confirmation_status, amount, completed_date, created_at`

const workRequestDetailSelect = `
	SELECT wr.request_id, wr.user_id, wr.worker_id, wr.skill_id, wr.description, wr.request_date,
	       wr.status, wr.location, wr.city, wr.pincode, wr.door_no, wr.street_name, wr.area,
	       wr.worker_arrival_time, wr.user_confirmation_status, wr.amount, wr.completed_date, wr.created_at,
	       s.skill_name,
	       u.first_name AS user_first_name, u.last_name AS user_last_name,
	       w.first_name AS worker_first_name, w.last_name AS worker_last_name
	FROM work_requests wr
	JOIN skills s ON wr.skill_id = s.skill_id
	JOIN users u ON wr.user_id = u.user_id
	LEFT JOIN workers w ON wr.worker_id = w.worker_id`

// Listing order is request date descending with id as the tie-break so
// equal-date listings stay stable.
const workRequestOrder = ` ORDER BY wr.request_date DESC, wr.request_id DESC`

// WorkRequestReadRepository handles work request read operations
type WorkRequestReadRepository struct {
	db *sqlx.DB
}

func NewWorkRequestReadRepository(db *sqlx.DB) *WorkRequestReadRepository {
	return &WorkRequestReadRepository{db: db}
}

// GetByID returns the work request with the given id, or nil if absent.
func (r *WorkRequestReadRepository) GetByID(ctx context.Context, requestID int64) (*models.WorkRequestDB, error) {
	query := `SELECT ` + workRequestColumns + ` FROM work_requests WHERE request_id = $1`

	var req models.WorkRequestDB
	err := r.db.GetContext(ctx, &req, query, requestID)

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

	return &req, nil
}

// ListByUserID returns all requests created by the given user.
func (r *WorkRequestReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.WorkRequestDetail, error) {
	query := workRequestDetailSelect + ` WHERE wr.user_id = $1` + workRequestOrder

	requests := []models.WorkRequestDetail{}
	err := r.db.SelectContext(ctx, &requests, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(requests),
		"error", err,
	)

	return requests, err
}

// ListByWorkerID returns all requests assigned to the given worker.
func (r *WorkRequestReadRepository) ListByWorkerID(ctx context.Context, workerID int64) ([]models.WorkRequestDetail, error) {
	query := workRequestDetailSelect + ` WHERE wr.worker_id = $1` + workRequestOrder

	requests := []models.WorkRequestDetail{}
	err := r.db.SelectContext(ctx, &requests, query, workerID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{workerID},
		"result", len(requests),
		"error", err,
	)

	return requests, err
}

// ListAll returns every work request, for the admin surface.
func (r *WorkRequestReadRepository) ListAll(ctx context.Context) ([]models.WorkRequestDetail, error) {
	query := workRequestDetailSelect + workRequestOrder

	requests := []models.WorkRequestDetail{}
	err := r.db.SelectContext(ctx, &requests, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(requests),
		"error", err,
	)

	return requests, err
}

// ListAvailableForWorker returns unassigned Pending requests whose skill is
// in the worker's skill set. A worker with no skills gets an empty list.
func (r *WorkRequestReadRepository) ListAvailableForWorker(ctx context.Context, workerID int64) ([]models.WorkRequestDetail, error) {
	query := workRequestDetailSelect + `
		WHERE wr.status = 'Pending'
		  AND wr.worker_id IS NULL
		  AND wr.skill_id IN (SELECT ws.skill_id FROM worker_skills ws WHERE ws.worker_id = $1)` +
		workRequestOrder

	requests := []models.WorkRequestDetail{}
	err := r.db.SelectContext(ctx, &requests, query, workerID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{workerID},
		"result", len(requests),
		"error", err,
	)

	return requests, err
}

// WorkerHasSkill reports whether the worker's skill set contains the skill.
func (r *WorkRequestReadRepository) WorkerHasSkill(ctx context.Context, workerID, skillID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM worker_skills WHERE worker_id = $1 AND skill_id = $2
		)
	`

	var has bool
	err := r.db.GetContext(ctx, &has, query, workerID, skillID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{workerID, skillID},
		"result", has,
		"error", err,
	)

	return has, err
}

// WorkRequestWriteRepository handles work request write operations
type WorkRequestWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWorkRequestWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WorkRequestWriteRepository {
	return &WorkRequestWriteRepository{db: db, txGetter: txGetter}
}

func (r *WorkRequestWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *WorkRequestWriteRepository) execConditional(ctx context.Context, query string, args ...any) (bool, error) {
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

// Save inserts a freshly created work request and returns its id.
func (r *WorkRequestWriteRepository) Save(ctx context.Context, req models.WorkRequestDB) (int64, error) {
	query := `
		INSERT INTO work_requests (user_id, skill_id, description, request_date, location, city,
		                           pincode, door_no, street_name, area, status, user_confirmation_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'Pending', 'Pending', NOW())
		RETURNING request_id
	`
	args := []any{req.UserID, req.SkillID, req.Description, req.RequestDate, req.Location,
		req.City, req.Pincode, req.DoorNo, req.StreetName, req.Area}

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	return id, err
}

// Assign claims a Pending, unassigned request for a worker. The status and
// worker guards in the WHERE clause make concurrent accepts yield exactly
// one winner; losers see zero affected rows.
func (r *WorkRequestWriteRepository) Assign(ctx context.Context, requestID, workerID int64, arrivalTime *string) (bool, error) {
	query := `
		UPDATE work_requests
		SET worker_id = $1, status = 'Accepted', worker_arrival_time = $2
		WHERE request_id = $3 AND status = 'Pending' AND worker_id IS NULL
	`
	return r.execConditional(ctx, query, workerID, arrivalTime, requestID)
}

// Release reverts an Accepted request held by this worker back to the pool.
func (r *WorkRequestWriteRepository) Release(ctx context.Context, requestID, workerID int64) (bool, error) {
	query := `
		UPDATE work_requests
		SET worker_id = NULL, status = 'Pending'
		WHERE request_id = $1 AND worker_id = $2 AND status = 'Accepted'
	`
	return r.execConditional(ctx, query, requestID, workerID)
}

// ReleaseAllForWorker reverts every Accepted request held by this worker
// back to the pool. Used when the worker's account is removed, so in-flight
// jobs do not end up Accepted with no worker. Returns how many were released.
func (r *WorkRequestWriteRepository) ReleaseAllForWorker(ctx context.Context, workerID int64) (int64, error) {
	query := `
		UPDATE work_requests
		SET worker_id = NULL, status = 'Pending'
		WHERE worker_id = $1 AND status = 'Accepted'
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, workerID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{workerID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Complete finishes an Accepted request held by this worker, recording the
// amount and stamping the completion date. The worker stays assigned.
func (r *WorkRequestWriteRepository) Complete(ctx context.Context, requestID, workerID int64, amount *float64) (bool, error) {
	query := `
		UPDATE work_requests
		SET status = 'Completed', amount = $1, completed_date = CURRENT_DATE
		WHERE request_id = $2 AND worker_id = $3 AND status = 'Accepted'
	`
	return r.execConditional(ctx, query, amount, requestID, workerID)
}

// Cancel cancels a Pending or Accepted request owned by this user and
// returns the previously assigned worker id, if any.
// Returns sql.ErrNoRows when no cancellable row matched.
func (r *WorkRequestWriteRepository) Cancel(ctx context.Context, requestID, userID int64) (*int64, error) {
	query := `
		UPDATE work_requests
		SET status = 'Cancelled'
		WHERE request_id = $1 AND user_id = $2 AND status IN ('Pending', 'Accepted')
		RETURNING worker_id
	`

	var workerID *int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &workerID, query, requestID, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{requestID, userID},
		"result", workerID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return workerID, nil
}

// SetArrivalTime updates the announced arrival time on an Accepted request
// held by this worker.
func (r *WorkRequestWriteRepository) SetArrivalTime(ctx context.Context, requestID, workerID int64, arrivalTime string) (bool, error) {
	query := `
		UPDATE work_requests
		SET worker_arrival_time = $1
		WHERE request_id = $2 AND worker_id = $3 AND status = 'Accepted'
	`
	return r.execConditional(ctx, query, arrivalTime, requestID, workerID)
}

// SetConfirmation records the user's confirmation of the arrival time on an
// Accepted request they own.
func (r *WorkRequestWriteRepository) SetConfirmation(ctx context.Context, requestID, userID int64, confirmation string) (bool, error) {
	query := `
		UPDATE work_requests
		SET user_confirmation_status = $1
		WHERE request_id = $2 AND user_id = $3 AND status = 'Accepted'
	`
	return r.execConditional(ctx, query, confirmation, requestID, userID)
}
