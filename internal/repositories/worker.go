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

const workerColumns = `worker_id, first_name, last_name, address, city, pincode, door_no,
	street_name, area, experience_years, available_status, phone_number1, phone_number2, credential_id`

// WorkerReadRepository handles worker profile read operations
type WorkerReadRepository struct {
	db *sqlx.DB
}

func NewWorkerReadRepository(db *sqlx.DB) *WorkerReadRepository {
	return &WorkerReadRepository{db: db}
}

// GetByCredentialID returns the worker profile owned by the given credential, or nil.
func (r *WorkerReadRepository) GetByCredentialID(ctx context.Context, credentialID int64) (*models.WorkerDB, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE credential_id = $1`

	var worker models.WorkerDB
	err := r.db.GetContext(ctx, &worker, query, credentialID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{credentialID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &worker, nil
}

// GetByID returns the worker profile with the given id, or nil if absent.
func (r *WorkerReadRepository) GetByID(ctx context.Context, workerID int64) (*models.WorkerDB, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE worker_id = $1`

	var worker models.WorkerDB
	err := r.db.GetContext(ctx, &worker, query, workerID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{workerID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &worker, nil
}

// List returns all worker profiles joined with their usernames, newest first.
func (r *WorkerReadRepository) List(ctx context.Context) ([]models.WorkerAccount, error) {
	query := `
		SELECT w.worker_id, w.first_name, w.last_name, w.address, w.city, w.pincode, w.door_no,
		       w.street_name, w.area, w.experience_years, w.available_status,
		       w.phone_number1, w.phone_number2, w.credential_id, c.username
		FROM workers w
		JOIN credentials c ON w.credential_id = c.credential_id
		ORDER BY w.worker_id DESC
	`

	workers := []models.WorkerAccount{}
	err := r.db.SelectContext(ctx, &workers, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(workers),
		"error", err,
	)

	return workers, err
}

// GetSkills returns the skill set of a worker.
func (r *WorkerReadRepository) GetSkills(ctx context.Context, workerID int64) ([]models.SkillDB, error) {
	query := `
		SELECT s.skill_id, s.skill_name
		FROM worker_skills ws
		JOIN skills s ON ws.skill_id = s.skill_id
		WHERE ws.worker_id = $1
		ORDER BY s.skill_name
	`

	skills := []models.SkillDB{}
	err := r.db.SelectContext(ctx, &skills, query, workerID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{workerID},
		"result", len(skills),
		"error", err,
	)

	return skills, err
}

// WorkerWriteRepository handles worker profile write operations
type WorkerWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWorkerWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WorkerWriteRepository {
	return &WorkerWriteRepository{db: db, txGetter: txGetter}
}

func (r *WorkerWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new worker profile and returns its id.
func (r *WorkerWriteRepository) Save(ctx context.Context, w models.WorkerDB) (int64, error) {
	query := `
		INSERT INTO workers (first_name, last_name, address, city, pincode, door_no, street_name,
		                     area, experience_years, available_status, phone_number1, phone_number2, credential_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING worker_id
	`
	status := w.AvailableStatus
	if status == "" {
		status = models.WorkerAvailable
	}
	args := []any{w.FirstName, w.LastName, w.Address, w.City, w.Pincode, w.DoorNo, w.StreetName,
		w.Area, w.ExperienceYears, status, w.PhoneNumber1, w.PhoneNumber2, w.CredentialID}

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

// Update replaces the mutable fields of a worker profile.
// Returns true when the profile existed.
func (r *WorkerWriteRepository) Update(ctx context.Context, w models.WorkerDB) (bool, error) {
	query := `
		UPDATE workers
		SET first_name = $1, last_name = $2, address = $3, city = $4, pincode = $5, door_no = $6,
		    street_name = $7, area = $8, experience_years = $9, phone_number1 = $10, phone_number2 = $11
		WHERE worker_id = $12
	`
	args := []any{w.FirstName, w.LastName, w.Address, w.City, w.Pincode, w.DoorNo,
		w.StreetName, w.Area, w.ExperienceYears, w.PhoneNumber1, w.PhoneNumber2, w.WorkerID}

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

// UpdateStatus sets the free-text availability status of a worker.
// Returns true when the profile existed.
func (r *WorkerWriteRepository) UpdateStatus(ctx context.Context, workerID int64, status string) (bool, error) {
	query := `UPDATE workers SET available_status = $1 WHERE worker_id = $2`

	res, err := r.executor(ctx).ExecContext(ctx, query, status, workerID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{status, workerID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}

// ReplaceSkills swaps the worker's skill set for the given one.
// Duplicate ids collapse via the junction primary key.
func (r *WorkerWriteRepository) ReplaceSkills(ctx context.Context, workerID int64, skillIDs []int64) error {
	executor := r.executor(ctx)

	deleteQuery := `DELETE FROM worker_skills WHERE worker_id = $1`
	if _, err := executor.ExecContext(ctx, deleteQuery, workerID); err != nil {
		logger.Log.Infow("query", deleteQuery, "args", []any{workerID}, "error", err)
		return err
	}

	insertQuery := `
		INSERT INTO worker_skills (worker_id, skill_id)
		VALUES ($1, $2)
		ON CONFLICT (worker_id, skill_id) DO NOTHING
	`
	for _, skillID := range skillIDs {
		if _, err := executor.ExecContext(ctx, insertQuery, workerID, skillID); err != nil {
			logger.Log.Infow(
				"query", strings.Join(strings.Fields(insertQuery), " "),
				"args", []any{workerID, skillID},
				"error", err,
			)
			return err
		}
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(insertQuery), " "),
		"args", []any{workerID, skillIDs},
		"error", nil,
	)

	return nil
}
