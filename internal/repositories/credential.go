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

// CredentialReadRepository handles credential read operations
type CredentialReadRepository struct {
	db *sqlx.DB
}

func NewCredentialReadRepository(db *sqlx.DB) *CredentialReadRepository {
	return &CredentialReadRepository{db: db}
}

// GetByUsername returns the credential with the given username, or nil if absent.
func (r *CredentialReadRepository) GetByUsername(ctx context.Context, username string) (*models.CredentialDB, error) {
	const query = `
		SELECT credential_id, username, password_hash, role, created_at
		FROM credentials
		WHERE username = $1
	`

	var cred models.CredentialDB
	err := r.db.GetContext(ctx, &cred, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &cred, nil
}

// GetByIDAndRole returns the credential with the given id if its role matches,
// or nil if absent. Every role-gated operation re-checks through here.
func (r *CredentialReadRepository) GetByIDAndRole(ctx context.Context, id int64, role string) (*models.CredentialDB, error) {
	const query = `
		SELECT credential_id, username, password_hash, role, created_at
		FROM credentials
		WHERE credential_id = $1 AND role = $2
	`

	var cred models.CredentialDB
	err := r.db.GetContext(ctx, &cred, query, id, role)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, role},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &cred, nil
}

// CredentialWriteRepository handles credential write operations
type CredentialWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewCredentialWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CredentialWriteRepository {
	return &CredentialWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new credential and returns its id.
func (r *CredentialWriteRepository) Save(ctx context.Context, username, passwordHash, role string) (int64, error) {
	query := `
		INSERT INTO credentials (username, password_hash, role, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING credential_id
	`
	args := []any{username, passwordHash, role}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var id int64
	err := sqlx.GetContext(ctx, executor, &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	return id, err
}

// SaveIfAbsent inserts a credential unless the username is already taken.
// Returns true when a row was inserted. Used for the bootstrap admin seed.
func (r *CredentialWriteRepository) SaveIfAbsent(ctx context.Context, username, passwordHash, role string) (bool, error) {
	query := `
		INSERT INTO credentials (username, password_hash, role, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (username) DO NOTHING
	`
	args := []any{username, passwordHash, role}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, role},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}

// Delete removes a credential. Profiles, requests, notifications, and
// feedback follow via schema-level cascades. Returns true when a row existed.
func (r *CredentialWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM credentials WHERE credential_id = $1`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}
