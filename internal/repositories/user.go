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

const userColumns = `user_id, first_name, last_name, email, phone_number1, phone_number2, credential_id`

// UserReadRepository handles user profile read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user profile with the given id, or nil if absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID int64) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByCredentialID returns the user profile owned by the given credential, or nil.
func (r *UserReadRepository) GetByCredentialID(ctx context.Context, credentialID int64) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE credential_id = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, credentialID)

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

	return &user, nil
}

// List returns all user profiles, newest first.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY user_id DESC`

	users := []models.UserDB{}
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(users),
		"error", err,
	)

	return users, err
}

// UserWriteRepository handles user profile write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user profile and returns its id.
func (r *UserWriteRepository) Save(ctx context.Context, u models.UserDB) (int64, error) {
	query := `
		INSERT INTO users (first_name, last_name, email, phone_number1, phone_number2, credential_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING user_id
	`
	args := []any{u.FirstName, u.LastName, u.Email, u.PhoneNumber1, u.PhoneNumber2, u.CredentialID}

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

// Update replaces the mutable fields of a user profile.
// Returns true when the profile existed.
func (r *UserWriteRepository) Update(ctx context.Context, u models.UserDB) (bool, error) {
	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, email = $3, phone_number1 = $4, phone_number2 = $5
		WHERE user_id = $6
	`
	args := []any{u.FirstName, u.LastName, u.Email, u.PhoneNumber1, u.PhoneNumber2, u.UserID}

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
