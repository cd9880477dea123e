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

// SkillReadRepository handles skill catalog read operations
type SkillReadRepository struct {
	db *sqlx.DB
}

func NewSkillReadRepository(db *sqlx.DB) *SkillReadRepository {
	return &SkillReadRepository{db: db}
}

// List returns the whole skill catalog ordered by name.
func (r *SkillReadRepository) List(ctx context.Context) ([]models.SkillDB, error) {
	const query = `SELECT skill_id, skill_name FROM skills ORDER BY skill_name`

	skills := []models.SkillDB{}
	err := r.db.SelectContext(ctx, &skills, query)

	logger.Log.Infow(
		"query", query,
		"result", len(skills),
		"error", err,
	)

	return skills, err
}

// GetByID returns the skill with the given id, or nil if absent.
func (r *SkillReadRepository) GetByID(ctx context.Context, skillID int64) (*models.SkillDB, error) {
	const query = `SELECT skill_id, skill_name FROM skills WHERE skill_id = $1`

	var skill models.SkillDB
	err := r.db.GetContext(ctx, &skill, query, skillID)

	logger.Log.Infow(
		"query", query,
		"args", []any{skillID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &skill, nil
}

// SkillWriteRepository handles skill catalog write operations
type SkillWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSkillWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SkillWriteRepository {
	return &SkillWriteRepository{db: db, txGetter: txGetter}
}

func (r *SkillWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new skill and returns its id.
// Returns sql.ErrNoRows when the name is already taken.
func (r *SkillWriteRepository) Save(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO skills (skill_name)
		VALUES ($1)
		ON CONFLICT (skill_name) DO NOTHING
		RETURNING skill_id
	`

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, name)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name},
		"result", id,
		"error", err,
	)

	return id, err
}

// Update renames a skill. Returns true when the skill existed.
func (r *SkillWriteRepository) Update(ctx context.Context, skillID int64, name string) (bool, error) {
	query := `UPDATE skills SET skill_name = $1 WHERE skill_id = $2`

	res, err := r.executor(ctx).ExecContext(ctx, query, name, skillID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{name, skillID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}

// Delete removes a skill. Junction rows cascade. Returns true when it existed.
func (r *SkillWriteRepository) Delete(ctx context.Context, skillID int64) (bool, error) {
	query := `DELETE FROM skills WHERE skill_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, skillID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{skillID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}
