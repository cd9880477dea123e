package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/NithinS0/Skill-Hive/internal/logger"
	"github.com/NithinS0/Skill-Hive/internal/models"
)

var (
	ErrSkillExists   = errors.New("skill name already exists")
	ErrSkillNotFound = errors.New("skill not found")
)

// SkillReader reads the skill catalog from the relational store.
type SkillReader interface {
	List(ctx context.Context) ([]models.SkillDB, error)
	GetByID(ctx context.Context, skillID int64) (*models.SkillDB, error)
}

// SkillWriter mutates the skill catalog.
type SkillWriter interface {
	Save(ctx context.Context, name string) (int64, error)
	Update(ctx context.Context, skillID int64, name string) (bool, error)
	Delete(ctx context.Context, skillID int64) (bool, error)
}

// SkillCache caches the catalog listing.
type SkillCache interface {
	GetAll(ctx context.Context) ([]models.SkillDB, error)
	SetAll(ctx context.Context, skills []models.SkillDB) error
	Invalidate(ctx context.Context) error
}

// SkillService manages the skill catalog with a read cache in front of the
// listing. Cache failures never fail the operation; the relational store is
// the source of truth.
type SkillService struct {
	reader SkillReader
	writer SkillWriter
	cache  SkillCache
}

// NewSkillService creates a new SkillService instance.
func NewSkillService(reader SkillReader, writer SkillWriter, cache SkillCache) *SkillService {
	return &SkillService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// List returns the skill catalog, preferring the cache.
func (svc *SkillService) List(ctx context.Context) ([]models.SkillDB, error) {
	if svc.cache != nil {
		skills, err := svc.cache.GetAll(ctx)
		if err == nil {
			return skills, nil
		}
		logger.Log.Infow("skill cache miss", "err", err)
	}

	skills, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list skills", "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.SetAll(ctx, skills); err != nil {
			logger.Log.Warnw("failed to populate skill cache", "err", err)
		}
	}

	return skills, nil
}

// Create adds a skill to the catalog.
func (svc *SkillService) Create(ctx context.Context, name string) (int64, error) {
	id, err := svc.writer.Save(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrSkillExists
	}
	if err != nil {
		logger.Log.Errorw("failed to create skill", "name", name, "err", err)
		return 0, err
	}

	svc.invalidate(ctx)
	return id, nil
}

// Update renames a skill.
func (svc *SkillService) Update(ctx context.Context, skillID int64, name string) error {
	ok, err := svc.writer.Update(ctx, skillID, name)
	if err != nil {
		logger.Log.Errorw("failed to update skill", "skill_id", skillID, "err", err)
		return err
	}
	if !ok {
		return ErrSkillNotFound
	}

	svc.invalidate(ctx)
	return nil
}

// Delete removes a skill from the catalog.
func (svc *SkillService) Delete(ctx context.Context, skillID int64) error {
	ok, err := svc.writer.Delete(ctx, skillID)
	if err != nil {
		logger.Log.Errorw("failed to delete skill", "skill_id", skillID, "err", err)
		return err
	}
	if !ok {
		return ErrSkillNotFound
	}

	svc.invalidate(ctx)
	return nil
}

func (svc *SkillService) invalidate(ctx context.Context) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Invalidate(ctx); err != nil {
		logger.Log.Warnw("failed to invalidate skill cache", "err", err)
	}
}
