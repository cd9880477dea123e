package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"

	"github.com/NithinS0/Skill-Hive/internal/logger"
	"github.com/NithinS0/Skill-Hive/internal/models"
)

const skillCacheKey = "skills:catalog"

// SkillCacheRepository provides a cached skill catalog using Redis.
// All calls go through a circuit breaker; an open breaker surfaces as an
// error and callers fall through to the relational store.
type SkillCacheRepository struct {
	client  *redis.Client
	exp     time.Duration // expiration duration for the cached catalog
	breaker *gobreaker.CircuitBreaker
}

// NewSkillCacheRepository creates a new cache repository with the given TTL.
func NewSkillCacheRepository(client *redis.Client, expiration time.Duration) *SkillCacheRepository {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "Redis-SkillCache",
		MaxRequests: 3,
		Interval:    time.Second * 10,
		Timeout:     time.Second * 5,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Log.Warnw("circuit breaker state change", "name", name, "from", from.String(), "to", to.String())
		},
	})

	return &SkillCacheRepository{
		client:  client,
		exp:     expiration,
		breaker: breaker,
	}
}

// GetAll returns the cached skill catalog.
// Returns redis.Nil when the catalog is not cached.
func (r *SkillCacheRepository) GetAll(ctx context.Context) ([]models.SkillDB, error) {
	val, err := r.breaker.Execute(func() (interface{}, error) {
		return r.client.Get(ctx, skillCacheKey).Result()
	})

	logger.Log.Infow(
		"key", skillCacheKey,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	var skills []models.SkillDB
	if err := json.Unmarshal([]byte(val.(string)), &skills); err != nil {
		return nil, err
	}

	return skills, nil
}

// SetAll caches the skill catalog with the configured TTL.
func (r *SkillCacheRepository) SetAll(ctx context.Context, skills []models.SkillDB) error {
	data, err := json.Marshal(skills)
	if err != nil {
		return err
	}

	_, err = r.breaker.Execute(func() (interface{}, error) {
		return nil, r.client.Set(ctx, skillCacheKey, data, r.exp).Err()
	})

	logger.Log.Infow(
		"key", skillCacheKey,
		"result", len(skills),
		"error", err,
	)

	return err
}

// Invalidate drops the cached catalog after a catalog mutation.
func (r *SkillCacheRepository) Invalidate(ctx context.Context) error {
	_, err := r.breaker.Execute(func() (interface{}, error) {
		return nil, r.client.Del(ctx, skillCacheKey).Err()
	})

	logger.Log.Infow(
		"key", skillCacheKey,
		"error", err,
	)

	return err
}
