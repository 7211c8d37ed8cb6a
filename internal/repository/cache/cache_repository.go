package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/globe-engine/internal/domain"
	"github.com/globe-engine/internal/domain/repository"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(r *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: r.Client(),
		logger: r.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}
	return n > 0, nil
}

// GetDensity получает выборку плотности из кеша
func (r *cacheRepository) GetDensity(ctx context.Context, key domain.DensityKey) ([]domain.DensitySample, error) {
	data, err := r.Get(ctx, key.String())
	if err != nil || data == nil {
		return nil, err
	}

	var samples []domain.DensitySample
	if err := json.Unmarshal(data, &samples); err != nil {
		// stale format, treat as miss
		r.logger.Warn("Failed to unmarshal density from cache", zap.String("key", key.String()), zap.Error(err))
		return nil, nil
	}
	return samples, nil
}

// SetDensity сохраняет выборку плотности в кеше
func (r *cacheRepository) SetDensity(ctx context.Context, key domain.DensityKey, samples []domain.DensitySample, ttl time.Duration) error {
	data, err := json.Marshal(samples)
	if err != nil {
		r.logger.Error("Failed to marshal density", zap.Error(err))
		return fmt.Errorf("marshal density: %w", err)
	}
	return r.Set(ctx, key.String(), data, ttl)
}
