package repository

import (
	"context"
	"time"

	"github.com/globe-engine/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetDensity получает выборку плотности, nil при промахе
	GetDensity(ctx context.Context, key domain.DensityKey) ([]domain.DensitySample, error)

	// SetDensity сохраняет выборку плотности
	SetDensity(ctx context.Context, key domain.DensityKey, samples []domain.DensitySample, ttl time.Duration) error
}
