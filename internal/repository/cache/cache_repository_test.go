package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/globe-engine/internal/domain"
)

func getTestRedis(t *testing.T) *Redis {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("Redis not available for integration tests: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	return NewRedisFromClient(client, zap.NewNop())
}

func TestCacheRepository_GetSetDelete(t *testing.T) {
	repo := NewCacheRepository(getTestRedis(t))
	ctx := context.Background()
	key := "test:cache:bytes"
	defer repo.Delete(ctx, key)

	val, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, val, "miss")

	require.NoError(t, repo.Set(ctx, key, []byte("payload"), time.Minute))
	val, err = repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), val)

	ok, err := repo.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Delete(ctx, key))
	ok, err = repo.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheRepository_Density(t *testing.T) {
	repo := NewCacheRepository(getTestRedis(t))
	ctx := context.Background()
	key := domain.DensityKey{Raster: "test", Count: 2, Radius: 0.5}
	defer repo.Delete(ctx, key.String())

	samples := []domain.DensitySample{
		{Point: domain.SpherePoint{X: 0, Y: 0.5, Z: 0}, Raw: 10, Normalized: 1},
		{Point: domain.SpherePoint{X: 0.5, Y: 0, Z: 0}, Raw: 0, Normalized: 0},
	}
	require.NoError(t, repo.SetDensity(ctx, key, samples, time.Minute))

	got, err := repo.GetDensity(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, samples, got)

	require.NoError(t, repo.Set(ctx, key.String(), []byte("not json"), time.Minute))
	got, err = repo.GetDensity(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)
}
