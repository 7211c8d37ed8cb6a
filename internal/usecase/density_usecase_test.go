package usecase_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/globe-engine/internal/domain"
	"github.com/globe-engine/internal/pkg/errors"
	"github.com/globe-engine/internal/usecase"
	"github.com/globe-engine/internal/usecase/dto"
)

func TestDensityUseCase_Density(t *testing.T) {
	ctx := context.Background()
	key := domain.DensityKey{Raster: testRaster().Fingerprint(), Count: 50, Radius: 1}

	t.Run("cache miss samples and stores", func(t *testing.T) {
		cache := &MockCacheRepository{}
		cache.On("GetDensity", ctx, key).Return(nil, nil)
		cache.On("SetDensity", ctx, key, mock.AnythingOfType("[]domain.DensitySample"), time.Hour).Return(nil)

		uc := usecase.NewDensityUseCase(newTestSession(t, testRaster()), cache, 50, time.Hour, zap.NewNop())
		resp, err := uc.Density(ctx, dto.DensityRequest{})
		require.NoError(t, err)

		assert.False(t, resp.Cached)
		assert.Equal(t, 50, resp.Count)
		require.Len(t, resp.Samples, 50)
		require.Len(t, resp.Markers, 50)

		maxNorm := 0.0
		for i, s := range resp.Samples {
			assert.GreaterOrEqual(t, s.Normalized, 0.0)
			assert.LessOrEqual(t, s.Normalized, 1.0)
			assert.Equal(t, s.Normalized > 0, resp.Markers[i].Visible)
			if s.Normalized > maxNorm {
				maxNorm = s.Normalized
			}
		}
		assert.InDelta(t, 1, maxNorm, 1e-12, "densest sample normalises to 1")
		cache.AssertExpectations(t)
	})

	t.Run("cache hit skips sampling", func(t *testing.T) {
		cached := make([]domain.DensitySample, 50)
		cached[0] = domain.DensitySample{Raw: 7, Normalized: 1}

		cache := &MockCacheRepository{}
		cache.On("GetDensity", ctx, key).Return(cached, nil)

		uc := usecase.NewDensityUseCase(newTestSession(t, testRaster()), cache, 50, time.Hour, zap.NewNop())
		resp, err := uc.Density(ctx, dto.DensityRequest{Count: 50})
		require.NoError(t, err)

		assert.True(t, resp.Cached)
		assert.Equal(t, 7.0, resp.Samples[0].Raw)
		cache.AssertNotCalled(t, "SetDensity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("another raster misses the old entry", func(t *testing.T) {
		raster := testRaster()
		raster.Samples[3] = 5000
		otherKey := domain.DensityKey{Raster: raster.Fingerprint(), Count: 50, Radius: 1}
		require.NotEqual(t, key, otherKey)

		cache := &MockCacheRepository{}
		cache.On("GetDensity", ctx, otherKey).Return(nil, nil)
		cache.On("SetDensity", ctx, otherKey, mock.Anything, time.Hour).Return(nil)

		uc := usecase.NewDensityUseCase(newTestSession(t, raster), cache, 50, time.Hour, zap.NewNop())
		resp, err := uc.Density(ctx, dto.DensityRequest{Count: 50})
		require.NoError(t, err)

		assert.False(t, resp.Cached)
		cache.AssertNotCalled(t, "GetDensity", ctx, key)
		cache.AssertExpectations(t)
	})

	t.Run("cache errors are tolerated", func(t *testing.T) {
		cache := &MockCacheRepository{}
		cache.On("GetDensity", ctx, key).Return(nil, errors.ErrCacheError)
		cache.On("SetDensity", ctx, key, mock.Anything, time.Hour).Return(errors.ErrCacheError)

		uc := usecase.NewDensityUseCase(newTestSession(t, testRaster()), cache, 50, time.Hour, zap.NewNop())
		resp, err := uc.Density(ctx, dto.DensityRequest{Count: 50})
		require.NoError(t, err)
		assert.Len(t, resp.Samples, 50)
	})

	t.Run("no raster", func(t *testing.T) {
		uc := usecase.NewDensityUseCase(newTestSession(t, nil), nil, 50, time.Hour, zap.NewNop())
		_, err := uc.Density(ctx, dto.DensityRequest{})
		assert.True(t, stderrors.Is(err, errors.ErrRasterNotLoaded))
	})

	t.Run("all-zero raster normalises to zero", func(t *testing.T) {
		raster := testRaster()
		raster.Samples = make([]float64, len(raster.Samples))

		uc := usecase.NewDensityUseCase(newTestSession(t, raster), nil, 20, time.Hour, zap.NewNop())
		resp, err := uc.Density(ctx, dto.DensityRequest{})
		require.NoError(t, err)
		for _, s := range resp.Samples {
			assert.Equal(t, 0.0, s.Normalized)
		}
	})

	t.Run("invalid count", func(t *testing.T) {
		uc := usecase.NewDensityUseCase(newTestSession(t, testRaster()), nil, 50, time.Hour, zap.NewNop())
		_, err := uc.Density(ctx, dto.DensityRequest{Count: -3})
		assert.True(t, stderrors.Is(err, errors.ErrInvalidRequest))
	})
}

func TestDensityUseCase_Spiral(t *testing.T) {
	uc := usecase.NewDensityUseCase(newTestSession(t, nil), nil, 50, time.Hour, zap.NewNop())

	resp, err := uc.Spiral(dto.SpiralRequest{Count: 100, Radius: 2})
	require.NoError(t, err)
	require.Len(t, resp.Points, 100)
	for _, p := range resp.Points {
		assert.InDelta(t, 2, p.Norm(), 1e-6)
	}

	resp, err = uc.Spiral(dto.SpiralRequest{Count: 3})
	require.NoError(t, err)
	assert.Equal(t, 1.0, resp.Radius, "defaults to the session radius")

	_, err = uc.Spiral(dto.SpiralRequest{Count: 0})
	assert.True(t, stderrors.Is(err, errors.ErrInvalidRequest))
}
