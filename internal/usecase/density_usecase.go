package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/globe-engine/internal/density"
	"github.com/globe-engine/internal/domain"
	"github.com/globe-engine/internal/domain/repository"
	"github.com/globe-engine/internal/metrics"
	"github.com/globe-engine/internal/pkg/errors"
	"github.com/globe-engine/internal/pkg/validator"
	"github.com/globe-engine/internal/spiral"
	"github.com/globe-engine/internal/usecase/dto"
)

// DensityUseCase - выборка плотности населения в точках спирали
type DensityUseCase struct {
	session      *GlobeSession
	cacheRepo    repository.CacheRepository
	defaultCount int
	cacheTTL     time.Duration
	logger       *zap.Logger
}

// NewDensityUseCase - cacheRepo может быть nil (без кеша)
func NewDensityUseCase(
	session *GlobeSession,
	cacheRepo repository.CacheRepository,
	defaultCount int,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *DensityUseCase {
	return &DensityUseCase{
		session:      session,
		cacheRepo:    cacheRepo,
		defaultCount: defaultCount,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// Density samples the session raster at count spiral points on the globe.
func (uc *DensityUseCase) Density(ctx context.Context, req dto.DensityRequest) (*dto.DensityResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(validator.Fields(err))
	}
	if req.Count == 0 {
		req.Count = uc.defaultCount
	}

	raster := uc.session.Raster()
	if raster == nil {
		return nil, errors.ErrRasterNotLoaded
	}

	radius := uc.session.Options().Radius
	key := domain.DensityKey{Raster: uc.session.RasterFingerprint(), Count: req.Count, Radius: radius}

	if samples := uc.cached(ctx, key); samples != nil {
		return uc.response(key, samples, true), nil
	}

	points, err := spiral.Generate(req.Count, radius)
	if err != nil {
		return nil, err
	}
	samples, err := density.Sample(points, raster, radius)
	if err != nil {
		return nil, err
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetDensity(ctx, key, samples, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache density samples", zap.String("key", key.String()), zap.Error(err))
		}
	}

	return uc.response(key, samples, false), nil
}

func (uc *DensityUseCase) cached(ctx context.Context, key domain.DensityKey) []domain.DensitySample {
	if uc.cacheRepo == nil {
		return nil
	}
	samples, err := uc.cacheRepo.GetDensity(ctx, key)
	if err != nil {
		uc.logger.Warn("Density cache read failed", zap.String("key", key.String()), zap.Error(err))
		metrics.DensityCacheMissesTotal.Inc()
		return nil
	}
	// a stale entry from a different count is never served
	if samples == nil || len(samples) != key.Count {
		metrics.DensityCacheMissesTotal.Inc()
		return nil
	}
	metrics.DensityCacheHitsTotal.Inc()
	return samples
}

func (uc *DensityUseCase) response(key domain.DensityKey, samples []domain.DensitySample, cached bool) *dto.DensityResponse {
	return &dto.DensityResponse{
		Count:   key.Count,
		Radius:  key.Radius,
		Cached:  cached,
		Samples: samples,
		Markers: density.Markers(samples),
	}
}

// Spiral returns the raw point set without sampling.
func (uc *DensityUseCase) Spiral(req dto.SpiralRequest) (*dto.SpiralResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(validator.Fields(err))
	}
	if req.Radius == 0 {
		req.Radius = uc.session.Options().Radius
	}

	points, err := spiral.Generate(req.Count, req.Radius)
	if err != nil {
		return nil, err
	}
	return &dto.SpiralResponse{Count: len(points), Radius: req.Radius, Points: points}, nil
}
