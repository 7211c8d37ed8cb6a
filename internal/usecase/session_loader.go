package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/globe-engine/internal/domain"
	"github.com/globe-engine/internal/domain/repository"
	"github.com/globe-engine/internal/hitregion"
	"github.com/globe-engine/internal/metrics"
	"github.com/globe-engine/internal/pkg/errors"
	"github.com/globe-engine/internal/registry"
)

// SessionLoader - use case сборки GlobeSession из внешних источников
type SessionLoader struct {
	featureRepo repository.FeatureRepository
	centerRepo  repository.CenterRepository
	rasterRepo  repository.RasterRepository
	opts        registry.Options
	logger      *zap.Logger
}

// NewSessionLoader - centerRepo и rasterRepo могут быть nil
func NewSessionLoader(
	featureRepo repository.FeatureRepository,
	centerRepo repository.CenterRepository,
	rasterRepo repository.RasterRepository,
	opts registry.Options,
	logger *zap.Logger,
) *SessionLoader {
	return &SessionLoader{
		featureRepo: featureRepo,
		centerRepo:  centerRepo,
		rasterRepo:  rasterRepo,
		opts:        opts,
		logger:      logger,
	}
}

// Load fetches features, builds the registry and hit regions, and attaches
// the raster. Skipped features are logged and returned in the report; a
// raster that fails to load leaves the session without density support.
func (uc *SessionLoader) Load(ctx context.Context) (*GlobeSession, *registry.LoadReport, error) {
	features, err := uc.featureRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list country features", zap.Error(err))
		return nil, nil, err
	}

	if err := uc.applyCenters(ctx, features); err != nil {
		return nil, nil, err
	}

	reg, report, err := registry.Load(features, uc.opts)
	if err != nil {
		return nil, nil, err
	}
	uc.logReport(report)

	regions, err := hitregion.Build(reg, hitregion.Options{Radius: uc.opts.Radius, BorderOffset: uc.opts.BorderOffset})
	if err != nil {
		return nil, nil, err
	}

	raster := uc.loadRaster(ctx)

	session := NewGlobeSession(reg, regions, raster)
	uc.logger.Info("Globe session ready",
		zap.String("session_id", session.ID().String()),
		zap.Int("countries", reg.Len()),
		zap.Int("regions", regions.Len()),
		zap.Bool("raster", raster != nil))

	return session, report, nil
}

func (uc *SessionLoader) applyCenters(ctx context.Context, features []domain.Feature) error {
	if uc.centerRepo == nil {
		return nil
	}
	centers, err := uc.centerRepo.Centers(ctx)
	if err != nil {
		uc.logger.Error("Failed to load country centers", zap.Error(err))
		return err
	}
	for i := range features {
		if features[i].Center != nil {
			continue
		}
		if c, ok := centers[features[i].Code]; ok {
			c := c
			features[i].Center = &c
		}
	}
	return nil
}

func (uc *SessionLoader) logReport(report *registry.LoadReport) {
	metrics.CountriesLoaded.Set(float64(report.Loaded))

	for _, issue := range report.Issues {
		code := errors.CodeInternal
		if appErr, ok := errors.AsAppError(issue.Err); ok {
			code = appErr.Code
		}
		metrics.CountryLoadIssuesTotal.WithLabelValues(code).Inc()

		uc.logger.Warn("Country feature skipped",
			zap.Int("index", issue.Index),
			zap.String("code", issue.Code),
			zap.String("reason", code),
			zap.Error(issue.Err))
	}
}

func (uc *SessionLoader) loadRaster(ctx context.Context) *domain.RasterGrid {
	if uc.rasterRepo == nil {
		return nil
	}
	grid, err := uc.rasterRepo.Load(ctx)
	if err != nil {
		uc.logger.Warn("Population raster unavailable, density disabled", zap.Error(err))
		return nil
	}
	return grid
}
