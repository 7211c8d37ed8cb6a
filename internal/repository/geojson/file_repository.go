package geojson

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/globe-engine/internal/domain"
	"github.com/globe-engine/internal/domain/repository"
)

type fileRepository struct {
	path   string
	props  Properties
	logger *zap.Logger
}

// NewFileRepository создает источник стран из GeoJSON файла
func NewFileRepository(path string, props Properties, logger *zap.Logger) repository.FeatureRepository {
	return &fileRepository{
		path:   path,
		props:  props,
		logger: logger,
	}
}

func (r *fileRepository) List(ctx context.Context) ([]domain.Feature, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		r.logger.Error("Failed to read countries file", zap.String("path", r.path), zap.Error(err))
		return nil, fmt.Errorf("failed to read countries file: %w", err)
	}

	fc, err := DecodeCollection(data)
	if err != nil {
		r.logger.Error("Failed to decode countries file", zap.String("path", r.path), zap.Error(err))
		return nil, err
	}

	features := ToFeatures(fc, r.props)
	r.logger.Debug("Countries file decoded",
		zap.String("path", r.path),
		zap.Int("features", len(features)))
	return features, nil
}

func (r *fileRepository) ListByCodes(ctx context.Context, codes []string) ([]domain.Feature, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		wanted[c] = struct{}{}
	}

	out := make([]domain.Feature, 0, len(codes))
	for _, f := range all {
		if _, ok := wanted[f.Code]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}

type centerRepository struct {
	path   string
	logger *zap.Logger
}

// NewCenterRepository читает JSON вида {"FRA": {"x":..,"y":..,"z":..}}.
// Пустой путь означает отсутствие таблицы центров.
func NewCenterRepository(path string, logger *zap.Logger) repository.CenterRepository {
	return &centerRepository{path: path, logger: logger}
}

func (r *centerRepository) Centers(ctx context.Context) (map[string]domain.SpherePoint, error) {
	if r.path == "" {
		return map[string]domain.SpherePoint{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		r.logger.Error("Failed to read centers file", zap.String("path", r.path), zap.Error(err))
		return nil, fmt.Errorf("failed to read centers file: %w", err)
	}

	centers := make(map[string]domain.SpherePoint)
	if err := json.Unmarshal(data, &centers); err != nil {
		return nil, fmt.Errorf("failed to decode centers file: %w", err)
	}
	return centers, nil
}
