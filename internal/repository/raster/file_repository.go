// Package raster loads population density grids from disk.
//
// File layout (optionally gzip-compressed, detected by the .gz suffix):
//
//	{"width": 360, "height": 180, "bbox": [-180, -90, 180, 90], "samples": [...]}
//
// samples are row-major starting at the north-west corner; null marks a
// no-data cell.
package raster

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/globe-engine/internal/density"
	"github.com/globe-engine/internal/domain"
	"github.com/globe-engine/internal/domain/repository"
	"github.com/globe-engine/internal/pkg/errors"
)

type rasterFile struct {
	Width   int        `json:"width"`
	Height  int        `json:"height"`
	BBox    []float64  `json:"bbox"`
	Samples []*float64 `json:"samples"`
}

type fileRepository struct {
	path   string
	logger *zap.Logger
}

// NewFileRepository создает загрузчик растра из JSON файла
func NewFileRepository(path string, logger *zap.Logger) repository.RasterRepository {
	return &fileRepository{path: path, logger: logger}
}

func (r *fileRepository) Load(ctx context.Context) (*domain.RasterGrid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		r.logger.Error("Failed to open raster file", zap.String("path", r.path), zap.Error(err))
		return nil, fmt.Errorf("failed to open raster file: %w", err)
	}
	defer f.Close()

	var src io.Reader = f
	if strings.HasSuffix(r.path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.ErrMalformedRaster.WithMessage("invalid gzip stream: %v", err)
		}
		defer gz.Close()
		src = gz
	}

	grid, err := Decode(src)
	if err != nil {
		r.logger.Error("Failed to decode raster file", zap.String("path", r.path), zap.Error(err))
		return nil, err
	}

	r.logger.Info("Raster loaded",
		zap.String("path", r.path),
		zap.Int("width", grid.Width),
		zap.Int("height", grid.Height))
	return grid, nil
}

// Decode reads and validates one raster document.
func Decode(src io.Reader) (*domain.RasterGrid, error) {
	var raw rasterFile
	if err := json.NewDecoder(src).Decode(&raw); err != nil {
		return nil, errors.ErrMalformedRaster.WithMessage("invalid raster document: %v", err)
	}

	bbox, ok := domain.BoundingBoxFromSlice(raw.BBox)
	if !ok {
		return nil, errors.ErrMalformedRaster.WithMessage("bbox must have 4 values, got %d", len(raw.BBox))
	}

	samples := make([]float64, len(raw.Samples))
	for i, v := range raw.Samples {
		if v == nil {
			samples[i] = math.NaN()
			continue
		}
		samples[i] = *v
	}

	grid := &domain.RasterGrid{
		Width:   raw.Width,
		Height:  raw.Height,
		BBox:    bbox,
		Samples: samples,
	}
	if err := density.ValidateRaster(grid); err != nil {
		return nil, err
	}
	return grid, nil
}
