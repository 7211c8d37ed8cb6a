package repository

import (
	"context"

	"github.com/globe-engine/internal/domain"
)

// RasterRepository загружает растр плотности населения
type RasterRepository interface {
	Load(ctx context.Context) (*domain.RasterGrid, error)
}
