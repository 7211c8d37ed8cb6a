package repository

import (
	"context"

	"github.com/globe-engine/internal/domain"
)

// FeatureRepository определяет источник геометрии стран
type FeatureRepository interface {
	// List возвращает все страны в порядке источника
	List(ctx context.Context) ([]domain.Feature, error)

	// ListByCodes возвращает только страны с указанными кодами
	ListByCodes(ctx context.Context, codes []string) ([]domain.Feature, error)
}

// CenterRepository возвращает заранее рассчитанные центры стран (code -> x,y,z)
type CenterRepository interface {
	Centers(ctx context.Context) (map[string]domain.SpherePoint, error)
}
