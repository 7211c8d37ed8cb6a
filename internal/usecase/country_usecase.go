package usecase

import (
	"go.uber.org/zap"

	"github.com/globe-engine/internal/pkg/errors"
	"github.com/globe-engine/internal/usecase/dto"
)

// CountryUseCase - чтение реестра стран и их регионов
type CountryUseCase struct {
	session *GlobeSession
	logger  *zap.Logger
}

// NewCountryUseCase - создание нового CountryUseCase
func NewCountryUseCase(session *GlobeSession, logger *zap.Logger) *CountryUseCase {
	return &CountryUseCase{session: session, logger: logger}
}

// List - все страны в порядке загрузки
func (uc *CountryUseCase) List() *dto.CountryListResponse {
	countries := uc.session.Registry().All()

	out := make([]dto.CountryResponse, 0, len(countries))
	for _, c := range countries {
		out = append(out, dto.ConvertCountry(c))
	}
	return &dto.CountryListResponse{Countries: out, Total: len(out)}
}

// Get - страна по коду
func (uc *CountryUseCase) Get(code string) (*dto.CountryResponse, error) {
	c, ok := uc.session.Registry().Get(code)
	if !ok {
		return nil, errors.ErrCountryNotFound.WithDetails(map[string]interface{}{"code": code})
	}
	resp := dto.ConvertCountry(c)
	return &resp, nil
}

// Regions - регионы одной страны
func (uc *CountryUseCase) Regions(code string) (*dto.RegionListResponse, error) {
	if _, ok := uc.session.Registry().Get(code); !ok {
		return nil, errors.ErrCountryNotFound.WithDetails(map[string]interface{}{"code": code})
	}

	set := uc.session.Regions()
	regions := set.ByOwner(code)

	out := make([]dto.RegionResponse, 0, len(regions))
	for _, r := range regions {
		out = append(out, dto.ConvertRegion(r, set.Border(r.ID)))
	}
	return &dto.RegionListResponse{Regions: out, Total: len(out)}, nil
}

// AllRegions - все регионы в порядке обхода
func (uc *CountryUseCase) AllRegions() *dto.RegionListResponse {
	set := uc.session.Regions()
	regions := set.Regions()

	out := make([]dto.RegionResponse, 0, len(regions))
	for _, r := range regions {
		out = append(out, dto.ConvertRegion(r, set.Border(r.ID)))
	}
	return &dto.RegionListResponse{Regions: out, Total: len(out)}
}
