package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/globe-engine/internal/pkg/utils"
	"github.com/globe-engine/internal/usecase"
)

// CountryHandler - обработчик запросов к реестру стран
type CountryHandler struct {
	countryUC *usecase.CountryUseCase
	logger    *zap.Logger
}

// NewCountryHandler - создание нового CountryHandler
func NewCountryHandler(countryUC *usecase.CountryUseCase, logger *zap.Logger) *CountryHandler {
	return &CountryHandler{
		countryUC: countryUC,
		logger:    logger,
	}
}

// List godoc
// @Summary Список стран
// @Description Возвращает все страны реестра в порядке загрузки вместе с центрами для подписей
// @Tags Countries
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.CountryListResponse}
// @Router /api/v1/countries [get]
func (h *CountryHandler) List(c *fiber.Ctx) error {
	result := h.countryUC.List()
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// Get godoc
// @Summary Страна по коду
// @Tags Countries
// @Produce json
// @Param code path string true "Код страны (ISO A3)"
// @Success 200 {object} utils.SuccessResponse{data=dto.CountryResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/countries/{code} [get]
func (h *CountryHandler) Get(c *fiber.Ctx) error {
	result, err := h.countryUC.Get(code(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Regions godoc
// @Summary Контуры и границы страны
// @Description Контуры в координатах карты (u, v) для пикинга и линии границ на сфере для рендера. По одному региону на кольцо, дыры помечены hole=true
// @Tags Countries
// @Produce json
// @Param code path string true "Код страны (ISO A3)"
// @Success 200 {object} utils.SuccessResponse{data=dto.RegionListResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/countries/{code}/regions [get]
func (h *CountryHandler) Regions(c *fiber.Ctx) error {
	result, err := h.countryUC.Regions(code(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// AllRegions godoc
// @Summary Все регионы
// @Tags Countries
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.RegionListResponse}
// @Router /api/v1/regions [get]
func (h *CountryHandler) AllRegions(c *fiber.Ctx) error {
	result := h.countryUC.AllRegions()
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// code - коды сравниваются точно, как в источнике
func code(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Params("code"))
}
