package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/globe-engine/internal/pkg/utils"
	"github.com/globe-engine/internal/usecase"
	"github.com/globe-engine/internal/usecase/dto"
)

// DensityHandler - обработчик выборки плотности и точек спирали
type DensityHandler struct {
	densityUC *usecase.DensityUseCase
	logger    *zap.Logger
}

// NewDensityHandler - создание нового DensityHandler
func NewDensityHandler(densityUC *usecase.DensityUseCase, logger *zap.Logger) *DensityHandler {
	return &DensityHandler{
		densityUC: densityUC,
		logger:    logger,
	}
}

// Density godoc
// @Summary Плотность населения в точках спирали
// @Description Генерирует count точек спирали Фибоначчи, берёт значения растра, нормализует через log1p и возвращает стили маркеров. Результат кешируется в Redis
// @Tags Density
// @Produce json
// @Param count query int false "Количество точек (по умолчанию GLOBE_POINT_COUNT)"
// @Success 200 {object} utils.SuccessResponse{data=dto.DensityResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/density [get]
func (h *DensityHandler) Density(c *fiber.Ctx) error {
	start := time.Now()

	req := dto.DensityRequest{
		Count: c.QueryInt("count", 0),
	}

	result, err := h.densityUC.Density(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:    result.Count,
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

// Spiral godoc
// @Summary Точки спирали Фибоначчи
// @Tags Density
// @Produce json
// @Param count query int true "Количество точек"
// @Param radius query number false "Радиус сферы (по умолчанию радиус глобуса)"
// @Success 200 {object} utils.SuccessResponse{data=dto.SpiralResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/spiral [get]
func (h *DensityHandler) Spiral(c *fiber.Ctx) error {
	req := dto.SpiralRequest{
		Count:  c.QueryInt("count", 0),
		Radius: c.QueryFloat("radius", 0),
	}

	result, err := h.densityUC.Spiral(req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Count,
	})
}
