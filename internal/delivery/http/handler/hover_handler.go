package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/globe-engine/internal/pkg/errors"
	"github.com/globe-engine/internal/pkg/utils"
	"github.com/globe-engine/internal/usecase"
	"github.com/globe-engine/internal/usecase/dto"
)

// HoverHandler - обработчик запросов подсветки
type HoverHandler struct {
	hoverUC *usecase.HoverUseCase
	logger  *zap.Logger
}

// NewHoverHandler - создание нового HoverHandler
func NewHoverHandler(hoverUC *usecase.HoverUseCase, logger *zap.Logger) *HoverHandler {
	return &HoverHandler{
		hoverUC: hoverUC,
		logger:  logger,
	}
}

// Query godoc
// @Summary Обновление подсветки
// @Description Принимает луч указателя, точку (lon, lat) или готовый список пересечений. Ближайшее пересечение выбирает подсвеченную страну. Возвращает события unhighlight/highlight и текущее состояние
// @Tags Hover
// @Accept json
// @Produce json
// @Param request body dto.HoverRequest true "Ровно один из ray, point, hits"
// @Success 200 {object} utils.SuccessResponse{data=dto.HoverResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 410 {object} utils.ErrorResponse
// @Router /api/v1/hover [post]
func (h *HoverHandler) Query(c *fiber.Ctx) error {
	var req dto.HoverRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Invalid hover body", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("invalid request body"))
	}

	result, err := h.hoverUC.Query(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Hits),
	})
}

// Current godoc
// @Summary Текущая подсветка
// @Tags Hover
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.HoverState}
// @Router /api/v1/hover [get]
func (h *HoverHandler) Current(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.hoverUC.Current(), nil)
}
