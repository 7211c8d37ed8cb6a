package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/globe-engine/internal/usecase"
	"github.com/globe-engine/internal/usecase/dto"
)

// HealthHandler - состояние загруженной сессии
type HealthHandler struct {
	session *usecase.GlobeSession
}

func NewHealthHandler(session *usecase.GlobeSession) *HealthHandler {
	return &HealthHandler{session: session}
}

// Health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:    "healthy",
		SessionID: h.session.ID().String(),
		Countries: h.session.Registry().Len(),
		Regions:   h.session.Regions().Len(),
		Raster:    h.session.Raster() != nil,
	})
}
