package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/outletaseo/outlet-api/internal/application/analytics"
)

// DashboardHandler maneja el resumen ejecutivo de la vista principal.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del dashboard
// @Description  Totales del catálogo, valor a costo y distribución de unidades por categoría.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSummary(time.Now()))
}
