package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/outletaseo/outlet-api/internal/application/dto"
	"github.com/outletaseo/outlet-api/internal/application/usecase"
)

// AIHandler maneja el colaborador de IA.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// GenerateDescription godoc
// @Summary      Generar descripción de producto con IA
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AIDescriptionRequest  true  "Nombre y categoría"
// @Success      200   {object}  dto.AITextResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/ai/description [post]
func (h *AIHandler) GenerateDescription(c *fiber.Ctx) error {
	var in dto.AIDescriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.GenerateDescription(c.UserContext(), in)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_UNAVAILABLE", Message: err.Error()})
	}
	return c.JSON(out)
}

// AnalyzeHealth godoc
// @Summary      Diagnóstico de salud del inventario con IA
// @Tags         ai
// @Produce      json
// @Success      200  {object}  dto.AITextResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/ai/analysis [post]
func (h *AIHandler) AnalyzeHealth(c *fiber.Ctx) error {
	out, err := h.uc.AnalyzeHealth(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_UNAVAILABLE", Message: err.Error()})
	}
	return c.JSON(out)
}
