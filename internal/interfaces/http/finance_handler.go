package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/outletaseo/outlet-api/internal/application/dto"
	"github.com/outletaseo/outlet-api/internal/application/finance"
	"github.com/outletaseo/outlet-api/internal/domain"
)

// FinanceHandler maneja el desbloqueo del panel financiero.
type FinanceHandler struct {
	uc *finance.GateUseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *finance.GateUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// Unlock godoc
// @Summary      Desbloquear el panel financiero
// @Description  Valida la clave compartida y emite un token con scope "finance".
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UnlockRequest  true  "Clave"
// @Success      200   {object}  dto.UnlockResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/finance/unlock [post]
func (h *FinanceHandler) Unlock(c *fiber.Ctx) error {
	var in dto.UnlockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Unlock(in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "clave incorrecta"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
