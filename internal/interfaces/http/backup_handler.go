package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/outletaseo/outlet-api/internal/application/dto"
	"github.com/outletaseo/outlet-api/internal/application/usecase"
	"github.com/outletaseo/outlet-api/internal/domain"
)

// BackupHandler maneja el export e import del documento completo.
type BackupHandler struct {
	uc *usecase.BackupUseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *usecase.BackupUseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar respaldo completo
// @Description  Devuelve el documento de inventario (catálogo + movimientos) como descarga JSON.
// @Tags         backup
// @Produce      json
// @Success      200  {object}  store.Snapshot
// @Router       /api/backup/export [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	filename := fmt.Sprintf("inventario_%s.json", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.JSON(h.uc.Export())
}

// Import godoc
// @Summary      Importar respaldo
// @Description  Reemplaza las colecciones presentes en el documento; acepta respaldos parciales.
// @Tags         backup
// @Accept       json
// @Produce      json
// @Success      204  "Sin contenido"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/backup/import [post]
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	if err := h.uc.Import(c.Body()); err != nil {
		if errors.Is(err, domain.ErrImportMalformed) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MALFORMED_BACKUP", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
