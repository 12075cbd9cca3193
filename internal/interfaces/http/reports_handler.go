package http

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/outletaseo/outlet-api/internal/application/dto"
	"github.com/outletaseo/outlet-api/internal/application/reports"
	"github.com/outletaseo/outlet-api/internal/domain/entity"
)

// PeriodPDFGenerator puerto hacia el generador de PDF del reporte.
type PeriodPDFGenerator interface {
	GeneratePeriodReportPDF(report *dto.PeriodReportDTO, movements []entity.StockMovement) ([]byte, error)
}

// ReportsHandler maneja los reportes financieros, rankings y valorización.
type ReportsHandler struct {
	uc  *reports.ReportsUseCase
	pdf PeriodPDFGenerator
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *reports.ReportsUseCase, pdf PeriodPDFGenerator) *ReportsHandler {
	return &ReportsHandler{uc: uc, pdf: pdf}
}

// refDate lee el parámetro ?date=YYYY-MM-DD; vacío = hoy.
func refDate(c *fiber.Ctx) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("date inválido: %w", err)
	}
	return t, nil
}

// Period godoc
// @Summary      Reporte financiero por período
// @Tags         reports
// @Produce      json
// @Param        kind  query  string  false  "daily|weekly|biweekly|monthly|quarterly|semiannual|annual"  default(monthly)
// @Param        date  query  string  false  "Fecha de referencia YYYY-MM-DD (hoy por defecto)"
// @Success      200   {object}  dto.PeriodReportDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/period [get]
func (h *ReportsHandler) Period(c *fiber.Ctx) error {
	ref, err := refDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	kind, err := reports.ParsePeriodKind(c.Query("kind", "monthly"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.PeriodReport(ref, kind)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.JSON(out)
}

// DailyRegister godoc
// @Summary      Registro diario paginado (día más reciente primero)
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        offset  query  int     false  "Página de 30 días hacia atrás"  default(0)
// @Param        date    query  string  false  "Fecha de referencia YYYY-MM-DD"
// @Success      200     {object}  dto.DailyRegisterDTO
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/finance/daily-register [get]
func (h *ReportsHandler) DailyRegister(c *fiber.Ctx) error {
	ref, err := refDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	offset := c.QueryInt("offset", 0)
	return c.JSON(h.uc.DailyRegister(ref, 30, offset))
}

// BestSellers godoc
// @Summary      Ranking de más vendidos (histórico)
// @Tags         reports
// @Produce      json
// @Param        limit  query  int  false  "Tamaño del ranking"  default(10)
// @Success      200    {array}  dto.RankedProductDTO
// @Router       /api/reports/best-sellers [get]
func (h *ReportsHandler) BestSellers(c *fiber.Ctx) error {
	return c.JSON(h.uc.BestSellers(rankLimit(c)))
}

// SlowMovers godoc
// @Summary      Ranking de menor rotación (histórico)
// @Tags         reports
// @Produce      json
// @Param        limit  query  int  false  "Tamaño del ranking"  default(10)
// @Success      200    {array}  dto.RankedProductDTO
// @Router       /api/reports/slow-movers [get]
func (h *ReportsHandler) SlowMovers(c *fiber.Ctx) error {
	return c.JSON(h.uc.SlowMovers(rankLimit(c)))
}

func rankLimit(c *fiber.Ctx) int {
	limit := c.QueryInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return limit
}

// LowStock godoc
// @Summary      Productos con stock bajo
// @Description  order=catalog (orden de inserción) u order=deficiency (más faltante primero).
// @Tags         reports
// @Produce      json
// @Param        order  query  string  false  "catalog|deficiency"  default(catalog)
// @Success      200    {array}  dto.LowStockProductDTO
// @Router       /api/reports/low-stock [get]
func (h *ReportsHandler) LowStock(c *fiber.Ctx) error {
	if c.Query("order", "catalog") == "deficiency" {
		return c.JSON(h.uc.LowStockByDeficiency())
	}
	return c.JSON(h.uc.LowStock())
}

// Valuation godoc
// @Summary      Valorización del inventario actual
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ValuationDTO
// @Router       /api/finance/valuation [get]
func (h *ReportsHandler) Valuation(c *fiber.Ctx) error {
	return c.JSON(h.uc.Valuation())
}

// ExportCSV godoc
// @Summary      Exportar los movimientos del período como CSV
// @Tags         reports
// @Produce      text/csv
// @Param        kind  query  string  false  "Tipo de período"  default(monthly)
// @Param        date  query  string  false  "Fecha de referencia YYYY-MM-DD"
// @Success      200   {string}  string  "CSV"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/period/export [get]
func (h *ReportsHandler) ExportCSV(c *fiber.Ctx) error {
	ref, err := refDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	kind, err := reports.ParsePeriodKind(c.Query("kind", "monthly"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	start, end, err := reports.Window(ref, kind)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"fecha", "producto", "tipo", "cantidad", "motivo"})
	for _, m := range h.uc.PeriodMovements(start, end) {
		_ = w.Write([]string{
			m.Date.Format("2006-01-02 15:04:05"),
			m.ProductName,
			m.Type,
			strconv.Itoa(m.Quantity),
			m.Reason,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	filename := fmt.Sprintf("reporte_%s_%s.csv", kind, start.Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// ExportDailyRegisterCSV godoc
// @Summary      Exportar el registro diario como CSV
// @Tags         finance
// @Security     Bearer
// @Produce      text/csv
// @Param        offset  query  int     false  "Página de 30 días hacia atrás"  default(0)
// @Param        date    query  string  false  "Fecha de referencia YYYY-MM-DD"
// @Success      200     {string}  string  "CSV"
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/finance/daily-register/export [get]
func (h *ReportsHandler) ExportDailyRegisterCSV(c *fiber.Ctx) error {
	ref, err := refDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	register := h.uc.DailyRegister(ref, 30, c.QueryInt("offset", 0))

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"fecha", "ingresos", "costo", "ganancia", "reposicion", "movimientos"})
	for _, d := range register.Days {
		_ = w.Write([]string{
			d.Date,
			d.Income.StringFixed(2),
			d.Cost.StringFixed(2),
			d.Profit.StringFixed(2),
			d.Restock.StringFixed(2),
			strconv.Itoa(d.Movements),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	filename := fmt.Sprintf("registro_diario_p%d.csv", register.Offset)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// ExportPDF godoc
// @Summary      Exportar el reporte del período como PDF
// @Tags         finance
// @Security     Bearer
// @Produce      application/pdf
// @Param        kind  query  string  false  "Tipo de período"  default(monthly)
// @Param        date  query  string  false  "Fecha de referencia YYYY-MM-DD"
// @Success      200   {string}  string  "PDF"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/finance/report/pdf [get]
func (h *ReportsHandler) ExportPDF(c *fiber.Ctx) error {
	ref, err := refDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	kind, err := reports.ParsePeriodKind(c.Query("kind", "monthly"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	report, err := h.uc.PeriodReport(ref, kind)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	start, end, _ := reports.Window(ref, kind)

	raw, err := h.pdf.GeneratePeriodReportPDF(report, h.uc.PeriodMovements(start, end))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	filename := fmt.Sprintf("reporte_%s_%s.pdf", kind, start.Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(raw)
}
