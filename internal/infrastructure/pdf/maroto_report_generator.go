// Package pdf genera el reporte financiero de período como documento A4.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre tienda     │  Período + rango de fechas     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ingresos / Costo / Ganancia / Margen / Reposición │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Producto | Tipo | Cant | Motivo              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/outletaseo/outlet-api/internal/application/dto"
	"github.com/outletaseo/outlet-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// etiquetas legibles para los tipos de movimiento.
var movementLabels = map[string]string{
	entity.MovementTypeEntry:      "Entrada",
	entity.MovementTypeExit:       "Salida",
	entity.MovementTypeAdjustment: "Ajuste",
}

// MarotoReportGenerator genera el PDF del reporte financiero usando Maroto v2.
type MarotoReportGenerator struct {
	storeName string
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator(storeName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{storeName: storeName}
}

// GeneratePeriodReportPDF genera el PDF del período y devuelve sus bytes.
func (g *MarotoReportGenerator) GeneratePeriodReportPDF(
	report *dto.PeriodReportDTO,
	movements []entity.StockMovement,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte Financiero", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(report)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range movementRows(movements) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoReportGenerator) headerRow(report *dto.PeriodReportDTO) core.Row {
	rango := fmt.Sprintf("%s — %s", report.Period.StartDate, report.Period.EndDate)
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte Financiero", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO: "+report.Period.Kind, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
			text.New(rango, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRows: los montos agregados del período, una métrica por línea.
func summaryRows(report *dto.PeriodReportDTO) []core.Row {
	metric := func(label, value string) core.Row {
		return row.New(6).Add(
			col.New(6).Add(text.New(label, props.Text{Size: 9, Top: 1})),
			col.New(6).Add(text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			})),
		)
	}
	return []core.Row{
		metric("Ingresos por ventas", "$"+report.SalesRevenue.StringFixed(2)),
		metric("Costo de lo vendido", "$"+report.COGS.StringFixed(2)),
		metric("Ganancia neta", "$"+report.NetProfit.StringFixed(2)),
		metric("Margen", report.MarginPct.StringFixed(1)+"%"),
		metric("Costo de reposición", "$"+report.RestockingCost.StringFixed(2)),
		metric("Movimientos", fmt.Sprintf("%d (%d entradas, %d salidas)",
			report.MovementCount, report.Entries, report.Exits)),
	}
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Tipo", 2, align.Center),
		h("Cant.", 1, align.Center),
		h("Motivo", 3, align.Left),
	)
}

// movementRows: una fila por movimiento del período.
func movementRows(movements []entity.StockMovement) []core.Row {
	result := make([]core.Row, 0, len(movements))
	for _, mv := range movements {
		label := movementLabels[mv.Type]
		if label == "" {
			label = mv.Type
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(
				mv.Date.Format("02/01/2006"),
				props.Text{Size: 8, Top: 1},
			)),
			col.New(4).Add(text.New(
				mv.ProductName,
				props.Text{Size: 8, Top: 1},
			)),
			col.New(2).Add(text.New(
				label,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", mv.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				mv.Reason,
				props.Text{Size: 8, Top: 1, Color: colorGray},
			)),
		))
	}
	return result
}
