// Package reports contiene el agregador: vistas derivadas de solo lectura
// sobre el catálogo y el libro de movimientos. Ningún caso de uso de este
// paquete muta entidades; todos trabajan sobre copias tomadas del store.
package reports

import (
	"sort"
	"time"

	"github.com/outletaseo/outlet-api/internal/application/dto"
	"github.com/outletaseo/outlet-api/internal/domain/entity"
	"github.com/outletaseo/outlet-api/internal/store"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var hundred = decimal.NewFromInt(100)

// ReportsUseCase produce reportes financieros por período, el registro diario
// paginado, rankings históricos de venta y la valorización actual.
type ReportsUseCase struct {
	store *store.Store
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(s *store.Store) *ReportsUseCase {
	return &ReportsUseCase{store: s}
}

// ── Agregación por período ────────────────────────────────────────────────────

// periodTotals acumuladores de una pasada sobre los movimientos de un rango.
type periodTotals struct {
	revenue  decimal.Decimal
	cogs     decimal.Decimal
	restock  decimal.Decimal
	count    int
	entries  int
	exits    int
	itemsIn  int
	itemsOut int
}

// aggregate filtra los movimientos dentro de [start, end] (intervalo cerrado,
// por fecha, sin depender del orden del libro) y acumula los totales.
// Los precios se resuelven contra la lista de productos actual: un movimiento
// de un producto eliminado cuenta en movementCount pero aporta 0 a los montos
// (su precio ya no se conoce). Los ADJUSTMENT nunca aportan a los montos.
func aggregate(movements []entity.StockMovement, byID map[string]entity.Product, start, end time.Time) periodTotals {
	t := periodTotals{
		revenue: decimal.Zero,
		cogs:    decimal.Zero,
		restock: decimal.Zero,
	}
	for _, m := range movements {
		if m.Date.Before(start) || m.Date.After(end) {
			continue
		}
		t.count++
		switch m.Type {
		case entity.MovementTypeEntry:
			t.entries++
			t.itemsIn += m.Quantity
		case entity.MovementTypeExit:
			t.exits++
			t.itemsOut += m.Quantity
		}
		product, ok := byID[m.ProductID]
		if !ok {
			continue
		}
		qty := decimal.NewFromInt(int64(m.Quantity))
		switch m.Type {
		case entity.MovementTypeExit:
			t.revenue = t.revenue.Add(qty.Mul(product.SalePrice))
			t.cogs = t.cogs.Add(qty.Mul(product.PurchasePrice))
		case entity.MovementTypeEntry:
			t.restock = t.restock.Add(qty.Mul(product.PurchasePrice))
		}
	}
	return t
}

// marginPct devuelve (profit / revenue) * 100 con un decimal, o 0 si no hubo
// ingresos (evita división por cero).
func marginPct(profit, revenue decimal.Decimal) decimal.Decimal {
	if !revenue.IsPositive() {
		return decimal.Zero
	}
	return profit.Div(revenue).Mul(hundred).Round(1)
}

func productIndex(products []entity.Product) map[string]entity.Product {
	byID := make(map[string]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID
}

// PeriodReport calcula las estadísticas del período que contiene a ref.
func (uc *ReportsUseCase) PeriodReport(ref time.Time, kind PeriodKind) (*dto.PeriodReportDTO, error) {
	start, end, err := Window(ref, kind)
	if err != nil {
		return nil, err
	}
	report := uc.statsBetween(start, end)
	report.Period.Kind = string(kind)
	return report, nil
}

func (uc *ReportsUseCase) statsBetween(start, end time.Time) *dto.PeriodReportDTO {
	byID := productIndex(uc.store.Products())
	t := aggregate(uc.store.Movements(), byID, start, end)
	profit := t.revenue.Sub(t.cogs)
	return &dto.PeriodReportDTO{
		Period: dto.PeriodDTO{
			StartDate: start.Format(dateLayout),
			EndDate:   end.Format(dateLayout),
		},
		SalesRevenue:   t.revenue,
		COGS:           t.cogs,
		NetProfit:      profit,
		MarginPct:      marginPct(profit, t.revenue),
		RestockingCost: t.restock,
		MovementCount:  t.count,
		Entries:        t.entries,
		Exits:          t.exits,
		ItemsIn:        t.itemsIn,
		ItemsOut:       t.itemsOut,
	}
}

// PeriodMovements devuelve los movimientos dentro de [start, end], más
// reciente primero (para el export CSV del reporte).
func (uc *ReportsUseCase) PeriodMovements(start, end time.Time) []entity.StockMovement {
	out := []entity.StockMovement{}
	for _, m := range uc.store.Movements() {
		if m.Date.Before(start) || m.Date.After(end) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// ── Registro diario ───────────────────────────────────────────────────────────

// DailyRegister produce pageSize días calendario consecutivos que terminan
// offset*pageSize días antes de ref (offset 0 = los últimos pageSize días),
// con el día más reciente primero. Cada día se agrega con la misma aritmética
// que PeriodReport con start = end = ese día.
func (uc *ReportsUseCase) DailyRegister(ref time.Time, pageSize, offset int) *dto.DailyRegisterDTO {
	if pageSize <= 0 {
		pageSize = 30
	}
	if offset < 0 {
		offset = 0
	}
	byID := productIndex(uc.store.Products())
	movements := uc.store.Movements()

	refDay := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	days := make([]dto.DayStatDTO, 0, pageSize)
	for i := offset * pageSize; i < (offset+1)*pageSize; i++ {
		day := refDay.AddDate(0, 0, -i)
		t := aggregate(movements, byID, day, endOfDay(day))
		days = append(days, dto.DayStatDTO{
			Date:      day.Format(dateLayout),
			Income:    t.revenue,
			Cost:      t.cogs,
			Profit:    t.revenue.Sub(t.cogs),
			Restock:   t.restock,
			Movements: t.count,
		})
	}
	return &dto.DailyRegisterDTO{
		Offset:   offset,
		PageSize: pageSize,
		Days:     days,
	}
}

// ── Rankings históricos ───────────────────────────────────────────────────────

// soldByProduct suma las unidades de todos los EXIT históricos por producto.
func (uc *ReportsUseCase) soldByProduct() map[string]int {
	sold := make(map[string]int)
	for _, m := range uc.store.Movements() {
		if m.Type == entity.MovementTypeExit {
			sold[m.ProductID] += m.Quantity
		}
	}
	return sold
}

func toRanked(p entity.Product, sold int) dto.RankedProductDTO {
	return dto.RankedProductDTO{
		ProductID:    p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Category:     p.Category,
		SoldQuantity: sold,
		CurrentStock: p.CurrentStock,
	}
}

// BestSellers ranking descendente por unidades vendidas en todo el historial.
// Excluye productos sin ventas y toma los primeros limit.
func (uc *ReportsUseCase) BestSellers(limit int) []dto.RankedProductDTO {
	sold := uc.soldByProduct()
	ranked := []dto.RankedProductDTO{}
	for _, p := range uc.store.Products() {
		if sold[p.ID] > 0 {
			ranked = append(ranked, toRanked(p, sold[p.ID]))
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].SoldQuantity > ranked[j].SoldQuantity
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// SlowMovers ranking ascendente por unidades vendidas; a igual cantidad, el
// de mayor stock actual primero (más capital detenido). A diferencia de
// BestSellers incluye productos con cero ventas.
func (uc *ReportsUseCase) SlowMovers(limit int) []dto.RankedProductDTO {
	sold := uc.soldByProduct()
	ranked := []dto.RankedProductDTO{}
	for _, p := range uc.store.Products() {
		ranked = append(ranked, toRanked(p, sold[p.ID]))
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].SoldQuantity != ranked[j].SoldQuantity {
			return ranked[i].SoldQuantity < ranked[j].SoldQuantity
		}
		return ranked[i].CurrentStock > ranked[j].CurrentStock
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// ── Stock bajo y valorización ─────────────────────────────────────────────────

func toLowStock(p entity.Product) dto.LowStockProductDTO {
	return dto.LowStockProductDTO{
		ProductID:    p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Category:     p.Category,
		CurrentStock: p.CurrentStock,
		MinStock:     p.MinStock,
		Deficiency:   p.Deficiency(),
	}
}

// LowStock devuelve los productos con stock en o bajo el umbral, en el orden
// de inserción del catálogo (widget del dashboard).
func (uc *ReportsUseCase) LowStock() []dto.LowStockProductDTO {
	out := []dto.LowStockProductDTO{}
	for _, p := range uc.store.Products() {
		if p.IsLowStock() {
			out = append(out, toLowStock(p))
		}
	}
	return out
}

// LowStockByDeficiency devuelve el mismo conjunto ordenado por deficiencia
// ascendente (el más faltante primero), para el reporte dedicado.
func (uc *ReportsUseCase) LowStockByDeficiency() []dto.LowStockProductDTO {
	out := uc.LowStock()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Deficiency < out[j].Deficiency
	})
	return out
}

// Valuation calcula la valorización estática del inventario actual.
func (uc *ReportsUseCase) Valuation() *dto.ValuationDTO {
	totalCost := decimal.Zero
	totalSale := decimal.Zero
	for _, p := range uc.store.Products() {
		stock := decimal.NewFromInt(int64(p.CurrentStock))
		totalCost = totalCost.Add(stock.Mul(p.PurchasePrice))
		totalSale = totalSale.Add(stock.Mul(p.SalePrice))
	}
	profit := totalSale.Sub(totalCost)
	return &dto.ValuationDTO{
		TotalCost:   totalCost,
		TotalSale:   totalSale,
		TotalProfit: profit,
		MarginPct:   marginPct(profit, totalSale),
	}
}
