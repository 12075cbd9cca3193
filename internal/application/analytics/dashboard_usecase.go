// Package analytics arma el resumen ejecutivo del dashboard: totales del
// catálogo, distribución por categoría y el texto plano que consume el
// colaborador de IA.
package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/outletaseo/outlet-api/internal/application/dto"
	"github.com/outletaseo/outlet-api/internal/store"
	"github.com/shopspring/decimal"
)

// meses para la etiqueta de fecha del dashboard (es-CL).
var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

const maxLowStockInSummary = 10

// DashboardUseCase calcula las métricas agregadas de la vista principal.
type DashboardUseCase struct {
	store *store.Store
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(s *store.Store) *DashboardUseCase {
	return &DashboardUseCase{store: s}
}

// GetSummary devuelve los totales del catálogo y la distribución de unidades
// por categoría, ordenada por unidades descendente.
func (uc *DashboardUseCase) GetSummary(now time.Time) *dto.DashboardSummaryDTO {
	products := uc.store.Products()

	totalStock := 0
	lowStock := 0
	totalValue := decimal.Zero
	byCategory := make(map[string]int)

	for _, p := range products {
		totalStock += p.CurrentStock
		if p.IsLowStock() {
			lowStock++
		}
		stock := decimal.NewFromInt(int64(p.CurrentStock))
		totalValue = totalValue.Add(stock.Mul(p.PurchasePrice))

		category := p.Category
		if category == "" {
			category = "Sin categoría"
		}
		byCategory[category] += p.CurrentStock
	}

	categories := make([]dto.CategoryStockDTO, 0, len(byCategory))
	for name, units := range byCategory {
		categories = append(categories, dto.CategoryStockDTO{Name: name, Units: units})
	}
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].Units != categories[j].Units {
			return categories[i].Units > categories[j].Units
		}
		return categories[i].Name < categories[j].Name
	})

	return &dto.DashboardSummaryDTO{
		TotalProducts: len(products),
		TotalStock:    totalStock,
		LowStockCount: lowStock,
		TotalValue:    totalValue,
		Categories:    categories,
		DateLabel:     monthLabel(now),
	}
}

// PlainSummary serializa el estado del inventario como texto plano para el
// análisis de salud del colaborador de IA. Lista a lo más diez productos con
// stock bajo para no inflar el prompt.
func (uc *DashboardUseCase) PlainSummary(now time.Time) string {
	summary := uc.GetSummary(now)

	var b strings.Builder
	fmt.Fprintf(&b, "Total Productos: %d\n", summary.TotalProducts)
	fmt.Fprintf(&b, "Unidades en Stock: %d\n", summary.TotalStock)
	fmt.Fprintf(&b, "Valor Total (costo): %s\n", summary.TotalValue.StringFixed(2))
	fmt.Fprintf(&b, "Productos con Stock Bajo: %d\n", summary.LowStockCount)

	listed := 0
	for _, p := range uc.store.Products() {
		if !p.IsLowStock() {
			continue
		}
		if listed == 0 {
			b.WriteString("Stock bajo:\n")
		}
		if listed >= maxLowStockInSummary {
			b.WriteString("- ...\n")
			break
		}
		fmt.Fprintf(&b, "- %s (%d/%d)\n", p.Name, p.CurrentStock, p.MinStock)
		listed++
	}
	return b.String()
}

// monthLabel formatea la fecha como "1 de septiembre de 2026".
func monthLabel(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthNames[t.Month()-1], t.Year())
}
