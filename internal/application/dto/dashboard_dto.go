package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalProducts int             `json:"total_products"`
	TotalStock    int             `json:"total_stock"`
	LowStockCount int             `json:"low_stock_count"`
	TotalValue    decimal.Decimal `json:"total_value"` // valorización a precio costo

	// Distribución de unidades por categoría (para el gráfico del dashboard).
	Categories []CategoryStockDTO `json:"categories"`

	DateLabel string `json:"date_label"` // ej: "1 de septiembre de 2026"
}

// CategoryStockDTO unidades en stock agrupadas por categoría.
type CategoryStockDTO struct {
	Name  string `json:"name"`
	Units int    `json:"units"`
}
