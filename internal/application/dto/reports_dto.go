package dto

import "github.com/shopspring/decimal"

// PeriodDTO rango de fechas de un reporte (intervalo cerrado).
type PeriodDTO struct {
	Kind      string `json:"kind"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// PeriodReportDTO resultados financieros y de actividad de un período.
// MarginPct es (net_profit / sales_revenue) * 100 con un decimal; 0 si no
// hubo ingresos en el período.
type PeriodReportDTO struct {
	Period         PeriodDTO       `json:"period"`
	SalesRevenue   decimal.Decimal `json:"sales_revenue"`
	COGS           decimal.Decimal `json:"cogs"`
	NetProfit      decimal.Decimal `json:"net_profit"`
	MarginPct      decimal.Decimal `json:"margin_pct"`
	RestockingCost decimal.Decimal `json:"restocking_cost"`
	MovementCount  int             `json:"movement_count"`
	Entries        int             `json:"entries"`
	Exits          int             `json:"exits"`
	ItemsIn        int             `json:"items_in"`
	ItemsOut       int             `json:"items_out"`
}

// DayStatDTO una fila del registro diario.
type DayStatDTO struct {
	Date      string          `json:"date"` // YYYY-MM-DD
	Income    decimal.Decimal `json:"income"`
	Cost      decimal.Decimal `json:"cost"`
	Profit    decimal.Decimal `json:"profit"`
	Restock   decimal.Decimal `json:"restock"`
	Movements int             `json:"movements"`
}

// DailyRegisterDTO página del registro diario (día más reciente primero).
type DailyRegisterDTO struct {
	Offset   int          `json:"offset"`
	PageSize int          `json:"page_size"`
	Days     []DayStatDTO `json:"days"`
}

// RankedProductDTO producto con su total histórico de unidades vendidas.
type RankedProductDTO struct {
	ProductID    string `json:"product_id"`
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	SoldQuantity int    `json:"sold_quantity"`
	CurrentStock int    `json:"current_stock"`
}

// LowStockProductDTO producto en o bajo su umbral de reposición.
type LowStockProductDTO struct {
	ProductID    string `json:"product_id"`
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	CurrentStock int    `json:"current_stock"`
	MinStock     int    `json:"min_stock"`
	Deficiency   int    `json:"deficiency"` // current_stock - min_stock
}

// ValuationDTO valorización estática del inventario actual.
type ValuationDTO struct {
	TotalCost   decimal.Decimal `json:"total_cost"`   // Σ stock * precio costo
	TotalSale   decimal.Decimal `json:"total_sale"`   // Σ stock * precio venta
	TotalProfit decimal.Decimal `json:"total_profit"` // total_sale - total_cost
	MarginPct   decimal.Decimal `json:"margin_pct"`
}
