package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto (SKU) del catálogo de la tienda.
// CurrentStock solo se modifica vía movimientos de inventario; los precios
// se administran desde el catálogo. Los tags JSON corresponden al documento
// persistido (compatibles con los respaldos v4).
type Product struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"` // código único del producto
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"` // etiqueta libre, ej. "Detergente"
	CurrentStock  int             `json:"currentStock"`
	MinStock      int             `json:"minStock"` // umbral de reposición
	PurchasePrice decimal.Decimal `json:"purchasePrice"` // precio costo
	SalePrice     decimal.Decimal `json:"salePrice"`     // precio venta
	LastUpdated   time.Time       `json:"lastUpdated"`
}

// IsLowStock indica si el producto está en o por debajo de su umbral de reposición.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinStock
}

// Deficiency devuelve CurrentStock - MinStock; cuanto más negativo, más urgente reponer.
func (p *Product) Deficiency() int {
	return p.CurrentStock - p.MinStock
}
