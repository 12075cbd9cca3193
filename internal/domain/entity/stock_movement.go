package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeEntry      = "ENTRY"      // entrada (compra/reposición)
	MovementTypeExit       = "EXIT"       // salida (venta/consumo)
	MovementTypeAdjustment = "ADJUSTMENT" // ajuste: fija el stock en un valor absoluto
)

// ValidMovementType reporta si t es uno de los tipos de movimiento conocidos.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeEntry, MovementTypeExit, MovementTypeAdjustment:
		return true
	}
	return false
}

// StockMovement es un registro inmutable del libro de movimientos (append-only).
// ProductName se copia al momento de crear el movimiento para que el historial
// sobreviva a la eliminación del producto. Para ENTRY/EXIT Quantity es la
// cantidad movida (> 0); para ADJUSTMENT es el stock objetivo absoluto (>= 0).
type StockMovement struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Date        time.Time `json:"date"`
	Reason      string    `json:"reason"`
}
