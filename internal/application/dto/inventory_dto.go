package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory/movements.
// Para ENTRY/EXIT quantity es la cantidad movida (> 0); para ADJUSTMENT es el
// stock objetivo absoluto (>= 0).
type RegisterMovementRequest struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason,omitempty"`
}

// MovementResponse representación HTTP de un movimiento del libro.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Date        time.Time `json:"date"`
	Reason      string    `json:"reason,omitempty"`
}

// MovementListResponse listado paginado de movimientos (más reciente primero).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
