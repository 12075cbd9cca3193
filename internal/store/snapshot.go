package store

import (
	"time"

	"github.com/outletaseo/outlet-api/internal/domain"
	"github.com/outletaseo/outlet-api/internal/domain/entity"
)

// SnapshotVersion es la etiqueta de formato del documento persistido.
// "v4" por compatibilidad con los respaldos existentes de la tienda.
const SnapshotVersion = "v4"

// Snapshot es la representación plana completa del estado, usada tanto por la
// persistencia local como por el export/import de respaldos. Las listas se
// serializan siempre, incluso vacías: un inventario vacío es un documento
// válido y debe poder restaurarse (nil, en cambio, significa "no presente").
type Snapshot struct {
	Version   string                 `json:"version"`
	Timestamp time.Time              `json:"timestamp"`
	Products  []entity.Product       `json:"products"`
	Movements []entity.StockMovement `json:"movements"`
}

// Snapshot devuelve una copia serializable del estado completo.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make([]entity.Product, len(s.products))
	copy(products, s.products)
	movements := make([]entity.StockMovement, len(s.movements))
	copy(movements, s.movements)
	return Snapshot{
		Version:   SnapshotVersion,
		Timestamp: time.Now(),
		Products:  products,
		Movements: movements,
	}
}

// Restore reemplaza por completo las listas presentes en el snapshot. Acepta
// datos parciales: si solo viene una de las dos listas se restaura esa y la
// otra queda intacta. Si no viene ninguna devuelve ErrImportMalformed.
// Una lista vacía pero presente ([]) sí reemplaza.
func (s *Store) Restore(snap Snapshot) error {
	if snap.Products == nil && snap.Movements == nil {
		return domain.ErrImportMalformed
	}
	s.mu.Lock()
	if snap.Products != nil {
		s.products = make([]entity.Product, len(snap.Products))
		copy(s.products, snap.Products)
	}
	if snap.Movements != nil {
		s.movements = make([]entity.StockMovement, len(snap.Movements))
		copy(s.movements, snap.Movements)
	}
	s.mu.Unlock()
	s.notify()
	return nil
}
