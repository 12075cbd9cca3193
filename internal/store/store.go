// Package store contiene el estado propietario del inventario: la lista de
// productos y el libro de movimientos. Todo acceso pasa por sus métodos; un
// RWMutex serializa las mutaciones, de modo que la garantía de atomicidad del
// libro se conserva aunque el servidor HTTP atienda peticiones en paralelo.
package store

import (
	"sync"

	"github.com/outletaseo/outlet-api/internal/domain"
	"github.com/outletaseo/outlet-api/internal/domain/entity"
)

// Store es el único dueño de las dos listas. Productos y movimientos se
// mantienen con el más reciente primero (orden de presentación); los
// agregadores no dependen de ese orden y filtran por fecha.
type Store struct {
	mu        sync.RWMutex
	products  []entity.Product
	movements []entity.StockMovement

	lmu       sync.Mutex
	listeners []func(Snapshot)
}

// New crea un Store vacío.
func New() *Store {
	return &Store{}
}

// Subscribe registra un callback que recibe un snapshot tras cada mutación.
// Pensado para el colaborador de persistencia; los callbacks se ejecutan en la
// goroutine que mutó, después de liberar el lock de escritura.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.lmu.Lock()
	defer s.lmu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Store) notify() {
	snap := s.Snapshot()
	s.lmu.Lock()
	listeners := make([]func(Snapshot), len(s.listeners))
	copy(listeners, s.listeners)
	s.lmu.Unlock()
	for _, fn := range listeners {
		fn(snap)
	}
}

// Products devuelve una copia de la lista de productos en orden de inserción
// (más reciente primero). Los llamadores no pueden mutar el estado interno.
func (s *Store) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Movements devuelve una copia del libro de movimientos (más reciente primero).
func (s *Store) Movements() []entity.StockMovement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.StockMovement, len(s.movements))
	copy(out, s.movements)
	return out
}

// GetProduct busca un producto por ID.
func (s *Store) GetProduct(id string) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// InsertProduct agrega un producto al inicio de la lista.
func (s *Store) InsertProduct(p entity.Product) {
	s.mu.Lock()
	s.products = append([]entity.Product{p}, s.products...)
	s.mu.Unlock()
	s.notify()
}

// InsertProductUnique agrega el producto al inicio de la lista solo si ningún
// producto existente usa su SKU; si ya hay uno devuelve ErrDuplicate. La
// verificación y la inserción ocurren bajo el mismo lock, así dos creaciones
// concurrentes del mismo SKU nunca pasan las dos.
func (s *Store) InsertProductUnique(p entity.Product) error {
	s.mu.Lock()
	for i := range s.products {
		if s.products[i].SKU == p.SKU {
			s.mu.Unlock()
			return domain.ErrDuplicate
		}
	}
	s.products = append([]entity.Product{p}, s.products...)
	s.mu.Unlock()
	s.notify()
	return nil
}

// DeleteProduct elimina un producto por ID. Los movimientos que lo referencian
// no se tocan: conservan el nombre copiado al momento del movimiento.
func (s *Store) DeleteProduct(id string) bool {
	s.mu.Lock()
	found := false
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()
	if found {
		s.notify()
	}
	return found
}

// Tx acumula los cambios de una operación atómica del libro. Las escrituras se
// aplican todas juntas al confirmar; si el callback de Run falla no se aplica
// ninguna.
type Tx struct {
	s       *Store
	staged  map[string]entity.Product
	appends []entity.StockMovement
}

// Product devuelve el producto por ID, con los cambios ya preparados en esta
// transacción si los hay. Solo válido dentro del callback de Run.
func (tx *Tx) Product(id string) (entity.Product, bool) {
	if p, ok := tx.staged[id]; ok {
		return p, true
	}
	for _, p := range tx.s.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// StageProduct prepara el reemplazo del producto (por ID) al confirmar.
func (tx *Tx) StageProduct(p entity.Product) {
	tx.staged[p.ID] = p
}

// AppendMovement prepara un movimiento para agregarse al libro al confirmar.
func (tx *Tx) AppendMovement(m entity.StockMovement) {
	tx.appends = append(tx.appends, m)
}

// Run ejecuta fn bajo el lock de escritura y confirma los cambios preparados
// solo si fn devuelve nil. Equivalente en memoria al Commit/Rollback de una
// transacción de base de datos: o se aplican la actualización del producto y
// el movimiento, o ninguno.
func (s *Store) Run(fn func(tx *Tx) error) error {
	s.mu.Lock()
	tx := &Tx{s: s, staged: make(map[string]entity.Product)}
	if err := fn(tx); err != nil {
		s.mu.Unlock()
		return err
	}
	for i := range s.products {
		if p, ok := tx.staged[s.products[i].ID]; ok {
			s.products[i] = p
		}
	}
	for _, m := range tx.appends {
		s.movements = append([]entity.StockMovement{m}, s.movements...)
	}
	s.mu.Unlock()
	s.notify()
	return nil
}
