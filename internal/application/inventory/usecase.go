// Package inventory contiene el motor del libro de movimientos: la única vía
// de escritura sobre el stock de los productos.
package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/outletaseo/outlet-api/internal/domain"
	"github.com/outletaseo/outlet-api/internal/domain/entity"
	"github.com/outletaseo/outlet-api/internal/store"
)

// RegisterMovementUseCase registra movimientos (ENTRY, EXIT, ADJUSTMENT) de
// forma atómica: la actualización del stock y el registro en el libro se
// confirman juntos vía store.Run, o no se confirma ninguno.
type RegisterMovementUseCase struct {
	store *store.Store
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(s *store.Store) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{store: s}
}

// MovementInput entrada para registrar un movimiento.
// Para ENTRY/EXIT Quantity es la cantidad movida y debe ser > 0.
// Para ADJUSTMENT Quantity es el stock objetivo absoluto y debe ser >= 0.
type MovementInput struct {
	ProductID string
	Type      string
	Quantity  int
	Reason    string
}

// RegisterMovement valida la entrada, aplica el efecto sobre el stock según el
// tipo y agrega el movimiento inmutable al libro con el nombre del producto
// copiado en ese instante. Devuelve el movimiento creado.
//
// Errores: ErrNotFound (producto inexistente), ErrInvalidQuantity (cantidad
// fuera de rango para el tipo), ErrInsufficientStock (EXIT mayor al stock
// disponible). En caso de error no queda ningún estado parcial.
func (uc *RegisterMovementUseCase) RegisterMovement(input MovementInput) (*entity.StockMovement, error) {
	if !entity.ValidMovementType(input.Type) {
		return nil, domain.ErrInvalidInput
	}
	switch input.Type {
	case entity.MovementTypeEntry, entity.MovementTypeExit:
		if input.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	case entity.MovementTypeAdjustment:
		if input.Quantity < 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}

	var created *entity.StockMovement
	err := uc.store.Run(func(tx *store.Tx) error {
		product, ok := tx.Product(input.ProductID)
		if !ok {
			return domain.ErrNotFound
		}

		newStock := product.CurrentStock
		switch input.Type {
		case entity.MovementTypeEntry:
			newStock += input.Quantity
		case entity.MovementTypeExit:
			if input.Quantity > product.CurrentStock {
				return domain.ErrInsufficientStock
			}
			newStock -= input.Quantity
		case entity.MovementTypeAdjustment:
			newStock = input.Quantity
		}

		now := time.Now()
		product.CurrentStock = newStock
		product.LastUpdated = now
		tx.StageProduct(product)

		mov := entity.StockMovement{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Type:        input.Type,
			Quantity:    input.Quantity,
			Date:        now,
			Reason:      input.Reason,
		}
		tx.AppendMovement(mov)
		created = &mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListMovements devuelve una página del libro (más reciente primero) y el
// total de movimientos.
func (uc *RegisterMovementUseCase) ListMovements(limit, offset int) ([]entity.StockMovement, int) {
	all := uc.store.Movements()
	total := len(all)
	if offset >= total {
		return []entity.StockMovement{}, total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total
}
