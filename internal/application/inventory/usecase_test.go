package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outletaseo/outlet-api/internal/application/inventory"
	"github.com/outletaseo/outlet-api/internal/domain"
	"github.com/outletaseo/outlet-api/internal/domain/entity"
	"github.com/outletaseo/outlet-api/internal/store"
)

func setupUseCase(t *testing.T, stock, minStock int) (*inventory.RegisterMovementUseCase, *store.Store) {
	t.Helper()
	s := store.New()
	s.InsertProduct(entity.Product{
		ID:            "p1",
		SKU:           "ESC-01",
		Name:          "Escoba multiuso",
		Category:      "Aseo",
		CurrentStock:  stock,
		MinStock:      minStock,
		PurchasePrice: decimal.NewFromInt(2000),
		SalePrice:     decimal.NewFromInt(3500),
	})
	return inventory.NewRegisterMovementUseCase(s), s
}

// Salida de 3 unidades con stock 5 → queda 2 y el producto pasa a stock bajo.
func TestRegisterMovement_SalidaDescuentaYActivaStockBajo(t *testing.T) {
	uc, s := setupUseCase(t, 5, 2)

	mov, err := uc.RegisterMovement(inventory.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeExit, Quantity: 3, Reason: "venta",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeExit, mov.Type)
	assert.Equal(t, "Escoba multiuso", mov.ProductName, "el movimiento copia el nombre al registrarse")

	p, _ := s.GetProduct("p1")
	assert.Equal(t, 2, p.CurrentStock)
	assert.True(t, p.IsLowStock(), "con stock 2 y mínimo 2 el producto está en stock bajo")
}

// Una salida mayor al stock disponible se rechaza sin dejar estado parcial.
func TestRegisterMovement_SalidaMayorAlStockSeRechaza(t *testing.T) {
	uc, s := setupUseCase(t, 5, 2)

	_, err := uc.RegisterMovement(inventory.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeExit, Quantity: 10,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ := s.GetProduct("p1")
	assert.Equal(t, 5, p.CurrentStock, "el stock no debe cambiar")
	assert.Empty(t, s.Movements(), "el libro no debe registrar el movimiento rechazado")
}

// La salida exacta del stock disponible es válida y deja stock 0.
func TestRegisterMovement_SalidaExactaDejaCero(t *testing.T) {
	uc, s := setupUseCase(t, 5, 2)

	_, err := uc.RegisterMovement(inventory.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeExit, Quantity: 5,
	})
	require.NoError(t, err)

	p, _ := s.GetProduct("p1")
	assert.Equal(t, 0, p.CurrentStock)
}

func TestRegisterMovement_EntradaSuma(t *testing.T) {
	uc, s := setupUseCase(t, 5, 2)

	_, err := uc.RegisterMovement(inventory.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeEntry, Quantity: 4, Reason: "reposición",
	})
	require.NoError(t, err)

	p, _ := s.GetProduct("p1")
	assert.Equal(t, 9, p.CurrentStock)
}

// ADJUSTMENT fija el stock en la cantidad absoluta indicada, incluso 0.
func TestRegisterMovement_AjusteFijaStockAbsoluto(t *testing.T) {
	uc, s := setupUseCase(t, 5, 2)

	_, err := uc.RegisterMovement(inventory.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeAdjustment, Quantity: 0, Reason: "merma total",
	})
	require.NoError(t, err)

	p, _ := s.GetProduct("p1")
	assert.Equal(t, 0, p.CurrentStock)
}

func TestRegisterMovement_Validaciones(t *testing.T) {
	uc, _ := setupUseCase(t, 5, 2)

	casos := []struct {
		nombre  string
		input   inventory.MovementInput
		wantErr error
	}{
		{"tipo desconocido", inventory.MovementInput{ProductID: "p1", Type: "TRANSFER", Quantity: 1}, domain.ErrInvalidInput},
		{"entrada con cantidad cero", inventory.MovementInput{ProductID: "p1", Type: entity.MovementTypeEntry, Quantity: 0}, domain.ErrInvalidQuantity},
		{"salida con cantidad negativa", inventory.MovementInput{ProductID: "p1", Type: entity.MovementTypeExit, Quantity: -2}, domain.ErrInvalidQuantity},
		{"ajuste negativo", inventory.MovementInput{ProductID: "p1", Type: entity.MovementTypeAdjustment, Quantity: -1}, domain.ErrInvalidQuantity},
		{"producto inexistente", inventory.MovementInput{ProductID: "nope", Type: entity.MovementTypeEntry, Quantity: 1}, domain.ErrNotFound},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := uc.RegisterMovement(c.input)
			assert.ErrorIs(t, err, c.wantErr)
		})
	}
}

func TestListMovements_PaginaMasRecientePrimero(t *testing.T) {
	uc, _ := setupUseCase(t, 100, 2)

	for i := 0; i < 3; i++ {
		_, err := uc.RegisterMovement(inventory.MovementInput{
			ProductID: "p1", Type: entity.MovementTypeExit, Quantity: i + 1,
		})
		require.NoError(t, err)
	}

	page, total := uc.ListMovements(2, 0)
	assert.Equal(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, 3, page[0].Quantity, "el movimiento más reciente va primero")

	rest, _ := uc.ListMovements(2, 2)
	require.Len(t, rest, 1)
	assert.Equal(t, 1, rest[0].Quantity)

	empty, _ := uc.ListMovements(2, 10)
	assert.Empty(t, empty)
}
