package usecase_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outletaseo/outlet-api/internal/application/dto"
	"github.com/outletaseo/outlet-api/internal/application/inventory"
	"github.com/outletaseo/outlet-api/internal/application/usecase"
	"github.com/outletaseo/outlet-api/internal/domain"
	"github.com/outletaseo/outlet-api/internal/domain/entity"
	"github.com/outletaseo/outlet-api/internal/store"
)

func crearRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:           "CL-2L",
		Name:          "Cloro 2L",
		Category:      "Limpieza",
		InitialStock:  10,
		MinStock:      3,
		PurchasePrice: decimal.NewFromInt(1200),
		SalePrice:     decimal.NewFromInt(1990),
	}
}

func TestCreate_AsignaIDYStockInicial(t *testing.T) {
	uc := usecase.NewProductUseCase(store.New())

	out, err := uc.Create(crearRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, 10, out.CurrentStock)
	assert.False(t, out.LowStock)
	assert.False(t, out.LastUpdated.IsZero())
}

func TestCreate_SKUDuplicadoSeRechaza(t *testing.T) {
	uc := usecase.NewProductUseCase(store.New())
	_, err := uc.Create(crearRequest())
	require.NoError(t, err)

	_, err = uc.Create(crearRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_Validaciones(t *testing.T) {
	uc := usecase.NewProductUseCase(store.New())

	sinSKU := crearRequest()
	sinSKU.SKU = ""
	_, err := uc.Create(sinSKU)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	stockNegativo := crearRequest()
	stockNegativo.InitialStock = -1
	_, err = uc.Create(stockNegativo)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	precioNegativo := crearRequest()
	precioNegativo.SalePrice = decimal.NewFromInt(-5)
	_, err = uc.Create(precioNegativo)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Update toca solo los campos presentes y nunca el stock actual.
func TestUpdate_ParcialSinTocarStock(t *testing.T) {
	s := store.New()
	uc := usecase.NewProductUseCase(s)
	created, err := uc.Create(crearRequest())
	require.NoError(t, err)

	nuevoNombre := "Cloro concentrado 2L"
	nuevoPrecio := decimal.NewFromInt(2490)
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Name:      &nuevoNombre,
		SalePrice: &nuevoPrecio,
	})
	require.NoError(t, err)

	assert.Equal(t, nuevoNombre, out.Name)
	assert.True(t, out.SalePrice.Equal(nuevoPrecio))
	assert.Equal(t, "Limpieza", out.Category, "los campos ausentes no cambian")
	assert.Equal(t, 10, out.CurrentStock, "el stock no se toca por esta vía")
}

func TestUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(store.New())
	_, err := uc.Update("nope", dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_MinStockNegativo(t *testing.T) {
	uc := usecase.NewProductUseCase(store.New())
	created, err := uc.Create(crearRequest())
	require.NoError(t, err)

	negativo := -2
	_, err = uc.Update(created.ID, dto.UpdateProductRequest{MinStock: &negativo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Actualizaciones de catálogo en paralelo con movimientos de stock: el stock
// final debe ser la suma exacta de las entradas, sin importar cuántos Update
// se intercalen.
func TestUpdate_ConcurrenteConMovimientosNoPierdeStock(t *testing.T) {
	s := store.New()
	productUC := usecase.NewProductUseCase(s)
	movUC := inventory.NewRegisterMovementUseCase(s)

	req := crearRequest()
	req.InitialStock = 0
	created, err := productUC.Create(req)
	require.NoError(t, err)

	const (
		registradores        = 8
		actualizadores       = 4
		entradasPorGoroutine = 50
	)

	var wg sync.WaitGroup
	for i := 0; i < registradores; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < entradasPorGoroutine; j++ {
				_, err := movUC.RegisterMovement(inventory.MovementInput{
					ProductID: created.ID, Type: entity.MovementTypeEntry, Quantity: 1,
				})
				assert.NoError(t, err)
			}
		}()
	}
	for i := 0; i < actualizadores; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				nombre := fmt.Sprintf("Cloro 2L rev %d-%d", i, j)
				_, err := productUC.Update(created.ID, dto.UpdateProductRequest{Name: &nombre})
				assert.NoError(t, err)
			}
		}(i)
	}
	wg.Wait()

	final := productUC.GetByID(created.ID)
	require.NotNil(t, final)
	assert.Equal(t, registradores*entradasPorGoroutine, final.CurrentStock,
		"ninguna entrada debe perderse por una actualización intercalada")
}

func TestDelete(t *testing.T) {
	uc := usecase.NewProductUseCase(store.New())
	created, err := uc.Create(crearRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	assert.Nil(t, uc.GetByID(created.ID))
	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound)
}

func TestList_Paginacion(t *testing.T) {
	uc := usecase.NewProductUseCase(store.New())
	for _, sku := range []string{"A-1", "B-2", "C-3"} {
		req := crearRequest()
		req.SKU = sku
		_, err := uc.Create(req)
		require.NoError(t, err)
	}

	page := uc.List(2, 0)
	assert.Equal(t, 3, page.Page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "C-3", page.Items[0].SKU, "el más reciente primero")

	vacia := uc.List(2, 10)
	assert.Empty(t, vacia.Items)
}
