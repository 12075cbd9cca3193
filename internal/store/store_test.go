package store_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outletaseo/outlet-api/internal/domain"
	"github.com/outletaseo/outlet-api/internal/domain/entity"
	"github.com/outletaseo/outlet-api/internal/store"
)

func productoDePrueba(id, sku string, stock int) entity.Product {
	return entity.Product{
		ID:            id,
		SKU:           sku,
		Name:          "Detergente 1L",
		Category:      "Limpieza",
		CurrentStock:  stock,
		MinStock:      3,
		PurchasePrice: decimal.NewFromInt(1000),
		SalePrice:     decimal.NewFromInt(1500),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Run: atomicidad
// ──────────────────────────────────────────────────────────────────────────────

// Si el callback de Run devuelve error, ni el producto preparado ni el
// movimiento agregado deben confirmarse.
func TestRun_ErrorDescartaCambios(t *testing.T) {
	s := store.New()
	s.InsertProduct(productoDePrueba("p1", "SKU-1", 5))

	fallo := errors.New("falla a mitad de camino")
	err := s.Run(func(tx *store.Tx) error {
		p, ok := tx.Product("p1")
		require.True(t, ok)
		p.CurrentStock = 0
		tx.StageProduct(p)
		tx.AppendMovement(entity.StockMovement{ID: "m1", ProductID: "p1", Type: entity.MovementTypeExit, Quantity: 5})
		return fallo
	})
	require.ErrorIs(t, err, fallo)

	p, ok := s.GetProduct("p1")
	require.True(t, ok)
	assert.Equal(t, 5, p.CurrentStock, "el stock no debe cambiar si la transacción falla")
	assert.Empty(t, s.Movements(), "el libro no debe registrar movimientos de una transacción fallida")
}

func TestRun_ConfirmaProductoYMovimientoJuntos(t *testing.T) {
	s := store.New()
	s.InsertProduct(productoDePrueba("p1", "SKU-1", 5))

	err := s.Run(func(tx *store.Tx) error {
		p, _ := tx.Product("p1")
		p.CurrentStock = 2
		tx.StageProduct(p)
		tx.AppendMovement(entity.StockMovement{ID: "m1", ProductID: "p1", Type: entity.MovementTypeExit, Quantity: 3})
		return nil
	})
	require.NoError(t, err)

	p, _ := s.GetProduct("p1")
	assert.Equal(t, 2, p.CurrentStock)
	require.Len(t, s.Movements(), 1)
	assert.Equal(t, "m1", s.Movements()[0].ID)
}

// Dentro de la transacción, Product debe ver los cambios ya preparados.
func TestRun_ProductVeCambiosPreparados(t *testing.T) {
	s := store.New()
	s.InsertProduct(productoDePrueba("p1", "SKU-1", 5))

	err := s.Run(func(tx *store.Tx) error {
		p, _ := tx.Product("p1")
		p.CurrentStock = 8
		tx.StageProduct(p)

		again, ok := tx.Product("p1")
		require.True(t, ok)
		assert.Equal(t, 8, again.CurrentStock, "la segunda lectura debe ver el stock preparado")
		return nil
	})
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// InsertProductUnique
// ──────────────────────────────────────────────────────────────────────────────

func TestInsertProductUnique_RechazaSKUExistente(t *testing.T) {
	s := store.New()
	require.NoError(t, s.InsertProductUnique(productoDePrueba("p1", "SKU-1", 5)))

	err := s.InsertProductUnique(productoDePrueba("p2", "SKU-1", 3))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, s.Products(), 1, "el segundo producto no debe insertarse")
}

// Varias inserciones concurrentes del mismo SKU: exactamente una gana.
func TestInsertProductUnique_ConcurrenteInsertaUnaSolaVez(t *testing.T) {
	s := store.New()
	const intentos = 16

	var wg sync.WaitGroup
	exitos := make(chan string, intentos)
	for i := 0; i < intentos; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("p%d", i)
			if err := s.InsertProductUnique(productoDePrueba(id, "SKU-REP", 1)); err == nil {
				exitos <- id
			}
		}(i)
	}
	wg.Wait()
	close(exitos)

	var ganadores []string
	for id := range exitos {
		ganadores = append(ganadores, id)
	}
	require.Len(t, ganadores, 1, "solo una creación del mismo SKU debe pasar")
	require.Len(t, s.Products(), 1)
	assert.Equal(t, ganadores[0], s.Products()[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Restore
// ──────────────────────────────────────────────────────────────────────────────

func TestRestore_SinColeccionesEsMalformado(t *testing.T) {
	s := store.New()
	err := s.Restore(store.Snapshot{Version: store.SnapshotVersion})
	assert.ErrorIs(t, err, domain.ErrImportMalformed)
}

// Un snapshot con solo productos reemplaza el catálogo y deja el libro intacto.
func TestRestore_ParcialReemplazaSoloLoPresente(t *testing.T) {
	s := store.New()
	s.InsertProduct(productoDePrueba("viejo", "SKU-V", 1))
	require.NoError(t, s.Run(func(tx *store.Tx) error {
		tx.AppendMovement(entity.StockMovement{ID: "m1", ProductID: "viejo", Type: entity.MovementTypeEntry, Quantity: 1})
		return nil
	}))

	err := s.Restore(store.Snapshot{
		Products: []entity.Product{productoDePrueba("nuevo", "SKU-N", 7)},
	})
	require.NoError(t, err)

	require.Len(t, s.Products(), 1)
	assert.Equal(t, "nuevo", s.Products()[0].ID)
	assert.Len(t, s.Movements(), 1, "el libro no viene en el snapshot y debe quedar intacto")
}

// Una lista vacía pero presente ([]) sí reemplaza.
func TestRestore_ListaVaciaPresenteReemplaza(t *testing.T) {
	s := store.New()
	s.InsertProduct(productoDePrueba("p1", "SKU-1", 5))

	err := s.Restore(store.Snapshot{Products: []entity.Product{}})
	require.NoError(t, err)
	assert.Empty(t, s.Products())
}

// Un inventario vacío (por ejemplo tras borrar el último producto) debe
// serializar con las listas presentes y volver a restaurarse sin error.
func TestSnapshot_VacioViajaIdaYVuelta(t *testing.T) {
	s := store.New()
	s.InsertProduct(productoDePrueba("p1", "SKU-1", 5))
	require.True(t, s.DeleteProduct("p1"))

	raw, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"products":[]`)
	assert.Contains(t, string(raw), `"movements":[]`)

	var snap store.Snapshot
	require.NoError(t, json.Unmarshal(raw, &snap))

	restaurado := store.New()
	require.NoError(t, restaurado.Restore(snap), "un documento vacío es válido y no debe rechazarse")
	assert.Empty(t, restaurado.Products())
	assert.Empty(t, restaurado.Movements())
}

// ──────────────────────────────────────────────────────────────────────────────
// Subscribe
// ──────────────────────────────────────────────────────────────────────────────

func TestSubscribe_NotificaTrasCadaMutacion(t *testing.T) {
	s := store.New()
	var snapshots []store.Snapshot
	s.Subscribe(func(snap store.Snapshot) {
		snapshots = append(snapshots, snap)
	})

	s.InsertProduct(productoDePrueba("p1", "SKU-1", 5))
	require.Len(t, snapshots, 1)
	assert.Equal(t, store.SnapshotVersion, snapshots[0].Version)
	assert.Len(t, snapshots[0].Products, 1)

	// El callback puede leer el store sin deadlock (se llama fuera del lock)
	s.Subscribe(func(store.Snapshot) {
		_ = s.Products()
	})
	s.DeleteProduct("p1")
	assert.Len(t, snapshots, 2)
}
