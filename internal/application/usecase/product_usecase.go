package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/outletaseo/outlet-api/internal/application/dto"
	"github.com/outletaseo/outlet-api/internal/domain"
	"github.com/outletaseo/outlet-api/internal/domain/entity"
	"github.com/outletaseo/outlet-api/internal/store"
)

// ProductUseCase casos de uso CRUD para productos. El stock actual solo se
// modifica vía movimientos de inventario (salvo el stock de apertura al crear).
type ProductUseCase struct {
	store *store.Store
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(s *store.Store) *ProductUseCase {
	return &ProductUseCase{store: s}
}

// Create crea un producto con ID nuevo y LastUpdated = ahora.
// Rechaza SKUs duplicados con ErrDuplicate.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialStock < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchasePrice.IsNegative() || in.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product := entity.Product{
		ID:            uuid.New().String(),
		SKU:           in.SKU,
		Name:          in.Name,
		Description:   in.Description,
		Category:      in.Category,
		CurrentStock:  in.InitialStock,
		MinStock:      in.MinStock,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		LastUpdated:   time.Now(),
	}
	if err := uc.store.InsertProductUnique(product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(id string) *dto.ProductResponse {
	product, ok := uc.store.GetProduct(id)
	if !ok {
		return nil
	}
	resp := toProductResponse(product)
	return &resp
}

// Update actualiza campo por campo los valores presentes en el request y
// bumpea LastUpdated. No permite modificar el stock actual (se maneja vía
// movimientos). Devuelve ErrNotFound si el producto no existe.
//
// Lee y escribe dentro de la misma transacción del store: un movimiento que
// se confirme en paralelo no puede quedar pisado por una copia vieja del
// producto.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var updated entity.Product
	err := uc.store.Run(func(tx *store.Tx) error {
		product, ok := tx.Product(id)
		if !ok {
			return domain.ErrNotFound
		}
		if in.Name != nil {
			product.Name = *in.Name
		}
		if in.Description != nil {
			product.Description = *in.Description
		}
		if in.Category != nil {
			product.Category = *in.Category
		}
		if in.MinStock != nil {
			if *in.MinStock < 0 {
				return domain.ErrInvalidInput
			}
			product.MinStock = *in.MinStock
		}
		if in.PurchasePrice != nil {
			if in.PurchasePrice.IsNegative() {
				return domain.ErrInvalidInput
			}
			product.PurchasePrice = *in.PurchasePrice
		}
		if in.SalePrice != nil {
			if in.SalePrice.IsNegative() {
				return domain.ErrInvalidInput
			}
			product.SalePrice = *in.SalePrice
		}
		product.LastUpdated = time.Now()
		tx.StageProduct(product)
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(updated)
	return &resp, nil
}

// Delete elimina un producto. Los movimientos históricos que lo referencian
// se conservan con el nombre copiado. Devuelve ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(id string) error {
	if !uc.store.DeleteProduct(id) {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos en orden de inserción con paginación.
func (uc *ProductUseCase) List(limit, offset int) *dto.ProductListResponse {
	all := uc.store.Products()
	total := len(all)
	items := []dto.ProductResponse{}
	if offset < total {
		end := offset + limit
		if end > total {
			end = total
		}
		for _, p := range all[offset:end] {
			items = append(items, toProductResponse(p))
		}
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		CurrentStock:  p.CurrentStock,
		MinStock:      p.MinStock,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		LowStock:      p.IsLowStock(),
		LastUpdated:   p.LastUpdated,
	}
}
