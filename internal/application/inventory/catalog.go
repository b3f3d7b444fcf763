package inventory

import (
	"github.com/jhoicas/inventario-desk/internal/application/dto"
	"github.com/jhoicas/inventario-desk/internal/domain"
	"github.com/jhoicas/inventario-desk/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// AddProduct crea un producto con id nuevo y timestamp actual y lo agrega al
// catálogo en orden de inserción. La unicidad del SKU no se valida: es el
// comportamiento heredado de la aplicación original.
func (l *Ledger) AddProduct(in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	product := entity.Product{
		ID:          l.ids.NewID(),
		Name:        in.Name,
		SKU:         in.SKU,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		MinStock:    in.MinStock,
		CreatedAt:   l.now(),
	}
	l.doc.Products = append(l.doc.Products, product)
	l.persist()

	l.log.Info().Str("product_id", product.ID).Str("sku", product.SKU).Msg("producto creado")
	return &product, nil
}

// UpdateProduct aplica solo los campos presentes del request al producto.
// Si el id no existe la operación es un no-op sin error (comportamiento heredado).
func (l *Ledger) UpdateProduct(id string, in dto.UpdateProductRequest) error {
	if in.Price != nil && in.Price.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if in.MinStock != nil && *in.MinStock < 0 {
		return domain.ErrInvalidInput
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.doc.Products {
		if l.doc.Products[i].ID != id {
			continue
		}
		p := &l.doc.Products[i]
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.SKU != nil {
			p.SKU = *in.SKU
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if in.Category != nil {
			p.Category = *in.Category
		}
		if in.Price != nil {
			p.Price = *in.Price
		}
		if in.MinStock != nil {
			p.MinStock = *in.MinStock
		}
		l.persist()
		return nil
	}
	return nil
}

// DeleteProduct elimina un producto del catálogo. Falla con ErrConflict si
// algún registro de stock o movimiento lo referencia: así nunca quedan
// referencias colgantes y no hace falta verificar integridad después.
func (l *Ledger) DeleteProduct(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, s := range l.doc.Stock {
		if s.ProductID == id {
			return domain.ErrConflict
		}
	}
	for _, m := range l.doc.Movements {
		if m.ProductID == id {
			return domain.ErrConflict
		}
	}

	for i := range l.doc.Products {
		if l.doc.Products[i].ID == id {
			l.doc.Products = append(l.doc.Products[:i], l.doc.Products[i+1:]...)
			l.persist()
			l.log.Info().Str("product_id", id).Msg("producto eliminado")
			return nil
		}
	}
	return domain.ErrNotFound
}

// AddWarehouse crea una bodega con id nuevo y la agrega a la colección.
func (l *Ledger) AddWarehouse(in dto.CreateWarehouseRequest) (*entity.Warehouse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	warehouse := entity.Warehouse{
		ID:       l.ids.NewID(),
		Name:     in.Name,
		Location: in.Location,
	}
	l.doc.Warehouses = append(l.doc.Warehouses, warehouse)
	l.persist()

	l.log.Info().Str("warehouse_id", warehouse.ID).Msg("bodega creada")
	return &warehouse, nil
}

// Products devuelve una copia del catálogo en orden de inserción.
func (l *Ledger) Products() []entity.Product {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]entity.Product, len(l.doc.Products))
	copy(out, l.doc.Products)
	return out
}

// Product devuelve un producto por id, o nil si no existe.
func (l *Ledger) Product(id string) *entity.Product {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.productByID(id)
}

// Warehouses devuelve una copia de las bodegas en orden de inserción.
func (l *Ledger) Warehouses() []entity.Warehouse {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]entity.Warehouse, len(l.doc.Warehouses))
	copy(out, l.doc.Warehouses)
	return out
}

// productByID busca sin tomar el mutex; para uso interno con el lock tomado.
func (l *Ledger) productByID(id string) *entity.Product {
	for i := range l.doc.Products {
		if l.doc.Products[i].ID == id {
			p := l.doc.Products[i]
			return &p
		}
	}
	return nil
}

func (l *Ledger) warehouseExists(id string) bool {
	for i := range l.doc.Warehouses {
		if l.doc.Warehouses[i].ID == id {
			return true
		}
	}
	return false
}
