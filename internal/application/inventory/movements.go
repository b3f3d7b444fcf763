package inventory

import (
	"strings"

	"github.com/jhoicas/inventario-desk/internal/application/dto"
	"github.com/jhoicas/inventario-desk/internal/domain"
	"github.com/jhoicas/inventario-desk/internal/domain/entity"
)

// AddMovement registra un movimiento de inventario y actualiza la existencia
// del par (producto, bodega) en una sola sección crítica. El orden es
// validar todo y después mutar: si algo falla, ninguna colección cambia.
//
//  1. Sin usuario autenticado → ErrNotAuthenticated.
//  2. Producto o bodega inexistente, tipo desconocido o cantidad no positiva
//     → ErrInvalidInput.
//  3. Salida mayor que la existencia actual del par → ErrInsufficientStock.
//  4. Se agrega el movimiento al log (append-only, inmutable desde entonces).
//  5. Se suma/resta la cantidad; el registro de stock se crea solo en entradas
//     y nunca se elimina aunque llegue a cero.
func (l *Ledger) AddMovement(userID string, in dto.RegisterMovementRequest) (*entity.Movement, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if in.Type != entity.MovementTypeIn && in.Type != entity.MovementTypeOut {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.productByID(in.ProductID) == nil || !l.warehouseExists(in.WarehouseID) {
		return nil, domain.ErrInvalidInput
	}
	if in.Type == entity.MovementTypeOut {
		if in.Quantity > l.stockOf(in.ProductID, in.WarehouseID) {
			return nil, domain.ErrInsufficientStock
		}
	}

	movement := entity.Movement{
		ID:          l.ids.NewID(),
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Notes:       in.Notes,
		UserID:      userID,
		CreatedAt:   l.now(),
	}
	l.doc.Movements = append(l.doc.Movements, movement)

	delta := in.Quantity
	if in.Type == entity.MovementTypeOut {
		delta = -in.Quantity
	}
	updated := false
	for i := range l.doc.Stock {
		s := &l.doc.Stock[i]
		if s.ProductID == in.ProductID && s.WarehouseID == in.WarehouseID {
			s.Quantity += delta
			updated = true
			break
		}
	}
	if !updated && in.Type == entity.MovementTypeIn {
		// Primera entrada para el par: crea el registro de stock.
		l.doc.Stock = append(l.doc.Stock, entity.Stock{
			ProductID:   in.ProductID,
			WarehouseID: in.WarehouseID,
			Quantity:    in.Quantity,
		})
	}
	l.persist()

	l.log.Info().
		Str("movement_id", movement.ID).
		Str("product_id", in.ProductID).
		Str("warehouse_id", in.WarehouseID).
		Str("type", in.Type).
		Int("quantity", in.Quantity).
		Msg("movimiento registrado")
	return &movement, nil
}

// GetProductStock devuelve la existencia del producto en una bodega, o la suma
// en todas las bodegas si warehouseID es vacío. Un par sin registro es 0.
func (l *Ledger) GetProductStock(productID, warehouseID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stockOf(productID, warehouseID)
}

// stockOf calcula existencias sin tomar el mutex; uso interno con lock tomado.
func (l *Ledger) stockOf(productID, warehouseID string) int {
	total := 0
	for i := range l.doc.Stock {
		s := &l.doc.Stock[i]
		if s.ProductID != productID {
			continue
		}
		if warehouseID != "" {
			if s.WarehouseID == warehouseID {
				return s.Quantity
			}
			continue
		}
		total += s.Quantity
	}
	if warehouseID != "" {
		return 0
	}
	return total
}

// GetLowStockProducts devuelve los productos cuyo stock total queda
// estrictamente por debajo de su umbral MinStock, en orden de inserción
// del catálogo. Un producto con stock igual al umbral no es stock bajo.
func (l *Ledger) GetLowStockProducts() []entity.Product {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []entity.Product
	for _, p := range l.doc.Products {
		if l.stockOf(p.ID, "") < p.MinStock {
			out = append(out, p)
		}
	}
	return out
}

// Stock devuelve una copia de todos los registros de existencias.
func (l *Ledger) Stock() []entity.Stock {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]entity.Stock, len(l.doc.Stock))
	copy(out, l.doc.Stock)
	return out
}

// Movements devuelve una copia del log completo en orden cronológico
// (orden de inserción, que coincide con el timestamp de creación).
func (l *Ledger) Movements() []entity.Movement {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]entity.Movement, len(l.doc.Movements))
	copy(out, l.doc.Movements)
	return out
}

// FilterMovements devuelve los movimientos que pasan el filtro del historial,
// en orden cronológico. El que exporta decide el orden final de presentación.
func (l *Ledger) FilterMovements(f dto.MovementFilter) []entity.Movement {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []entity.Movement
	for _, m := range l.doc.Movements {
		if f.ProductID != "" && m.ProductID != f.ProductID {
			continue
		}
		if f.WarehouseID != "" && m.WarehouseID != f.WarehouseID {
			continue
		}
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		if f.From != nil && m.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && m.CreatedAt.After(*f.To) {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(m.Notes), strings.ToLower(f.Search)) {
			continue
		}
		out = append(out, m)
	}
	return out
}
