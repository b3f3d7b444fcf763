package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// MinStock es el umbral de alerta: si el stock total queda por debajo,
// el producto aparece en el listado de stock bajo del dashboard.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"` // código legible por humanos; la unicidad no se valida (comportamiento heredado)
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"` // precio unitario, no negativo
	MinStock    int             `json:"min_stock"`
	CreatedAt   time.Time       `json:"created_at"`
}
