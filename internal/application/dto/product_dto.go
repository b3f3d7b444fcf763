package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	SKU         string          `json:"sku" validate:"required,min=1,max=50"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price" validate:"min=0"`
	MinStock    int             `json:"min_stock" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto.
// Solo los campos presentes (no nil) se aplican; el resto se conserva.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	SKU         *string          `json:"sku,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	MinStock    *int             `json:"min_stock,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	MinStock    int             `json:"min_stock"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LowStockProductDTO producto bajo el umbral con su stock total actual.
type LowStockProductDTO struct {
	ProductResponse
	TotalStock int `json:"total_stock"`
}
