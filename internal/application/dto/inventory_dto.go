package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory/movements.
type RegisterMovementRequest struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	Type        string `json:"type"` // in | out
	Quantity    int    `json:"quantity"`
	Notes       string `json:"notes"`
}

// MovementResponse salida de un movimiento registrado.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Notes       string    `json:"notes"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// StockResponse existencia de un producto, por bodega o total.
type StockResponse struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id,omitempty"` // vacío = total en todas las bodegas
	Quantity    int    `json:"quantity"`
}
