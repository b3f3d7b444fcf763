package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// Movement representa un movimiento de inventario (entrada o salida).
// El log de movimientos es append-only: una vez creado, un movimiento
// no se modifica ni se elimina.
type Movement struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	Type        string    `json:"type"`     // in | out
	Quantity    int       `json:"quantity"` // siempre positivo; el signo lo da Type
	Notes       string    `json:"notes"`
	UserID      string    `json:"user_id"` // usuario que registró el movimiento
	CreatedAt   time.Time `json:"created_at"`
}
