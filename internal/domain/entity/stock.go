package entity

// Stock representa la existencia actual de un producto en una bodega.
// Clave lógica: (ProductID, WarehouseID), única por par. Se crea de forma
// implícita con la primera entrada y nunca se elimina: si la cantidad llega
// a cero el registro persiste en cero.
type Stock struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	Quantity    int    `json:"quantity"` // nunca negativo
}
