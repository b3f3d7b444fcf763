package entity

// Warehouse representa una bodega donde se almacena inventario.
type Warehouse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}
