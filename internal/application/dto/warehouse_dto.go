package dto

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Location string `json:"location"`
}

// UpdateWarehouseRequest entrada para actualizar una bodega (solo perfil SQL).
type UpdateWarehouseRequest struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}
