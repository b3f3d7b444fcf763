package repository

import "github.com/jhoicas/inventario-desk/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia relacional para Warehouse.
// Solo lo usa el perfil warehouse-api (PostgreSQL); el perfil de escritorio
// maneja bodegas dentro del ledger.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	List() ([]*entity.Warehouse, error)
	Delete(id string) error
}
