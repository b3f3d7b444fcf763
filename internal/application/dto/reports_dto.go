package dto

import "time"

// MovementFilter filtros del historial de movimientos (los de la pantalla History).
// Los campos vacíos no filtran.
type MovementFilter struct {
	ProductID   string
	WarehouseID string
	Type        string // in | out | "" (todos)
	From        *time.Time
	To          *time.Time
	Search      string // texto libre sobre notas
}

// BackupRequest ruta destino elegida por el shell de escritorio.
type BackupRequest struct {
	Path string `json:"path" validate:"required"`
}

// RestoreRequest ruta del respaldo a restaurar.
type RestoreRequest struct {
	Path string `json:"path" validate:"required"`
}
