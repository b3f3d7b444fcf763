package entity

import "time"

// Settings es el objeto de configuración que viaja dentro del documento persistido.
type Settings struct {
	SchemaVersion int       `json:"schema_version"`
	AppName       string    `json:"app_name"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Document es el estado completo de la aplicación serializado como un único
// documento JSON: las cuatro colecciones del ledger más usuarios, suscripciones
// y configuración. Respaldar = copiar este documento; restaurar = sobreescribirlo
// y recargar el estado en memoria desde él.
type Document struct {
	Products      []Product      `json:"products"`
	Warehouses    []Warehouse    `json:"warehouses"`
	Stock         []Stock        `json:"inventory"`
	Movements     []Movement     `json:"movements"`
	Users         []User         `json:"users"`
	Subscriptions []Subscription `json:"subscriptions"`
	Settings      Settings       `json:"settings"`
}

// NewDocument devuelve un documento vacío con la versión de esquema actual.
func NewDocument(appName string) *Document {
	return &Document{
		Products:      []Product{},
		Warehouses:    []Warehouse{},
		Stock:         []Stock{},
		Movements:     []Movement{},
		Users:         []User{},
		Subscriptions: []Subscription{},
		Settings: Settings{
			SchemaVersion: 1,
			AppName:       appName,
		},
	}
}
