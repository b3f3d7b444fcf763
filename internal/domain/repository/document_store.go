package repository

import "github.com/jhoicas/inventario-desk/internal/domain/entity"

// DocumentStore define el puerto de persistencia del documento de estado (DIP).
// El ledger escribe a través de este puerto tras cada mutación exitosa.
type DocumentStore interface {
	// Load carga el documento; si no existe aún, devuelve uno vacío.
	Load() (*entity.Document, error)
	// Save escribe el documento completo de forma atómica.
	Save(doc *entity.Document) error
	// Backup copia el documento vivo a la ruta destino.
	Backup(dstPath string) error
	// Restore valida el archivo origen, sobreescribe el documento vivo
	// y devuelve el documento recién cargado.
	Restore(srcPath string) (*entity.Document, error)
}
