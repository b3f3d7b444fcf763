// Package jsonstore persiste el estado completo de la aplicación como un único
// documento JSON en disco (el app.json del perfil de escritorio).
//
// La escritura es atómica: se serializa a un archivo temporal en el mismo
// directorio y luego se renombra sobre el documento vivo, de modo que un corte
// a mitad de escritura nunca deja un documento corrupto.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jhoicas/inventario-desk/internal/domain/entity"
	"github.com/jhoicas/inventario-desk/internal/domain/repository"
)

var _ repository.DocumentStore = (*Store)(nil)

// Store implementación del puerto DocumentStore sobre un archivo JSON.
type Store struct {
	path    string
	appName string
}

// NewStore construye el adaptador de persistencia. path es la ruta del
// documento vivo (ej. data/app.json); appName se usa al crear documentos nuevos.
func NewStore(path, appName string) *Store {
	return &Store{path: path, appName: appName}
}

// Path devuelve la ruta del documento vivo.
func (s *Store) Path() string { return s.path }

// Load carga el documento desde disco. Si el archivo no existe todavía
// (primer arranque), devuelve un documento vacío sin error.
func (s *Store) Load() (*entity.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entity.NewDocument(s.appName), nil
		}
		return nil, fmt.Errorf("leer documento: %w", err)
	}
	doc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("documento %s: %w", s.path, err)
	}
	return doc, nil
}

// Save escribe el documento completo de forma atómica (tmp + rename).
func (s *Store) Save(doc *entity.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar documento: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio de datos: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".app-*.json")
	if err != nil {
		return fmt.Errorf("crear archivo temporal: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("escribir documento: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cerrar archivo temporal: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("reemplazar documento: %w", err)
	}
	return nil
}

// Backup copia el documento vivo a la ruta elegida por el usuario.
func (s *Store) Backup(dstPath string) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("leer documento para respaldo: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("crear directorio de respaldo: %w", err)
	}
	if err := os.WriteFile(dstPath, data, 0o644); err != nil {
		return fmt.Errorf("escribir respaldo: %w", err)
	}
	return nil
}

// Restore valida que el archivo origen sea un documento bien formado,
// lo copia sobre el documento vivo y devuelve el documento cargado.
// El estado en memoria debe recargarse con el documento devuelto.
func (s *Store) Restore(srcPath string) (*entity.Document, error) {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return nil, fmt.Errorf("leer respaldo: %w", err)
	}
	doc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("respaldo %s: %w", srcPath, err)
	}
	if err := s.Save(doc); err != nil {
		return nil, fmt.Errorf("restaurar documento: %w", err)
	}
	return doc, nil
}

// decode parsea y normaliza un documento: las colecciones nil pasan a vacías
// para que el resto del código no tenga que distinguir ambos casos.
func decode(data []byte) (*entity.Document, error) {
	var doc entity.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsear JSON: %w", err)
	}
	if doc.Products == nil {
		doc.Products = []entity.Product{}
	}
	if doc.Warehouses == nil {
		doc.Warehouses = []entity.Warehouse{}
	}
	if doc.Stock == nil {
		doc.Stock = []entity.Stock{}
	}
	if doc.Movements == nil {
		doc.Movements = []entity.Movement{}
	}
	if doc.Users == nil {
		doc.Users = []entity.User{}
	}
	if doc.Subscriptions == nil {
		doc.Subscriptions = []entity.Subscription{}
	}
	return &doc, nil
}
