// Package inventory implementa el ledger de inventario: el log append-only de
// movimientos y las existencias derivadas por (producto, bodega), junto con el
// resto del documento de estado que consumen los demás casos de uso.
//
// Todas las mutaciones pasan por una única sección crítica (un mutex grueso),
// de modo que ningún caso de uso puede observar un par movimiento/stock a medio
// actualizar. Tras cada mutación exitosa el documento completo se escribe al
// almacén inyectado (write-through).
package inventory

import (
	"time"

	"github.com/jhoicas/inventario-desk/internal/domain/entity"
	"github.com/jhoicas/inventario-desk/internal/domain/repository"
	"github.com/jhoicas/inventario-desk/pkg/ids"
	"github.com/jhoicas/inventario-desk/pkg/logger"

	"sync"
)

// Ledger es el dueño del estado de la aplicación: productos, bodegas,
// existencias y movimientos (las colecciones del ledger propiamente), más
// usuarios y suscripciones que viajan en el mismo documento persistido.
// Se construye una vez por proceso con colaboradores inyectados.
type Ledger struct {
	mu    sync.Mutex
	doc   *entity.Document
	store repository.DocumentStore
	ids   ids.Generator
	now   func() time.Time
	log   *logger.Logger
}

// Option ajusta colaboradores del ledger (reloj e ids, para tests).
type Option func(*Ledger)

// WithClock reemplaza la fuente de tiempo (por defecto time.Now).
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// New carga el documento desde el almacén y construye el ledger.
func New(store repository.DocumentStore, gen ids.Generator, log *logger.Logger, opts ...Option) (*Ledger, error) {
	doc, err := store.Load()
	if err != nil {
		return nil, err
	}
	l := &Ledger{
		doc:   doc,
		store: store,
		ids:   gen,
		now:   time.Now,
		log:   log,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// persist escribe el documento completo. Debe llamarse con el mutex tomado y
// después de aplicar la mutación. Un fallo de escritura no revierte el estado
// en memoria: la persistencia es un colaborador, no parte del contrato del
// ledger; se registra y la operación se reporta como exitosa.
func (l *Ledger) persist() {
	l.doc.Settings.UpdatedAt = l.now()
	if err := l.store.Save(l.doc); err != nil {
		l.log.Error().Err(err).Msg("persistir documento de inventario")
	}
}

// Backup copia el documento vivo a la ruta destino.
func (l *Ledger) Backup(dstPath string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Backup(dstPath)
}

// Restore sobreescribe el documento vivo desde un respaldo y recarga todo el
// estado en memoria. Si el respaldo no parsea, el estado actual queda intacto.
func (l *Ledger) Restore(srcPath string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	doc, err := l.store.Restore(srcPath)
	if err != nil {
		return err
	}
	l.doc = doc
	l.log.Info().Str("src", srcPath).Msg("documento restaurado desde respaldo")
	return nil
}
