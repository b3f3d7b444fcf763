package ids

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produce identificadores únicos para entidades nuevas.
// Se inyecta en el ledger para que los tests puedan usar ids deterministas.
type Generator interface {
	NewID() string
}

// UUIDGenerator genera UUIDs v4 (generador por defecto en producción).
type UUIDGenerator struct{}

// NewUUIDGenerator construye el generador.
func NewUUIDGenerator() *UUIDGenerator { return &UUIDGenerator{} }

// NewID devuelve un UUID v4 en formato string.
func (g *UUIDGenerator) NewID() string { return uuid.New().String() }

// SequentialGenerator genera ids con un contador monotónico ("p-1", "p-2", ...).
// Pensado para tests; es seguro para uso concurrente.
type SequentialGenerator struct {
	prefix  string
	counter atomic.Uint64
}

// NewSequentialGenerator construye un generador secuencial con el prefijo dado.
func NewSequentialGenerator(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// NewID devuelve el siguiente id de la secuencia.
func (g *SequentialGenerator) NewID() string {
	n := g.counter.Add(1)
	if g.prefix == "" {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s-%d", g.prefix, n)
}
