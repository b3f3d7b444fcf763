package analytics

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-desk/internal/application/dto"
	"github.com/jhoicas/inventario-desk/internal/application/inventory"
	"github.com/jhoicas/inventario-desk/internal/infrastructure/jsonstore"
	"github.com/jhoicas/inventario-desk/pkg/ids"
	"github.com/jhoicas/inventario-desk/pkg/logger"
)

// Test en el mismo paquete para poder fijar el reloj del "hoy" del resumen.

var baseDay = time.Date(2026, 7, 10, 9, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) (*DashboardUseCase, *inventory.Ledger) {
	t.Helper()
	store := jsonstore.NewStore(filepath.Join(t.TempDir(), "app.json"), "test")
	clock := baseDay
	l, err := inventory.New(store, ids.NewSequentialGenerator("d"), logger.Nop(),
		inventory.WithClock(func() time.Time { return clock }),
	)
	require.NoError(t, err)

	uc := NewDashboardUseCase(l)
	uc.now = func() time.Time { return baseDay.Add(5 * time.Hour) }
	return uc, l
}

func TestGetSummary_Contadores(t *testing.T) {
	uc, l := newFixture(t)

	w, err := l.AddWarehouse(dto.CreateWarehouseRequest{Name: "Central"})
	require.NoError(t, err)
	p, err := l.AddProduct(dto.CreateProductRequest{Name: "Router", SKU: "NET-RT-01", MinStock: 3})
	require.NoError(t, err)

	_, err = l.AddMovement("u1", dto.RegisterMovementRequest{ProductID: p.ID, WarehouseID: w.ID, Type: "in", Quantity: 10})
	require.NoError(t, err)
	_, err = l.AddMovement("u1", dto.RegisterMovementRequest{ProductID: p.ID, WarehouseID: w.ID, Type: "out", Quantity: 8})
	require.NoError(t, err)

	s := uc.GetSummary()
	assert.Equal(t, 1, s.TotalProducts)
	assert.Equal(t, 1, s.TotalWarehouses)
	assert.Equal(t, 2, s.TotalUnits)
	assert.Equal(t, 10, s.TodayEntries)
	assert.Equal(t, 8, s.TodayExits)

	require.Len(t, s.LowStock, 1, "2 unidades quedan bajo el umbral de 3")
	assert.Equal(t, p.ID, s.LowStock[0].ID)
	assert.Equal(t, 2, s.LowStock[0].TotalStock)
}

// TestGetSummary_SoloMovimientosDeHoy: los movimientos de días anteriores no
// cuentan en entradas/salidas de hoy.
func TestGetSummary_SoloMovimientosDeHoy(t *testing.T) {
	uc, l := newFixture(t)

	w, err := l.AddWarehouse(dto.CreateWarehouseRequest{Name: "Central"})
	require.NoError(t, err)
	p, err := l.AddProduct(dto.CreateProductRequest{Name: "Switch", SKU: "NET-SW-01"})
	require.NoError(t, err)
	_, err = l.AddMovement("u1", dto.RegisterMovementRequest{ProductID: p.ID, WarehouseID: w.ID, Type: "in", Quantity: 5})
	require.NoError(t, err)

	// El resumen se pide "al día siguiente"
	uc.now = func() time.Time { return baseDay.AddDate(0, 0, 1) }

	s := uc.GetSummary()
	assert.Equal(t, 0, s.TodayEntries)
	assert.Equal(t, 0, s.TodayExits)
	assert.Equal(t, 5, s.TotalUnits, "las existencias sí se conservan")
}

// TestGetSummary_MovimientosRecientes: máximo cinco, del más reciente al más
// antiguo, enriquecidos con nombres.
func TestGetSummary_MovimientosRecientes(t *testing.T) {
	uc, l := newFixture(t)

	w, err := l.AddWarehouse(dto.CreateWarehouseRequest{Name: "Norte"})
	require.NoError(t, err)
	p, err := l.AddProduct(dto.CreateProductRequest{Name: "Cable HDMI", SKU: "CBL-HD-01"})
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		_, err = l.AddMovement("u1", dto.RegisterMovementRequest{ProductID: p.ID, WarehouseID: w.ID, Type: "in", Quantity: i + 1})
		require.NoError(t, err)
	}

	s := uc.GetSummary()
	require.Len(t, s.RecentMovements, 5)
	assert.Equal(t, 7, s.RecentMovements[0].Quantity, "el último movimiento va primero")
	assert.Equal(t, 3, s.RecentMovements[4].Quantity)
	assert.Equal(t, "Cable HDMI", s.RecentMovements[0].ProductName)
	assert.Equal(t, "CBL-HD-01", s.RecentMovements[0].SKU)
	assert.Equal(t, "Norte", s.RecentMovements[0].WarehouseName)
}

func TestGetSummary_Vacio(t *testing.T) {
	uc, _ := newFixture(t)

	s := uc.GetSummary()
	assert.Zero(t, s.TotalProducts)
	assert.NotNil(t, s.LowStock, "las listas vacías serializan como [] y no null")
	assert.NotNil(t, s.RecentMovements)
	assert.Empty(t, s.LowStock)
}
