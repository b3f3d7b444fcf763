package reports_test

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-desk/internal/application/dto"
	"github.com/jhoicas/inventario-desk/internal/application/inventory"
	"github.com/jhoicas/inventario-desk/internal/application/reports"
	"github.com/jhoicas/inventario-desk/internal/infrastructure/jsonstore"
	"github.com/jhoicas/inventario-desk/pkg/ids"
	"github.com/jhoicas/inventario-desk/pkg/logger"
)

// buildLedger arma un ledger con un producto, una bodega y dos movimientos
// (una entrada y una salida) con timestamps crecientes.
func buildLedger(t *testing.T) (*inventory.Ledger, string, string) {
	t.Helper()
	clock := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	store := jsonstore.NewStore(filepath.Join(t.TempDir(), "app.json"), "test")
	l, err := inventory.New(store, ids.NewSequentialGenerator("id"), logger.Nop(),
		inventory.WithClock(func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		}),
	)
	require.NoError(t, err)

	w, err := l.AddWarehouse(dto.CreateWarehouseRequest{Name: "Central"})
	require.NoError(t, err)
	p, err := l.AddProduct(dto.CreateProductRequest{Name: "Monitor LG", SKU: "MON-LG-24", MinStock: 2})
	require.NoError(t, err)

	_, err = l.AddMovement("u1", dto.RegisterMovementRequest{
		ProductID: p.ID, WarehouseID: w.ID, Type: "in", Quantity: 10, Notes: "compra inicial",
	})
	require.NoError(t, err)
	_, err = l.AddMovement("u1", dto.RegisterMovementRequest{
		ProductID: p.ID, WarehouseID: w.ID, Type: "out", Quantity: 3, Notes: "venta mostrador",
	})
	require.NoError(t, err)
	return l, p.ID, w.ID
}

func TestMovementsCSV_EncabezadoYOrden(t *testing.T) {
	l, _, _ := buildLedger(t)
	uc := reports.NewExportUseCase(l, nil)

	data, err := uc.MovementsCSV(dto.MovementFilter{})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "encabezado + dos movimientos")

	assert.Equal(t,
		[]string{"Date", "Product Name", "SKU", "Type", "Quantity", "Warehouse", "Notes", "User"},
		records[0])

	// El más reciente primero: la salida va antes que la entrada
	assert.Equal(t, "Exit", records[1][3])
	assert.Equal(t, "3", records[1][4])
	assert.Equal(t, "venta mostrador", records[1][6])
	assert.Equal(t, "Entry", records[2][3])
	assert.Equal(t, "10", records[2][4])

	assert.Equal(t, "Monitor LG", records[1][1])
	assert.Equal(t, "MON-LG-24", records[1][2])
	assert.Equal(t, "Central", records[1][5])
}

func TestMovementsCSV_FiltroPorTipo(t *testing.T) {
	l, _, _ := buildLedger(t)
	uc := reports.NewExportUseCase(l, nil)

	data, err := uc.MovementsCSV(dto.MovementFilter{Type: "out"})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Exit", records[1][3])
}

func TestMovementsCSV_SinMovimientos(t *testing.T) {
	store := jsonstore.NewStore(filepath.Join(t.TempDir(), "app.json"), "test")
	l, err := inventory.New(store, ids.NewSequentialGenerator("id"), logger.Nop())
	require.NoError(t, err)
	uc := reports.NewExportUseCase(l, nil)

	data, err := uc.MovementsCSV(dto.MovementFilter{})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1, "solo el encabezado")
}
