package reports

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/jhoicas/inventario-desk/internal/application/dto"
	"github.com/jhoicas/inventario-desk/internal/application/inventory"
	"github.com/jhoicas/inventario-desk/internal/domain/entity"
)

// MovementRow una fila del reporte de movimientos, ya resuelta con nombres.
type MovementRow struct {
	Date          time.Time
	ProductName   string
	SKU           string
	Type          string // Entrada | Salida
	Quantity      int
	WarehouseName string
	Notes         string
	UserName      string
}

// Generator genera el PDF del historial de movimientos.
type Generator interface {
	GenerateMovementsReport(title string, rows []MovementRow) ([]byte, error)
}

// ExportUseCase exporta el historial de movimientos filtrado a CSV o PDF.
type ExportUseCase struct {
	ledger *inventory.Ledger
	pdf    Generator
}

func NewExportUseCase(ledger *inventory.Ledger, pdf Generator) *ExportUseCase {
	return &ExportUseCase{ledger: ledger, pdf: pdf}
}

// csvHeader columnas del export, en el orden de la pantalla de historial.
var csvHeader = []string{"Date", "Product Name", "SKU", "Type", "Quantity", "Warehouse", "Notes", "User"}

// MovementsCSV genera el CSV del historial filtrado, del movimiento más
// reciente al más antiguo.
func (uc *ExportUseCase) MovementsCSV(f dto.MovementFilter) ([]byte, error) {
	rows := uc.rows(f)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			r.Date.Format("2006-01-02 15:04"),
			r.ProductName,
			r.SKU,
			csvType(r.Type),
			strconv.Itoa(r.Quantity),
			r.WarehouseName,
			r.Notes,
			r.UserName,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MovementsPDF genera el reporte PDF del historial filtrado.
func (uc *ExportUseCase) MovementsPDF(f dto.MovementFilter) ([]byte, error) {
	return uc.pdf.GenerateMovementsReport("Historial de Movimientos", uc.rows(f))
}

// rows resuelve los movimientos filtrados a filas con nombres, del más
// reciente al más antiguo.
func (uc *ExportUseCase) rows(f dto.MovementFilter) []MovementRow {
	products := map[string]entity.Product{}
	for _, p := range uc.ledger.Products() {
		products[p.ID] = p
	}
	warehouses := map[string]entity.Warehouse{}
	for _, w := range uc.ledger.Warehouses() {
		warehouses[w.ID] = w
	}
	users := map[string]entity.User{}
	for _, u := range uc.ledger.Users() {
		users[u.ID] = u
	}

	movements := uc.ledger.FilterMovements(f)
	rows := make([]MovementRow, 0, len(movements))
	for i := len(movements) - 1; i >= 0; i-- {
		m := movements[i]
		row := MovementRow{
			Date:     m.CreatedAt,
			Type:     typeLabel(m.Type),
			Quantity: m.Quantity,
			Notes:    m.Notes,
		}
		if p, ok := products[m.ProductID]; ok {
			row.ProductName = p.Name
			row.SKU = p.SKU
		}
		if w, ok := warehouses[m.WarehouseID]; ok {
			row.WarehouseName = w.Name
		}
		if u, ok := users[m.UserID]; ok {
			row.UserName = u.Name
		}
		rows = append(rows, row)
	}
	return rows
}

// typeLabel etiqueta visible del tipo de movimiento.
func typeLabel(t string) string {
	if t == entity.MovementTypeIn {
		return "Entrada"
	}
	return "Salida"
}

// csvType el CSV usa las etiquetas en inglés de la pantalla de exportación.
func csvType(label string) string {
	if label == "Entrada" {
		return "Entry"
	}
	return "Exit"
}
