// Package pdf implementa el reporte PDF del historial de movimientos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Producto | SKU | Tipo | Cant | Bodega | Por │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total entradas / Total salidas / Movimientos      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventario-desk/internal/application/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 22, Green: 120, Blue: 60}
	colorRed     = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.Generator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMovementsReport genera el PDF del historial y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMovementsReport(title string, rows []reports.MovementRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(title string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Producto", 3, align.Left),
		h("SKU", 1, align.Left),
		h("Tipo", 1, align.Center),
		h("Cant.", 1, align.Right),
		h("Bodega", 2, align.Left),
		h("Registrado por", 2, align.Left),
	)
}

// tableRows: una fila por movimiento, con el tipo coloreado.
func tableRows(rows []reports.MovementRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		typeColor := colorGreen
		if r.Type == "Salida" {
			typeColor = colorRed
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				r.Date.Format("02/01/2006 15:04"),
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				r.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				r.SKU,
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Color: colorGray},
			)),
			col.New(1).Add(text.New(
				r.Type,
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: typeColor},
			)),
			col.New(1).Add(text.New(
				strconv.Itoa(r.Quantity),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				r.WarehouseName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				r.UserName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
		))
	}
	return result
}

// summaryRow: totales de entradas y salidas del periodo exportado.
func summaryRow(rows []reports.MovementRow) core.Row {
	entries, exits := 0, 0
	for _, r := range rows {
		if r.Type == "Entrada" {
			entries += r.Quantity
		} else {
			exits += r.Quantity
		}
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string, c *props.Color) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Color: c})
	}

	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Total entradas:"),
			label("Total salidas:"),
			label("Movimientos:"),
		),
		col.New(3).Add(
			value(strconv.Itoa(entries), colorGreen),
			value(strconv.Itoa(exits), colorRed),
			value(strconv.Itoa(len(rows)), colorGray),
		),
	)
}
