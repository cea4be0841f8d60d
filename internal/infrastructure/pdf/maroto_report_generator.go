// Package pdf implementa el reporte imprimible de movimientos de almacén.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Cant | Cód | Producto | Destino | Usr │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: entradas / salidas / balance del listado           │
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

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorOut     = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa el generador de reportes usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// MovementsReport genera el PDF del listado de movimientos y devuelve sus bytes.
func (g *MarotoReportGenerator) MovementsReport(items []dto.MovementListItemDTO, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Movimientos de Almacén", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt, len(items)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(items))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación + conteo (der).
func headerRow(generatedAt time.Time, count int) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("MOVIMIENTOS DE ALMACÉN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Entradas y salidas registradas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New(strconv.Itoa(count)+" movimientos", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 9,
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
		h("Tipo", 1, align.Center),
		h("Cant.", 1, align.Center),
		h("Cód.", 1, align.Center),
		h("Producto", 4, align.Left),
		h("Destino", 2, align.Left),
		h("Usuario", 1, align.Left),
	)
}

// tableRows: una fila por movimiento, las salidas en rojo.
func tableRows(items []dto.MovementListItemDTO) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		typeColor := colorPrimary
		if it.Type == entity.MovementTypeOUT {
			typeColor = colorOut
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				it.CreatedAt.Format("02/01/2006 15:04"),
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				it.Type,
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: typeColor},
			)),
			col.New(1).Add(text.New(
				strconv.Itoa(it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				strconv.Itoa(it.Product.Code),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				it.Product.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				destino(it.Product.Unit, it.Product.Sector),
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
			col.New(1).Add(text.New(
				userLabel(it.User),
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
		))
	}
	return result
}

// totalsRow: totales de entradas, salidas y balance del listado.
func totalsRow(items []dto.MovementListItemDTO) core.Row {
	var in, out int
	for _, it := range items {
		switch it.Type {
		case entity.MovementTypeIN:
			in += it.Quantity
		case entity.MovementTypeOUT:
			out += it.Quantity
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
			label("Balance:"),
		),
		col.New(3).Add(
			value(strconv.Itoa(in), colorPrimary),
			value(strconv.Itoa(out), colorOut),
			value(strconv.Itoa(in-out), nil),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// destino compone "Unidad / Sector" con los nombres desnormalizados que el
// producto conserva de su última salida.
func destino(unit, sector *string) string {
	u, s := "", ""
	if unit != nil {
		u = *unit
	}
	if sector != nil {
		s = *sector
	}
	switch {
	case u != "" && s != "":
		return u + " / " + s
	case u != "":
		return u
	case s != "":
		return s
	default:
		return "—"
	}
}

func userLabel(u dto.MovementUserDTO) string {
	if u.Matricula != nil && *u.Matricula != "" {
		return *u.Matricula
	}
	if u.Name != "" {
		return u.Name
	}
	return "—"
}
