// Package pdf implementa el reporte de compras del período en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de compras  │  Período                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por compra: Proveedor + Fecha + Total                      │
//	│  TABLA: Cant | Producto | Costo Unit | Total línea          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DEL PERÍODO                                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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
	"github.com/shopspring/decimal"

	"github.com/comercia/suite-api/internal/application/accounting"
	"github.com/comercia/suite-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 15, Green: 82, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa accounting.PurchaseReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GeneratePurchaseReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GeneratePurchaseReport(
	_ context.Context,
	from, to time.Time,
	purchases []*entity.Purchase,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de compras", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(from, to))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	periodTotal := decimal.Zero
	for _, p := range purchases {
		periodTotal = periodTotal.Add(p.TotalAmount)
		m.AddRows(purchaseHeaderRow(p))
		m.AddRows(tableHeaderRow())
		for _, r := range tableItemRows(p.Items) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	}

	m.AddRows(totalRow(periodTotal, len(purchases)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y período (der).
func headerRow(from, to time.Time) core.Row {
	periodo := from.Format("02/01/2006") + " — " + to.Format("02/01/2006")
	return row.New(14).Add(
		col.New(7).Add(
			text.New("REPORTE DE COMPRAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Período: "+periodo, props.Text{
				Size: 9, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// purchaseHeaderRow: proveedor + fecha + total de la compra.
func purchaseHeaderRow(p *entity.Purchase) core.Row {
	return row.New(10).Add(
		col.New(6).Add(
			text.New(p.Supplier, props.Text{Style: fontstyle.Bold, Size: 10, Top: 2}),
		),
		col.New(3).Add(
			text.New(p.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Center, Top: 3, Color: colorGray,
			}),
		),
		col.New(3).Add(
			text.New("$"+p.TotalAmount.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 3,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Costo Unit.", 2, align.Right),
		h("Total línea", 3, align.Right),
	)
}

// tableItemRows: una fila por línea de compra.
func tableItemRows(items []entity.PurchaseItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+it.PurchasePrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+it.Total.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total del período alineado a la derecha.
func totalRow(total decimal.Decimal, count int) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New(fmt.Sprintf("%d compras en el período", count), props.Text{
				Size: 8, Top: 4, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("TOTAL: $"+total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 3,
			}),
		),
	)
}

var _ accounting.PurchaseReportGenerator = (*MarotoReportGenerator)(nil)
