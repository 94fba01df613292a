package xmlexport_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comercia/suite-api/internal/domain/entity"
	"github.com/comercia/suite-api/internal/infrastructure/xmlexport"
)

func TestExportLedger_EstructuraYTotales(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	purchases := []*entity.Purchase{
		{
			ID:       "c1",
			Supplier: "Distribuidora Norte",
			Notes:    "pedido semanal",
			Items: []entity.PurchaseItem{
				{ProductName: "Coca Cola 600ml", SKU: "CC-600", Quantity: 24,
					PurchasePrice: decimal.NewFromFloat(9.50), Total: decimal.NewFromFloat(228)},
			},
			TotalAmount: decimal.NewFromFloat(228),
			CreatedAt:   from.Add(48 * time.Hour),
		},
	}
	sales := []*entity.Sale{
		{
			ID:       "v1",
			BranchID: "sucursal-centro",
			Items: []entity.SaleItem{
				{ProductID: "p1", Name: "Coca Cola 600ml", Quantity: 2,
					UnitPrice: decimal.NewFromFloat(15), Total: decimal.NewFromFloat(30)},
			},
			TotalAmount: decimal.NewFromFloat(30),
			CreatedAt:   from.Add(72 * time.Hour),
		},
	}

	out, err := xmlexport.NewLedgerExporter().ExportLedger(from, to, purchases, sales)
	require.NoError(t, err)

	// Reparseamos con etree para validar la estructura sin depender del indentado
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.SelectElement("ledger")
	require.NotNil(t, root)
	assert.Equal(t, from.Format(time.RFC3339), root.SelectAttrValue("from", ""))

	ps := root.SelectElement("purchases").SelectElements("purchase")
	require.Len(t, ps, 1)
	assert.Equal(t, "Distribuidora Norte", ps[0].SelectAttrValue("supplier", ""))
	assert.Equal(t, "228", ps[0].SelectAttrValue("total", ""))
	assert.Equal(t, "pedido semanal", ps[0].SelectElement("notes").Text())

	items := ps[0].SelectElements("item")
	require.Len(t, items, 1)
	assert.Equal(t, "CC-600", items[0].SelectAttrValue("sku", ""))
	assert.Equal(t, "24", items[0].SelectAttrValue("quantity", ""))
	assert.Equal(t, "9.5", items[0].SelectAttrValue("unitCost", ""))

	ss := root.SelectElement("sales").SelectElements("sale")
	require.Len(t, ss, 1)
	assert.Equal(t, "sucursal-centro", ss[0].SelectAttrValue("branch", ""))
	assert.Equal(t, "30", ss[0].SelectAttrValue("total", ""))
}

func TestExportLedger_PeriodoVacio(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	out, err := xmlexport.NewLedgerExporter().ExportLedger(from, to, nil, nil)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.SelectElement("ledger")
	require.NotNil(t, root)
	assert.Empty(t, root.SelectElement("purchases").SelectElements("purchase"))
	assert.Empty(t, root.SelectElement("sales").SelectElements("sale"))
}
