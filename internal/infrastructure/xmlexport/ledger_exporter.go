// Package xmlexport serializa el libro contable del período a XML para
// intercambio con sistemas contables externos.
package xmlexport

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/comercia/suite-api/internal/application/accounting"
	"github.com/comercia/suite-api/internal/domain/entity"
)

var _ accounting.LedgerExporter = (*LedgerExporter)(nil)

// LedgerExporter implementa accounting.LedgerExporter con etree.
//
// Estructura del documento:
//
//	<ledger from="..." to="...">
//	  <purchases total="...">
//	    <purchase id supplier date total>
//	      <item name sku quantity unitCost total/>
//	    </purchase>
//	  </purchases>
//	  <sales total="...">
//	    <sale id branch date total>
//	      <item productId name quantity unitPrice total/>
//	    </sale>
//	  </sales>
//	</ledger>
type LedgerExporter struct{}

// NewLedgerExporter construye el exportador.
func NewLedgerExporter() *LedgerExporter { return &LedgerExporter{} }

// ExportLedger genera el documento XML indentado.
func (e *LedgerExporter) ExportLedger(from, to time.Time, purchases []*entity.Purchase, sales []*entity.Sale) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("ledger")
	root.CreateAttr("from", from.Format(time.RFC3339))
	root.CreateAttr("to", to.Format(time.RFC3339))

	purchasesEl := root.CreateElement("purchases")
	for _, p := range purchases {
		pe := purchasesEl.CreateElement("purchase")
		pe.CreateAttr("id", p.ID)
		pe.CreateAttr("supplier", p.Supplier)
		pe.CreateAttr("date", p.CreatedAt.Format(time.RFC3339))
		pe.CreateAttr("total", p.TotalAmount.String())
		if p.Notes != "" {
			pe.CreateElement("notes").SetText(p.Notes)
		}
		for _, it := range p.Items {
			ie := pe.CreateElement("item")
			ie.CreateAttr("name", it.ProductName)
			ie.CreateAttr("sku", it.SKU)
			ie.CreateAttr("quantity", fmt.Sprintf("%d", it.Quantity))
			ie.CreateAttr("unitCost", it.PurchasePrice.String())
			ie.CreateAttr("total", it.Total.String())
		}
	}

	salesEl := root.CreateElement("sales")
	for _, s := range sales {
		se := salesEl.CreateElement("sale")
		se.CreateAttr("id", s.ID)
		se.CreateAttr("branch", s.BranchID)
		se.CreateAttr("date", s.CreatedAt.Format(time.RFC3339))
		se.CreateAttr("total", s.TotalAmount.String())
		for _, it := range s.Items {
			ie := se.CreateElement("item")
			ie.CreateAttr("productId", it.ProductID)
			ie.CreateAttr("name", it.Name)
			ie.CreateAttr("quantity", fmt.Sprintf("%d", it.Quantity))
			ie.CreateAttr("unitPrice", it.UnitPrice.String())
			ie.CreateAttr("total", it.Total.String())
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializar ledger: %w", err)
	}
	return out, nil
}
