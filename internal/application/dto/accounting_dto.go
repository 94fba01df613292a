package dto

import "github.com/shopspring/decimal"

// PeriodSummaryResponse resumen contable de un período.
type PeriodSummaryResponse struct {
	From           string          `json:"from"`
	To             string          `json:"to"`
	PurchaseCount  int             `json:"purchase_count"`
	PurchaseTotal  decimal.Decimal `json:"purchase_total"`
	SaleCount      int             `json:"sale_count"`
	SaleTotal      decimal.Decimal `json:"sale_total"`
	GrossMargin    decimal.Decimal `json:"gross_margin"` // ventas - compras del período
}
