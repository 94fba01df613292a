package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest una línea de venta. Si UnitPrice viene en cero se usa el
// precio de venta del producto.
type SaleItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int64           `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// RecordSaleRequest entrada para registrar una venta de mostrador.
type RecordSaleRequest struct {
	Items []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleResponse salida de una venta persistida.
type SaleResponse struct {
	ID          string          `json:"id"`
	BranchID    string          `json:"branch_id"`
	CashierID   string          `json:"cashier_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}
