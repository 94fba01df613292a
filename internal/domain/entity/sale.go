package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem una línea de venta (POS).
type SaleItem struct {
	ProductID string          `bson:"product_id"`
	Name      string          `bson:"name"`
	Quantity  int64           `bson:"quantity"`
	UnitPrice decimal.Decimal `bson:"unit_price"`
	Total     decimal.Decimal `bson:"total"`
}

// Sale representa una venta de mostrador. Inmutable una vez creada;
// el stock se descuenta en la misma transacción que la crea.
type Sale struct {
	ID          string          `bson:"_id"`
	BranchID    string          `bson:"branch_id"`
	CashierID   string          `bson:"cashier_id"`
	Items       []SaleItem      `bson:"items"`
	TotalAmount decimal.Decimal `bson:"total_amount"`
	CreatedAt   time.Time       `bson:"created_at"`
}
