package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItem una línea de compra tal como la envió el cliente.
// Total viene calculado por el caller y se persiste sin recomputar
// (comportamiento heredado; ver DESIGN.md).
type PurchaseItem struct {
	ProductName   string          `bson:"product_name"`
	Quantity      int64           `bson:"quantity"`
	PurchasePrice decimal.Decimal `bson:"purchase_price"`
	Total         decimal.Decimal `bson:"total"`
	Unit          string          `bson:"unit,omitempty"`
	SKU           string          `bson:"sku,omitempty"`
}

// Purchase representa una compra a proveedor. Inmutable una vez creada.
// TotalAmount es la suma de los totales de sus líneas al momento de crearse.
type Purchase struct {
	ID          string          `bson:"_id"`
	Supplier    string          `bson:"supplier"`
	Notes       string          `bson:"notes"`
	Items       []PurchaseItem  `bson:"items"`
	TotalAmount decimal.Decimal `bson:"total_amount"`
	CreatedAt   time.Time       `bson:"created_at"`
}
