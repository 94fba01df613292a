package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseHistoryEntry registro de auditoría append-only: una entrada por línea
// de compra, con el producto ya resuelto (existente o recién creado).
type PurchaseHistoryEntry struct {
	ID            string          `bson:"_id"`
	PurchaseID    string          `bson:"purchase_id"`
	ProductID     string          `bson:"product_id"`
	ProductName   string          `bson:"product_name"`
	SKU           string          `bson:"sku"`
	Quantity      int64           `bson:"quantity"`
	PurchasePrice decimal.Decimal `bson:"purchase_price"`
	Supplier      string          `bson:"supplier"`
	CreatedAt     time.Time       `bson:"created_at"`
}
