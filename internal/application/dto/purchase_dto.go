package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemRequest una línea de compra tal como la envía el cliente.
// Total lo calcula el caller y se persiste sin recomputar.
type PurchaseItemRequest struct {
	ProductName   string          `json:"productName" validate:"required,min=1,max=200"`
	Quantity      int64           `json:"quantity" validate:"required,gt=0"`
	PurchasePrice decimal.Decimal `json:"purchasePrice" validate:"gte=0"`
	Total         decimal.Decimal `json:"total"`
	Unit          string          `json:"unit"`
	SKU           string          `json:"sku"`
}

// RecordPurchaseRequest entrada para registrar una compra.
type RecordPurchaseRequest struct {
	Supplier string                `json:"supplier" validate:"required,min=1,max=200"`
	Notes    string                `json:"notes"`
	Items    []PurchaseItemRequest `json:"items" validate:"required,min=1,dive"`
}

// RecordPurchaseResponse resultado del registro: success + purchaseId,
// o success=false + error (el handler arma la variante de fallo).
type RecordPurchaseResponse struct {
	Success    bool   `json:"success"`
	PurchaseID string `json:"purchaseId,omitempty"`
	Error      string `json:"error,omitempty"`
}

// PurchaseResponse salida de una compra persistida.
type PurchaseResponse struct {
	ID          string                `json:"id"`
	Supplier    string                `json:"supplier"`
	Notes       string                `json:"notes"`
	Items       []PurchaseItemRequest `json:"items"`
	TotalAmount decimal.Decimal       `json:"total_amount"`
	CreatedAt   time.Time             `json:"created_at"`
}

// PurchaseHistoryResponse una entrada del historial de compras.
type PurchaseHistoryResponse struct {
	ID            string          `json:"id"`
	PurchaseID    string          `json:"purchase_id"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	SKU           string          `json:"sku"`
	Quantity      int64           `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Supplier      string          `json:"supplier"`
	CreatedAt     time.Time       `json:"created_at"`
}
