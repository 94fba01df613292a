package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto por captura directa.
type CreateProductRequest struct {
	SKU   string          `json:"sku" validate:"required,min=1,max=100"`
	Name  string          `json:"name" validate:"required,min=1,max=200"`
	Price decimal.Decimal `json:"price"`
	Unit  string          `json:"unit"`
}

// UpdateProductRequest entrada para actualizar un producto.
/// Cost y Stock no se editan aquí: los mutan compras y ventas.
type UpdateProductRequest struct {
	Name  *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price *decimal.Decimal `json:"price"`
	Unit  *string          `json:"unit"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string           `json:"id"`
	SKU       string           `json:"sku"`
	Name      string           `json:"name"`
	Price     decimal.Decimal  `json:"price"`
	Cost      decimal.Decimal  `json:"cost"`
	Stock     map[string]int64 `json:"stock"`
	Unit      string           `json:"unit"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
