package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo (stock multi-sucursal).
// Cost es el costo de la última compra registrada; Stock se guarda como mapa
// sucursal → cantidad entera. El nombre es único por convención del negocio,
// no por índice del almacén.
type Product struct {
	ID        string           `bson:"_id"`
	SKU       string           `bson:"sku"`
	Name      string           `bson:"name"`
	Price     decimal.Decimal  `bson:"price"` // precio de venta (0 al crearse desde una compra)
	Cost      decimal.Decimal  `bson:"cost"`  // costo de la última compra
	Stock     map[string]int64 `bson:"stock"` // clave = sucursal
	Unit      string           `bson:"unit"`
	CreatedAt time.Time        `bson:"created_at"`
	UpdatedAt time.Time        `bson:"updated_at"`
}

// StockAt devuelve el stock de la sucursal indicada (0 si no existe la clave).
func (p *Product) StockAt(branch string) int64 {
	if p.Stock == nil {
		return 0
	}
	return p.Stock[branch]
}

// AddStock suma qty (puede ser negativo) al stock de la sucursal.
func (p *Product) AddStock(branch string, qty int64) {
	if p.Stock == nil {
		p.Stock = make(map[string]int64)
	}
	p.Stock[branch] += qty
}
