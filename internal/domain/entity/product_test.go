package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comercia/suite-api/internal/domain/entity"
)

func TestProduct_StockPorSucursal(t *testing.T) {
	p := &entity.Product{Stock: map[string]int64{"centro": 10}}

	assert.Equal(t, int64(10), p.StockAt("centro"))
	assert.Equal(t, int64(0), p.StockAt("norte"), "sucursal sin registro cuenta como cero")

	p.AddStock("centro", 5)
	p.AddStock("norte", 3)
	assert.Equal(t, int64(15), p.StockAt("centro"))
	assert.Equal(t, int64(3), p.StockAt("norte"))

	p.AddStock("centro", -15)
	assert.Equal(t, int64(0), p.StockAt("centro"))
}

func TestProduct_AddStock_InicializaMapa(t *testing.T) {
	var p entity.Product // Stock nil

	p.AddStock("centro", 7)
	assert.Equal(t, int64(7), p.StockAt("centro"))
}
