package sales

import (
	"context"

	"github.com/comercia/suite-api/internal/domain/repository"
)

// TxRunner ejecuta el registro de una venta dentro de una transacción del
// almacén: descuento de stock y creación del documento de venta, o nada.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		txCtx context.Context,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
