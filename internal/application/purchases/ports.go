package purchases

import (
	"context"

	"github.com/comercia/suite-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén de
// documentos, pasando el contexto de sesión y los repositorios que participan.
// Garantiza atomicidad: o se aplican todas las lecturas/escrituras del callback
// o ninguna, serializadas contra transacciones concurrentes sobre los mismos
// documentos. Toda lectura/escritura de la compra debe usar txCtx, nunca el
// contexto exterior.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txCtx context.Context,
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
		historyRepo repository.PurchaseHistoryRepository,
	) error) error
}
