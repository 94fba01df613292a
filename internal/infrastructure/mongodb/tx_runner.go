package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/comercia/suite-api/internal/application/purchases"
	"github.com/comercia/suite-api/internal/application/sales"
	"github.com/comercia/suite-api/internal/domain/repository"
)

var _ purchases.TxRunner = (*TxRunner)(nil)
var _ sales.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción de MongoDB (sesión +
// WithTransaction). El contexto de sesión que recibe el callback propaga la
// transacción a todos los repos; usar el contexto exterior dentro del callback
// rompería la atomicidad.
type TxRunner struct {
	client    *mongo.Client
	products  *ProductRepo
	purchases *PurchaseRepo
	history   *PurchaseHistoryRepo
	sales     *SaleRepo
}

// NewTxRunner construye el runner con el cliente y los repos compartidos.
func NewTxRunner(client *mongo.Client, products *ProductRepo, purchasesRepo *PurchaseRepo, history *PurchaseHistoryRepo, salesRepo *SaleRepo) *TxRunner {
	return &TxRunner{
		client:    client,
		products:  products,
		purchases: purchasesRepo,
		history:   history,
		sales:     salesRepo,
	}
}

// Run inicia una transacción para el motor de compras y ejecuta fn con el
// contexto de sesión. WithTransaction hace Commit si fn retorna nil y Abort
// (con reintentos ante conflictos transitorios) en caso contrario.
func (r *TxRunner) Run(ctx context.Context, fn func(
	txCtx context.Context,
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	historyRepo repository.PurchaseHistoryRepository,
) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("abrir sesión: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc, r.products, r.purchases, r.history)
	})
	return err
}

// RunSale inicia una transacción para el registro de ventas.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	txCtx context.Context,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("abrir sesión: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc, r.products, r.sales)
	})
	return err
}
