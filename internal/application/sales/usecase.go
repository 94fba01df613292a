package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/comercia/suite-api/internal/application/dto"
	"github.com/comercia/suite-api/internal/domain"
	"github.com/comercia/suite-api/internal/domain/entity"
	"github.com/comercia/suite-api/internal/domain/repository"
)

// RecordSaleUseCase registra una venta de mostrador: descuenta el stock de la
// sucursal por cada línea y persiste la venta, todo en una transacción.
// La lectura del producto se hace dentro de la transacción para que el chequeo
// de stock y el descuento queden serializados contra compras concurrentes.
type RecordSaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
	branch   string
}

// NewRecordSaleUseCase construye el caso de uso.
func NewRecordSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, branch string) *RecordSaleUseCase {
	if branch == "" {
		branch = "main"
	}
	return &RecordSaleUseCase{txRunner: txRunner, saleRepo: saleRepo, branch: branch}
}

// RecordSale valida y aplica la venta. Si alguna línea no tiene stock
// suficiente retorna ErrInsufficientStock y nada queda persistido.
func (uc *RecordSaleUseCase) RecordSale(ctx context.Context, cashierID string, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity <= 0 || it.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		BranchID:  uc.branch,
		CashierID: cashierID,
		CreatedAt: now,
	}

	err := uc.txRunner.RunSale(ctx, func(
		txCtx context.Context,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		total := decimal.Zero
		lines := make([]entity.SaleItem, 0, len(in.Items))
		for _, it := range in.Items {
			product, err := productRepo.GetByID(txCtx, it.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.StockAt(uc.branch) < it.Quantity {
				return domain.ErrInsufficientStock
			}
			unitPrice := it.UnitPrice
			if unitPrice.IsZero() {
				unitPrice = product.Price
			}
			product.AddStock(uc.branch, -it.Quantity)
			product.UpdatedAt = now
			if err := productRepo.Update(txCtx, product); err != nil {
				return err
			}
			lineTotal := unitPrice.Mul(decimal.NewFromInt(it.Quantity))
			total = total.Add(lineTotal)
			lines = append(lines, entity.SaleItem{
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  it.Quantity,
				UnitPrice: unitPrice,
				Total:     lineTotal,
			})
		}
		sale.Items = lines
		sale.TotalAmount = total
		return saleRepo.Create(txCtx, sale)
	})
	if err != nil {
		return nil, err
	}

	return &dto.SaleResponse{
		ID:          sale.ID,
		BranchID:    sale.BranchID,
		CashierID:   sale.CashierID,
		TotalAmount: sale.TotalAmount,
		CreatedAt:   sale.CreatedAt,
	}, nil
}

// GetSale obtiene una venta por ID.
func (uc *RecordSaleUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	s, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return &dto.SaleResponse{
		ID:          s.ID,
		BranchID:    s.BranchID,
		CashierID:   s.CashierID,
		TotalAmount: s.TotalAmount,
		CreatedAt:   s.CreatedAt,
	}, nil
}
