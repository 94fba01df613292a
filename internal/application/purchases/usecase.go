package purchases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/comercia/suite-api/internal/application/dto"
	"github.com/comercia/suite-api/internal/domain"
	"github.com/comercia/suite-api/internal/domain/entity"
	"github.com/comercia/suite-api/internal/domain/repository"
)

// RecordPurchaseUseCase registra una compra a proveedor de forma transaccional:
// crea el documento de compra, concilia cada línea contra el catálogo
// (incrementa stock del producto existente o lo crea) y deja una entrada de
// historial por línea. Todo dentro de una sola transacción del almacén.
type RecordPurchaseUseCase struct {
	txRunner     TxRunner
	purchaseRepo repository.PurchaseRepository
	historyRepo  repository.PurchaseHistoryRepository
	branch       string // sucursal cuyo stock mutan las compras
	defaultUnit  string // unidad cuando la línea no la trae
}

// NewRecordPurchaseUseCase construye el caso de uso.
func NewRecordPurchaseUseCase(
	txRunner TxRunner,
	purchaseRepo repository.PurchaseRepository,
	historyRepo repository.PurchaseHistoryRepository,
	branch, defaultUnit string,
) *RecordPurchaseUseCase {
	if branch == "" {
		branch = "main"
	}
	if defaultUnit == "" {
		defaultUnit = "pcs"
	}
	return &RecordPurchaseUseCase{
		txRunner:     txRunner,
		purchaseRepo: purchaseRepo,
		historyRepo:  historyRepo,
		branch:       branch,
		defaultUnit:  defaultUnit,
	}
}

// RecordPurchase valida la entrada, abre una transacción y aplica la compra
// completa. Devuelve el ID de la compra creada; ante cualquier fallo dentro de
// la transacción nada queda persistido (ni compra, ni productos, ni historial).
//
// El total de la compra es la suma de los totales enviados por el caller; no
// se recalcula desde cantidad × precio (comportamiento heredado, ver DESIGN.md).
func (uc *RecordPurchaseUseCase) RecordPurchase(ctx context.Context, in dto.RecordPurchaseRequest) (string, error) {
	supplier := strings.TrimSpace(in.Supplier)
	if supplier == "" || len(in.Items) == 0 {
		return "", domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if strings.TrimSpace(it.ProductName) == "" {
			return "", domain.ErrInvalidInput
		}
		if it.Quantity <= 0 || it.PurchasePrice.LessThan(decimal.Zero) {
			return "", domain.ErrInvalidInput
		}
	}

	totalAmount := decimal.Zero
	for _, it := range in.Items {
		totalAmount = totalAmount.Add(it.Total)
	}

	now := time.Now()
	purchaseID := uuid.New().String()

	// Inicia transacción; Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace)
	err := uc.txRunner.Run(ctx, func(
		txCtx context.Context,
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
		historyRepo repository.PurchaseHistoryRepository,
	) error {
		items := make([]entity.PurchaseItem, 0, len(in.Items))
		for _, it := range in.Items {
			items = append(items, entity.PurchaseItem{
				ProductName:   strings.TrimSpace(it.ProductName),
				Quantity:      it.Quantity,
				PurchasePrice: it.PurchasePrice,
				Total:         it.Total,
				Unit:          it.Unit,
				SKU:           it.SKU,
			})
		}
		purchase := &entity.Purchase{
			ID:          purchaseID,
			Supplier:    supplier,
			Notes:       in.Notes,
			Items:       items,
			TotalAmount: totalAmount,
			CreatedAt:   now,
		}
		if err := purchaseRepo.Create(txCtx, purchase); err != nil {
			return err
		}

		// Conciliación por línea, en el orden en que fueron enviadas
		for _, it := range items {
			product, err := productRepo.FindByName(txCtx, it.ProductName)
			if err != nil {
				return err
			}
			var sku string
			if product != nil {
				// Existente: suma stock en la sucursal por defecto y pisa el costo
				// con el de esta compra. El SKU del producto se conserva.
				product.AddStock(uc.branch, it.Quantity)
				product.Cost = it.PurchasePrice
				product.UpdatedAt = now
				if err := productRepo.Update(txCtx, product); err != nil {
					return err
				}
				sku = product.SKU
			} else {
				// Nuevo: precio de venta en 0 a propósito (se fija después a mano)
				sku = it.SKU
				if sku == "" {
					sku = fmt.Sprintf("NEW-%d", now.UnixMilli())
				}
				unit := it.Unit
				if unit == "" {
					unit = uc.defaultUnit
				}
				product = &entity.Product{
					ID:        uuid.New().String(),
					SKU:       sku,
					Name:      it.ProductName,
					Price:     decimal.Zero,
					Cost:      it.PurchasePrice,
					Stock:     map[string]int64{uc.branch: it.Quantity},
					Unit:      unit,
					CreatedAt: now,
					UpdatedAt: now,
				}
				if err := productRepo.Create(txCtx, product); err != nil {
					return err
				}
			}

			entry := &entity.PurchaseHistoryEntry{
				ID:            uuid.New().String(),
				PurchaseID:    purchaseID,
				ProductID:     product.ID,
				ProductName:   it.ProductName,
				SKU:           sku,
				Quantity:      it.Quantity,
				PurchasePrice: it.PurchasePrice,
				Supplier:      supplier,
				CreatedAt:     now,
			}
			if err := historyRepo.Create(txCtx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return purchaseID, nil
}

// GetPurchase obtiene una compra por ID (lectura fuera de transacción).
func (uc *RecordPurchaseUseCase) GetPurchase(ctx context.Context, id string) (*dto.PurchaseResponse, error) {
	p, err := uc.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPurchaseResponse(p), nil
}

// HistoryByProduct lista el historial de compras de un producto.
func (uc *RecordPurchaseUseCase) HistoryByProduct(ctx context.Context, productID string) ([]dto.PurchaseHistoryResponse, error) {
	entries, err := uc.historyRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return toHistoryResponses(entries), nil
}

// HistoryByPurchase lista las entradas de historial que dejó una compra.
func (uc *RecordPurchaseUseCase) HistoryByPurchase(ctx context.Context, purchaseID string) ([]dto.PurchaseHistoryResponse, error) {
	entries, err := uc.historyRepo.ListByPurchase(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	return toHistoryResponses(entries), nil
}

func toHistoryResponses(entries []*entity.PurchaseHistoryEntry) []dto.PurchaseHistoryResponse {
	out := make([]dto.PurchaseHistoryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.PurchaseHistoryResponse{
			ID:            e.ID,
			PurchaseID:    e.PurchaseID,
			ProductID:     e.ProductID,
			ProductName:   e.ProductName,
			SKU:           e.SKU,
			Quantity:      e.Quantity,
			PurchasePrice: e.PurchasePrice,
			Supplier:      e.Supplier,
			CreatedAt:     e.CreatedAt,
		})
	}
	return out
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	items := make([]dto.PurchaseItemRequest, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.PurchaseItemRequest{
			ProductName:   it.ProductName,
			Quantity:      it.Quantity,
			PurchasePrice: it.PurchasePrice,
			Total:         it.Total,
			Unit:          it.Unit,
			SKU:           it.SKU,
		})
	}
	return &dto.PurchaseResponse{
		ID:          p.ID,
		Supplier:    p.Supplier,
		Notes:       p.Notes,
		Items:       items,
		TotalAmount: p.TotalAmount,
		CreatedAt:   p.CreatedAt,
	}
}
