package repository

import (
	"context"
	"time"

	"github.com/comercia/suite-api/internal/domain/entity"
)

// PurchaseRepository puerto de persistencia para compras (inmutables).
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	GetByID(ctx context.Context, id string) (*entity.Purchase, error)
	ListByPeriod(ctx context.Context, from, to time.Time) ([]*entity.Purchase, error)
}

// PurchaseHistoryRepository puerto del historial de compras (append-only).
type PurchaseHistoryRepository interface {
	Create(ctx context.Context, entry *entity.PurchaseHistoryEntry) error
	ListByProduct(ctx context.Context, productID string) ([]*entity.PurchaseHistoryEntry, error)
	ListByPurchase(ctx context.Context, purchaseID string) ([]*entity.PurchaseHistoryEntry, error)
}
