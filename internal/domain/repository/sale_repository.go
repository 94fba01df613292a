package repository

import (
	"context"
	"time"

	"github.com/comercia/suite-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia para ventas (inmutables).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	ListByPeriod(ctx context.Context, from, to time.Time) ([]*entity.Sale, error)
}
