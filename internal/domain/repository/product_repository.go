package repository

import (
	"context"

	"github.com/comercia/suite-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos.
// FindByName busca por igualdad exacta del nombre ya recortado; es la única
// estrategia de matching que usa el motor de compras (aislada aquí para poder
// sustituirla por una búsqueda por clave sin tocar la lógica transaccional).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	FindByName(ctx context.Context, name string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
