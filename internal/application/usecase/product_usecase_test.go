package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comercia/suite-api/internal/application/dto"
	"github.com/comercia/suite-api/internal/application/usecase"
	"github.com/comercia/suite-api/internal/domain"
	"github.com/comercia/suite-api/internal/domain/entity"
)

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}
func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.byID[id], nil
}
func (r *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) FindByName(_ context.Context, name string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}
func (r *fakeProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestProductCreate_CostoCeroYStockVacio(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, "pcs")

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU:   "CC-600",
		Name:  "Coca Cola 600ml",
		Price: decimal.NewFromFloat(15),
	})
	require.NoError(t, err)
	assert.True(t, out.Cost.IsZero(), "el costo se fija solo vía compras")
	assert.Empty(t, out.Stock, "el stock inicial lo dan las compras, no el alta")
	assert.Equal(t, "pcs", out.Unit)
}

func TestProductCreate_SkuDuplicado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, "pcs")

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{SKU: "X", Name: "Uno"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateProductRequest{SKU: "X", Name: "Dos"})
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUpdate_NoTocaCostoNiStock(t *testing.T) {
	repo := newFakeProductRepo()
	repo.byID["p1"] = &entity.Product{
		ID:    "p1",
		SKU:   "X",
		Name:  "Original",
		Cost:  decimal.NewFromFloat(8),
		Stock: map[string]int64{"centro": 12},
	}
	uc := usecase.NewProductUseCase(repo, "pcs")

	newName := "Renombrado"
	newPrice := decimal.NewFromFloat(20)
	out, err := uc.Update(context.Background(), "p1", dto.UpdateProductRequest{
		Name:  &newName,
		Price: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renombrado", out.Name)
	assert.True(t, out.Price.Equal(newPrice))
	assert.True(t, out.Cost.Equal(decimal.NewFromFloat(8)), "el CRUD no toca el costo")
	assert.Equal(t, int64(12), out.Stock["centro"], "el CRUD no toca el stock")
}

func TestProductUpdate_Inexistente_DevuelveNil(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), "pcs")

	newName := "X"
	out, err := uc.Update(context.Background(), "nope", dto.UpdateProductRequest{Name: &newName})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductUpdate_PrecioNegativo(t *testing.T) {
	repo := newFakeProductRepo()
	repo.byID["p1"] = &entity.Product{ID: "p1", Name: "X"}
	uc := usecase.NewProductUseCase(repo, "pcs")

	bad := decimal.NewFromFloat(-1)
	_, err := uc.Update(context.Background(), "p1", dto.UpdateProductRequest{Price: &bad})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductDelete_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), "pcs")

	err := uc.Delete(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
