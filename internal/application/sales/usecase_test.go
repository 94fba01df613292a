package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comercia/suite-api/internal/application/dto"
	"github.com/comercia/suite-api/internal/application/sales"
	"github.com/comercia/suite-api/internal/domain"
	"github.com/comercia/suite-api/internal/domain/entity"
	"github.com/comercia/suite-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con commit/rollback por copia, igual que en compras:
// el TxRunner trabaja sobre un clon y solo lo vuelca si no hubo error.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products map[string]*entity.Product
	sales    map[string]*entity.Sale
}

func newMemStore() *memStore {
	return &memStore{products: map[string]*entity.Product{}, sales: map[string]*entity.Sale{}}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for id, p := range s.products {
		cp := *p
		cp.Stock = make(map[string]int64, len(p.Stock))
		for k, v := range p.Stock {
			cp.Stock[k] = v
		}
		c.products[id] = &cp
	}
	for id, v := range s.sales {
		cv := *v
		cv.Items = append([]entity.SaleItem(nil), v.Items...)
		c.sales[id] = &cv
	}
	return c
}

type fakeProductRepo struct{ store *memStore }

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.store.products[p.ID] = p
	return nil
}
func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.store.products[id], nil
}
func (r *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) FindByName(_ context.Context, name string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.store.products[p.ID] = p
	return nil
}
func (r *fakeProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.store.products, id)
	return nil
}

type fakeSaleRepo struct{ store *memStore }

func (r *fakeSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	r.store.sales[s.ID] = s
	return nil
}
func (r *fakeSaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	return r.store.sales[id], nil
}
func (r *fakeSaleRepo) ListByPeriod(_ context.Context, from, to time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.store.sales {
		if !s.CreatedAt.Before(from) && s.CreatedAt.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeTxRunner struct {
	store *memStore
}

func (tx *fakeTxRunner) RunSale(ctx context.Context, fn func(
	txCtx context.Context,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	working := tx.store.clone()
	err := fn(ctx, &fakeProductRepo{store: working}, &fakeSaleRepo{store: working})
	if err != nil {
		return err
	}
	*tx.store = *working
	return nil
}

const testBranch = "sucursal-centro"

func seedProduct(store *memStore, id, name string, stock int64, price float64) {
	store.products[id] = &entity.Product{
		ID:    id,
		SKU:   "SKU-" + id,
		Name:  name,
		Price: decimal.NewFromFloat(price),
		Stock: map[string]int64{testBranch: stock},
		Unit:  "pcs",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_DescuentaStockYTotaliza(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Coca Cola 600ml", 10, 15.0)
	seedProduct(store, "p2", "Sabritas Original", 8, 18.50)
	uc := sales.NewRecordSaleUseCase(&fakeTxRunner{store: store}, &fakeSaleRepo{store: store}, testBranch)

	out, err := uc.RecordSale(context.Background(), "cajero-1", dto.RecordSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, int64(8), store.products["p1"].Stock[testBranch])
	assert.Equal(t, int64(7), store.products["p2"].Stock[testBranch])
	// Sin precio en la línea se usa el precio de venta del producto
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromFloat(48.50)), "2×15.00 + 1×18.50")
	assert.Equal(t, "cajero-1", out.CashierID)
	assert.Equal(t, testBranch, out.BranchID)

	saved := store.sales[out.ID]
	require.NotNil(t, saved)
	require.Len(t, saved.Items, 2)
	assert.Equal(t, "Coca Cola 600ml", saved.Items[0].Name)
}

func TestRecordSale_PrecioDeLineaPisaElDeCatalogo(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Pan Dulce", 5, 12.0)
	uc := sales.NewRecordSaleUseCase(&fakeTxRunner{store: store}, &fakeSaleRepo{store: store}, testBranch)

	out, err := uc.RecordSale(context.Background(), "cajero-1", dto.RecordSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 3, UnitPrice: decimal.NewFromFloat(10.0)},
		},
	})
	require.NoError(t, err)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromFloat(30.0)))
}

func TestRecordSale_StockInsuficiente_NadaPersiste(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Cerveza Lata", 10, 25.0)
	seedProduct(store, "p2", "Hielo Bolsa", 1, 30.0)
	uc := sales.NewRecordSaleUseCase(&fakeTxRunner{store: store}, &fakeSaleRepo{store: store}, testBranch)

	_, err := uc.RecordSale(context.Background(), "cajero-1", dto.RecordSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 6}, // alcanzaría
			{ProductID: "p2", Quantity: 3}, // no alcanza
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// La primera línea tampoco debe haberse aplicado
	assert.Equal(t, int64(10), store.products["p1"].Stock[testBranch])
	assert.Equal(t, int64(1), store.products["p2"].Stock[testBranch])
	assert.Empty(t, store.sales)
}

func TestRecordSale_ProductoInexistente(t *testing.T) {
	store := newMemStore()
	uc := sales.NewRecordSaleUseCase(&fakeTxRunner{store: store}, &fakeSaleRepo{store: store}, testBranch)

	_, err := uc.RecordSale(context.Background(), "cajero-1", dto.RecordSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "no-existe", Quantity: 1}},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.sales)
}

func TestRecordSale_EntradaInvalida(t *testing.T) {
	store := newMemStore()
	uc := sales.NewRecordSaleUseCase(&fakeTxRunner{store: store}, &fakeSaleRepo{store: store}, testBranch)

	cases := []struct {
		name string
		in   dto.RecordSaleRequest
	}{
		{"sin líneas", dto.RecordSaleRequest{}},
		{"sin product_id", dto.RecordSaleRequest{Items: []dto.SaleItemRequest{{Quantity: 1}}}},
		{"cantidad cero", dto.RecordSaleRequest{Items: []dto.SaleItemRequest{{ProductID: "p1", Quantity: 0}}}},
		{"precio negativo", dto.RecordSaleRequest{Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 1, UnitPrice: decimal.NewFromFloat(-1)},
		}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RecordSale(context.Background(), "cajero-1", tc.in)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestGetSale_Inexistente_DevuelveNil(t *testing.T) {
	store := newMemStore()
	uc := sales.NewRecordSaleUseCase(&fakeTxRunner{store: store}, &fakeSaleRepo{store: store}, testBranch)

	out, err := uc.GetSale(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, out)
}
