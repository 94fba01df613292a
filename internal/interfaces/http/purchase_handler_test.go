package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comercia/suite-api/internal/application/purchases"
	"github.com/comercia/suite-api/internal/domain/entity"
	"github.com/comercia/suite-api/internal/domain/repository"
	apphttp "github.com/comercia/suite-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repos mínimos en memoria para el handler de compras. El TxRunner es
// pass-through: la atomicidad se prueba en el paquete de aplicación; aquí solo
// interesa el contrato HTTP {success, purchaseId} / {success:false, error}.
// ──────────────────────────────────────────────────────────────────────────────

type memProducts struct{ byID map[string]*entity.Product }

func (r *memProducts) Create(_ context.Context, p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}
func (r *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.byID[id], nil
}
func (r *memProducts) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	return nil, nil
}
func (r *memProducts) FindByName(_ context.Context, name string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProducts) Update(_ context.Context, p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}
func (r *memProducts) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *memProducts) Delete(_ context.Context, id string) error { return nil }

type memPurchases struct{ byID map[string]*entity.Purchase }

func (r *memPurchases) Create(_ context.Context, p *entity.Purchase) error {
	r.byID[p.ID] = p
	return nil
}
func (r *memPurchases) GetByID(_ context.Context, id string) (*entity.Purchase, error) {
	return r.byID[id], nil
}
func (r *memPurchases) ListByPeriod(_ context.Context, from, to time.Time) ([]*entity.Purchase, error) {
	return nil, nil
}

type memHistory struct{ entries []*entity.PurchaseHistoryEntry }

func (r *memHistory) Create(_ context.Context, e *entity.PurchaseHistoryEntry) error {
	r.entries = append(r.entries, e)
	return nil
}
func (r *memHistory) ListByProduct(_ context.Context, productID string) ([]*entity.PurchaseHistoryEntry, error) {
	return nil, nil
}
func (r *memHistory) ListByPurchase(_ context.Context, purchaseID string) ([]*entity.PurchaseHistoryEntry, error) {
	return nil, nil
}

type passTxRunner struct {
	products *memProducts
	buys     *memPurchases
	history  *memHistory
}

func (tx *passTxRunner) Run(ctx context.Context, fn func(
	txCtx context.Context,
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	historyRepo repository.PurchaseHistoryRepository,
) error) error {
	return fn(ctx, tx.products, tx.buys, tx.history)
}

func buildPurchaseApp() (*fiber.App, *memPurchases) {
	products := &memProducts{byID: map[string]*entity.Product{}}
	buys := &memPurchases{byID: map[string]*entity.Purchase{}}
	history := &memHistory{}
	uc := purchases.NewRecordPurchaseUseCase(
		&passTxRunner{products: products, buys: buys, history: history},
		buys, history, "sucursal-centro", "pcs",
	)
	app := fiber.New()
	h := apphttp.NewPurchaseHandler(uc)
	app.Post("/api/purchases", h.Record)
	app.Get("/api/purchases/:id", h.GetByID)
	return app, buys
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Contrato de respuesta
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchaseRecord_Exito_DevuelveSuccessYPurchaseId(t *testing.T) {
	app, buys := buildPurchaseApp()

	resp := postJSON(t, app, "/api/purchases", `{
		"supplier": "Distribuidora Norte",
		"items": [
			{"productName": "Coca Cola 600ml", "quantity": 24, "purchasePrice": 9.5, "total": 228}
		]
	}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Success    bool   `json:"success"`
		PurchaseID string `json:"purchaseId"`
		Error      string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.PurchaseID)
	assert.Empty(t, body.Error)

	// El ID devuelto corresponde a la compra persistida
	_, ok := buys.byID[body.PurchaseID]
	assert.True(t, ok)
}

func TestPurchaseRecord_EntradaInvalida_DevuelveSuccessFalse(t *testing.T) {
	app, _ := buildPurchaseApp()

	resp := postJSON(t, app, "/api/purchases", `{"supplier": "", "items": []}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.NotEmpty(t, body.Error)
}

func TestPurchaseRecord_CuerpoMalformado(t *testing.T) {
	app, _ := buildPurchaseApp()

	resp := postJSON(t, app, "/api/purchases", `{esto no es json`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
}

func TestPurchaseGetByID_Inexistente(t *testing.T) {
	app, _ := buildPurchaseApp()

	req := httptest.NewRequest(http.MethodGet, "/api/purchases/nope", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
