package accounting_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comercia/suite-api/internal/application/accounting"
	"github.com/comercia/suite-api/internal/domain"
	"github.com/comercia/suite-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakePurchaseRepo struct {
	list []*entity.Purchase
}

func (r *fakePurchaseRepo) Create(_ context.Context, p *entity.Purchase) error {
	r.list = append(r.list, p)
	return nil
}
func (r *fakePurchaseRepo) GetByID(_ context.Context, id string) (*entity.Purchase, error) {
	for _, p := range r.list {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakePurchaseRepo) ListByPeriod(_ context.Context, from, to time.Time) ([]*entity.Purchase, error) {
	var out []*entity.Purchase
	for _, p := range r.list {
		if !p.CreatedAt.Before(from) && p.CreatedAt.Before(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeSaleRepo struct {
	list []*entity.Sale
}

func (r *fakeSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	r.list = append(r.list, s)
	return nil
}
func (r *fakeSaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	for _, s := range r.list {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}
func (r *fakeSaleRepo) ListByPeriod(_ context.Context, from, to time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.list {
		if !s.CreatedAt.Before(from) && s.CreatedAt.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeExporter struct{ called bool }

func (e *fakeExporter) ExportLedger(_, _ time.Time, _ []*entity.Purchase, _ []*entity.Sale) ([]byte, error) {
	e.called = true
	return []byte("<ledger/>"), nil
}

type fakeReporter struct{ called bool }

func (r *fakeReporter) GeneratePurchaseReport(_ context.Context, _, _ time.Time, _ []*entity.Purchase) ([]byte, error) {
	r.called = true
	return []byte("%PDF-1.7"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

var (
	periodFrom = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	periodTo   = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
)

func seededUseCase() (*accounting.AccountingUseCase, *fakeExporter, *fakeReporter) {
	purchases := &fakePurchaseRepo{list: []*entity.Purchase{
		{ID: "c1", TotalAmount: decimal.NewFromFloat(500), CreatedAt: periodFrom.Add(24 * time.Hour)},
		{ID: "c2", TotalAmount: decimal.NewFromFloat(300), CreatedAt: periodFrom.Add(48 * time.Hour)},
		// fuera del período, no debe contar
		{ID: "c3", TotalAmount: decimal.NewFromFloat(999), CreatedAt: periodTo.Add(time.Hour)},
	}}
	sales := &fakeSaleRepo{list: []*entity.Sale{
		{ID: "v1", TotalAmount: decimal.NewFromFloat(1200), CreatedAt: periodFrom.Add(72 * time.Hour)},
	}}
	exporter := &fakeExporter{}
	reporter := &fakeReporter{}
	return accounting.NewAccountingUseCase(purchases, sales, exporter, reporter), exporter, reporter
}

func TestSummary_TotalesYMargen(t *testing.T) {
	uc, _, _ := seededUseCase()

	out, err := uc.Summary(context.Background(), periodFrom, periodTo)
	require.NoError(t, err)

	assert.Equal(t, 2, out.PurchaseCount, "la compra fuera del período no cuenta")
	assert.True(t, out.PurchaseTotal.Equal(decimal.NewFromFloat(800)))
	assert.Equal(t, 1, out.SaleCount)
	assert.True(t, out.SaleTotal.Equal(decimal.NewFromFloat(1200)))
	assert.True(t, out.GrossMargin.Equal(decimal.NewFromFloat(400)), "margen = ventas - compras")
}

func TestSummary_PeriodoInvertido(t *testing.T) {
	uc, _, _ := seededUseCase()

	_, err := uc.Summary(context.Background(), periodTo, periodFrom)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExportLedgerXML_NombreDeArchivo(t *testing.T) {
	uc, exporter, _ := seededUseCase()

	data, filename, err := uc.ExportLedgerXML(context.Background(), periodFrom, periodTo)
	require.NoError(t, err)
	assert.True(t, exporter.called)
	assert.NotEmpty(t, data)
	assert.Equal(t, "libro_20260801_20260901.xml", filename)
}

func TestPurchaseReportPDF_NombreDeArchivo(t *testing.T) {
	uc, _, reporter := seededUseCase()

	data, filename, err := uc.PurchaseReportPDF(context.Background(), periodFrom, periodTo)
	require.NoError(t, err)
	assert.True(t, reporter.called)
	assert.NotEmpty(t, data)
	assert.Equal(t, "compras_20260801_20260901.pdf", filename)
}
