package accounting

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/comercia/suite-api/internal/application/dto"
	"github.com/comercia/suite-api/internal/domain"
	"github.com/comercia/suite-api/internal/domain/repository"
)

// AccountingUseCase resumen contable del período, export XML del libro y
// reporte PDF de compras. Solo lecturas; no abre transacciones.
type AccountingUseCase struct {
	purchaseRepo repository.PurchaseRepository
	saleRepo     repository.SaleRepository
	exporter     LedgerExporter
	reporter     PurchaseReportGenerator
}

// NewAccountingUseCase construye el caso de uso inyectando sus dependencias.
func NewAccountingUseCase(
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
	exporter LedgerExporter,
	reporter PurchaseReportGenerator,
) *AccountingUseCase {
	return &AccountingUseCase{
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
		exporter:     exporter,
		reporter:     reporter,
	}
}

// Summary totales de compras y ventas del período [from, to).
func (uc *AccountingUseCase) Summary(ctx context.Context, from, to time.Time) (*dto.PeriodSummaryResponse, error) {
	if !from.Before(to) {
		return nil, domain.ErrInvalidInput
	}
	purchases, err := uc.purchaseRepo.ListByPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	sales, err := uc.saleRepo.ListByPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	purchaseTotal := decimal.Zero
	for _, p := range purchases {
		purchaseTotal = purchaseTotal.Add(p.TotalAmount)
	}
	saleTotal := decimal.Zero
	for _, s := range sales {
		saleTotal = saleTotal.Add(s.TotalAmount)
	}
	return &dto.PeriodSummaryResponse{
		From:          from.Format("2006-01-02"),
		To:            to.Format("2006-01-02"),
		PurchaseCount: len(purchases),
		PurchaseTotal: purchaseTotal,
		SaleCount:     len(sales),
		SaleTotal:     saleTotal,
		GrossMargin:   saleTotal.Sub(purchaseTotal),
	}, nil
}

// ExportLedgerXML genera el XML del libro del período.
func (uc *AccountingUseCase) ExportLedgerXML(ctx context.Context, from, to time.Time) ([]byte, string, error) {
	if !from.Before(to) {
		return nil, "", domain.ErrInvalidInput
	}
	purchases, err := uc.purchaseRepo.ListByPeriod(ctx, from, to)
	if err != nil {
		return nil, "", err
	}
	sales, err := uc.saleRepo.ListByPeriod(ctx, from, to)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.exporter.ExportLedger(from, to, purchases, sales)
	if err != nil {
		return nil, "", fmt.Errorf("exportar libro: %w", err)
	}
	filename := fmt.Sprintf("libro_%s_%s.xml", from.Format("20060102"), to.Format("20060102"))
	return data, filename, nil
}

// PurchaseReportPDF genera el PDF de compras del período.
func (uc *AccountingUseCase) PurchaseReportPDF(ctx context.Context, from, to time.Time) ([]byte, string, error) {
	if !from.Before(to) {
		return nil, "", domain.ErrInvalidInput
	}
	purchases, err := uc.purchaseRepo.ListByPeriod(ctx, from, to)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.reporter.GeneratePurchaseReport(ctx, from, to, purchases)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("compras_%s_%s.pdf", from.Format("20060102"), to.Format("20060102"))
	return pdfBytes, filename, nil
}
