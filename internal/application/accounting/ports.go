package accounting

import (
	"context"
	"time"

	"github.com/comercia/suite-api/internal/domain/entity"
)

// LedgerExporter serializa los asientos del período a un documento XML.
type LedgerExporter interface {
	ExportLedger(from, to time.Time, purchases []*entity.Purchase, sales []*entity.Sale) ([]byte, error)
}

// PurchaseReportGenerator genera el PDF del reporte de compras del período.
type PurchaseReportGenerator interface {
	GeneratePurchaseReport(ctx context.Context, from, to time.Time, purchases []*entity.Purchase) ([]byte, error)
}
