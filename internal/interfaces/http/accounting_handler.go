package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/comercia/suite-api/internal/application/accounting"
	"github.com/comercia/suite-api/internal/application/dto"
	"github.com/comercia/suite-api/internal/domain"
)

// AccountingHandler resumen contable y exportes del período (solo admin/encargado).
type AccountingHandler struct {
	uc *accounting.AccountingUseCase
}

// NewAccountingHandler construye el handler.
func NewAccountingHandler(uc *accounting.AccountingUseCase) *AccountingHandler {
	return &AccountingHandler{uc: uc}
}

// parsePeriod lee from/to (YYYY-MM-DD) del query string. "to" es exclusivo:
// se suma un día al valor recibido para cubrir la fecha completa.
func parsePeriod(c *fiber.Ctx) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to.AddDate(0, 0, 1), nil
}

// Summary godoc
// @Summary      Resumen contable del período
// @Tags         accounting
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  true  "Fecha inicial (YYYY-MM-DD)"
// @Param        to    query  string  true  "Fecha final (YYYY-MM-DD)"
// @Success      200   {object}  dto.PeriodSummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/accounting/summary [get]
func (h *AccountingHandler) Summary(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "from y to deben ser fechas YYYY-MM-DD"})
	}
	out, err := h.uc.Summary(c.Context(), from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "from debe ser anterior a to"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportLedger godoc
// @Summary      Exportar libro del período en XML
// @Tags         accounting
// @Security     Bearer
// @Produce      application/xml
// @Param        from  query  string  true  "Fecha inicial (YYYY-MM-DD)"
// @Param        to    query  string  true  "Fecha final (YYYY-MM-DD)"
// @Success      200   {file}  file
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/accounting/ledger.xml [get]
func (h *AccountingHandler) ExportLedger(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "from y to deben ser fechas YYYY-MM-DD"})
	}
	data, filename, err := h.uc.ExportLedgerXML(c.Context(), from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "from debe ser anterior a to"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// PurchaseReport godoc
// @Summary      Reporte PDF de compras del período
// @Tags         accounting
// @Security     Bearer
// @Produce      application/pdf
// @Param        from  query  string  true  "Fecha inicial (YYYY-MM-DD)"
// @Param        to    query  string  true  "Fecha final (YYYY-MM-DD)"
// @Success      200   {file}  file
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/accounting/purchases.pdf [get]
func (h *AccountingHandler) PurchaseReport(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "from y to deben ser fechas YYYY-MM-DD"})
	}
	data, filename, err := h.uc.PurchaseReportPDF(c.Context(), from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "from debe ser anterior a to"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
