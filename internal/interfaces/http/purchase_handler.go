package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/comercia/suite-api/internal/application/dto"
	"github.com/comercia/suite-api/internal/application/purchases"
	"github.com/comercia/suite-api/internal/domain"
)

// PurchaseHandler maneja el registro de compras a proveedor (protegido).
//
// El contrato de respuesta del registro es {success, purchaseId} en éxito
// y {success:false, error} en fallo, con el status HTTP acorde.
type PurchaseHandler struct {
	uc *purchases.RecordPurchaseUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *purchases.RecordPurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar compra a proveedor
// @Description  Concilia cada línea contra el catálogo (suma stock y actualiza costo,
// @Description  o crea el producto) y deja historial, todo en una sola transacción.
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordPurchaseRequest  true  "Compra con sus líneas"
// @Success      201   {object}  dto.RecordPurchaseResponse
// @Failure      400   {object}  dto.RecordPurchaseResponse
// @Failure      500   {object}  dto.RecordPurchaseResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.RecordPurchaseResponse{Success: false, Error: "cuerpo inválido"})
	}
	purchaseID, err := h.uc.RecordPurchase(c.Context(), in)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidInput) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(dto.RecordPurchaseResponse{Success: false, Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RecordPurchaseResponse{Success: true, PurchaseID: purchaseID})
}

// GetByID godoc
// @Summary      Obtener compra por ID
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la compra"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [get]
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetPurchase(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "compra no encontrada"})
	}
	return c.JSON(out)
}

// HistoryByProduct godoc
// @Summary      Historial de compras de un producto
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {array}  dto.PurchaseHistoryResponse
// @Router       /api/purchases/history/{productId} [get]
func (h *PurchaseHandler) HistoryByProduct(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId es requerido"})
	}
	out, err := h.uc.HistoryByProduct(c.Context(), productID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// HistoryByPurchase godoc
// @Summary      Entradas de historial generadas por una compra
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la compra"
// @Success      200  {array}  dto.PurchaseHistoryResponse
// @Router       /api/purchases/{id}/history [get]
func (h *PurchaseHandler) HistoryByPurchase(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.HistoryByPurchase(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
