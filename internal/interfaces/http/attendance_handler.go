package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/comercia/suite-api/internal/application/attendance"
	"github.com/comercia/suite-api/internal/application/dto"
	"github.com/comercia/suite-api/internal/domain"
)

// AttendanceHandler maneja el control de asistencia del personal (protegido).
type AttendanceHandler struct {
	uc *attendance.AttendanceUseCase
}

// NewAttendanceHandler construye el handler.
func NewAttendanceHandler(uc *attendance.AttendanceUseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

// ClockIn godoc
// @Summary      Marcar entrada
// @Tags         attendance
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.AttendanceResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/attendance/clock-in [post]
func (h *AttendanceHandler) ClockIn(c *fiber.Ctx) error {
	out, err := h.uc.ClockIn(c.Context(), GetUserID(c), GetBranchID(c))
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OPEN_SHIFT", Message: "ya existe un turno abierto"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ClockOut godoc
// @Summary      Marcar salida
// @Tags         attendance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClockOutRequest  true  "ID de la marca de entrada"
// @Success      200   {object}  dto.AttendanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/attendance/clock-out [post]
func (h *AttendanceHandler) ClockOut(c *fiber.Ctx) error {
	var in dto.ClockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ClockOut(c.Context(), GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingEntry):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ENTRY", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "marca no encontrada"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la marca pertenece a otro empleado"})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_CLOSED", Message: "el turno ya fue cerrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}
