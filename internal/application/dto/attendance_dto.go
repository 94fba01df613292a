package dto

import "time"

// ClockOutRequest cierre de turno; EntryID es obligatorio (ver taxonomía de
// errores: su ausencia es un error de validación, no de almacén).
type ClockOutRequest struct {
	EntryID string `json:"entry_id" validate:"required"`
}

// AttendanceResponse una marca de asistencia.
type AttendanceResponse struct {
	ID       string     `json:"id"`
	UserID   string     `json:"user_id"`
	BranchID string     `json:"branch_id"`
	ClockIn  time.Time  `json:"clock_in"`
	ClockOut *time.Time `json:"clock_out,omitempty"`
}
