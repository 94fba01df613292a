package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/comercia/suite-api/internal/application/dto"
	"github.com/comercia/suite-api/internal/domain"
	"github.com/comercia/suite-api/internal/domain/entity"
	"github.com/comercia/suite-api/internal/domain/repository"
)

// AttendanceUseCase marcas de entrada y salida de empleados.
type AttendanceUseCase struct {
	repo repository.AttendanceRepository
}

// NewAttendanceUseCase construye el caso de uso.
func NewAttendanceUseCase(repo repository.AttendanceRepository) *AttendanceUseCase {
	return &AttendanceUseCase{repo: repo}
}

// ClockIn abre un turno para el empleado. Si ya tiene uno abierto devuelve
// ErrConflict en lugar de duplicarlo.
func (uc *AttendanceUseCase) ClockIn(ctx context.Context, userID, branchID string) (*dto.AttendanceResponse, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	open, err := uc.repo.FindOpenByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, domain.ErrConflict
	}
	entry := &entity.AttendanceEntry{
		ID:       uuid.New().String(),
		UserID:   userID,
		BranchID: branchID,
		ClockIn:  time.Now(),
	}
	if err := uc.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return toResponse(entry), nil
}

// ClockOut cierra el turno indicado. El ID del registro es obligatorio: su
// ausencia es un error de validación, no de almacén.
func (uc *AttendanceUseCase) ClockOut(ctx context.Context, userID string, in dto.ClockOutRequest) (*dto.AttendanceResponse, error) {
	if in.EntryID == "" {
		return nil, domain.ErrMissingEntry
	}
	entry, err := uc.repo.GetByID(ctx, in.EntryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	if entry.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if entry.ClockOut != nil {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	entry.ClockOut = &now
	if err := uc.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return toResponse(entry), nil
}

func toResponse(e *entity.AttendanceEntry) *dto.AttendanceResponse {
	return &dto.AttendanceResponse{
		ID:       e.ID,
		UserID:   e.UserID,
		BranchID: e.BranchID,
		ClockIn:  e.ClockIn,
		ClockOut: e.ClockOut,
	}
}
