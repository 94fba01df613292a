package repository

import (
	"context"

	"github.com/comercia/suite-api/internal/domain/entity"
)

// AttendanceRepository puerto de persistencia para marcas de asistencia.
type AttendanceRepository interface {
	Create(ctx context.Context, entry *entity.AttendanceEntry) error
	GetByID(ctx context.Context, id string) (*entity.AttendanceEntry, error)
	Update(ctx context.Context, entry *entity.AttendanceEntry) error
	FindOpenByUser(ctx context.Context, userID string) (*entity.AttendanceEntry, error)
}
