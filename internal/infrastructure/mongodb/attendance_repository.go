package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/comercia/suite-api/internal/domain/entity"
	"github.com/comercia/suite-api/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

// AttendanceRepo implementación del puerto AttendanceRepository sobre MongoDB.
type AttendanceRepo struct {
	coll *mongo.Collection
}

// NewAttendanceRepository construye el adaptador de asistencia.
func NewAttendanceRepository(db *mongo.Database) *AttendanceRepo {
	return &AttendanceRepo{coll: db.Collection(CollAttendance)}
}

// Create persiste una marca de entrada.
func (r *AttendanceRepo) Create(ctx context.Context, entry *entity.AttendanceEntry) error {
	_, err := r.coll.InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("insert attendance: %w", err)
	}
	return nil
}

// GetByID obtiene una marca por ID. (nil, nil) si no existe.
func (r *AttendanceRepo) GetByID(ctx context.Context, id string) (*entity.AttendanceEntry, error) {
	var e entity.AttendanceEntry
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attendance: %w", err)
	}
	return &e, nil
}

// Update reemplaza la marca (cierre de turno).
func (r *AttendanceRepo) Update(ctx context.Context, entry *entity.AttendanceEntry) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": entry.ID}, entry)
	if err != nil {
		return fmt.Errorf("update attendance: %w", err)
	}
	return nil
}

// FindOpenByUser devuelve el turno abierto del empleado, si lo hay.
func (r *AttendanceRepo) FindOpenByUser(ctx context.Context, userID string) (*entity.AttendanceEntry, error) {
	var e entity.AttendanceEntry
	filter := bson.M{"user_id": userID, "clock_out": bson.M{"$exists": false}}
	err := r.coll.FindOne(ctx, filter).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find open attendance: %w", err)
	}
	return &e, nil
}
