package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/comercia/suite-api/internal/domain/entity"
	"github.com/comercia/suite-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre MongoDB.
type SaleRepo struct {
	coll *mongo.Collection
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(db *mongo.Database) *SaleRepo {
	return &SaleRepo{coll: db.Collection(CollSales)}
}

// Create persiste una venta (inmutable).
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	_, err := r.coll.InsertOne(ctx, sale)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID. (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	var s entity.Sale
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// ListByPeriod lista ventas con created_at en [from, to), más antiguas primero.
func (r *SaleRepo) ListByPeriod(ctx context.Context, from, to time.Time) ([]*entity.Sale, error) {
	filter := bson.M{"created_at": bson.M{"$gte": from, "$lt": to}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer cur.Close(ctx)
	var list []*entity.Sale
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode sales: %w", err)
	}
	return list, nil
}
