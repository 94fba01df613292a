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

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)
var _ repository.PurchaseHistoryRepository = (*PurchaseHistoryRepo)(nil)

// PurchaseRepo implementación del puerto PurchaseRepository sobre MongoDB.
type PurchaseRepo struct {
	coll *mongo.Collection
}

// NewPurchaseRepository construye el adaptador de persistencia para compras.
func NewPurchaseRepository(db *mongo.Database) *PurchaseRepo {
	return &PurchaseRepo{coll: db.Collection(CollPurchases)}
}

// Create persiste una compra (inmutable; no hay Update).
func (r *PurchaseRepo) Create(ctx context.Context, purchase *entity.Purchase) error {
	_, err := r.coll.InsertOne(ctx, purchase)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por ID. (nil, nil) si no existe.
func (r *PurchaseRepo) GetByID(ctx context.Context, id string) (*entity.Purchase, error) {
	var p entity.Purchase
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

// ListByPeriod lista compras con created_at en [from, to), más antiguas primero.
func (r *PurchaseRepo) ListByPeriod(ctx context.Context, from, to time.Time) ([]*entity.Purchase, error) {
	filter := bson.M{"created_at": bson.M{"$gte": from, "$lt": to}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer cur.Close(ctx)
	var list []*entity.Purchase
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode purchases: %w", err)
	}
	return list, nil
}

// PurchaseHistoryRepo historial de compras (append-only, sin Update ni Delete).
type PurchaseHistoryRepo struct {
	coll *mongo.Collection
}

// NewPurchaseHistoryRepository construye el adaptador del historial.
func NewPurchaseHistoryRepository(db *mongo.Database) *PurchaseHistoryRepo {
	return &PurchaseHistoryRepo{coll: db.Collection(CollPurchaseHistory)}
}

// Create agrega una entrada al historial.
func (r *PurchaseHistoryRepo) Create(ctx context.Context, entry *entity.PurchaseHistoryEntry) error {
	_, err := r.coll.InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

// ListByProduct lista el historial de un producto, más reciente primero.
func (r *PurchaseHistoryRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.PurchaseHistoryEntry, error) {
	return r.list(ctx, bson.M{"product_id": productID})
}

// ListByPurchase lista las entradas generadas por una compra.
func (r *PurchaseHistoryRepo) ListByPurchase(ctx context.Context, purchaseID string) ([]*entity.PurchaseHistoryEntry, error) {
	return r.list(ctx, bson.M{"purchase_id": purchaseID})
}

func (r *PurchaseHistoryRepo) list(ctx context.Context, filter bson.M) ([]*entity.PurchaseHistoryEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer cur.Close(ctx)
	var list []*entity.PurchaseHistoryEntry
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return list, nil
}
