package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/comercia/suite-api/pkg/config"
)

// Nombres de colecciones del almacén.
const (
	CollProducts        = "products"
	CollPurchases       = "purchases"
	CollPurchaseHistory = "purchase_history"
	CollSales           = "sales"
	CollUsers           = "users"
	CollAttendance      = "attendance"
)

// Connect abre la conexión a MongoDB, registra el codec de decimales y
// verifica con un ping. Las transacciones multi-documento requieren un
// deployment con replica set (Atlas lo es por defecto).
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetRegistry(Registry())
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("conectar a mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping a mongodb: %w", err)
	}
	return client, nil
}
