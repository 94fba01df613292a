// seed_products carga el catálogo inicial de productos desde un CSV exportado
// del sistema anterior (Excel latino, codificado en ISO-8859-1).
//
// Uso: go run ./cmd/seed_products [ruta/catalogo.csv]
// Columnas esperadas: sku,nombre,precio,unidad — con fila de cabecera.
// Inserta en la colección de productos; los SKU ya existentes se saltan.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/comercia/suite-api/internal/domain/entity"
	"github.com/comercia/suite-api/internal/infrastructure/mongodb"
	"github.com/comercia/suite-api/pkg/config"
)

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Los exports del sistema anterior vienen en ISO-8859-1 (ñ, tildes)
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.FieldsPerRecord = 4
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(rows) < 2 {
		fmt.Fprintln(os.Stderr, "CSV vacío (se esperaba cabecera + filas)")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	client, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a MongoDB: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	repo := mongodb.NewProductRepository(client.Database(cfg.Mongo.Database))

	inserted, skipped := 0, 0
	for i, row := range rows[1:] { // saltar cabecera
		sku := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		if sku == "" || name == "" {
			fmt.Fprintf(os.Stderr, "fila %d: sku o nombre vacío, se salta\n", i+2)
			skipped++
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSpace(row[2]))
		if err != nil {
			fmt.Fprintf(os.Stderr, "fila %d: precio inválido %q, se salta\n", i+2, row[2])
			skipped++
			continue
		}
		unit := strings.TrimSpace(row[3])
		if unit == "" {
			unit = cfg.Inventory.DefaultUnit
		}

		existing, err := repo.GetBySKU(ctx, sku)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fila %d: consultar SKU %s: %v\n", i+2, sku, err)
			os.Exit(1)
		}
		if existing != nil {
			skipped++
			continue
		}

		now := time.Now().UTC()
		p := &entity.Product{
			ID:        uuid.NewString(),
			SKU:       sku,
			Name:      name,
			Price:     price,
			Cost:      decimal.Zero,
			Stock:     map[string]int64{},
			Unit:      unit,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.Create(ctx, p); err != nil {
			fmt.Fprintf(os.Stderr, "fila %d: insertar %s: %v\n", i+2, sku, err)
			os.Exit(1)
		}
		inserted++
	}

	fmt.Printf("Catálogo cargado: %d insertados, %d saltados\n", inserted, skipped)
}
