package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/comercia/suite-api/docs" // registro swagger generado por swag
	"github.com/comercia/suite-api/internal/application/accounting"
	"github.com/comercia/suite-api/internal/application/attendance"
	"github.com/comercia/suite-api/internal/application/auth"
	"github.com/comercia/suite-api/internal/application/purchases"
	"github.com/comercia/suite-api/internal/application/sales"
	"github.com/comercia/suite-api/internal/application/usecase"
	"github.com/comercia/suite-api/internal/infrastructure/mongodb"
	infrapdf "github.com/comercia/suite-api/internal/infrastructure/pdf"
	"github.com/comercia/suite-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/comercia/suite-api/internal/interfaces/http"
	"github.com/comercia/suite-api/pkg/config"
	"github.com/comercia/suite-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Options{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("branch", cfg.Inventory.DefaultBranch).
		Msg("iniciando aplicación")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	client, err := mongodb.Connect(ctx, cfg.Mongo)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	db := client.Database(cfg.Mongo.Database)

	productRepo := mongodb.NewProductRepository(db)
	purchaseRepo := mongodb.NewPurchaseRepository(db)
	historyRepo := mongodb.NewPurchaseHistoryRepository(db)
	saleRepo := mongodb.NewSaleRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	attendanceRepo := mongodb.NewAttendanceRepository(db)
	txRunner := mongodb.NewTxRunner(client, productRepo, purchaseRepo, historyRepo, saleRepo)

	purchaseUC := purchases.NewRecordPurchaseUseCase(
		txRunner, purchaseRepo, historyRepo,
		cfg.Inventory.DefaultBranch, cfg.Inventory.DefaultUnit,
	)
	saleUC := sales.NewRecordSaleUseCase(txRunner, saleRepo, cfg.Inventory.DefaultBranch)
	productUC := usecase.NewProductUseCase(productRepo, cfg.Inventory.DefaultUnit)
	attendanceUC := attendance.NewAttendanceUseCase(attendanceRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	accountingUC := accounting.NewAccountingUseCase(
		purchaseRepo, saleRepo,
		xmlexport.NewLedgerExporter(),
		infrapdf.NewMarotoReportGenerator(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Comercia Suite API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductUC:    productUC,
		PurchaseUC:   purchaseUC,
		SaleUC:       saleUC,
		AttendanceUC: attendanceUC,
		AccountingUC: accountingUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	// Apagado limpio ante SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("apagando servidor")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
	if err := app.Listen(cfg.HTTP.Addr()); err != nil {
		log.Fatal().Err(err).Msg("servidor HTTP")
	}
	log.Info().Msg("servidor detenido")
}
