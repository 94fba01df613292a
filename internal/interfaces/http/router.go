package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/comercia/suite-api/internal/application/accounting"
	"github.com/comercia/suite-api/internal/application/attendance"
	"github.com/comercia/suite-api/internal/application/auth"
	"github.com/comercia/suite-api/internal/application/purchases"
	"github.com/comercia/suite-api/internal/application/sales"
	"github.com/comercia/suite-api/internal/application/usecase"
	"github.com/comercia/suite-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	PurchaseUC   *purchases.RecordPurchaseUseCase
	SaleUC       *sales.RecordSaleUseCase
	AttendanceUC *attendance.AttendanceUseCase
	AccountingUC *accounting.AccountingUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo de productos: escritura solo admin/encargado
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", RequireRole(entity.RoleAdmin, entity.RoleEncargado), productHandler.Create)
	products.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleEncargado), productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Compras a proveedor: solo admin/encargado
	purchasesGroup := protected.Group("/purchases", RequireRole(entity.RoleAdmin, entity.RoleEncargado))
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchasesGroup.Post("/", purchaseHandler.Record)
	purchasesGroup.Get("/history/:productId", purchaseHandler.HistoryByProduct)
	purchasesGroup.Get("/:id", purchaseHandler.GetByID)
	purchasesGroup.Get("/:id/history", purchaseHandler.HistoryByPurchase)

	// Ventas de mostrador: cualquier rol autenticado
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", saleHandler.Record)
	salesGroup.Get("/:id", saleHandler.GetByID)

	// Asistencia: cualquier rol autenticado
	attendanceGroup := protected.Group("/attendance")
	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC)
	attendanceGroup.Post("/clock-in", attendanceHandler.ClockIn)
	attendanceGroup.Post("/clock-out", attendanceHandler.ClockOut)

	// Contabilidad: solo admin/encargado
	accountingGroup := protected.Group("/accounting", RequireRole(entity.RoleAdmin, entity.RoleEncargado))
	accountingHandler := NewAccountingHandler(deps.AccountingUC)
	accountingGroup.Get("/summary", accountingHandler.Summary)
	accountingGroup.Get("/ledger.xml", accountingHandler.ExportLedger)
	accountingGroup.Get("/purchases.pdf", accountingHandler.PurchaseReport)
}
