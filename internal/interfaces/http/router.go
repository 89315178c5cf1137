package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/auth"
	"github.com/tu-usuario/almacen-pro/internal/application/ledger"
	"github.com/tu-usuario/almacen-pro/internal/application/report"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ItemUC     *usecase.ItemUseCase
	CategoryUC *usecase.CategoryUseCase
	UserUC     *usecase.UserUseCase
	MovementUC *ledger.MovementUseCase
	ApprovalUC *ledger.ApprovalUseCase
	ReportUC   *report.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
//
// Reparto de roles: lectura general para cualquier sesión; escritura de
// maestros y usuarios para ADMIN; solicitudes de movimiento para STAFF y
// ADMIN; verificación y exportaciones para MANAGER y ADMIN; la vista de
// producción también para PRODUCTION.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleAdmin)
	reviewers := RequireRole(entity.RoleManager, entity.RoleAdmin)
	requesters := RequireRole(entity.RoleStaff, entity.RoleAdmin)

	// Items (protegido; escritura solo ADMIN)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/", adminOnly, itemHandler.Upsert)
	items.Delete("/:id", adminOnly, itemHandler.Delete)

	// Categories (protegido; escritura solo ADMIN)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Put("/", adminOnly, categoryHandler.Upsert)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Users (solo ADMIN)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Put("/", userHandler.Upsert)
	users.Delete("/:id", userHandler.Delete)

	// Movements: solicitud e historial, pendientes y decisiones
	movements := protected.Group("/movements")
	ledgerHandler := NewLedgerHandler(deps.MovementUC, deps.ApprovalUC)
	movements.Get("/", ledgerHandler.ListAll)
	movements.Post("/", requesters, ledgerHandler.RequestMovement)
	movements.Get("/pending", reviewers, ledgerHandler.ListPending)
	movements.Post("/:id/approve", reviewers, ledgerHandler.Approve)
	movements.Post("/:id/reject", reviewers, ledgerHandler.Reject)

	// Reports y exportaciones
	reportHandler := NewReportHandler(deps.ReportUC)
	reports := protected.Group("/reports")
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/dashboard", reportHandler.Dashboard)
	reports.Get("/production", RequireRole(entity.RoleProduction, entity.RoleManager, entity.RoleAdmin), reportHandler.Production)
	protected.Get("/export.csv", reviewers, reportHandler.ExportCSV)
	protected.Get("/export.json", reviewers, reportHandler.ExportJSON)
}
