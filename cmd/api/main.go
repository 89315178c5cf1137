package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tu-usuario/almacen-pro/internal/application/auth"
	"github.com/tu-usuario/almacen-pro/internal/application/ledger"
	"github.com/tu-usuario/almacen-pro/internal/application/report"
	"github.com/tu-usuario/almacen-pro/internal/application/seed"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
	"github.com/tu-usuario/almacen-pro/internal/infrastructure/kvstore"
	"github.com/tu-usuario/almacen-pro/internal/infrastructure/notify"
	httpRouter "github.com/tu-usuario/almacen-pro/internal/interfaces/http"
	"github.com/tu-usuario/almacen-pro/pkg/config"
	"github.com/tu-usuario/almacen-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	var drv kvstore.Driver
	switch cfg.Storage.Driver {
	case config.StorageSQLite:
		sq, err := kvstore.NewSQLiteDriver(cfg.Storage.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Storage.Path).Msg("abrir almacén sqlite")
		}
		drv = sq
	default:
		drv = kvstore.NewMemoryDriver()
	}
	defer drv.Close()

	store := kvstore.NewStore(drv)
	itemRepo := kvstore.NewItemRepository(store)
	categoryRepo := kvstore.NewCategoryRepository(store)
	userRepo := kvstore.NewUserRepository(store)
	txRepo := kvstore.NewTransactionRepository(store)
	txRunner := kvstore.NewTxRunner(store)
	masterRunner := kvstore.NewMasterTxRunner(store)

	if cfg.App.SeedOnStart {
		if err := seed.Run(userRepo, categoryRepo, itemRepo); err != nil {
			log.Fatal().Err(err).Msg("sembrar datos iniciales")
		}
	}

	notifier := notify.New(log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	itemUC := usecase.NewItemUseCase(itemRepo, masterRunner)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, masterRunner)
	userUC := usecase.NewUserUseCase(userRepo, masterRunner)
	movementUC := ledger.NewMovementUseCase(itemRepo, txRepo, txRunner)
	approvalUC := ledger.NewApprovalUseCase(txRunner, notifier)
	reportUC := report.NewUseCase(itemRepo, txRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ItemUC:     itemUC,
		CategoryUC: categoryUC,
		UserUC:     userUC,
		MovementUC: movementUC,
		ApprovalUC: approvalUC,
		ReportUC:   reportUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
