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

	appanalytics "github.com/jhoicas/inventario-desk/internal/application/analytics"
	"github.com/jhoicas/inventario-desk/internal/application/auth"
	"github.com/jhoicas/inventario-desk/internal/application/inventory"
	"github.com/jhoicas/inventario-desk/internal/application/reports"
	"github.com/jhoicas/inventario-desk/internal/application/usecase"
	"github.com/jhoicas/inventario-desk/internal/infrastructure/jsonstore"
	infrapdf "github.com/jhoicas/inventario-desk/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/inventario-desk/internal/interfaces/http"
	"github.com/jhoicas/inventario-desk/pkg/config"
	"github.com/jhoicas/inventario-desk/pkg/ids"
	"github.com/jhoicas/inventario-desk/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.DataPath).
		Msg("iniciando aplicación")

	store := jsonstore.NewStore(cfg.Store.DataPath, cfg.App.Name)
	gen := ids.NewUUIDGenerator()

	ledger, err := inventory.New(store, gen, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar documento de inventario")
	}

	authUC := auth.NewUseCase(ledger, gen, cfg.JWT, log)
	if err := authUC.EnsureDefaultAdmin(); err != nil {
		log.Fatal().Err(err).Msg("sembrar usuario administrador")
	}

	userUC := usecase.NewUserUseCase(ledger, gen, log)
	subsUC := usecase.NewSubscriptionUseCase(ledger, gen, cfg.Billing, log)
	dashboardUC := appanalytics.NewDashboardUseCase(ledger)
	exportUC := reports.NewExportUseCase(ledger, infrapdf.NewMarotoReportGenerator())

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
		Title:    "Inventario Desk API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Ledger:      ledger,
		AuthUC:      authUC,
		UserUC:      userUC,
		SubsUC:      subsUC,
		DashboardUC: dashboardUC,
		ExportUC:    exportUC,
		JWTSecret:   cfg.JWT.Secret,
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
