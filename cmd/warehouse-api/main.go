package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-desk/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/inventario-desk/internal/interfaces/http"
	"github.com/jhoicas/inventario-desk/pkg/config"
	"github.com/jhoicas/inventario-desk/pkg/ids"
	"github.com/jhoicas/inventario-desk/pkg/logger"
)

// Perfil relacional: CRUD de bodegas sobre PostgreSQL, sin compartir estado
// con el documento JSON del perfil principal.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().Str("env", cfg.App.Env).Msg("iniciando warehouse-api")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	warehouseRepo := postgres.NewWarehouseRepository(pool)

	app := fiber.New(fiber.Config{
		AppName:      "warehouse-api",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "warehouse-api"})
	})

	httpRouter.WarehouseRouter(app, warehouseRepo, ids.NewUUIDGenerator())

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

	log.Info().Msg("warehouse-api detenido")
}
