package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/tu-usuario/business-dashboard/internal/application/analytics"
	"github.com/tu-usuario/business-dashboard/internal/application/auth"
	"github.com/tu-usuario/business-dashboard/internal/application/seed"
	"github.com/tu-usuario/business-dashboard/internal/infrastructure/csvstore"
	httpRouter "github.com/tu-usuario/business-dashboard/internal/interfaces/http"
	"github.com/tu-usuario/business-dashboard/pkg/config"
	"github.com/tu-usuario/business-dashboard/pkg/logger"
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
		Str("data_dir", cfg.Data.Dir).
		Msg("iniciando aplicación")

	store := csvstore.NewStore(cfg.Data.Dir)
	repos := seed.Repos{
		Products:    csvstore.NewProductRepository(store),
		Inventory:   csvstore.NewInventoryRepository(store),
		Sales:       csvstore.NewSalesRepository(store),
		Purchases:   csvstore.NewPurchaseRepository(store),
		Expenses:    csvstore.NewExpenseRepository(store),
		Employees:   csvstore.NewEmployeeRepository(store),
		Performance: csvstore.NewPerformanceRepository(store),
	}

	var rng *rand.Rand
	if cfg.Data.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Data.Seed))
	}
	seeder := seed.NewUseCase(repos, rng)

	// Los datasets demo se generan en el primer arranque; los siguientes
	// reutilizan los CSV existentes.
	generated, err := seeder.EnsureInitialData()
	if err != nil {
		log.Fatal().Err(err).Msg("bootstrap de datos")
	}
	if generated {
		log.Info().Str("dir", cfg.Data.Dir).Msg("datasets sintéticos generados")
	}

	dashboardUC := appanalytics.NewDashboardUseCase(repos.Sales, repos.Inventory)
	inventoryUC := appanalytics.NewInventoryUseCase(repos.Inventory, repos.Sales, repos.Purchases)
	salesUC := appanalytics.NewSalesUseCase(repos.Sales)
	purchaseUC := appanalytics.NewPurchaseUseCase(repos.Purchases)
	performanceUC := appanalytics.NewPerformanceUseCase(repos.Performance, repos.Sales, repos.Expenses)
	reportUC := appanalytics.NewReportUseCase(repos.Sales, repos.Expenses)

	authUC, err := auth.NewAuthUseCase(auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar cuentas demo")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Business Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Auth: httpRouter.NewAuthHandler(authUC),
		Reports: httpRouter.NewReportHandlers(
			dashboardUC, inventoryUC, salesUC, purchaseUC, performanceUC, reportUC,
		),
		Admin:     httpRouter.NewAdminHandler(seeder, log),
		JWTSecret: cfg.JWT.Secret,
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
