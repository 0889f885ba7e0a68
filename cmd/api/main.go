package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/tiendadbii/tienda-api/docs"
	"github.com/tiendadbii/tienda-api/internal/application/sales"
	"github.com/tiendadbii/tienda-api/internal/application/usecase"
	infrapdf "github.com/tiendadbii/tienda-api/internal/infrastructure/pdf"
	"github.com/tiendadbii/tienda-api/internal/infrastructure/postgres"
	httpRouter "github.com/tiendadbii/tienda-api/internal/interfaces/http"
	"github.com/tiendadbii/tienda-api/pkg/config"
	"github.com/tiendadbii/tienda-api/pkg/logger"
	"github.com/tiendadbii/tienda-api/pkg/metrics"
	"github.com/tiendadbii/tienda-api/pkg/validation"
)

// @title        Tienda API
// @version      1.0
// @description  Backend REST de la tienda: productos, empleados, clientes y registro de ventas.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migración del esquema")
		}
		log.Info().Msg("esquema aplicado")
	}

	productRepo := postgres.NewProductRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	scheduleRepo := postgres.NewScheduleRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	m := metrics.New("tienda")

	createSaleUC := sales.NewCreateSaleUseCase(txRunner, employeeRepo, productRepo, log, sales.WithRecorder(m))
	saleQueryUC := sales.NewQueryUseCase(saleRepo)
	receiptUC := sales.NewReceiptUseCase(saleRepo,
		infrapdf.NewReceiptGenerator(cfg.Store.Name, cfg.Store.Currency, cfg.Store.Locale))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestIDMiddleware())
	app.Use(httpRouter.AccessLogMiddleware(log))
	app.Use(m.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tienda API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "db_unavailable", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", m.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		CreateSale: createSaleUC,
		SaleQuery:  saleQueryUC,
		Receipt:    receiptUC,
		ProductUC:  usecase.NewProductUseCase(productRepo),
		EmployeeUC: usecase.NewEmployeeUseCase(employeeRepo, scheduleRepo),
		CustomerUC: usecase.NewCustomerUseCase(customerRepo),
		Validator:  validation.New(),
		Logger:     log,
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
