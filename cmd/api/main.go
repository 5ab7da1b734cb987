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

	"github.com/jhoicas/printops-api/internal/application/auth"
	"github.com/jhoicas/printops-api/internal/application/dashboard"
	"github.com/jhoicas/printops-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/printops-api/internal/infrastructure/pdf"
	"github.com/jhoicas/printops-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/printops-api/internal/interfaces/http"
	"github.com/jhoicas/printops-api/pkg/config"
	"github.com/jhoicas/printops-api/pkg/logger"
	"github.com/jhoicas/printops-api/pkg/metrics"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	met := metrics.New()

	// Repositorios
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	skuRepo := postgres.NewSKURepository(pool)
	impresoraRepo := postgres.NewImpresoraRepository(pool)
	compatRepo := postgres.NewCompatibilidadRepository(pool)
	reqRepo := postgres.NewRequerimientoRepository(pool)
	histRepo := postgres.NewHistoricoRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	skuUC := usecase.NewSKUUseCase(skuRepo)
	impresoraUC := usecase.NewImpresoraUseCase(impresoraRepo, clienteRepo)
	compatUC := usecase.NewCompatibilidadUseCase(compatRepo, skuRepo)
	reqUC := usecase.NewRequerimientoUseCase(txRunner, reqRepo, histRepo, clienteRepo, impresoraRepo)
	dashboardUC := dashboard.NewUseCase(reporteRepo, log, met, dashboard.Config{
		TopN:  cfg.Dashboard.TopN,
		Meses: cfg.Dashboard.Meses,
	})

	// PDF: exportación del resumen del panel
	pdfGenerator := infrapdf.NewReportePDFGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware(met))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PrintOps API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(met.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		DashboardUC:      dashboardUC,
		ResumenPDF:       pdfGenerator,
		ClienteUC:        clienteUC,
		SKUUC:            skuUC,
		ImpresoraUC:      impresoraUC,
		CompatibilidadUC: compatUC,
		RequerimientoUC:  reqUC,
		JWTSecret:        cfg.JWT.Secret,
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
