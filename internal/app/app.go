package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"atelier-backoffice/internal/config"
	"atelier-backoffice/internal/derive"
	"atelier-backoffice/internal/domain"
	httpHandler "atelier-backoffice/internal/handler/http"
	promMetrics "atelier-backoffice/internal/metrics"
	mw "atelier-backoffice/internal/middleware"
	"atelier-backoffice/internal/repository/staticdata"
	"atelier-backoffice/internal/service"
	"atelier-backoffice/internal/statustext"
)

type App struct {
	cfg           *config.Config
	log           *slog.Logger
	router        *gin.Engine
	server        *http.Server
	metricsServer *http.Server
}

// MustNewApp загружает статические данные и собирает приложение.
// Ошибка загрузки авторских файлов фатальна: лучше не стартовать,
// чем показывать сломанную картину.
func MustNewApp(cfg *config.Config, log *slog.Logger) *App {
	const op = "app.MustNewApp"
	log = log.With(slog.String("op", op))

	log.Info("Loading static data...")

	productRepo, err := staticdata.NewProductRepository(log, cfg.Data.ProductsPath)
	if err != nil {
		log.Error("CRITICAL: Failed to load product catalog", slog.String("error", err.Error()))
		panic(fmt.Sprintf("failed to load product catalog: %v", err))
	}

	shipmentRepo, err := staticdata.NewShipmentRepository(log, cfg.Data.ShipmentsPath, cfg.Derive.StrictSizes)
	if err != nil {
		log.Error("CRITICAL: Failed to load shipment configurations", slog.String("error", err.Error()))
		panic(fmt.Sprintf("failed to load shipment configurations: %v", err))
	}

	depositRepo, err := staticdata.NewDepositRepository(log, cfg.Data.DepositsPath)
	if err != nil {
		log.Error("CRITICAL: Failed to load deposits", slog.String("error", err.Error()))
		panic(fmt.Sprintf("failed to load deposits: %v", err))
	}

	log.Info("Static data loaded successfully")

	return NewApp(cfg, log, productRepo, shipmentRepo, depositRepo)
}

func NewApp(
	cfg *config.Config,
	log *slog.Logger,
	productRepo *staticdata.ProductRepository,
	shipmentRepo *staticdata.ShipmentRepository,
	depositRepo *staticdata.DepositRepository,
) *App {
	const op = "app.NewApp"
	log = log.With(slog.String("op", op))
	log.Info("Initializing application components...")

	metricsCollector := promMetrics.NewCollector()
	metricsServer := promMetrics.RunMetricsServer(":" + cfg.Metrics.Port)
	log.Info("Metrics server configured", slog.String("port", cfg.Metrics.Port))

	vocab := statustext.Vocabulary{
		Paid:        cfg.Vocabulary.Paid,
		NotPaid:     cfg.Vocabulary.NotPaid,
		Partial:     cfg.Vocabulary.Partial,
		PaidCodes:   cfg.Vocabulary.PaidCodes,
		UnpaidCodes: cfg.Vocabulary.UnpaidCodes,
	}
	// Некорректный размер-корзина в конфиге сведётся к значению по
	// умолчанию внутри NewDeriver.
	deriver := derive.NewDeriver(vocab, derive.Options{
		FallbackSize: domain.Size(cfg.Derive.FallbackSize),
	})

	catalogService := service.NewCatalogService(log, productRepo, shipmentRepo, metricsCollector)
	shipmentService := service.NewShipmentService(log, productRepo, shipmentRepo, deriver, metricsCollector)
	moneyService := service.NewMoneyService(log, productRepo, shipmentRepo, depositRepo, deriver, metricsCollector)

	catalogHandler := httpHandler.NewCatalogHandler(log, catalogService)
	shipmentHandler := httpHandler.NewShipmentHandler(log, shipmentService, vocab)
	moneyHandler := httpHandler.NewMoneyHandler(log, moneyService)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(mw.Recovery(log))
	logMiddleware := mw.NewLoggingMiddleware(log)
	router.Use(logMiddleware.LogRequest)
	router.Use(mw.PrometheusMiddleware(metricsCollector))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api")
	{
		productsGroup := apiGroup.Group("/products")
		{
			productsGroup.GET("", catalogHandler.GetProducts)
			productsGroup.GET("/:productId", catalogHandler.GetProductByID)
		}
		shipmentsGroup := apiGroup.Group("/shipments")
		{
			shipmentsGroup.GET("", shipmentHandler.GetShipments)
			shipmentsGroup.GET("/years", shipmentHandler.GetShipmentYears)
			shipmentsGroup.GET("/:shipmentId/rows", shipmentHandler.GetShipmentRows)
		}
		apiGroup.GET("/money", moneyHandler.GetMoney)
	}

	httpServer := &http.Server{
		Addr:         ":" + cfg.HTTPServer.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  1 * time.Minute,
	}
	log.Info("HTTP server configured", slog.String("port", cfg.HTTPServer.Port))

	log.Info("Application components initialized successfully")

	return &App{
		cfg:           cfg,
		log:           log,
		router:        router,
		server:        httpServer,
		metricsServer: metricsServer,
	}
}

func (a *App) GetRouter() *gin.Engine {
	return a.router
}

func (a *App) Run() {
	const op = "App.Run"
	log := a.log.With(slog.String("op", op))
	errChan := make(chan error, 2)

	go func() {
		log.Info("Starting main HTTP server", slog.String("address", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server ListenAndServe error", slog.String("error", err.Error()))
			errChan <- fmt.Errorf("http server failed: %w", err)
		} else {
			log.Info("HTTP server stopped listening")
		}
	}()

	go func() {
		log.Info("Starting Metrics server", slog.String("address", a.metricsServer.Addr))
		if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Metrics server ListenAndServe error", slog.String("error", err.Error()))
			errChan <- fmt.Errorf("metrics server failed: %w", err)
		} else {
			log.Info("Metrics server stopped listening")
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		log.Error("Server failed to start or run, initiating shutdown", slog.String("error", err.Error()))
	case sig := <-shutdownChan:
		log.Info("Shutdown signal received, initiating graceful shutdown", slog.String("signal", sig.String()))
	}

	log.Info("Starting graceful shutdown...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := a.metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server graceful shutdown failed", slog.String("error", err.Error()))
	} else {
		log.Info("Metrics server stopped gracefully")
	}

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server graceful shutdown failed", slog.String("error", err.Error()))
	} else {
		log.Info("HTTP server stopped gracefully")
	}

	log.Info("Graceful shutdown completed")
}
