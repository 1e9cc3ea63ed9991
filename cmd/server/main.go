package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	campaignapp "github.com/scanlink/backend/internal/application/campaign"
	financeapp "github.com/scanlink/backend/internal/application/finance"
	trackingapp "github.com/scanlink/backend/internal/application/tracking"
	tradeapp "github.com/scanlink/backend/internal/application/trade"
	"github.com/scanlink/backend/internal/infrastructure/cache"
	"github.com/scanlink/backend/internal/infrastructure/config"
	"github.com/scanlink/backend/internal/infrastructure/enrichment"
	"github.com/scanlink/backend/internal/infrastructure/logger"
	"github.com/scanlink/backend/internal/infrastructure/persistence"
	"github.com/scanlink/backend/internal/infrastructure/qrcode"
	"github.com/scanlink/backend/internal/infrastructure/telemetry"
	"github.com/scanlink/backend/internal/interfaces/http/handler"
	"github.com/scanlink/backend/internal/interfaces/http/middleware"
	"github.com/scanlink/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting ScanLink Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Telemetry providers are no-ops when disabled
	ctx := context.Background()
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.Endpoint,
		SamplingRatio:     cfg.Telemetry.SampleRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          true,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.Endpoint,
		ExportInterval:    cfg.Telemetry.MetricPeriod,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          true,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	scanMetrics, err := telemetry.NewScanMetrics(meterProvider.Meter("scanlink"))
	if err != nil {
		log.Fatal("Failed to initialize scan metrics", zap.Error(err))
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if tracerProvider.IsEnabled() {
		if err := db.DB.Use(otelgorm.NewPlugin(otelgorm.WithoutQueryVariables())); err != nil {
			log.Warn("Failed to register database tracing", zap.Error(err))
		}
	}

	// The same store backs the short-link resolver and generated assets.
	// Without Redis a process-local store serves both.
	var store cache.Store
	if cfg.Redis.Enabled {
		redisStore, err := cache.NewRedisStore(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.App.Name)
		if err != nil {
			log.Fatal("Failed to connect to redis", zap.Error(err))
		}
		store = redisStore
		log.Info("Redis cache connected", zap.String("addr", cfg.Redis.Addr()))
	} else {
		store = cache.NewInMemoryStore()
		log.Info("Using in-memory cache")
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Error closing cache store", zap.Error(err))
		}
	}()

	// Repositories
	campaignRepo := persistence.NewGormCampaignRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	merchantRepo := persistence.NewGormMerchantRepository(db.DB)
	scanRepo := persistence.NewGormScanRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	payoutRepo := persistence.NewGormPayoutRepository(db.DB)

	// Enrichment clients
	geocoder := enrichment.NewNominatimGeocoder(cfg.Enrichment.GeocodeBaseURL, cfg.Enrichment.UserAgent, cfg.Enrichment.Timeout)
	weather := enrichment.NewOpenMeteoProvider(cfg.Enrichment.WeatherBaseURL, cfg.Enrichment.Timeout)

	// Application services
	campaignService := campaignapp.NewCampaignService(campaignRepo, productRepo)
	assetService := campaignapp.NewAssetService(campaignRepo, qrcode.NewGenerator(), store, cfg.Links.PublicBase)
	resolverService := campaignapp.NewResolverService(campaignRepo, store, cfg.Redis.ResolverTTL, cfg.Links.FrontendBase, scanMetrics)
	ingestService := trackingapp.NewIngestService(scanRepo, campaignRepo, geocoder, weather, cfg.Enrichment.Timeout, log, scanMetrics)
	aggregationService := trackingapp.NewAggregationService(scanRepo, campaignRepo)
	settlementService := financeapp.NewSettlementService(payoutRepo, productRepo, campaignRepo, merchantRepo, log)
	txRunner := persistence.NewGormTxRunner(db.DB)
	orderService := tradeapp.NewOrderService(orderRepo, productRepo, campaignRepo, scanRepo, settlementService, txRunner, log, scanMetrics)

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	if tracerProvider.IsEnabled() {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}
	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewCampaignHandler(campaignService, assetService))
	r.Register(handler.NewScanHandler(ingestService))
	r.Register(handler.NewReportHandler(aggregationService))
	r.Register(handler.NewOrderHandler(orderService))
	r.RegisterPublic(handler.NewRedirectHandler(assetService, resolverService))
	r.RegisterPublic(handler.NewSystemHandler(db.Ping))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down meter provider", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down tracer provider", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
