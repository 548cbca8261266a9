package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	cartapp "github.com/shopline/backend/internal/application/cart"
	catalogapp "github.com/shopline/backend/internal/application/catalog"
	checkoutapp "github.com/shopline/backend/internal/application/checkout"
	customerapp "github.com/shopline/backend/internal/application/customer"
	reviewapp "github.com/shopline/backend/internal/application/review"
	wishlistapp "github.com/shopline/backend/internal/application/wishlist"
	"github.com/shopline/backend/internal/domain/shared"
	"github.com/shopline/backend/internal/infrastructure/cache"
	"github.com/shopline/backend/internal/infrastructure/config"
	"github.com/shopline/backend/internal/infrastructure/logger"
	"github.com/shopline/backend/internal/infrastructure/migration"
	"github.com/shopline/backend/internal/infrastructure/payment"
	"github.com/shopline/backend/internal/infrastructure/persistence"
	"github.com/shopline/backend/internal/infrastructure/storage"
	"github.com/shopline/backend/internal/infrastructure/telemetry"
	"github.com/shopline/backend/internal/interfaces/http/handler"
	"github.com/shopline/backend/internal/interfaces/http/middleware"
	"github.com/shopline/backend/internal/interfaces/http/router"
	"github.com/shopline/backend/migrations"
	"go.uber.org/zap"
)

const serviceVersion = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting shop backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	// Tracing
	tp, err := telemetry.NewTracerProvider(startupCtx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    serviceVersion,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	if cfg.Database.AutoMigrate {
		if err := applySchema(db, &cfg.Database, log); err != nil {
			log.Fatal("Failed to apply database schema", zap.Error(err))
		}
	}

	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		DBName:          cfg.Database.DBName,
		TracerProvider:  tp.Provider(),
	}, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	ratingRepo := persistence.NewGormRatingRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	addressRepo := persistence.NewGormAddressRepository(db.DB)
	wishlistRepo := persistence.NewGormWishlistRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	txManager := persistence.NewGormTxManager(db.DB)

	// Infrastructure adapters
	images, err := newImageStore(startupCtx, &cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize image storage", zap.Error(err))
	}

	idempotency, err := newIdempotencyStore(startupCtx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize webhook idempotency store", zap.Error(err))
	}
	if closer, ok := idempotency.(interface{ Close() error }); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				log.Error("Error closing idempotency store", zap.Error(err))
			}
		}()
	}

	gateway := payment.NewStripeCheckoutGateway(cfg.Stripe, log)

	// Application services
	presenter := catalogapp.NewPresenter(images, log)
	catalogService := catalogapp.NewCatalogService(productRepo, categoryRepo, reviewRepo, ratingRepo, presenter, images, log)
	cartService := cartapp.NewCartService(cartRepo, productRepo, txManager, presenter, log)
	reviewService := reviewapp.NewReviewService(reviewRepo, ratingRepo, productRepo, userRepo, txManager, log)
	wishlistService := wishlistapp.NewWishlistService(wishlistRepo, productRepo, userRepo, presenter, log)
	customerService := customerapp.NewCustomerService(userRepo, addressRepo, log)
	checkoutService := checkoutapp.NewCheckoutService(cartRepo, orderRepo, gateway, idempotency, txManager, presenter, checkoutapp.Config{
		Currency:    cfg.Stripe.Currency,
		SuccessURL:  cfg.Stripe.SuccessURL,
		CancelURL:   cfg.Stripe.CancelURL,
		VATFeeCents: cfg.Stripe.VATFeeCents,
		EventTTL:    cfg.Idempotency.TTL,
	}, log)

	// HTTP
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware order:
	// 1. RequestID - generate or propagate the request ID
	// 2. Tracing - server span, then request_id/cart_code span attributes
	// 3. Recovery - catch panics
	// 4. Logger - log requests
	// 5. Security headers, CORS, body limit, rate limit
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.SpanAttributes())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	securityConfig := middleware.DefaultSecurityConfig()
	securityConfig.HSTSEnabled = cfg.App.Env == "production"
	engine.Use(middleware.Secure(securityConfig))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		defer rateLimiter.Stop()
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	handlers := router.Handlers{
		Catalog:  handler.NewCatalogHandler(catalogService),
		Cart:     handler.NewCartHandler(cartService),
		Review:   handler.NewReviewHandler(reviewService),
		Wishlist: handler.NewWishlistHandler(wishlistService),
		Customer: handler.NewCustomerHandler(customerService),
		Checkout: handler.NewCheckoutHandler(checkoutService),
		Webhook:  handler.NewStripeWebhookHandler(checkoutService),
		Health:   handler.NewHealthHandler(db),
	}
	router.RegisterHealth(engine, handlers.Health)
	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(router.ShopGroups(handlers)...).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		log.Info("Shutting down server...", zap.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("Server failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}

// applySchema runs the embedded SQL migrations on postgres and gorm
// AutoMigrate on the other drivers
func applySchema(db *persistence.Database, cfg *config.DatabaseConfig, log *zap.Logger) error {
	if cfg.Driver != config.DriverPostgres {
		log.Info("Running gorm AutoMigrate", zap.String("driver", cfg.Driver))
		return db.AutoMigrate()
	}
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return migration.Run(sqlDB, migrations.FS, log)
}

// newImageStore presigns image URLs from S3 when storage is enabled and
// joins keys onto a public base URL otherwise
func newImageStore(ctx context.Context, cfg *config.StorageConfig, log *zap.Logger) (catalogapp.ImageStore, error) {
	if !cfg.Enabled {
		log.Info("Object storage disabled, serving public image URLs",
			zap.String("base_url", cfg.PublicBaseURL))
		return storage.NewPublicImageStore(cfg.PublicBaseURL), nil
	}
	store, err := storage.NewS3ImageStore(ctx, cfg, storage.WithLogger(log))
	if err != nil {
		return nil, err
	}
	log.Info("Using S3 image storage", zap.String("bucket", store.Bucket()))
	return store, nil
}

// newIdempotencyStore returns nil when webhook de-duplication is disabled
func newIdempotencyStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (shared.IdempotencyStore, error) {
	if !cfg.Idempotency.Enabled {
		log.Warn("Webhook idempotency store disabled")
		return nil, nil
	}
	return cache.NewIdempotencyStoreFactory(cfg.Redis, cfg.Idempotency, cache.WithLogger(log)).
		CreateStore(ctx)
}
