package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "invite_studio/docs"
	"invite_studio/internal/adapter/http/handlers"
	"invite_studio/internal/adapter/http/routes"
	"invite_studio/internal/adapter/persistence/repository"
	"invite_studio/internal/infrastructure/cache"
	"invite_studio/internal/infrastructure/config"
	"invite_studio/internal/infrastructure/database"
	"invite_studio/internal/infrastructure/logger"
	"invite_studio/internal/infrastructure/metrics"
	"invite_studio/internal/infrastructure/payments"
	"invite_studio/internal/infrastructure/render"
	"invite_studio/internal/infrastructure/storage"
	"invite_studio/internal/usecase"
	"invite_studio/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// @title           Invite Studio API
// @version         1.0
// @description     Wedding invitation backend: uploads, templates, projects and Razorpay payments.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "invite_studio: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		ServiceName: "invite_studio",
		Environment: cfg.AppEnv,
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	db, err := database.ConnectGorm(cfg, log)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	templateRepo := repository.NewTemplateGormRepository(db)
	customizationRepo := repository.NewCustomizationGormRepository(db)

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}
	orderRepo := repository.NewPaymentOrderDynamoRepository(ddb, cfg.PaymentOrdersTable)

	s3Client, err := storage.NewS3Client(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("s3 client: %w", err)
	}
	if s3Client == nil {
		log.Warn("[storage][bootstrap] object storage not configured, uploads will fail")
	}
	objectStorage := storage.NewS3Gateway(s3Client, cfg.Storage, log)

	mode, err := payments.SelectGatewayMode(cfg.Payments, cfg.IsProduction())
	if err != nil {
		return err
	}
	gateway := payments.NewRazorpayGateway(mode, log)
	checkoutKeyID := ""
	if rm, ok := mode.(payments.RealMode); ok {
		checkoutKeyID = rm.KeyID
	}

	tracker := newUploadTracker(cfg, log)

	uploads := usecase.NewUploadUseCase(objectStorage, tracker, m, log)
	templates := usecase.NewTemplateUseCase(templateRepo, objectStorage, tracker, log)
	customizations := usecase.NewCustomizationUseCase(customizationRepo, templateRepo, render.NewStubRenderer(log), objectStorage, tracker, log)
	orders := usecase.NewPaymentOrderUseCase(orderRepo, customizationRepo, gateway, m, log)
	sweeper := usecase.NewOrphanSweepUseCase(tracker, objectStorage, customizationRepo, templateRepo, cfg.OrphanMaxAge, m, log)

	engine := routes.NewRouter(routes.Handlers{
		Upload:   handlers.NewUploadHandler(uploads, log),
		Template: handlers.NewTemplateHandler(templates, log),
		Project:  handlers.NewProjectHandler(customizations, log),
		Payment:  handlers.NewPaymentHandler(orders, checkoutKeyID, log),
	}, routes.Options{
		JWTSecret: cfg.AuthJWTSecret,
		Metrics:   m,
		Gatherer:  registry,
		Log:       log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.WithCORS(engine, cfg.CORSAllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go sweeper.Run(ctx, cfg.OrphanSweepInterval)

	errCh := make(chan error, 1)
	go func() {
		log.Info("[http][bootstrap] listening",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.AppEnv),
			zap.String("payment_mode", mode.Name()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("[http][bootstrap] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newUploadTracker prefers Redis so replicas share pending uploads, and falls
// back to an in-process tracker.
func newUploadTracker(cfg *config.Config, log *zap.Logger) interfaces.IUploadTracker {
	if cfg.RedisURL == "" {
		log.Info("[upload][bootstrap] REDIS_URL not set, tracking uploads in memory")
		return cache.NewMemoryTracker()
	}
	client, err := cache.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Warn("[upload][bootstrap] invalid REDIS_URL, tracking uploads in memory", zap.Error(err))
		return cache.NewMemoryTracker()
	}
	return cache.NewRedisTracker(client)
}
