package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/mero_khata/internal/adapters/cache"
	"github.com/SscSPs/mero_khata/internal/adapters/remote"
	"github.com/SscSPs/mero_khata/internal/core/domain"
	"github.com/SscSPs/mero_khata/internal/core/services"
	"github.com/SscSPs/mero_khata/internal/handlers"
	"github.com/SscSPs/mero_khata/internal/middleware"
	"github.com/SscSPs/mero_khata/internal/platform/config"
	"github.com/SscSPs/mero_khata/internal/platform/httpserver"
	"github.com/SscSPs/mero_khata/internal/utils"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title Mero Khata API
// @version 1.0
// @description Customer credit ledger and shop expense tracker.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// run returns instead of exiting so its deferred cleanup always happens
	if err := run(logger); err != nil {
		logger.Error("Backend stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	domain.DefaultShopName = cfg.DefaultShopName

	limiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("invalid rate limit %q: %w", cfg.RateLimit, err)
	}

	ctx, stop := signal.NotifyContext(middleware.WithLogger(context.Background(), logger), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container := services.NewBackendContainer(
		remote.NewHTTPDocumentStore(cfg.RemoteStoreURL, cfg.RemoteTimeout),
		cache.NewFileCache(cfg.CacheDir),
		services.BackendSettings{
			Location:       cfg.Location,
			NoticeCapacity: cfg.NoticeCapacity,
			PushTimeout:    cfg.RemoteTimeout,
		},
	)

	doc, source := container.Gateway.Load(ctx)
	logger.Info("Document loaded",
		slog.String("source", string(source)),
		slog.String("shopName", doc.ShopName),
		slog.Int("customers", len(doc.Customers)),
		slog.Int("expenses", len(doc.Expenses)),
	)

	unsubscribe := container.Gateway.Subscribe(func(doc domain.Document) {
		logger.Debug("Document saved",
			slog.Int("customers", len(doc.Customers)),
			slog.Int("expenses", len(doc.Expenses)),
		)
	})
	defer unsubscribe()

	tracker := utils.NewUsageTracker(cfg.PosthogAPIKey, cfg.PosthogEndpoint, cfg.InstanceID, logger)
	defer tracker.Close()

	if cfg.BackupSchedule != "" {
		scheduler := services.NewBackupScheduler(container.Export, cfg.BackupDir, cfg.BackupSchedule)
		if err := scheduler.Start(ctx); err != nil {
			return fmt.Errorf("failed to start backup scheduler: %w", err)
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()
			scheduler.Stop(stopCtx)
		}()
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(limiter),
		middleware.UsageTracking(tracker),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	handlers.RegisterBackendRoutes(r, cfg, container)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	return httpserver.Serve(ctx, srv, shutdownTimeout, logger)
}
