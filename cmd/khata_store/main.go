package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/mero_khata/internal/adapters/database/pgsql"
	"github.com/SscSPs/mero_khata/internal/adapters/flatfile"
	"github.com/SscSPs/mero_khata/internal/core/domain"
	portsrepo "github.com/SscSPs/mero_khata/internal/core/ports/repositories"
	"github.com/SscSPs/mero_khata/internal/core/services"
	"github.com/SscSPs/mero_khata/internal/handlers"
	"github.com/SscSPs/mero_khata/internal/middleware"
	"github.com/SscSPs/mero_khata/internal/platform/config"
	"github.com/SscSPs/mero_khata/internal/platform/httpserver"
	"github.com/SscSPs/mero_khata/pkg/database"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const shutdownTimeout = 10 * time.Second

// khata_store serves the shared document that backend instances load and push.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// run returns instead of exiting so the database pool is always closed
	if err := run(logger); err != nil {
		logger.Error("Store stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	domain.DefaultShopName = cfg.DefaultShopName

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var repo portsrepo.DocumentRepository
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return fmt.Errorf("failed to initialize database pool: %w", err)
		}
		defer database.ClosePgxPool(dbPool)
		logger.Info("Database connection pool established.")

		if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		repo = pgsql.NewPgxDocumentRepository(dbPool)
	default:
		logger.Info("Using flat file store", slog.String("path", cfg.StoreFile))
		repo = flatfile.NewDocumentFile(cfg.StoreFile)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Any origin may read and write the document
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS([]string{"*"}))

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	handlers.RegisterStoreRoutes(r, services.NewStoreContainer(repo))

	srv := &http.Server{Addr: ":" + cfg.StorePort, Handler: r}
	return httpserver.Serve(ctx, srv, shutdownTimeout, logger)
}

// runMigrations applies the khata_documents schema using a temporary database/sql connection.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")
	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	// Check for dirty migrations after running Up.
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
