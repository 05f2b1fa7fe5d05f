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

	"alma_leads_backend/internal/adapters/storage"
	"alma_leads_backend/internal/auth"
	"alma_leads_backend/internal/email"
	"alma_leads_backend/internal/events"
	apphttp "alma_leads_backend/internal/http"
	"alma_leads_backend/internal/http/router"
	"alma_leads_backend/internal/leads"
	"alma_leads_backend/internal/notification"
	"alma_leads_backend/platform/config"
	"alma_leads_backend/platform/db"
	"alma_leads_backend/platform/logger"
	"alma_leads_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	backend, uploadDir, err := initStorageBackend(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize storage backend", "error", err)
		panic("failed to initialize storage backend: " + err.Error())
	}

	sender := email.NewSender(cfg, log)

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	// Notification module subscribes to domain events (not HTTP-facing)
	notificationModule := notification.New(sender, cfg, log)
	notificationModule.RegisterHandlers(eventBus)

	authModule := auth.NewModule(cfg, val, log)
	leadsModule := leads.NewModule(pool, backend, eventBus, val, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:    cfg,
		Logger:    log,
		Health:    db.NewPoolAdapter(pool),
		EventBus:  eventBus,
		UploadDir: uploadDir,
		Modules: []apphttp.Module{
			authModule,
			leadsModule,
		},
	}

	engine := router.New(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// initStorageBackend selects the configured resume storage backend. The
// returned uploadDir is non-empty only for the local driver, where the router
// serves it statically.
func initStorageBackend(ctx context.Context, cfg *config.Config, log *logger.Logger) (storage.Backend, string, error) {
	switch cfg.GetStorageDriver() {
	case config.StorageDriverMinIO:
		backend, err := storage.NewMinIOBackend(cfg)
		if err != nil {
			return nil, "", err
		}
		if err := withRetry(ctx, log, "ensure resume bucket", 5, 2*time.Second, func() error {
			return backend.EnsureBucketExists(ctx)
		}); err != nil {
			return nil, "", err
		}
		log.Info("storage backend initialized", "driver", "minio", "bucket", cfg.GetMinIOBucketResumes())
		return backend, "", nil
	default:
		backend, err := storage.NewLocalBackend(cfg.GetUploadDir())
		if err != nil {
			return nil, "", err
		}
		log.Info("storage backend initialized", "driver", "local", "dir", cfg.GetUploadDir())
		return backend, cfg.GetUploadDir(), nil
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
