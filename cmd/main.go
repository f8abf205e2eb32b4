package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/uom/internal/adapters/http/api"
	"github.com/okian/uom/internal/app"
	"github.com/okian/uom/internal/config"
	"github.com/okian/uom/internal/domain/prefs"
	"github.com/okian/uom/internal/domain/unit"
	"github.com/okian/uom/internal/migrate"
	"github.com/okian/uom/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Build display preferences: metric defaults overlaid with configuration.
	units, _ := prefs.Default().Snapshot()
	for f, u := range cfg.Preferences {
		units[unit.Family(f)] = unit.Unit(u)
	}
	preferences, err := prefs.New(units)
	if err != nil {
		log.Error(ctx, "invalid preference configuration", logger.Error(err))
		return
	}

	// Create the service with configuration options
	svc := app.New(
		app.WithLogger(log.Named("app")),
		app.WithPreferences(preferences),
		app.WithPrecision(cfg.Precision),
		app.WithMigrator(migrate.New(migrate.WithWorkers(cfg.MigrateWorkers))),
	)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.NewServer(svc).Router(),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "http server listening", logger.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "http server failed", logger.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "graceful shutdown failed", logger.Error(err))
		return
	}
	log.Info(shutdownCtx, "server stopped")
}
