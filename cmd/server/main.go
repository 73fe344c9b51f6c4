/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the saju engine HTTP server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration (defaults, optional YAML file, SAJU_* env)
  2. Build the zap logger
  3. Build the engine (evaluation year, allocator)
  4. Initialize SQLite store
  5. Import the seed roster, if configured
  6. Configure HTTP router and start serving

COMMAND-LINE FLAGS:
  -config  Path to a YAML config file (optional)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close database connection
  4. Exit

EXAMPLES:
  # Defaults: port 8080, ./saju.db
  ./server

  # In-memory database, pinned evaluation year
  SAJU_DATABASE_PATH=":memory:" SAJU_ENGINE_EVALUATION_YEAR=2026 ./server

  # File config
  ./server -config=./saju.yaml

SEE ALSO:
  - api/server.go: Router configuration
  - config/load.go: Configuration sources
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/warp/saju-engine/api"
	"github.com/warp/saju-engine/config"
	"github.com/warp/saju-engine/logging"
	"github.com/warp/saju-engine/roster"
	"github.com/warp/saju-engine/saju"
	"github.com/warp/saju-engine/store/sqlite"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	engine, err := saju.NewEngine(cfg.Engine.EngineOptions())
	if err != nil {
		return fmt.Errorf("invalid engine configuration: %w", err)
	}

	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer store.Close()

	if cfg.Roster.Seed != "" {
		if err := seedRoster(context.Background(), store, engine, cfg.Roster.Seed, logger); err != nil {
			return err
		}
	}

	handler := api.NewHandler(store, engine, logger)
	router := api.NewRouter(handler, cfg.Server.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting",
			zap.Int("port", cfg.Server.Port),
			zap.String("database", cfg.Database.Path),
			zap.Int("evaluation_year", engine.EvaluationYear()),
			zap.String("apportionment", string(engine.Method())),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}

// seedRoster imports the configured roster into the store.
func seedRoster(ctx context.Context, store *sqlite.Store, engine *saju.Engine, path string, logger *zap.Logger) error {
	r, err := roster.Load(path)
	if err != nil {
		return err
	}
	computed, err := roster.Compute(r, engine)
	if err != nil {
		return err
	}

	profiles := make([]sqlite.Profile, len(computed))
	for i, c := range computed {
		profiles[i] = sqlite.Profile{
			ID:           c.ID,
			Name:         c.Name,
			Category:     c.Category,
			BirthDate:    c.BirthDate,
			BirthHour:    c.BirthHour,
			Constitution: c.Constitution,
		}
	}
	if err := store.SaveProfiles(ctx, profiles); err != nil {
		return fmt.Errorf("failed to seed roster %s: %w", path, err)
	}

	logger.Info("Seed roster imported",
		zap.String("path", path),
		zap.Int("profiles", len(profiles)),
		zap.Int("duplicates", r.Duplicates),
	)
	return nil
}
