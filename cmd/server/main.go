package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"launch-dashboard-service/internal/adapters/repositories"
	"launch-dashboard-service/internal/adapters/sources"
	"launch-dashboard-service/internal/api"
	"launch-dashboard-service/internal/config"
	"launch-dashboard-service/internal/dashboard"
	"launch-dashboard-service/internal/domain"
	"launch-dashboard-service/internal/platform/db"
	"launch-dashboard-service/internal/platform/obs"
	"launch-dashboard-service/internal/ports"
)

// main is the application composition root.
// It loads the launch dataset from the configured source and starts the HTTP server.
func main() {
	found, err := config.LoadDotEnv()
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := obs.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if !found {
		logger.Info("no .env file found (using environment variables)")
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ds, err := loadDataset(ctx, cfg.Dataset, logger)
	if err != nil {
		return err
	}

	metrics := obs.NewMetrics()
	metrics.SetDatasetRecords(ds.Len())

	router, err := api.NewRouter(dashboard.New(ds, logger, metrics), logger, metrics)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.HTTP.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// loadDataset reads every launch record once; the dataset is immutable afterwards.
func loadDataset(ctx context.Context, cfg config.DatasetConfig, logger *zap.Logger) (*domain.Dataset, error) {
	src, closeSrc, err := openSource(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	defer func() { _ = closeSrc() }()

	records, err := src.LoadLaunches(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	ds, err := domain.NewDataset(records)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	logger.Info("dataset loaded",
		zap.String("source", cfg.Source),
		zap.Int("records", ds.Len()),
		zap.Float64("min_payload_kg", ds.MinPayload()),
		zap.Float64("max_payload_kg", ds.MaxPayload()),
		zap.Strings("sites", ds.Sites()),
	)
	return ds, nil
}

func openSource(ctx context.Context, cfg config.DatasetConfig) (ports.LaunchSource, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Source {
	case config.SourceCSV:
		return sources.NewCSVFileSource(cfg.Path), noop, nil

	case config.SourceSQLite, config.SourcePostgres:
		driver, dsn := db.DriverSQLite, cfg.SQLitePath
		if cfg.Source == config.SourcePostgres {
			driver, dsn = db.DriverPostgres, cfg.DatabaseURL
		}
		conn, err := db.Open(driver, dsn)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewSQLLaunchRepository(conn), conn.Close, nil

	case config.SourceS3:
		src, err := sources.NewS3Source(ctx, sources.S3Config{
			Bucket:    cfg.S3.Bucket,
			Key:       cfg.S3.Key,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			PathStyle: cfg.S3.PathStyle,
		})
		if err != nil {
			return nil, nil, err
		}
		return src, noop, nil
	}

	return nil, nil, fmt.Errorf("unknown dataset source %q", cfg.Source)
}
