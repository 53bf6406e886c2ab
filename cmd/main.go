package main

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

	"credit-engine/internal/api"
	"credit-engine/internal/batch"
	"credit-engine/internal/config"
	"credit-engine/internal/domain/credit"
	"credit-engine/internal/domain/customer"
	"credit-engine/internal/event"
	"credit-engine/internal/infrastructure/database/postgres"
	"credit-engine/internal/infrastructure/logging"

	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/robfig/cron/v3"
)

const (
	defaultSnapshotSchedule = "*/15 * * * *"
	defaultSnapshotTimeout  = 5 * time.Minute
	cronStopTimeout         = 15 * time.Second
	serverShutdownTimeout   = 20 * time.Second
)

// @title Credit Engine API
// @version 1.0
// @description Customer registration and credit request analysis.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, logger := initializeApp()

	dbPool := initializeDatabase(cfg, logger)
	defer closeDatabase(dbPool, logger)

	publisher, closePublisher := initializePublisher(cfg.RabbitMQ, logger)
	defer closePublisher()

	customerRepo := postgres.NewCustomerRepository(dbPool, logger)
	creditRepo := postgres.NewCreditRepository(dbPool, logger)
	customerService := customer.NewCustomerService(customerRepo, publisher, logger)
	creditService := credit.NewCreditService(creditRepo, customerService, publisher, logger)

	snapshotJob := batch.NewPortfolioSnapshotJob(creditRepo, logger)
	cronScheduler := startBatchJobs(cfg.Batch, logger, snapshotJob)

	router := api.SetupRouter(customerService, creditService, dbPool, cfg, logger)

	srv, serverErrors, shutdownChan := startServer(cfg, router, logger)
	handleShutdown(srv, cronScheduler, shutdownChan, serverErrors, logger)
}

func initializeApp() (*config.Config, *slog.Logger) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.Logger)
	logger.Info("Application starting...", "port", cfg.Server.Port, "auth_enabled", cfg.Server.Auth.Enabled, "rabbitmq_enabled", cfg.RabbitMQ.Enabled)
	return cfg, logger
}

func initializeDatabase(cfg *config.Config, logger *slog.Logger) *pgxpool.Pool {
	ctx := context.Background()
	dbPool, err := postgres.NewConnectionPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("Failed to initialize database connection pool", "error", err)
		os.Exit(1)
	}

	if cfg.Database.RunMigrations {
		if err := postgres.RunMigrations(ctx, dbPool, logger); err != nil {
			logger.Error("Failed to apply database migrations", "error", err)
			dbPool.Close()
			os.Exit(1)
		}
	}
	return dbPool
}

func closeDatabase(dbPool *pgxpool.Pool, logger *slog.Logger) {
	logger.Info("Closing database connection pool...")
	dbPool.Close()
}

func amqpURL(cfg config.RabbitMQConfig) string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", cfg.Username, cfg.Password, cfg.Host, cfg.Port)
}

// initializePublisher connects to RabbitMQ when enabled. Without a broker the
// service keeps running and events are dropped.
func initializePublisher(cfg config.RabbitMQConfig, logger *slog.Logger) (event.Publisher, func()) {
	noop := func() {}
	if !cfg.Enabled {
		logger.Info("RabbitMQ disabled, domain events will not be published")
		return event.NewNoopPublisher(logger), noop
	}

	conn, err := amqp.Dial(amqpURL(cfg))
	if err != nil {
		logger.Error("Failed to connect to RabbitMQ, falling back to no-op publisher", "host", cfg.Host, "error", err)
		return event.NewNoopPublisher(logger), noop
	}

	publisher, err := event.NewRabbitMQPublisher(conn, cfg.ExchangeName, logger)
	if err != nil {
		logger.Error("Failed to set up RabbitMQ publisher, falling back to no-op publisher", "error", err)
		_ = conn.Close()
		return event.NewNoopPublisher(logger), noop
	}

	logger.Info("Connected to RabbitMQ", "host", cfg.Host, "exchange", cfg.ExchangeName)
	return publisher, func() {
		if err := conn.Close(); err != nil {
			logger.Warn("Failed to close RabbitMQ connection", "error", err)
		}
	}
}

type batchJob interface {
	Run(ctx context.Context) error
}

func startBatchJobs(cfg config.BatchConfig, logger *slog.Logger, snapshotJob batchJob) *cron.Cron {
	c := cron.New()

	schedule := cfg.PortfolioSnapshotSchedule
	if schedule == "" {
		schedule = defaultSnapshotSchedule
		logger.Warn("Portfolio snapshot schedule not configured, using default", "schedule", schedule)
	}
	timeout := cfg.PortfolioSnapshotTimeout
	if timeout <= 0 {
		timeout = defaultSnapshotTimeout
	}

	jobID, err := c.AddFunc(schedule, func() {
		jobLogger := logger.With("job_name", "PortfolioSnapshot")
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if runErr := snapshotJob.Run(ctx); runErr != nil {
			jobLogger.Error("Portfolio snapshot job failed", slog.Any("error", runErr))
		}
	})
	if err != nil {
		logger.Error("Failed to schedule portfolio snapshot job", "schedule", schedule, slog.Any("error", err))
	} else {
		logger.Info("Scheduled portfolio snapshot job", "schedule", schedule, "job_id", jobID)
	}

	c.Start()
	return c
}

func startServer(cfg *config.Config, router http.Handler, logger *slog.Logger) (*http.Server, <-chan error, <-chan os.Signal) {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Server listening", "addr", srv.Addr)
		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serverErrors <- err
	}()
	return srv, serverErrors, shutdownChan
}

func handleShutdown(srv *http.Server, cronScheduler *cron.Cron, shutdownChan <-chan os.Signal, serverErrors <-chan error, logger *slog.Logger) {
	select {
	case sig := <-shutdownChan:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case err := <-serverErrors:
		if err != nil {
			logger.Error("Server exited unexpectedly", "error", err)
			os.Exit(1)
		}
		logger.Info("Server stopped before any signal")
		return
	}

	select {
	case <-cronScheduler.Stop().Done():
		logger.Info("Cron scheduler stopped")
	case <-time.After(cronStopTimeout):
		logger.Warn("Cron scheduler shutdown timed out")
	}

	ctx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server graceful shutdown failed, forcing close", "error", err)
		if err := srv.Close(); err != nil {
			logger.Error("HTTP server forced close failed", "error", err)
		}
	}

	select {
	case err := <-serverErrors:
		if err != nil {
			logger.Warn("Server goroutine exited with error after shutdown", "error", err)
		}
	case <-time.After(5 * time.Second):
		logger.Warn("Timed out waiting for server goroutine to exit")
	}

	logger.Info("Shutdown complete")
}
