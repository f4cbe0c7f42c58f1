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

	"mealorders/cmd"
	"mealorders/internal/adapters/out/notify"
	"mealorders/internal/adapters/out/postgres"
	"mealorders/internal/adapters/out/rabbitmq"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	configs := getConfigs()

	appLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	publisher, closePublisher := newPublisher(configs, appLogger)
	notifier := notify.NewAsync(publisher, appLogger, notify.DefaultTimeout)

	app := cmd.NewCompositionRoot(configs, gormDB, notifier, appLogger)
	if err = app.BootstrapSuperAdmin(ctx); err != nil {
		log.Fatalf("Failed to register superadmin: %v", err)
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Failed to create jobs: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	runErr := run(ctx, app, configs.HTTPPort)

	jobManager.StopAll()
	notifier.Wait()
	closePublisher()

	if runErr != nil {
		log.Fatalf("Server stopped: %v", runErr)
	}
	appLogger.Info("Server stopped")
}

func getConfigs() cmd.Config {
	// .env is optional; variables set in the environment take precedence.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	config, err := cmd.ConfigFromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

// newPublisher connects to RabbitMQ when RABBITMQ_URL is set and logs notifications otherwise.
func newPublisher(configs cmd.Config, appLogger *slog.Logger) (notify.Publisher, func()) {
	if configs.RabbitMQURL == "" {
		appLogger.Warn("RABBITMQ_URL is not set, notifications are only logged")
		return notify.NewLogPublisher(appLogger), func() {}
	}

	publisher, err := rabbitmq.NewPublisher(configs.RabbitMQURL, configs.NotificationsExchange, appLogger)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	return publisher, func() {
		if closeErr := publisher.Close(); closeErr != nil {
			appLogger.Error("Failed to close RabbitMQ publisher", "error", closeErr)
		}
	}
}

// run serves HTTP until ctx is cancelled, then shuts the server down gracefully.
func run(ctx context.Context, app cmd.CompositionRoot, port string) error {
	server, err := app.CreateHTTPServer()
	if err != nil {
		return err
	}
	e := server.Echo()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
