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

	"orehaul/cmd"
	httpserver "orehaul/internal/adapters/in/http"
	"orehaul/internal/pkg/openapi"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	configs := getConfigs()

	logger, err := newLogger(configs.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	root, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		logger.Fatal("failed to build composition root", zap.Error(err))
	}
	defer root.Close()

	// The contract is embedded in the binary, so a broken document should
	// fail the process at startup rather than the first validated request.
	if _, err := openapi.NewValidatorFromBytes(httpserver.OpenAPISpecBytes()); err != nil {
		logger.Fatal("invalid OpenAPI document", zap.Error(err))
	}

	server := httpserver.NewServer(
		root.CreateRegisterVehicleCommandHandler(),
		root.CreateRegisterOperatorCommandHandler(),
		root.CreateAssignVehicleCommandHandler(),
		root.CreateOpenOperationCommandHandler(),
		root.CreateValidateOperationCommandHandler(),
		root.CreateFinalizeOperationCommandHandler(),
		root.CreateIngestOperationCommandHandler(),
		root.CreateGetFleetQueryHandler(),
		root.CreateGetOpenOperationsQueryHandler(),
		root.CreateGetWarehouseInventoryQueryHandler(),
		root.CreateGetOperationReportQueryHandler(),
		logger,
	)

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	server.RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(root.Metrics().Handler()))

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Fatal("failed to start jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	if err := jobManager.RunAllOnce(context.Background()); err != nil {
		logger.Warn("initial job run failed", zap.Error(err))
	}

	go func() {
		err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped unexpectedly", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("port", configs.HTTPPort))

	waitForShutdown(e, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, using environment variables")
	}

	return cmd.Config{
		HTTPPort:                  getEnv("HTTP_PORT", "8080"),
		LogLevel:                  getEnv("LOG_LEVEL", "info"),
		KafkaHost:                 os.Getenv("KAFKA_HOST"),
		KafkaOperationEventsTopic: getEnv("KAFKA_OPERATION_EVENTS_TOPIC", "operation-events"),
		StockReportSchedule:       getEnv("STOCK_REPORT_SCHEDULE", "*/30 * * * * *"),
		MetricsRefreshSchedule:    getEnv("METRICS_REFRESH_SCHEDULE", "*/5 * * * * *"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newLogger(level string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(parsed)

	return config.Build()
}

// waitForShutdown blocks until an interrupt or SIGTERM is received, then
// drains the HTTP server.
func waitForShutdown(e *echo.Echo, logger *zap.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
