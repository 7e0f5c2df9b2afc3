package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fulfillment/cmd"
	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/sms"
	"fulfillment/internal/jobs"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
	if err := postgres.Verify(gormDB); err != nil {
		log.Fatalf("Schema verification failed: %v", err)
	}

	smsClient, err := sms.NewClient(configs.SMSGatewayURL, configs.SMSGatewayAPIKey)
	if err != nil {
		log.Fatalf("SMS client setup failed: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, smsClient, logger)

	jobManager := jobs.NewJobManager(
		app.CreateGetOverdueDeliveriesQueryHandler(),
		overdueThreshold(configs),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		SMSGatewayURL:       goDotEnvVariable("SMS_GATEWAY_URL"),
		SMSGatewayAPIKey:    goDotEnvVariable("SMS_GATEWAY_API_KEY"),
		OverdueAfterMinutes: goDotEnvVariable("OVERDUE_AFTER_MINUTES"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	return db
}

func overdueThreshold(configs cmd.Config) time.Duration {
	minutes, err := strconv.Atoi(configs.OverdueAfterMinutes)
	if err != nil || minutes <= 0 {
		minutes = 120
	}
	return time.Duration(minutes) * time.Minute
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateTransitionOrderCommandHandler(),
		app.CreateAssignDriverCommandHandler(),
		app.CreateCancelDeliveryCommandHandler(),
		app.CreateRescheduleDeliveryCommandHandler(),
		app.CreateMarkDeliveredCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetUndeliveredOrdersQueryHandler(),
		app.CreateGetActiveDeliveriesQueryHandler(),
	)
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Web server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down web server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Web server shutdown failed", "error", err)
	}
}
