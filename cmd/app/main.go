package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"fulfillment/cmd"
	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/auditrepo"
	"fulfillment/internal/adapters/out/postgres/commercerepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("Shutdown cleanup failed", "error", err)
		}
	}()

	jobManager := startJobs(&app, configs, logger)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaNotificationTopic: goDotEnvVariable("KAFKA_NOTIFICATION_TOPIC"),

		DelayedSweepSchedule:  goDotEnvVariable("DELAYED_SWEEP_SCHEDULE"),
		DelayedSweepThreshold: goDotEnvVariable("DELAYED_SWEEP_THRESHOLD"),
	}
	return config
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
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&commercerepo.CommerceOrderDTO{},
		&auditrepo.AuditRecordDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) *jobs.JobManager {
	threshold, err := time.ParseDuration(configs.DelayedSweepThreshold)
	if err != nil {
		log.Fatalf("Invalid DELAYED_SWEEP_THRESHOLD: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateMarkDelayedOrdersCommandHandler(),
		threshold,
		configs.DelayedSweepSchedule,
		logger,
	)

	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateFulfillmentOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateBulkOrderActionCommandHandler(),
		app.CreateAssignStaffCommandHandler(),
		app.CreateSetTrackingCommandHandler(),
		app.CreateSetRTOAddressCommandHandler(),
		app.CreateAddInternalNoteCommandHandler(),
		app.CreateSetOrderFlagsCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListActiveOrdersQueryHandler(),
		app.CreateGetOrderStatsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
