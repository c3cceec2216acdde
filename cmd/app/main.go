package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"workshop/cmd"
	_ "workshop/docs"
	workshophttp "workshop/internal/adapters/in/http"
	"workshop/internal/adapters/out/postgres"
	"workshop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title			Workshop Workflow API
// @version		1.0
// @description	Order and task workflow engine for a furniture workshop.
// @BasePath		/api/v1
func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		WatchdogThresholdHours: goDotEnvVariable("WATCHDOG_THRESHOLD_HOURS"),
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

	// TranslateError is required so duplicate-key violations surface as
	// gorm.ErrDuplicatedKey, which the session store depends on.
	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	threshold, err := decimal.NewFromString(configs.WatchdogThresholdHours)
	if err != nil {
		log.Fatalf("Error parsing WATCHDOG_THRESHOLD_HOURS: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateGetOpenSessionsQueryHandler(), threshold, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := workshophttp.NewServer(workshophttp.ServerHandlers{
		CreateOrder:          app.CreateCreateOrderCommandHandler(),
		AssignOrderWorker:    app.CreateAssignOrderWorkerCommandHandler(),
		ReviewQuality:        app.CreateReviewQualityCommandHandler(),
		ConfirmPickup:        app.CreateConfirmPickupCommandHandler(),
		ScheduleInstallation: app.CreateScheduleInstallationCommandHandler(),
		ConfirmInstallation:  app.CreateConfirmInstallationCommandHandler(),
		ArchiveOrder:         app.CreateArchiveOrderCommandHandler(),
		HoldOrder:            app.CreateHoldOrderCommandHandler(),
		ResumeOrder:          app.CreateResumeOrderCommandHandler(),
		CancelOrder:          app.CreateCancelOrderCommandHandler(),
		DeleteOrder:          app.CreateDeleteOrderCommandHandler(),
		CreateTask:           app.CreateCreateTaskCommandHandler(),
		UpdateTask:           app.CreateUpdateTaskCommandHandler(),
		AssignTaskWorker:     app.CreateAssignTaskWorkerCommandHandler(),
		UpdateTaskStatus:     app.CreateUpdateTaskStatusCommandHandler(),
		DeleteTask:           app.CreateDeleteTaskCommandHandler(),
		StartSession:         app.CreateStartSessionCommandHandler(),
		StopSession:          app.CreateStopSessionCommandHandler(),
		AddInventoryItem:     app.CreateAddInventoryItemCommandHandler(),
		RestockItem:          app.CreateRestockInventoryItemCommandHandler(),
		ConsumeMaterial:      app.CreateConsumeMaterialCommandHandler(),
		GenerateInvoice:      app.CreateGenerateInvoiceCommandHandler(),
		DeleteInvoice:        app.CreateDeleteInvoiceCommandHandler(),
		GetOrderSummary:      app.CreateGetOrderSummaryQueryHandler(),
		GetOpenSessions:      app.CreateGetOpenSessionsQueryHandler(),
		GetInvoiceDetail:     app.CreateGetInvoiceDetailQueryHandler(),
	})

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
