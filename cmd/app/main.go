package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"pharmaledger/cmd"
	pharmahttp "pharmaledger/internal/adapters/in/http"
	"pharmaledger/internal/adapters/out/postgres"
	"pharmaledger/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultShipmentStaleThreshold = 72 * time.Hour

func main() {
	configs := getConfigs()

	gormDB := openDB(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
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
		ShipmentStaleThreshold: goDotEnvVariable("SHIPMENT_STALE_THRESHOLD"),
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

func openDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	staleThreshold := defaultShipmentStaleThreshold
	if configs.ShipmentStaleThreshold != "" {
		parsed, err := time.ParseDuration(configs.ShipmentStaleThreshold)
		if err != nil {
			log.Fatalf("Invalid SHIPMENT_STALE_THRESHOLD: %v", err)
		}
		staleThreshold = parsed
	}

	jobManager := jobs.NewJobManager(
		app.CreateGetInTransitShipmentsQueryHandler(),
		staleThreshold,
		newLogger(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(pharmahttp.RequestLogger(newLogger()))
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := pharmahttp.NewServer(
		pharmahttp.HeaderIdentityResolver{},
		app.CreateRegisterCompanyCommandHandler(),
		app.CreateAddDrugCommandHandler(),
		app.CreateCreatePurchaseOrderCommandHandler(),
		app.CreateCreateShipmentCommandHandler(),
		app.CreateUpdateShipmentCommandHandler(),
		app.CreateRetailDrugCommandHandler(),
		app.CreateGetDrugQueryHandler(),
		app.CreateGetDrugHistoryQueryHandler(),
		app.CreateGetInTransitShipmentsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
