package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"requisition/cmd"
	httpin "requisition/internal/adapters/in/http"
	"requisition/internal/adapters/out/postgres/packagingtyperepo"
	"requisition/internal/adapters/out/postgres/requisitionrepo"
	"requisition/internal/core/domain/model/packaging"
	"requisition/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)
	mustSeedCatalog(&app, logger)

	jobManager := jobs.NewJobManager(
		app.CreateReleaseForDispatchCommandHandler(),
		app.CreateAssignBatchCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
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
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&requisitionrepo.RequisitionDTO{},
		&requisitionrepo.RequisitionItemDTO{},
		&requisitionrepo.PackagingItemDTO{},
		&packagingtyperepo.SlotCostDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

// mustSeedCatalog writes the default slot-cost catalog, leaving any
// operator-adjusted rows untouched.
func mustSeedCatalog(app *cmd.CompositionRoot, logger *slog.Logger) {
	defaults := []struct {
		packagingType packaging.Type
		weightKg      string
		volumeM3      string
	}{
		{packaging.Parcel, "10", "0.5"},
		{packaging.Crate, "100", "2"},
		{packaging.Pallet, "500", "6"},
	}

	costs := make([]packaging.SlotCost, 0, len(defaults))
	for _, entry := range defaults {
		cost, err := packaging.NewSlotCost(
			entry.packagingType,
			decimal.RequireFromString(entry.weightKg),
			decimal.RequireFromString(entry.volumeM3),
		)
		if err != nil {
			log.Fatalf("Invalid default slot cost: %v", err)
		}
		costs = append(costs, cost)
	}

	if err := app.CreateCatalogRepository().Seed(context.Background(), costs); err != nil {
		log.Fatalf("Failed to seed slot-cost catalog: %v", err)
	}
	logger.Info("Slot-cost catalog seeded", "entries", len(costs))
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateSubmitRequisitionCommandHandler(),
		app.CreateTransitionRequisitionCommandHandler(),
		app.CreateGetActiveRequisitionsQueryHandler(),
		app.CreateGetReadyForBatchingQueryHandler(),
		app.CreatePreviewPackagingQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
