package main

import (
	"fmt"
	"log/slog"
	"os"

	"logistrans/cmd"
	"logistrans/internal/adapters/out/postgres"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config, err := cmd.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := gorm.Open(gorm_postgres.Open(config.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app := cmd.NewCompositionRoot(config, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := app.NewJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e := echo.New()
	app.NewHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}
