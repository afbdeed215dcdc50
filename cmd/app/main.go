package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"domicilios/cmd"
	httpserver "domicilios/internal/adapters/in/http"
	"domicilios/internal/jobs"
)

func main() {
	config := getConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	root, err := cmd.NewCompositionRoot(config, logger)
	if err != nil {
		log.Fatalf("composition root: %v", err)
	}

	if config.DispatchJobEnabled {
		job := jobs.NewDispatchJob(
			root.CreateDispatchPendingCommandHandler(),
			config.DispatchSchedule,
			logger,
		)
		if err := job.Start(); err != nil {
			log.Fatalf("dispatch job: %v", err)
		}
		defer job.Stop()
	}

	startWebServer(&root, config.HTTPPort)
}

func getConfig() cmd.Config {
	// Missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:           envOr("HTTP_PORT", "8080"),
		Storage:            envOr("STORAGE", cmd.StorageJSON),
		DataDir:            envOr("DATA_DIR", "data"),
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             os.Getenv("DB_PORT"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBSslMode:          envOr("DB_SSLMODE", "disable"),
		SMSGatewayURL:      os.Getenv("SMS_GATEWAY_URL"),
		DispatchJobEnabled: os.Getenv("DISPATCH_JOB_ENABLED") == "true",
		DispatchSchedule:   os.Getenv("DISPATCH_SCHEDULE"),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	server := httpserver.NewServer(root.CreateHTTPHandlers())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
