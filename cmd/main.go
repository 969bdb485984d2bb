package main

import (
	"github.com/joho/godotenv"

	"github.com/apptrack/apptrack/config"
	"github.com/apptrack/apptrack/internal/app"
	"github.com/apptrack/apptrack/internal/db"
	"github.com/apptrack/apptrack/internal/logger"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		logger.Debugf("No .env file found: %v", err)
	}

	logger.InitializeAndConfigure()

	database, err := db.New(db.OptionsFromEnv())
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	server := app.New(database)

	port := config.GetEnv("PORT", "3001")
	logger.Infof("Record store listening on port %s", port)
	logger.Fatal(server.Listen(":" + port))
}
