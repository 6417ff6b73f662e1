package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/acme-corp/churn-ingest/internal/cli"
	"github.com/acme-corp/churn-ingest/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appLog, err := logger.NewWithFile("logs")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLog.Close()

	rootCmd := cli.NewRootCmd(appLog)
	if err := rootCmd.Execute(); err != nil {
		appLog.Errorf("ETL job failed: %+v", err)
		appLog.Close()
		os.Exit(1)
	}
}
