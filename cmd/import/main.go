package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/venturelink/venturelink-api/internal/database"
	"github.com/venturelink/venturelink-api/internal/logger"
	"github.com/venturelink/venturelink-api/internal/services"
	"github.com/venturelink/venturelink-api/pkg/config"
)

func main() {
	csvPath := flag.String("file", "", "path to the startups CSV file")
	flag.Parse()

	if *csvPath == "" {
		log.Fatal("usage: import -file <startups.csv>")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.New()

	appLog := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		appLog.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		appLog.Fatal("Failed to run migrations", err)
	}

	file, err := os.Open(*csvPath)
	if err != nil {
		appLog.Fatal("Failed to open CSV file", err, "path", *csvPath)
	}
	defer file.Close()

	svcs := services.NewServices(db.DB, cfg, nil, appLog)

	summary, err := svcs.Import.ImportCSV(file)
	if err != nil {
		appLog.Fatal("Import failed", err)
	}

	fmt.Printf("Import finished: %d total, %d imported, %d skipped, %d errors\n",
		summary.Total, summary.Imported, summary.Skipped, len(summary.Errors))
	for _, e := range summary.Errors {
		fmt.Println("  " + e)
	}
}
