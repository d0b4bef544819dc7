package main

import (
	"context"
	"flag"
	"log"

	"tradingJournal/config"
	"tradingJournal/internal/adapters/logger"
	"tradingJournal/internal/adapters/sqlite"
	"tradingJournal/internal/app"
	"tradingJournal/internal/utils"
)

func main() {
	inFlag := flag.String("in", "", "CSV file to import")
	flag.Parse()
	if *inFlag == "" {
		log.Fatal("FATAL: -in is required")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}
	appLogger := logger.New(cfg.LogFormat, cfg.LogLevel)
	defer logger.Sync(appLogger)
	ctx := context.Background()

	trades, err := utils.ReadTradesFromCSV(*inFlag)
	if err != nil {
		log.Fatalf("FATAL: Failed to read %s: %v", *inFlag, err)
	}

	repo, err := sqlite.NewRepository(sqlite.Config{DBPath: cfg.DBPath, Logger: appLogger})
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database repository: %v", err)
	}
	defer repo.Close()

	journal, err := app.NewJournalService(cfg, appLogger, repo)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize journal service: %v", err)
	}

	// Rows that fail validation are logged and skipped.
	imported, skipped := 0, 0
	for i := range trades {
		if _, err := journal.AddTrade(ctx, &trades[i]); err != nil {
			skipped++
			appLogger.Warn(ctx, "Skipping trade", map[string]interface{}{"row": i + 2, "error": err.Error()})
			continue
		}
		imported++
	}
	appLogger.Info(ctx, "Import finished", map[string]interface{}{"file": *inFlag, "imported": imported, "skipped": skipped})
}
