package main

import (
	"context"
	"flag"
	"fmt"
	"log" // Use standard log only for fatal errors before or after the logger's lifetime
	"os"

	"tradingJournal/config"
	"tradingJournal/internal/adapters/logger"
	"tradingJournal/internal/adapters/sqlite"
	"tradingJournal/internal/analytics"
	"tradingJournal/internal/app"
	"tradingJournal/internal/report"
)

func main() {
	periodFlag := flag.String("period", "", "chart period: 7D, 1M, 3M, 1Y or ALL (defaults to CHART_PERIOD)")
	seedFlag := flag.Bool("seed", false, "insert sample trades into an empty journal")
	flag.Parse()

	if err := run(*periodFlag, *seedFlag); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func run(periodFlag string, seed bool) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	var period analytics.Period
	if periodFlag != "" {
		if period, err = analytics.ParsePeriod(periodFlag); err != nil {
			return err
		}
	}

	// 2. Initialize Logger
	appLogger := logger.New(cfg.LogFormat, cfg.LogLevel)
	defer logger.Sync(appLogger)
	ctx := context.Background()
	appLogger.Debug(ctx, "Logger initialized", map[string]interface{}{"level": cfg.LogLevel.String(), "format": string(cfg.LogFormat)})

	// 3. Initialize Repository (Database Adapter)
	repo, err := sqlite.NewRepository(sqlite.Config{
		DBPath: cfg.DBPath,
		Logger: appLogger,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			appLogger.Error(ctx, err, "Error closing database repository")
		}
	}()

	// 4. Initialize Application Service
	journal, err := app.NewJournalService(cfg, appLogger, repo)
	if err != nil {
		return fmt.Errorf("failed to initialize journal service: %w", err)
	}

	if cfg.SeedSampleData || seed {
		if _, err := journal.SeedSampleData(ctx); err != nil {
			appLogger.Error(ctx, err, "Failed to seed sample data")
		}
	}

	// 5. Build and print the dashboard
	dash, err := journal.Dashboard(ctx, period)
	if err != nil {
		return fmt.Errorf("failed to build dashboard: %w", err)
	}
	return report.WriteDashboard(os.Stdout, dash)
}
