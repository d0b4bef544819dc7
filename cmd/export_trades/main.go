package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"tradingJournal/config"
	"tradingJournal/internal/adapters/logger"
	"tradingJournal/internal/adapters/sqlite"
	"tradingJournal/internal/analytics"
	"tradingJournal/internal/app"
	"tradingJournal/internal/domain"
	"tradingJournal/internal/ports"
	"tradingJournal/internal/utils"
)

func main() {
	outFlag := flag.String("out", "", "output path (defaults to EXPORT_DIR/trades_<date>.<format>)")
	formatFlag := flag.String("format", "csv", "csv or xlsx")
	assetFlag := flag.String("asset", "", "only export this asset")
	statusFlag := flag.String("status", "all", "win, loss or all")
	fromFlag := flag.String("from", "", "first trade date to include (YYYY-MM-DD)")
	toFlag := flag.String("to", "", "last trade date to include (YYYY-MM-DD)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}
	appLogger := logger.New(cfg.LogFormat, cfg.LogLevel)
	defer logger.Sync(appLogger)
	ctx := context.Background()

	write, err := writerFor(*formatFlag)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	filter, err := buildFilter(*assetFlag, *statusFlag, *fromFlag, *toFlag)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
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

	filename := *outFlag
	if filename == "" {
		filename = filepath.Join(cfg.ExportDir, fmt.Sprintf("trades_%s.%s", time.Now().Format("20060102"), *formatFlag))
	}

	count, err := exportTrades(ctx, journal, filter, write, filename)
	switch {
	case errors.Is(err, ports.ErrEmptyJournal):
		appLogger.Warn(ctx, "No trades to export", map[string]interface{}{"filename": filename})
	case err != nil:
		appLogger.Error(ctx, err, "Export failed", map[string]interface{}{"filename": filename})
	default:
		appLogger.Info(ctx, "Trades exported", map[string]interface{}{"filename": filename, "count": count})
	}
}

type tradeLister interface {
	ListTrades(ctx context.Context, filter analytics.TradeFilter) ([]domain.Trade, error)
}

type writeFunc func(trades []domain.Trade, filename string) error

// exportTrades writes the trades matching filter and returns how many were written.
// ports.ErrEmptyJournal is returned when nothing matches; no file is created then.
func exportTrades(ctx context.Context, journal tradeLister, filter analytics.TradeFilter, write writeFunc, filename string) (int, error) {
	trades, err := journal.ListTrades(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("load trades: %w", err)
	}
	if len(trades) == 0 {
		return 0, ports.ErrEmptyJournal
	}
	if err := write(trades, filename); err != nil {
		return 0, fmt.Errorf("write %s: %w", filename, err)
	}
	return len(trades), nil
}

func writerFor(format string) (writeFunc, error) {
	switch format {
	case "csv":
		return utils.WriteTradesToCSV, nil
	case "xlsx":
		return utils.WriteTradesToXLSX, nil
	}
	return nil, fmt.Errorf("unsupported format %q: %w", format, ports.ErrInvalidRequest)
}

func buildFilter(asset, status, from, to string) (analytics.TradeFilter, error) {
	filter := analytics.TradeFilter{Asset: asset}

	switch domain.Outcome(status) {
	case domain.OutcomeWin, domain.OutcomeLoss, domain.OutcomeAll:
		filter.Outcome = domain.Outcome(status)
	default:
		return filter, fmt.Errorf("invalid status %q: %w", status, ports.ErrInvalidRequest)
	}

	var err error
	if from != "" {
		if filter.From, err = domain.ParseDate(from); err != nil {
			return filter, err
		}
	}
	if to != "" {
		if filter.To, err = domain.ParseDate(to); err != nil {
			return filter, err
		}
	}
	return filter, nil
}
