package app

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"tradingJournal/config"
	"tradingJournal/internal/analytics"
	"tradingJournal/internal/domain"
	"tradingJournal/internal/ports"
)

// JournalService coordinates the trade store and the analytics engine.
// It owns validation and logging; the engine itself stays pure.
type JournalService struct {
	cfg      *config.Config
	logger   ports.Logger
	repo     ports.TradeRepository
	validate *validator.Validate
	now      func() time.Time
}

// Dashboard is everything the presentation layer needs for the summary view.
type Dashboard struct {
	GeneratedAt       time.Time
	Period            analytics.Period
	Statistics        analytics.Statistics
	Streaks           analytics.Streaks
	AverageRiskReward decimal.Decimal
	BestTrade         *domain.Trade // nil for an empty journal
	Series            analytics.Series
	Monthly           []analytics.MonthlyProfit
	Assets            []string
}

// NewJournalService creates a new application service instance.
func NewJournalService(cfg *config.Config, logger ports.Logger, repo ports.TradeRepository) (*JournalService, error) {
	if cfg == nil || logger == nil || repo == nil {
		return nil, fmt.Errorf("missing required dependencies for JournalService")
	}
	return &JournalService{
		cfg:      cfg,
		logger:   logger,
		repo:     repo,
		validate: newValidator(),
		now:      time.Now,
	}, nil
}

// AddTrade validates and stores a new trade, returning its ID.
func (s *JournalService) AddTrade(ctx context.Context, trade *domain.Trade) (int64, error) {
	if err := validateTrade(s.validate, trade); err != nil {
		s.logger.Warn(ctx, "Rejected invalid trade", map[string]interface{}{"error": err.Error()})
		return 0, err
	}
	id, err := s.repo.Create(ctx, trade)
	if err != nil {
		s.logger.Error(ctx, err, "Failed to save trade", map[string]interface{}{"asset": trade.Asset})
		return 0, fmt.Errorf("add trade: %w", err)
	}
	s.logger.Info(ctx, "Trade added", map[string]interface{}{
		"tradeID": id,
		"asset":   trade.Asset,
		"profit":  analytics.Profit(*trade).StringFixed(2),
	})
	return id, nil
}

// UpdateTrade validates and replaces an existing trade. The ID must already exist.
func (s *JournalService) UpdateTrade(ctx context.Context, trade *domain.Trade) error {
	if trade == nil || trade.ID <= 0 {
		return fmt.Errorf("update requires a trade ID: %w", ports.ErrInvalidRequest)
	}
	if err := validateTrade(s.validate, trade); err != nil {
		s.logger.Warn(ctx, "Rejected invalid trade update", map[string]interface{}{"tradeID": trade.ID, "error": err.Error()})
		return err
	}
	if err := s.repo.Update(ctx, trade); err != nil {
		return fmt.Errorf("update trade %d: %w", trade.ID, err)
	}
	s.logger.Info(ctx, "Trade updated", map[string]interface{}{"tradeID": trade.ID})
	return nil
}

// DeleteTrade removes a trade by ID.
func (s *JournalService) DeleteTrade(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete trade %d: %w", id, err)
	}
	s.logger.Info(ctx, "Trade deleted", map[string]interface{}{"tradeID": id})
	return nil
}

// GetTrade returns a single trade, or an error wrapping ports.ErrNotFound.
func (s *JournalService) GetTrade(ctx context.Context, id int64) (*domain.Trade, error) {
	trade, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get trade %d: %w", id, err)
	}
	if trade == nil {
		return nil, fmt.Errorf("trade %d: %w", id, ports.ErrNotFound)
	}
	return trade, nil
}

// Snapshot reads the full trade collection once. Analytics run on the returned copy.
func (s *JournalService) Snapshot(ctx context.Context) ([]domain.Trade, error) {
	trades, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load trades: %w", err)
	}
	return trades, nil
}

// ListTrades returns the trades matching filter in insertion order.
func (s *JournalService) ListTrades(ctx context.Context, filter analytics.TradeFilter) ([]domain.Trade, error) {
	trades, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.Filter(trades, filter), nil
}

// Dashboard computes every summary metric from one snapshot of the journal.
// An empty period falls back to the configured chart period.
func (s *JournalService) Dashboard(ctx context.Context, period analytics.Period) (*Dashboard, error) {
	if period == "" {
		period = s.cfg.ChartPeriod
	}
	trades, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	dash := &Dashboard{
		GeneratedAt:       now,
		Period:            period,
		Statistics:        analytics.ComputeStatistics(trades),
		Streaks:           analytics.ConsecutiveStats(trades),
		AverageRiskReward: analytics.AverageRiskReward(trades),
		Series:            analytics.PerformanceSeries(trades, period, now),
		Monthly:           analytics.MonthlyProfits(trades),
		Assets:            analytics.UniqueAssets(trades),
	}
	if best, ok := analytics.BestTrade(trades); ok {
		dash.BestTrade = &best
	}

	s.logger.Debug(ctx, "Dashboard computed", map[string]interface{}{
		"trades": dash.Statistics.TotalTrades,
		"period": string(period),
		"points": dash.Series.Len(),
	})
	return dash, nil
}

// SeedSampleData inserts the demo trades when the journal is empty.
// It returns the number of trades inserted.
func (s *JournalService) SeedSampleData(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed sample data: %w", err)
	}
	if count > 0 {
		s.logger.Debug(ctx, "Journal not empty, skipping sample data", map[string]interface{}{"trades": count})
		return 0, nil
	}

	inserted := 0
	for _, t := range sampleTrades() {
		trade := t
		if _, err := s.AddTrade(ctx, &trade); err != nil {
			return inserted, fmt.Errorf("seed sample data: %w", err)
		}
		inserted++
	}
	s.logger.Info(ctx, "Sample data inserted", map[string]interface{}{"trades": inserted})
	return inserted, nil
}
