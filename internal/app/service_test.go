package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradingJournal/config"
	"tradingJournal/internal/analytics"
	"tradingJournal/internal/domain"
	"tradingJournal/internal/ports"
)

// Mock implementations
type mockLogger struct {
	debugMsgs []string
	infoMsgs  []string
	warnMsgs  []string
	errorMsgs []string
}

func (m *mockLogger) Debug(ctx context.Context, msg string, fields ...map[string]interface{}) {
	m.debugMsgs = append(m.debugMsgs, msg)
}

func (m *mockLogger) Info(ctx context.Context, msg string, fields ...map[string]interface{}) {
	m.infoMsgs = append(m.infoMsgs, msg)
}

func (m *mockLogger) Warn(ctx context.Context, msg string, fields ...map[string]interface{}) {
	m.warnMsgs = append(m.warnMsgs, msg)
}

func (m *mockLogger) Error(ctx context.Context, err error, msg string, fields ...map[string]interface{}) {
	m.errorMsgs = append(m.errorMsgs, msg)
}

type mockTradeRepo struct {
	trades  []domain.Trade
	nextID  int64
	failAll error
}

func (m *mockTradeRepo) Create(ctx context.Context, trade *domain.Trade) (int64, error) {
	if m.failAll != nil {
		return 0, m.failAll
	}
	m.nextID++
	trade.ID = m.nextID
	m.trades = append(m.trades, *trade)
	return trade.ID, nil
}

func (m *mockTradeRepo) Update(ctx context.Context, trade *domain.Trade) error {
	for i := range m.trades {
		if m.trades[i].ID == trade.ID {
			m.trades[i] = *trade
			return nil
		}
	}
	return fmt.Errorf("trade %d: %w", trade.ID, ports.ErrNotFound)
}

func (m *mockTradeRepo) Delete(ctx context.Context, id int64) error {
	for i := range m.trades {
		if m.trades[i].ID == id {
			m.trades = append(m.trades[:i], m.trades[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("trade %d: %w", id, ports.ErrNotFound)
}

func (m *mockTradeRepo) FindByID(ctx context.Context, id int64) (*domain.Trade, error) {
	for _, t := range m.trades {
		if t.ID == id {
			found := t
			return &found, nil
		}
	}
	return nil, nil
}

func (m *mockTradeRepo) FindAll(ctx context.Context) ([]domain.Trade, error) {
	if m.failAll != nil {
		return nil, m.failAll
	}
	out := make([]domain.Trade, len(m.trades))
	copy(out, m.trades)
	return out, nil
}

func (m *mockTradeRepo) Count(ctx context.Context) (int, error) {
	if m.failAll != nil {
		return 0, m.failAll
	}
	return len(m.trades), nil
}

func newTestService(t *testing.T) (*JournalService, *mockTradeRepo, *mockLogger) {
	t.Helper()
	repo := &mockTradeRepo{}
	log := &mockLogger{}
	svc, err := NewJournalService(&config.Config{ChartPeriod: analytics.PeriodAll}, log, repo)
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC) }
	return svc, repo, log
}

func validTrade() *domain.Trade {
	return &domain.Trade{
		Date:       domain.MustParseDate("2024-01-10"),
		Asset:      " MSFT ",
		Direction:  domain.Long,
		EntryPrice: decimal.NewFromInt(100),
		ExitPrice:  decimal.NewFromInt(110),
		Quantity:   decimal.NewFromInt(2),
	}
}

func TestNewJournalService_MissingDependencies(t *testing.T) {
	_, err := NewJournalService(nil, &mockLogger{}, &mockTradeRepo{})
	assert.Error(t, err)
	_, err = NewJournalService(&config.Config{}, nil, &mockTradeRepo{})
	assert.Error(t, err)
	_, err = NewJournalService(&config.Config{}, &mockLogger{}, nil)
	assert.Error(t, err)
}

func TestAddTrade(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Trade)
		wantErr bool
	}{
		{name: "valid trade", mutate: func(*domain.Trade) {}},
		{name: "missing asset", mutate: func(tr *domain.Trade) { tr.Asset = "  " }, wantErr: true},
		{name: "bad direction", mutate: func(tr *domain.Trade) { tr.Direction = "sideways" }, wantErr: true},
		{name: "zero entry price", mutate: func(tr *domain.Trade) { tr.EntryPrice = decimal.Zero }, wantErr: true},
		{name: "negative quantity", mutate: func(tr *domain.Trade) { tr.Quantity = decimal.NewFromInt(-1) }, wantErr: true},
		{name: "negative fees", mutate: func(tr *domain.Trade) { tr.Fees = decimal.NewFromInt(-1) }, wantErr: true},
		{name: "missing date", mutate: func(tr *domain.Trade) { tr.Date = time.Time{} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, log := newTestService(t)
			trade := validTrade()
			tt.mutate(trade)

			id, err := svc.AddTrade(context.Background(), trade)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ports.ErrValidation))
				assert.Empty(t, repo.trades)
				assert.NotEmpty(t, log.warnMsgs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), id)
			assert.Equal(t, "MSFT", repo.trades[0].Asset)
			assert.Contains(t, log.infoMsgs, "Trade added")
		})
	}
}

func TestAddTradeStoreFailure(t *testing.T) {
	svc, repo, log := newTestService(t)
	repo.failAll = ports.ErrDBConnection

	_, err := svc.AddTrade(context.Background(), validTrade())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrDBConnection))
	assert.Contains(t, log.errorMsgs, "Failed to save trade")
}

func TestUpdateAndDeleteTrade(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	trade := validTrade()
	_, err := svc.AddTrade(ctx, trade)
	require.NoError(t, err)

	trade.ExitPrice = decimal.NewFromInt(90)
	require.NoError(t, svc.UpdateTrade(ctx, trade))
	assert.True(t, repo.trades[0].ExitPrice.Equal(decimal.NewFromInt(90)))

	err = svc.UpdateTrade(ctx, &domain.Trade{})
	assert.True(t, errors.Is(err, ports.ErrInvalidRequest))

	require.NoError(t, svc.DeleteTrade(ctx, trade.ID))
	assert.Empty(t, repo.trades)

	err = svc.DeleteTrade(ctx, trade.ID)
	assert.True(t, errors.Is(err, ports.ErrNotFound))
}

func TestGetTrade(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetTrade(ctx, 1)
	assert.True(t, errors.Is(err, ports.ErrNotFound))

	id, err := svc.AddTrade(ctx, validTrade())
	require.NoError(t, err)

	found, err := svc.GetTrade(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "MSFT", found.Asset)
}

func TestSeedSampleData(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	n, err := svc.SeedSampleData(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Len(t, repo.trades, 3)

	// A second call must not duplicate the journal.
	n, err = svc.SeedSampleData(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Len(t, repo.trades, 3)
}

func TestDashboard(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SeedSampleData(ctx)
	require.NoError(t, err)

	dash, err := svc.Dashboard(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, analytics.PeriodAll, dash.Period)
	assert.Equal(t, 3, dash.Statistics.TotalTrades)
	assert.Equal(t, 67, dash.Statistics.WinRate)
	assert.Equal(t, "93.5", dash.Statistics.TotalProfit.String())
	assert.Equal(t, analytics.Streaks{
		CurrentStreak:     1,
		CurrentStreakType: domain.OutcomeWin,
		MaxWinningStreak:  1,
		MaxLosingStreak:   1,
	}, dash.Streaks)
	require.NotNil(t, dash.BestTrade)
	assert.Equal(t, "AAPL", dash.BestTrade.Asset)
	assert.Equal(t, []string{"AAPL", "BTC", "GOOGL"}, dash.Assets)
	assert.Equal(t, 4, dash.Series.Len())
	assert.True(t, dash.Series.Values[0].IsZero())
	assert.Equal(t, "93.5", dash.Series.Values[3].String())
	assert.Len(t, dash.Monthly, 1)
	assert.False(t, dash.AverageRiskReward.IsZero())
}

func TestDashboardEmptyJournal(t *testing.T) {
	svc, _, _ := newTestService(t)

	dash, err := svc.Dashboard(context.Background(), analytics.Period7D)
	require.NoError(t, err)

	assert.Nil(t, dash.BestTrade)
	assert.Equal(t, 0, dash.Statistics.WinRate)
	assert.Equal(t, analytics.StreakNone, dash.Streaks.CurrentStreakType)
	assert.Equal(t, 0, dash.Series.Len())
}

func TestListTrades(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.SeedSampleData(ctx)
	require.NoError(t, err)

	winners, err := svc.ListTrades(ctx, analytics.TradeFilter{Outcome: domain.OutcomeWin})
	require.NoError(t, err)
	assert.Len(t, winners, 2)

	repo.failAll = ports.ErrQueryFailed
	_, err = svc.ListTrades(ctx, analytics.TradeFilter{})
	assert.True(t, errors.Is(err, ports.ErrQueryFailed))
}
