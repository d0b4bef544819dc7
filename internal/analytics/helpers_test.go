package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"tradingJournal/internal/domain"
)

// longTrade builds a one-unit long trade whose profit is exit - entry.
func longTrade(id int64, date string, entry, exit float64) domain.Trade {
	return domain.Trade{
		ID:         id,
		Date:       domain.MustParseDate(date),
		Asset:      "TEST",
		Direction:  domain.Long,
		EntryPrice: decimal.NewFromFloat(entry),
		ExitPrice:  decimal.NewFromFloat(exit),
		Quantity:   decimal.NewFromInt(1),
		Fees:       decimal.Zero,
	}
}

// tradesWithProfits returns one trade per profit on consecutive days starting 2024-01-01.
func tradesWithProfits(profits ...float64) []domain.Trade {
	start := domain.MustParseDate("2024-01-01")
	trades := make([]domain.Trade, len(profits))
	for i, p := range profits {
		date := start.AddDate(0, 0, i).Format(domain.DateLayout)
		trades[i] = longTrade(int64(i+1), date, 1000, 1000+p)
	}
	return trades
}

func sampleTrades() []domain.Trade {
	return []domain.Trade{
		{
			ID: 1, Date: domain.MustParseDate("2024-01-15"), Asset: "AAPL", Direction: domain.Long,
			EntryPrice: decimal.RequireFromString("185.50"), ExitPrice: decimal.RequireFromString("192.75"),
			Quantity: decimal.NewFromInt(10), Fees: decimal.RequireFromString("5.00"),
			StopLoss: domain.DecimalPtr(182.00), TakeProfit: domain.DecimalPtr(195.00),
		},
		{
			ID: 2, Date: domain.MustParseDate("2024-01-18"), Asset: "GOOGL", Direction: domain.Long,
			EntryPrice: decimal.RequireFromString("142.30"), ExitPrice: decimal.RequireFromString("140.50"),
			Quantity: decimal.NewFromInt(5), Fees: decimal.RequireFromString("5.00"),
			StopLoss: domain.DecimalPtr(141.00), TakeProfit: domain.DecimalPtr(146.00),
		},
		{
			ID: 3, Date: domain.MustParseDate("2024-01-22"), Asset: "BTC", Direction: domain.Short,
			EntryPrice: decimal.NewFromInt(42000), ExitPrice: decimal.NewFromInt(41500),
			Quantity: decimal.RequireFromString("0.1"), Fees: decimal.RequireFromString("10.00"),
			StopLoss: domain.DecimalPtr(42500), TakeProfit: domain.DecimalPtr(41000),
		},
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "expected %s, got %s", want, got.String())
}

func assertDecimals(t *testing.T, want []string, got []decimal.Decimal) {
	t.Helper()
	if !assert.Len(t, got, len(want)) {
		return
	}
	for i := range want {
		assertDecimal(t, want[i], got[i])
	}
}

func day(s string) time.Time {
	return domain.MustParseDate(s)
}
