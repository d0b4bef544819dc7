package app

import (
	"github.com/shopspring/decimal"

	"tradingJournal/internal/domain"
)

// sampleTrades is the demo journal inserted into an empty store on request.
func sampleTrades() []domain.Trade {
	return []domain.Trade{
		{
			Date:       domain.MustParseDate("2024-01-15"),
			Asset:      "AAPL",
			Direction:  domain.Long,
			EntryPrice: decimal.RequireFromString("185.50"),
			ExitPrice:  decimal.RequireFromString("192.75"),
			Quantity:   decimal.NewFromInt(10),
			Fees:       decimal.RequireFromString("5.00"),
			StopLoss:   domain.DecimalPtr(182.00),
			TakeProfit: domain.DecimalPtr(195.00),
			Strategy:   "swing",
			Emotion:    "confident",
			Setup:      "Breakout above resistance with high volume",
			Notes:      "Perfect entry timing, exited at target",
		},
		{
			Date:       domain.MustParseDate("2024-01-18"),
			Asset:      "GOOGL",
			Direction:  domain.Long,
			EntryPrice: decimal.RequireFromString("142.30"),
			ExitPrice:  decimal.RequireFromString("140.50"),
			Quantity:   decimal.NewFromInt(5),
			Fees:       decimal.RequireFromString("5.00"),
			StopLoss:   domain.DecimalPtr(141.00),
			TakeProfit: domain.DecimalPtr(146.00),
			Strategy:   "day",
			Emotion:    "anxious",
			Setup:      "Oversold bounce attempt",
			Notes:      "Should have waited for confirmation, premature entry",
		},
		{
			Date:       domain.MustParseDate("2024-01-22"),
			Asset:      "BTC",
			Direction:  domain.Short,
			EntryPrice: decimal.NewFromInt(42000),
			ExitPrice:  decimal.NewFromInt(41500),
			Quantity:   decimal.RequireFromString("0.1"),
			Fees:       decimal.RequireFromString("10.00"),
			StopLoss:   domain.DecimalPtr(42500),
			TakeProfit: domain.DecimalPtr(41000),
			Strategy:   "swing",
			Emotion:    "neutral",
			Setup:      "Resistance rejection with bearish divergence",
			Notes:      "Good risk management, perfect execution",
		},
	}
}
