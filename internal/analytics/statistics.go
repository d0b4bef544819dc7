package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"tradingJournal/internal/domain"
)

// Statistics holds portfolio-level metrics for a set of trades.
// A trade with zero profit counts as neither a win nor a loss here.
type Statistics struct {
	TotalTrades   int
	WinningTrades int
	LosingTrades  int
	WinRate       int // Percentage of winning trades, rounded to a whole number
	TotalProfit   decimal.Decimal
	AvgProfit     decimal.Decimal
	AvgWin        decimal.Decimal // Mean of positive profits, 0 if none
	AvgLoss       decimal.Decimal // Mean of negative profits, 0 if none
	LargestWin    decimal.Decimal // Never negative
	LargestLoss   decimal.Decimal // Never positive
	ProfitFactor  decimal.Decimal // |gross wins / gross losses|, 0 unless both exist
}

// ComputeStatistics calculates portfolio statistics from trades.
func ComputeStatistics(trades []domain.Trade) Statistics {
	stats := Statistics{
		TotalTrades:  len(trades),
		TotalProfit:  decimal.Zero,
		AvgProfit:    decimal.Zero,
		AvgWin:       decimal.Zero,
		AvgLoss:      decimal.Zero,
		LargestWin:   decimal.Zero,
		LargestLoss:  decimal.Zero,
		ProfitFactor: decimal.Zero,
	}
	if stats.TotalTrades == 0 {
		return stats
	}

	grossWin := decimal.Zero
	grossLoss := decimal.Zero
	for _, t := range trades {
		profit := Profit(t)
		stats.TotalProfit = stats.TotalProfit.Add(profit)

		switch profit.Sign() {
		case 1:
			stats.WinningTrades++
			grossWin = grossWin.Add(profit)
			if profit.GreaterThan(stats.LargestWin) {
				stats.LargestWin = profit
			}
		case -1:
			stats.LosingTrades++
			grossLoss = grossLoss.Add(profit)
			if profit.LessThan(stats.LargestLoss) {
				stats.LargestLoss = profit
			}
		}
	}

	stats.WinRate = int(decimal.NewFromInt(int64(stats.WinningTrades)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(stats.TotalTrades))).
		Round(0).
		IntPart())
	stats.AvgProfit = mean(stats.TotalProfit, stats.TotalTrades)
	stats.AvgWin = mean(grossWin, stats.WinningTrades)
	stats.AvgLoss = mean(grossLoss, stats.LosingTrades)

	if stats.WinningTrades > 0 && stats.LosingTrades > 0 {
		stats.ProfitFactor = grossWin.Div(grossLoss).Abs().Round(moneyPlaces)
	}

	return stats
}

// MonthlyProfit is the net profit realised in one calendar month.
type MonthlyProfit struct {
	Month  time.Time
	Profit decimal.Decimal
	Trades int
}

// MonthlyProfits groups trade profits by calendar month, oldest first.
func MonthlyProfits(trades []domain.Trade) []MonthlyProfit {
	byMonth := make(map[time.Time]*MonthlyProfit)
	for _, t := range trades {
		month := time.Date(t.Date.Year(), t.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		mp, ok := byMonth[month]
		if !ok {
			mp = &MonthlyProfit{Month: month, Profit: decimal.Zero}
			byMonth[month] = mp
		}
		mp.Profit = mp.Profit.Add(Profit(t))
		mp.Trades++
	}

	months := make([]MonthlyProfit, 0, len(byMonth))
	for _, mp := range byMonth {
		months = append(months, *mp)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month.Before(months[j].Month)
	})
	return months
}
