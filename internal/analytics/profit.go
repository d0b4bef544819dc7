// Package analytics computes journal metrics from snapshots of trades.
//
// Every function takes the trade collection as an argument and returns a
// fresh result. Inputs are never mutated and no state is kept between calls,
// so callers may share one snapshot across goroutines.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"tradingJournal/internal/domain"
)

// moneyPlaces is the number of decimal places profits and averages are rounded to.
const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// Profit returns the net profit of a trade:
// (exit - entry) * sign(direction) * quantity - fees.
// The result is rounded to 2 places, half away from zero.
func Profit(t domain.Trade) decimal.Decimal {
	sign := decimal.NewFromInt(t.Direction.Sign())
	gross := t.ExitPrice.Sub(t.EntryPrice).Mul(sign).Mul(t.Quantity)
	return gross.Sub(t.Fees).Round(moneyPlaces)
}

// sortedByDate returns a copy of trades ordered by date ascending.
// Same-day trades are ordered by ID, then by their position in the input.
func sortedByDate(trades []domain.Trade) []domain.Trade {
	sorted := make([]domain.Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

func mean(sum decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(n))).Round(moneyPlaces)
}
