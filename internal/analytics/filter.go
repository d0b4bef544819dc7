package analytics

import (
	"sort"
	"time"

	"tradingJournal/internal/domain"
)

// TradeFilter narrows a trade list. Zero-valued fields match everything.
type TradeFilter struct {
	Asset     string
	Outcome   domain.Outcome   // OutcomeWin (profit > 0), OutcomeLoss (profit < 0) or OutcomeAll
	Direction domain.Direction // Long, Short or empty
	From      time.Time        // Inclusive lower date bound
	To        time.Time        // Inclusive upper date bound
}

// Matches reports whether a single trade passes the filter.
func (f TradeFilter) Matches(t domain.Trade) bool {
	if f.Asset != "" && t.Asset != f.Asset {
		return false
	}
	if f.Direction != "" && t.Direction != f.Direction {
		return false
	}
	switch f.Outcome {
	case domain.OutcomeWin:
		if !Profit(t).IsPositive() {
			return false
		}
	case domain.OutcomeLoss:
		if !Profit(t).IsNegative() {
			return false
		}
	}
	if !f.From.IsZero() && t.Date.Before(domain.TruncateDate(f.From)) {
		return false
	}
	if !f.To.IsZero() && t.Date.After(domain.TruncateDate(f.To)) {
		return false
	}
	return true
}

// Filter returns the trades matching f, keeping their input order.
func Filter(trades []domain.Trade, f TradeFilter) []domain.Trade {
	matched := make([]domain.Trade, 0, len(trades))
	for _, t := range trades {
		if f.Matches(t) {
			matched = append(matched, t)
		}
	}
	return matched
}

// BestTrade returns the trade with the highest profit.
// Ties go to the earliest trade in input order. ok is false for an empty list.
func BestTrade(trades []domain.Trade) (best domain.Trade, ok bool) {
	for i, t := range trades {
		if i == 0 || Profit(t).GreaterThan(Profit(best)) {
			best = t
			ok = true
		}
	}
	return best, ok
}

// UniqueAssets returns the distinct assets traded, sorted alphabetically.
func UniqueAssets(trades []domain.Trade) []string {
	seen := make(map[string]struct{}, len(trades))
	assets := make([]string, 0)
	for _, t := range trades {
		if _, ok := seen[t.Asset]; ok {
			continue
		}
		seen[t.Asset] = struct{}{}
		assets = append(assets, t.Asset)
	}
	sort.Strings(assets)
	return assets
}
