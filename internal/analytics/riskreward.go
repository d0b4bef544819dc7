package analytics

import (
	"github.com/shopspring/decimal"

	"tradingJournal/internal/domain"
)

// RiskRewardUnavailable is returned by RiskReward when a trade has no usable risk levels.
const RiskRewardUnavailable = "N/A"

// riskRewardRatio returns reward/risk for a trade with both levels set and a
// non-zero distance between entry and stop.
func riskRewardRatio(t domain.Trade) (decimal.Decimal, bool) {
	if !t.HasRiskLevels() {
		return decimal.Zero, false
	}
	risk := t.EntryPrice.Sub(*t.StopLoss).Abs()
	if risk.IsZero() {
		return decimal.Zero, false
	}
	reward := t.TakeProfit.Sub(t.EntryPrice).Abs()
	return reward.Div(risk), true
}

// RiskReward formats the planned risk/reward of a trade as "1:<ratio>" with two decimals.
// It returns RiskRewardUnavailable when the stop or target is missing or the risk is zero.
func RiskReward(t domain.Trade) string {
	ratio, ok := riskRewardRatio(t)
	if !ok {
		return RiskRewardUnavailable
	}
	return "1:" + ratio.StringFixed(moneyPlaces)
}

// AverageRiskReward is the mean of the per-trade ratios over eligible trades,
// rounded to 2 places. It is zero when no trade is eligible.
func AverageRiskReward(trades []domain.Trade) decimal.Decimal {
	sum := decimal.Zero
	eligible := 0
	for _, t := range trades {
		ratio, ok := riskRewardRatio(t)
		if !ok {
			continue
		}
		sum = sum.Add(ratio)
		eligible++
	}
	return mean(sum, eligible)
}
