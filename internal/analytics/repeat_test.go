package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradingJournal/internal/domain"
)

// reversed returns the trades in reverse input order.
func reversed(trades []domain.Trade) []domain.Trade {
	out := make([]domain.Trade, len(trades))
	for i, t := range trades {
		out[len(trades)-1-i] = t
	}
	return out
}

func TestConsecutiveStatsRepeatable(t *testing.T) {
	trades := sampleTrades()

	first := ConsecutiveStats(trades)
	second := ConsecutiveStats(trades)

	assert.Equal(t, first, second)
	assert.Equal(t, Streaks{CurrentStreak: 1, CurrentStreakType: domain.OutcomeWin, MaxWinningStreak: 1, MaxLosingStreak: 1}, first)
	assert.Equal(t, first, ConsecutiveStats(reversed(trades)))
}

func TestAverageRiskRewardRepeatable(t *testing.T) {
	trades := sampleTrades()

	first := AverageRiskReward(trades)
	second := AverageRiskReward(trades)

	assert.Truef(t, first.Equal(second), "expected %s, got %s", first, second)
	assert.True(t, first.IsPositive())
}

func TestPerformanceSeriesRepeatable(t *testing.T) {
	trades := sampleTrades()
	now := day("2024-01-31")

	for _, period := range []Period{Period7D, Period1M, Period3M, Period1Y, PeriodAll} {
		t.Run(string(period), func(t *testing.T) {
			first := PerformanceSeries(trades, period, now)
			second := PerformanceSeries(trades, period, now)

			require.Equal(t, first.Len(), second.Len())
			assert.Equal(t, first.Labels, second.Labels)
			assert.Equal(t, first.Dates, second.Dates)
			for i := range first.Values {
				assert.Truef(t, first.Values[i].Equal(second.Values[i]),
					"point %d: expected %s, got %s", i, first.Values[i], second.Values[i])
			}
		})
	}
}

func TestEngineLeavesInputUntouched(t *testing.T) {
	trades := reversed(sampleTrades())

	ComputeStatistics(trades)
	ConsecutiveStats(trades)
	AverageRiskReward(trades)
	PerformanceSeries(trades, PeriodAll, day("2024-01-31"))

	assert.Equal(t, []int64{3, 2, 1}, []int64{trades[0].ID, trades[1].ID, trades[2].ID})
}
