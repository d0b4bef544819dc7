package analytics

import "tradingJournal/internal/domain"

// StreakNone is the streak type reported for an empty journal.
const StreakNone domain.Outcome = ""

// Streaks describes runs of consecutive wins and losses in date order.
type Streaks struct {
	CurrentStreak     int
	CurrentStreakType domain.Outcome // OutcomeWin, OutcomeLoss or StreakNone
	MaxWinningStreak  int
	MaxLosingStreak   int
}

// streakOutcome classifies a trade for streak purposes.
// Unlike ComputeStatistics, a zero profit counts as a loss.
func streakOutcome(t domain.Trade) domain.Outcome {
	if Profit(t).IsPositive() {
		return domain.OutcomeWin
	}
	return domain.OutcomeLoss
}

// ConsecutiveStats walks trades in date order and reports the current streak
// along with the longest winning and losing streaks.
func ConsecutiveStats(trades []domain.Trade) Streaks {
	streaks := Streaks{CurrentStreakType: StreakNone}

	for _, t := range sortedByDate(trades) {
		outcome := streakOutcome(t)
		if outcome == streaks.CurrentStreakType {
			streaks.CurrentStreak++
		} else {
			streaks.CurrentStreak = 1
			streaks.CurrentStreakType = outcome
		}

		switch outcome {
		case domain.OutcomeWin:
			if streaks.CurrentStreak > streaks.MaxWinningStreak {
				streaks.MaxWinningStreak = streaks.CurrentStreak
			}
		case domain.OutcomeLoss:
			if streaks.CurrentStreak > streaks.MaxLosingStreak {
				streaks.MaxLosingStreak = streaks.CurrentStreak
			}
		}
	}

	return streaks
}
