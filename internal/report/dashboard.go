// Package report renders journal results as plain-text tables for the CLI.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"tradingJournal/internal/analytics"
	"tradingJournal/internal/app"
	"tradingJournal/internal/domain"
)

// WriteDashboard prints the summary, streaks, monthly profits and chart series.
func WriteDashboard(out io.Writer, dash *app.Dashboard) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	stats := dash.Statistics
	fmt.Fprintln(w, "## Summary")
	fmt.Fprintf(w, "Trades\t%d\n", stats.TotalTrades)
	fmt.Fprintf(w, "Total P&L\t%s\n", stats.TotalProfit.StringFixed(2))
	fmt.Fprintf(w, "Avg P&L\t%s\n", stats.AvgProfit.StringFixed(2))
	fmt.Fprintf(w, "Win rate\t%d%%\n", stats.WinRate)
	fmt.Fprintf(w, "Avg win / loss\t%s / %s\n", stats.AvgWin.StringFixed(2), stats.AvgLoss.StringFixed(2))
	fmt.Fprintf(w, "Largest win / loss\t%s / %s\n", stats.LargestWin.StringFixed(2), stats.LargestLoss.StringFixed(2))
	fmt.Fprintf(w, "Profit factor\t%s\n", stats.ProfitFactor.StringFixed(2))
	fmt.Fprintf(w, "Avg risk/reward\t1:%s\n", dash.AverageRiskReward.StringFixed(1))
	if dash.BestTrade != nil {
		fmt.Fprintf(w, "Best trade\t%s %s (%s)\n",
			analytics.Profit(*dash.BestTrade).StringFixed(2), dash.BestTrade.Asset, dash.BestTrade.DateString())
	}
	if len(dash.Assets) > 0 {
		fmt.Fprintf(w, "Assets\t%s\n", strings.Join(dash.Assets, ", "))
	}

	fmt.Fprintln(w, "\n## Streaks")
	current := "-"
	if dash.Streaks.CurrentStreakType != analytics.StreakNone {
		current = fmt.Sprintf("%d %s", dash.Streaks.CurrentStreak, dash.Streaks.CurrentStreakType)
	}
	fmt.Fprintf(w, "Current\t%s\n", current)
	fmt.Fprintf(w, "Longest winning\t%d\n", dash.Streaks.MaxWinningStreak)
	fmt.Fprintf(w, "Longest losing\t%d\n", dash.Streaks.MaxLosingStreak)

	if len(dash.Monthly) > 0 {
		fmt.Fprintln(w, "\n## Monthly")
		for _, m := range dash.Monthly {
			fmt.Fprintf(w, "%s\t%s\t%d trades\n", m.Month.Format("2006-01"), m.Profit.StringFixed(2), m.Trades)
		}
	}

	fmt.Fprintf(w, "\n## Cumulative P&L (%s)\n", dash.Period)
	for i := range dash.Series.Values {
		fmt.Fprintf(w, "%s\t%s\t%s\n", dash.Series.Dates[i].Format(domain.DateLayout), dash.Series.Labels[i], dash.Series.Values[i].StringFixed(2))
	}

	return w.Flush()
}

// WriteTrades prints one row per trade with its derived profit and risk/reward.
func WriteTrades(out io.Writer, trades []domain.Trade) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "ID\tDate\tAsset\tSide\tEntry\tExit\tQty\tP&L\tR:R\t")
	for _, t := range trades {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			t.ID, t.DateString(), t.Asset, t.Direction,
			t.EntryPrice.StringFixed(2), t.ExitPrice.StringFixed(2), t.Quantity.String(),
			analytics.Profit(t).StringFixed(2), analytics.RiskReward(t))
	}
	return w.Flush()
}
