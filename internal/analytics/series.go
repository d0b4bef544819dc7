package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tradingJournal/internal/domain"
	"tradingJournal/internal/ports"
)

// Period selects the time window of a performance series.
type Period string

const (
	Period7D  Period = "7D"
	Period1M  Period = "1M"
	Period3M  Period = "3M"
	Period1Y  Period = "1Y"
	PeriodAll Period = "ALL"
)

// fallbackTradeCount is how many of the most recent trades are charted when
// no trade falls inside the selected window.
const fallbackTradeCount = 30

// ParsePeriod converts a string such as "1m" or "ALL" to a Period.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToUpper(strings.TrimSpace(s))); p {
	case Period7D, Period1M, Period3M, Period1Y, PeriodAll:
		return p, nil
	default:
		return "", fmt.Errorf("unknown chart period %q: %w", s, ports.ErrInvalidRequest)
	}
}

// windowStart returns the first date included in the window ending at today.
// The second result is false for PeriodAll, which has no lower bound.
func (p Period) windowStart(today time.Time) (time.Time, bool) {
	switch p {
	case Period7D:
		return today.AddDate(0, 0, -7), true
	case Period1M:
		return today.AddDate(0, -1, 0), true
	case Period3M:
		return today.AddDate(0, -3, 0), true
	case Period1Y:
		return today.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// Label formats a chart point date for the period.
func (p Period) Label(date time.Time) string {
	switch p {
	case Period7D:
		return date.Format("Mon")
	case Period1M, Period3M:
		return date.Format("Jan 2")
	case Period1Y:
		return date.Format("Jan")
	default:
		return date.Format("Jan 2006")
	}
}

// SeriesPoint is one cumulative profit value on a chart.
type SeriesPoint struct {
	Date  time.Time
	Value decimal.Decimal
}

// Series is a cumulative profit series ready for charting.
// Labels, Values and Dates always have the same length.
type Series struct {
	Labels []string
	Values []decimal.Decimal
	Dates  []time.Time
}

// Len returns the number of points in the series.
func (s Series) Len() int {
	return len(s.Values)
}

// PerformanceSeries builds the cumulative profit series for a period ending at now.
//
// The running total is computed over the full date-ordered history and then
// windowed, so the first retained value already includes earlier profits. If
// the window holds no trades, the last 30 trades are used instead. A zero point
// dated one day before the first retained trade always starts the series.
func PerformanceSeries(trades []domain.Trade, period Period, now time.Time) Series {
	series := Series{
		Labels: []string{},
		Values: []decimal.Decimal{},
		Dates:  []time.Time{},
	}
	if len(trades) == 0 {
		return series
	}

	sorted := sortedByDate(trades)
	points := make([]SeriesPoint, len(sorted))
	running := decimal.Zero
	for i, t := range sorted {
		running = running.Add(Profit(t))
		points[i] = SeriesPoint{Date: t.Date, Value: running}
	}

	retained := points
	today := domain.TruncateDate(now)
	if start, bounded := period.windowStart(today); bounded {
		retained = make([]SeriesPoint, 0, len(points))
		for _, p := range points {
			if !p.Date.Before(start) && !p.Date.After(today) {
				retained = append(retained, p)
			}
		}
		if len(retained) == 0 {
			from := len(points) - fallbackTradeCount
			if from < 0 {
				from = 0
			}
			retained = points[from:]
		}
	}

	baseline := SeriesPoint{Date: retained[0].Date.AddDate(0, 0, -1), Value: decimal.Zero}
	series.add(period, baseline)
	for _, p := range retained {
		series.add(period, p)
	}
	return series
}

func (s *Series) add(period Period, p SeriesPoint) {
	s.Labels = append(s.Labels, period.Label(p.Date))
	s.Values = append(s.Values, p.Value)
	s.Dates = append(s.Dates, p.Date)
}
