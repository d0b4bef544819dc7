package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO 8601 calendar date format used for trade dates.
const DateLayout = "2006-01-02"

// Trade represents a single journaled trade.
// Date is always a UTC midnight value so that ordering matches ISO 8601 order.
type Trade struct {
	ID         int64
	Date       time.Time       `validate:"required"`
	Asset      string          `validate:"required"`
	Direction  Direction       `validate:"required,oneof=long short"`
	EntryPrice decimal.Decimal `validate:"gt=0"`
	ExitPrice  decimal.Decimal `validate:"gt=0"`
	Quantity   decimal.Decimal `validate:"gt=0"`
	Fees       decimal.Decimal `validate:"gte=0"`

	// Optional risk levels. Both must be set for a risk/reward ratio.
	StopLoss   *decimal.Decimal
	TakeProfit *decimal.Decimal

	// Free-form journal metadata
	Strategy string
	Emotion  string
	Setup    string
	Notes    string
}

// ParseDate parses an ISO 8601 calendar date (YYYY-MM-DD) into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid trade date %q: %w", s, err)
	}
	return t, nil
}

// MustParseDate is like ParseDate but panics on error. Intended for fixtures.
func MustParseDate(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

// TruncateDate drops the time-of-day component, keeping the calendar date in UTC.
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateString returns the trade date in ISO 8601 form.
func (t Trade) DateString() string {
	return t.Date.Format(DateLayout)
}

// HasRiskLevels reports whether both stop-loss and take-profit are set.
func (t Trade) HasRiskLevels() bool {
	return t.StopLoss != nil && t.TakeProfit != nil
}

// DecimalPtr returns a pointer to a decimal parsed from a float. Handy for optional levels.
func DecimalPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}
