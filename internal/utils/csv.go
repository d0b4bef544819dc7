package utils

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"tradingJournal/internal/analytics"
	"tradingJournal/internal/domain"
	"tradingJournal/internal/ports"
)

// tradeHeader is the column layout shared by export and import.
var tradeHeader = []string{
	"id", "date", "asset", "direction", "entry_price", "exit_price", "quantity", "fees",
	"stop_loss", "take_profit", "profit", "risk_reward", "strategy", "emotion", "setup", "notes",
}

// WriteTradesToCSV writes trades to filename, creating parent directories as needed.
func WriteTradesToCSV(trades []domain.Trade, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteTrades(file, trades)
}

// WriteTrades encodes trades as CSV. Profit and risk/reward columns are derived
// and ignored on import.
func WriteTrades(w io.Writer, trades []domain.Trade) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(tradeHeader); err != nil {
		return err
	}
	for _, t := range trades {
		err := writer.Write([]string{
			strconv.FormatInt(t.ID, 10),
			t.DateString(),
			t.Asset,
			string(t.Direction),
			t.EntryPrice.String(),
			t.ExitPrice.String(),
			t.Quantity.String(),
			t.Fees.String(),
			optionalDecimal(t.StopLoss),
			optionalDecimal(t.TakeProfit),
			analytics.Profit(t).StringFixed(2),
			analytics.RiskReward(t),
			t.Strategy,
			t.Emotion,
			t.Setup,
			t.Notes,
		})
		if err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ReadTradesFromCSV reads trades previously written by WriteTradesToCSV.
func ReadTradesFromCSV(filename string) ([]domain.Trade, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadTrades(file)
}

// ReadTrades decodes trades from CSV. Columns are matched by header name, so
// extra or reordered columns are tolerated. IDs are not carried over.
func ReadTrades(r io.Reader) ([]domain.Trade, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("missing header: %w", ports.ErrInvalidCSV)
		}
		return nil, err
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"date", "asset", "direction", "entry_price", "exit_price", "quantity"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q: %w", required, ports.ErrInvalidCSV)
		}
	}

	trades := make([]domain.Trade, 0)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %w", line, ports.ErrInvalidCSV, err)
		}
		trade, err := parseTradeRecord(record, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %w", line, ports.ErrInvalidCSV, err)
		}
		trades = append(trades, trade)
	}
	return trades, nil
}

func parseTradeRecord(record []string, cols map[string]int) (domain.Trade, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var t domain.Trade
	var err error
	if t.Date, err = domain.ParseDate(field("date")); err != nil {
		return t, err
	}
	t.Asset = field("asset")
	t.Direction = domain.Direction(strings.ToLower(field("direction")))

	if t.EntryPrice, err = decimal.NewFromString(field("entry_price")); err != nil {
		return t, fmt.Errorf("entry_price: %w", err)
	}
	if t.ExitPrice, err = decimal.NewFromString(field("exit_price")); err != nil {
		return t, fmt.Errorf("exit_price: %w", err)
	}
	if t.Quantity, err = decimal.NewFromString(field("quantity")); err != nil {
		return t, fmt.Errorf("quantity: %w", err)
	}
	t.Fees = decimal.Zero
	if fees := field("fees"); fees != "" {
		if t.Fees, err = decimal.NewFromString(fees); err != nil {
			return t, fmt.Errorf("fees: %w", err)
		}
	}
	if t.StopLoss, err = parseOptionalDecimal(field("stop_loss")); err != nil {
		return t, fmt.Errorf("stop_loss: %w", err)
	}
	if t.TakeProfit, err = parseOptionalDecimal(field("take_profit")); err != nil {
		return t, fmt.Errorf("take_profit: %w", err)
	}

	t.Strategy = field("strategy")
	t.Emotion = field("emotion")
	t.Setup = field("setup")
	t.Notes = field("notes")
	return t, nil
}

func optionalDecimal(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func parseOptionalDecimal(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
