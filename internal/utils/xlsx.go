package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"tradingJournal/internal/analytics"
	"tradingJournal/internal/domain"
)

const (
	tradesSheet  = "Trades"
	monthlySheet = "Monthly"
)

// WriteTradesToXLSX writes a workbook with one row per trade on the Trades
// sheet and net profit per calendar month on the Monthly sheet.
func WriteTradesToXLSX(trades []domain.Trade, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), tradesSheet); err != nil {
		return fmt.Errorf("failed to rename default sheet: %w", err)
	}
	if err := writeRow(f, tradesSheet, 1, toCells(tradeHeader)); err != nil {
		return err
	}
	for i, t := range trades {
		row := []interface{}{
			t.ID,
			t.DateString(),
			t.Asset,
			string(t.Direction),
			t.EntryPrice.InexactFloat64(),
			t.ExitPrice.InexactFloat64(),
			t.Quantity.InexactFloat64(),
			t.Fees.InexactFloat64(),
			optionalFloat(t.StopLoss),
			optionalFloat(t.TakeProfit),
			analytics.Profit(t).InexactFloat64(),
			analytics.RiskReward(t),
			t.Strategy,
			t.Emotion,
			t.Setup,
			t.Notes,
		}
		if err := writeRow(f, tradesSheet, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(monthlySheet); err != nil {
		return fmt.Errorf("failed to add %s sheet: %w", monthlySheet, err)
	}
	if err := writeRow(f, monthlySheet, 1, []interface{}{"month", "profit", "trades"}); err != nil {
		return err
	}
	for i, mp := range analytics.MonthlyProfits(trades) {
		row := []interface{}{mp.Month.Format("2006-01"), mp.Profit.InexactFloat64(), mp.Trades}
		if err := writeRow(f, monthlySheet, i+2, row); err != nil {
			return err
		}
	}

	return f.SaveAs(filename)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to set %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

// optionalFloat leaves the cell empty for an unset level.
func optionalFloat(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return d.InexactFloat64()
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
