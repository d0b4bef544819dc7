package utils

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"tradingJournal/internal/domain"
)

func TestWriteTradesToXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exports", "trades.xlsx")
	trades := []domain.Trade{
		{
			ID: 1, Date: domain.MustParseDate("2024-01-15"), Asset: "AAPL", Direction: domain.Long,
			EntryPrice: decimal.NewFromInt(100), ExitPrice: decimal.NewFromInt(120),
			Quantity: decimal.NewFromInt(2), Fees: decimal.NewFromInt(5),
			StopLoss: domain.DecimalPtr(90.5), TakeProfit: domain.DecimalPtr(130),
		},
		{
			ID: 2, Date: domain.MustParseDate("2024-02-03"), Asset: "BTC", Direction: domain.Short,
			EntryPrice: decimal.NewFromInt(50), ExitPrice: decimal.NewFromInt(60),
			Quantity: decimal.NewFromInt(1), Fees: decimal.Zero,
		},
	}

	require.NoError(t, WriteTradesToXLSX(trades, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(tradesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, []string{"1", "2024-01-15", "AAPL", "long"}, rows[1][:4])
	assert.Equal(t, "35", rows[1][10])
	assert.Equal(t, "-10", rows[2][10])
	assert.Equal(t, []string{"90.5", "130"}, rows[1][8:10])
	assert.Equal(t, []string{"", ""}, rows[2][8:10])

	for _, cell := range []string{"I2", "J2", "K2"} {
		typ, err := f.GetCellType(tradesSheet, cell)
		require.NoError(t, err)
		assert.NotEqual(t, excelize.CellTypeSharedString, typ, "%s should hold a number", cell)
	}
	typ, err := f.GetCellType(tradesSheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, excelize.CellTypeSharedString, typ)

	value, err := f.GetCellValue(tradesSheet, "I3")
	require.NoError(t, err)
	assert.Empty(t, value)
	assert.Equal(t, "N/A", rows[2][11])

	monthly, err := f.GetRows(monthlySheet)
	require.NoError(t, err)
	require.Len(t, monthly, 3)
	assert.Equal(t, []string{"2024-01", "35", "1"}, monthly[1])
	assert.Equal(t, []string{"2024-02", "-10", "1"}, monthly[2])
}
