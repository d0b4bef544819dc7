package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"tradingJournal/internal/domain"
	"tradingJournal/internal/ports"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Repository implements the ports.TradeRepository interface using SQLite.
type Repository struct {
	db     *sql.DB
	logger ports.Logger
}

// Config holds configuration for the SQLite repository.
type Config struct {
	DBPath string
	Logger ports.Logger
}

// NewRepository creates a new SQLite repository instance.
func NewRepository(cfg Config) (*Repository, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required for SQLite repository")
	}
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = "./data/journal.db" // Default path
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		err = fmt.Errorf("failed to create data directory '%s': %w", filepath.Dir(dbPath), err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		err = fmt.Errorf("failed to open database at '%s': %w: %w", dbPath, ports.ErrDBConnection, err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		err = fmt.Errorf("failed to ping database at '%s': %w: %w", dbPath, ports.ErrDBConnection, err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	// A single connection keeps SQLite writes serialised.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	cfg.Logger.Info(context.Background(), "SQLite database connection established", map[string]interface{}{"path": dbPath})

	repo := &Repository{db: db, logger: cfg.Logger}

	if err := repo.initializeSchema(context.Background()); err != nil {
		db.Close()
		err = fmt.Errorf("failed to initialize database schema: %w", err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}
	cfg.Logger.Debug(context.Background(), "Database schema initialized/verified")

	return repo, nil
}

// initializeSchema creates tables if they don't exist.
// Prices are stored as TEXT so decimals round-trip exactly.
func (r *Repository) initializeSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS trades (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		trade_date TEXT NOT NULL,
		asset TEXT NOT NULL,
		direction TEXT NOT NULL CHECK (direction IN ('long', 'short')),
		entry_price TEXT NOT NULL,
		exit_price TEXT NOT NULL,
		quantity TEXT NOT NULL,
		fees TEXT NOT NULL DEFAULT '0',
		stop_loss TEXT NULL,
		take_profit TEXT NULL,
		strategy TEXT NOT NULL DEFAULT '',
		emotion TEXT NOT NULL DEFAULT '',
		setup TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_trades_date ON trades (trade_date);
	CREATE INDEX IF NOT EXISTS idx_trades_asset ON trades (asset);
	`
	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to execute schema initialization: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	if r.db != nil {
		r.logger.Debug(context.Background(), "Closing SQLite database connection")
		return r.db.Close()
	}
	return nil
}

// --- TradeRepository Implementation ---

// Create saves a new trade and returns its assigned ID.
func (r *Repository) Create(ctx context.Context, trade *domain.Trade) (int64, error) {
	const query = `
	INSERT INTO trades (trade_date, asset, direction, entry_price, exit_price, quantity, fees,
	                    stop_loss, take_profit, strategy, emotion, setup, notes)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		trade.DateString(), trade.Asset, string(trade.Direction),
		trade.EntryPrice.String(), trade.ExitPrice.String(), trade.Quantity.String(), trade.Fees.String(),
		nullDecimal(trade.StopLoss), nullDecimal(trade.TakeProfit),
		trade.Strategy, trade.Emotion, trade.Setup, trade.Notes)
	if err != nil {
		return 0, fmt.Errorf("failed to insert trade for asset %s: %w: %w", trade.Asset, ports.ErrQueryFailed, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID for trade %s: %w", trade.Asset, err)
	}
	trade.ID = id // Update the domain object with the ID
	r.logger.Debug(ctx, "Trade created", map[string]interface{}{"tradeID": id, "asset": trade.Asset})
	return id, nil
}

// Update modifies an existing trade based on its ID.
func (r *Repository) Update(ctx context.Context, trade *domain.Trade) error {
	const query = `
	UPDATE trades
	SET trade_date = ?, asset = ?, direction = ?, entry_price = ?, exit_price = ?, quantity = ?,
	    fees = ?, stop_loss = ?, take_profit = ?, strategy = ?, emotion = ?, setup = ?, notes = ?
	WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		trade.DateString(), trade.Asset, string(trade.Direction),
		trade.EntryPrice.String(), trade.ExitPrice.String(), trade.Quantity.String(), trade.Fees.String(),
		nullDecimal(trade.StopLoss), nullDecimal(trade.TakeProfit),
		trade.Strategy, trade.Emotion, trade.Setup, trade.Notes,
		trade.ID)
	if err != nil {
		return fmt.Errorf("failed to update trade ID %d: %w: %w", trade.ID, ports.ErrUpdateFailed, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected for update trade ID %d: %w", trade.ID, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("trade ID %d not found for update: %w", trade.ID, ports.ErrNotFound)
	}
	r.logger.Debug(ctx, "Trade updated", map[string]interface{}{"tradeID": trade.ID, "asset": trade.Asset})
	return nil
}

// Delete removes a trade by ID.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM trades WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trade ID %d: %w: %w", id, ports.ErrDeleteFailed, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected for delete trade ID %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("trade ID %d not found for delete: %w", id, ports.ErrNotFound)
	}
	r.logger.Debug(ctx, "Trade deleted", map[string]interface{}{"tradeID": id})
	return nil
}

const selectTrade = `
	SELECT id, trade_date, asset, direction, entry_price, exit_price, quantity, fees,
	       stop_loss, take_profit, strategy, emotion, setup, notes
	FROM trades`

// FindByID retrieves a trade by its unique ID.
func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Trade, error) {
	row := r.db.QueryRowContext(ctx, selectTrade+` WHERE id = ?`, id)
	trade, err := scanTrade(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Debug(ctx, "Trade not found by ID", map[string]interface{}{"tradeID": id})
			return nil, nil // Not an error, just not found
		}
		return nil, fmt.Errorf("failed to query trade by ID %d: %w", id, err)
	}
	return trade, nil
}

// FindAll retrieves all trades ordered by ID ascending (insertion order).
func (r *Repository) FindAll(ctx context.Context) ([]domain.Trade, error) {
	rows, err := r.db.QueryContext(ctx, selectTrade+` ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query all trades: %w: %w", ports.ErrQueryFailed, err)
	}
	defer rows.Close()

	trades := make([]domain.Trade, 0)
	for rows.Next() {
		trade, err := scanTrade(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trade during FindAll: %w", err)
		}
		trades = append(trades, *trade)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trade rows: %w", err)
	}
	return trades, nil
}

// Count returns the number of stored trades.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM trades`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count trades: %w: %w", ports.ErrQueryFailed, err)
	}
	return count, nil
}

// --- Helper Scan Functions ---

// scanner defines an interface compatible with *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanTrade scans a row into a domain.Trade struct.
func scanTrade(s scanner) (*domain.Trade, error) {
	t := &domain.Trade{}
	var date, direction, entry, exit, qty, fees string
	var stopLoss, takeProfit sql.NullString
	err := s.Scan(
		&t.ID, &date, &t.Asset, &direction, &entry, &exit, &qty, &fees,
		&stopLoss, &takeProfit, &t.Strategy, &t.Emotion, &t.Setup, &t.Notes)
	if err != nil {
		return nil, err // Handle sql.ErrNoRows in the caller
	}

	if t.Date, err = domain.ParseDate(date); err != nil {
		return nil, err
	}
	t.Direction = domain.Direction(direction)
	if t.EntryPrice, err = decimal.NewFromString(entry); err != nil {
		return nil, fmt.Errorf("invalid entry_price %q: %w", entry, err)
	}
	if t.ExitPrice, err = decimal.NewFromString(exit); err != nil {
		return nil, fmt.Errorf("invalid exit_price %q: %w", exit, err)
	}
	if t.Quantity, err = decimal.NewFromString(qty); err != nil {
		return nil, fmt.Errorf("invalid quantity %q: %w", qty, err)
	}
	if t.Fees, err = decimal.NewFromString(fees); err != nil {
		return nil, fmt.Errorf("invalid fees %q: %w", fees, err)
	}
	if t.StopLoss, err = scanNullDecimal(stopLoss); err != nil {
		return nil, fmt.Errorf("invalid stop_loss: %w", err)
	}
	if t.TakeProfit, err = scanNullDecimal(takeProfit); err != nil {
		return nil, fmt.Errorf("invalid take_profit: %w", err)
	}
	return t, nil
}

func nullDecimal(d *decimal.Decimal) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}

func scanNullDecimal(ns sql.NullString) (*decimal.Decimal, error) {
	if !ns.Valid {
		return nil, nil
	}
	d, err := decimal.NewFromString(ns.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
