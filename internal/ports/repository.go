package ports

import (
	"context"

	"tradingJournal/internal/domain"
)

// TradeRepository defines the interface for storing and retrieving journaled trades.
// It is the record store the analytics engine reads snapshots from.
type TradeRepository interface {
	// Create saves a new trade and returns its assigned ID.
	Create(ctx context.Context, trade *domain.Trade) (int64, error)
	// Update modifies an existing trade identified by its ID.
	// Returns an error wrapping ErrNotFound if no such trade exists.
	Update(ctx context.Context, trade *domain.Trade) error
	// Delete removes a trade by ID.
	// Returns an error wrapping ErrNotFound if no such trade exists.
	Delete(ctx context.Context, id int64) error
	// FindByID retrieves a trade by its unique ID.
	// Returns nil, nil if not found.
	FindByID(ctx context.Context, id int64) (*domain.Trade, error)
	// FindAll retrieves all trades in insertion order (ascending ID).
	FindAll(ctx context.Context) ([]domain.Trade, error)
	// Count returns the number of stored trades.
	Count(ctx context.Context) (int, error)
}
