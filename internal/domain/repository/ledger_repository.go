package repository

import (
	"context"

	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/entity"
	"github.com/bonusplayerslive-star/neon-kafe/pkg/pagination"
)

// LedgerRepository defines the interface for the current period's ledger
// entries (everything settled since the last day close).
type LedgerRepository interface {
	CreateBatch(ctx context.Context, entries []entity.LedgerEntry) error
	// List returns the period's entries in the order they occurred.
	List(ctx context.Context) ([]entity.LedgerEntry, error)
	Count(ctx context.Context) (int64, error)
	// Totals recomputes revenue and profit from the stored rows on every
	// call. No incremental counters exist to drift.
	Totals(ctx context.Context) (entity.Totals, error)
	// Clear removes every entry, run once the day close has exported them.
	Clear(ctx context.Context) error
}

// DaySummaryRepository defines the interface for frozen day aggregates.
type DaySummaryRepository interface {
	Create(ctx context.Context, summary *entity.DaySummary) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.DaySummary, int64, error)
}
