package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/entity"
	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/enum"
)

// OrderRepository defines the interface for active-order data operations.
// Closed orders do not live here: closing a table converts its orders into
// ledger entries and deletes the rows.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	// ListActive returns every open order, oldest first, for dashboard replay.
	ListActive(ctx context.Context) ([]entity.Order, error)
	// ListByTable returns a table's open orders in creation order.
	ListByTable(ctx context.Context, tableNo string) ([]entity.Order, error)
	DeleteByTable(ctx context.Context, tableNo string) error
	// OccupiedTables returns the distinct tables that have at least one open
	// order. Occupancy is always derived from this, never stored.
	OccupiedTables(ctx context.Context) ([]string, error)
}
