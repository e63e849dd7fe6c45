package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/entity"
	"github.com/bonusplayerslive-star/neon-kafe/pkg/pagination"
)

// ProductRepository defines the interface for catalog data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns all products for admin views, newest first.
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Product, int64, error)
	// ListInStock returns products with stock > 0 in name order, for the menu.
	ListInStock(ctx context.Context) ([]entity.Product, error)
	// SetStock sets an explicit stock value; unknown ids affect zero rows.
	SetStock(ctx context.Context, id uuid.UUID, stock int) error
	// DecrementStock atomically decrements stock by one with a floor of zero:
	// UPDATE products SET stock = stock - 1 WHERE id = ? AND stock > 0.
	// Returns false when the product was already depleted (or unknown); the
	// caller proceeds either way, stock is informational.
	DecrementStock(ctx context.Context, id uuid.UUID) (bool, error)
}
