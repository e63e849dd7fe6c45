package service

import (
	"context"
	"strings"

	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/entity"
	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/repository"
	"github.com/bonusplayerslive-star/neon-kafe/pkg/apperror"
	"github.com/bonusplayerslive-star/neon-kafe/pkg/pagination"
	"github.com/bonusplayerslive-star/neon-kafe/pkg/utils"
)

// CatalogService handles product catalog operations
type CatalogService struct {
	productRepo repository.ProductRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo repository.ProductRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

// AddProductInput represents the add product input. Price and Cost are in
// cents; the boundary has already coerced malformed numbers to 0.
type AddProductInput struct {
	Name  string
	Price int64
	Cost  int64
	Stock int
}

// AddProduct creates a catalog entry. Only an empty name is rejected; the
// numeric fields are accepted as-is since the boundary coerces garbage to 0.
func (s *CatalogService) AddProduct(ctx context.Context, input *AddProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidationError("product name is required")
	}

	product := &entity.Product{
		Name:  name,
		Price: input.Price,
		Cost:  input.Cost,
		Stock: input.Stock,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, apperror.NewStoreError(err)
	}
	return product, nil
}

// RemoveProduct deletes a product. Removing an unknown id is a no-op, not an
// error; only a malformed id is rejected.
func (s *CatalogService) RemoveProduct(ctx context.Context, rawID string) error {
	id, err := utils.ParseID(rawID)
	if err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return apperror.NewStoreError(err)
	}
	return nil
}

// AdjustStock sets a product's stock to an explicit value. Unknown ids affect
// zero rows and are not reported as errors.
func (s *CatalogService) AdjustStock(ctx context.Context, rawID string, stock int) error {
	id, err := utils.ParseID(rawID)
	if err != nil {
		return err
	}
	if stock < 0 {
		stock = 0
	}
	if err := s.productRepo.SetStock(ctx, id, stock); err != nil {
		return apperror.NewStoreError(err)
	}
	return nil
}

// ListAvailable returns products with stock remaining, for menu rendering.
func (s *CatalogService) ListAvailable(ctx context.Context) ([]entity.Product, error) {
	products, err := s.productRepo.ListInStock(ctx)
	if err != nil {
		return nil, apperror.NewStoreError(err)
	}
	return products, nil
}

// ListAll returns every product for admin views, paginated.
func (s *CatalogService) ListAll(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, apperror.NewStoreError(err)
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}
