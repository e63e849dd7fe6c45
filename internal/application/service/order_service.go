package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/entity"
	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/enum"
	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/notification"
	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/repository"
	"github.com/bonusplayerslive-star/neon-kafe/pkg/apperror"
	"github.com/bonusplayerslive-star/neon-kafe/pkg/utils"
)

// OrderService handles the order lifecycle from placement to table close-out
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	ledgerRepo  repository.LedgerRepository
	notifier    notification.Notifier
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	ledgerRepo repository.LedgerRepository,
	notifier notification.Notifier,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		ledgerRepo:  ledgerRepo,
		notifier:    notifier,
	}
}

// PlaceOrderInput represents a batch of menu picks from one table
type PlaceOrderInput struct {
	TableNo string
	Items   []string
}

// PlaceOrder creates one order row per recognized item. Unknown product names
// are skipped rather than failing the batch, so one bad pick never loses the
// rest of a table's round. Price and cost are captured from the catalog at
// placement time; later catalog edits do not rewrite history.
func (s *OrderService) PlaceOrder(ctx context.Context, input *PlaceOrderInput) ([]entity.Order, error) {
	table := strings.TrimSpace(input.TableNo)
	if table == "" {
		return nil, apperror.NewValidationError("table number is required")
	}

	created := make([]entity.Order, 0, len(input.Items))
	for _, name := range input.Items {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		product, err := s.productRepo.GetByName(ctx, name)
		if err != nil {
			log.Printf("place order: lookup %q: %v", name, err)
			continue
		}
		if product == nil {
			log.Printf("place order: unknown product %q skipped", name)
			continue
		}

		// Stock is informational: the kitchen can still honor an order the
		// counter ran out of, so a zero count never blocks placement.
		if _, err := s.productRepo.DecrementStock(ctx, product.ID); err != nil {
			log.Printf("place order: decrement stock for %q: %v", name, err)
		}

		order := &entity.Order{
			TableNo:     table,
			ProductName: product.Name,
			Price:       product.Price,
			Cost:        product.Cost,
			Status:      enum.OrderStatusPending,
		}
		if err := s.orderRepo.Create(ctx, order); err != nil {
			log.Printf("place order: create order for %q: %v", name, err)
			continue
		}

		created = append(created, *order)
		s.notifier.OrderCreated(order)
	}

	if len(created) > 0 {
		s.notifier.OccupancyChanged(table, true)
		s.publishTotals(ctx)
	}
	return created, nil
}

// MarkDelivered moves a pending order to delivered and acknowledges it.
// Re-marking an already delivered order only repeats the acknowledgement.
func (s *OrderService) MarkDelivered(ctx context.Context, rawID string) error {
	id, err := utils.ParseID(rawID)
	if err != nil {
		return err
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.NewStoreError(err)
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	if order.Status != enum.OrderStatusDelivered {
		if !order.Status.CanTransitionTo(enum.OrderStatusDelivered) {
			return apperror.NewValidationError("order can no longer be delivered")
		}
		if err := s.orderRepo.UpdateStatus(ctx, id, enum.OrderStatusDelivered); err != nil {
			return apperror.NewStoreError(err)
		}
	}

	s.notifier.OrderDelivered(id)
	return nil
}

// TableOrders returns the open orders for one table, oldest first.
func (s *OrderService) TableOrders(ctx context.Context, tableNo string) ([]entity.Order, error) {
	table := strings.TrimSpace(tableNo)
	if table == "" {
		return nil, apperror.NewValidationError("table number is required")
	}
	orders, err := s.orderRepo.ListByTable(ctx, table)
	if err != nil {
		return nil, apperror.NewStoreError(err)
	}
	return orders, nil
}

// ActiveOrders returns every open order across all tables, for dashboard replay.
func (s *OrderService) ActiveOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := s.orderRepo.ListActive(ctx)
	if err != nil {
		return nil, apperror.NewStoreError(err)
	}
	return orders, nil
}

// OccupiedTables returns the tables that currently have open orders.
func (s *OrderService) OccupiedTables(ctx context.Context) ([]string, error) {
	tables, err := s.orderRepo.OccupiedTables(ctx)
	if err != nil {
		return nil, apperror.NewStoreError(err)
	}
	return tables, nil
}

// CloseTable settles a table: its open orders are converted to ledger entries
// and removed, freeing the table. Closing a table with no open orders is a
// no-op. Each ledger entry carries the amount and profit captured at
// placement time, stamped with the close-out moment.
func (s *OrderService) CloseTable(ctx context.Context, tableNo string) error {
	table := strings.TrimSpace(tableNo)
	if table == "" {
		return apperror.NewValidationError("table number is required")
	}

	orders, err := s.orderRepo.ListByTable(ctx, table)
	if err != nil {
		return apperror.NewStoreError(err)
	}
	if len(orders) == 0 {
		return nil
	}

	now := time.Now()
	entries := make([]entity.LedgerEntry, 0, len(orders))
	for _, order := range orders {
		entries = append(entries, entity.LedgerEntry{
			TableNo:     table,
			ProductName: order.ProductName,
			Amount:      order.Price,
			Profit:      order.Profit(),
			OccurredAt:  now,
		})
	}

	if err := s.ledgerRepo.CreateBatch(ctx, entries); err != nil {
		return apperror.NewStoreError(err)
	}
	if err := s.orderRepo.DeleteByTable(ctx, table); err != nil {
		return apperror.NewStoreError(err)
	}

	s.notifier.TableReset(table)
	s.notifier.OccupancyChanged(table, false)
	s.publishTotals(ctx)
	return nil
}

// publishTotals recomputes the running totals from the ledger and broadcasts
// them. Best effort: a read failure is logged, never surfaced to the caller.
func (s *OrderService) publishTotals(ctx context.Context) {
	totals, err := s.ledgerRepo.Totals(ctx)
	if err != nil {
		log.Printf("publish totals: %v", err)
		return
	}
	s.notifier.TotalsUpdated(totals)
}
