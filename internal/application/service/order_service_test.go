package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/entity"
	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/enum"
	"github.com/bonusplayerslive-star/neon-kafe/pkg/apperror"
)

type orderFixture struct {
	products *fakeProductRepo
	orders   *fakeOrderRepo
	ledger   *fakeLedgerRepo
	notifier *recordingNotifier
	svc      *OrderService
}

func newOrderFixture(t *testing.T, seed ...entity.Product) *orderFixture {
	t.Helper()
	f := &orderFixture{
		products: newFakeProductRepo(),
		orders:   newFakeOrderRepo(),
		ledger:   newFakeLedgerRepo(),
		notifier: &recordingNotifier{},
	}
	for i := range seed {
		if err := f.products.Create(context.Background(), &seed[i]); err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}
	f.svc = NewOrderService(f.orders, f.products, f.ledger, f.notifier)
	return f
}

func TestOrderServicePlaceOrder(t *testing.T) {
	t.Run("three coffees against stock of two", func(t *testing.T) {
		f := newOrderFixture(t, entity.Product{Name: "Coffee", Price: 5000, Cost: 2000, Stock: 2})

		created, err := f.svc.PlaceOrder(context.Background(), &PlaceOrderInput{
			TableNo: "5",
			Items:   []string{"Coffee", "Coffee", "Coffee"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(created) != 3 {
			t.Fatalf("expected 3 orders, got %d", len(created))
		}
		for _, o := range created {
			if o.Price != 5000 || o.Cost != 2000 {
				t.Errorf("expected captured price 5000/cost 2000, got %d/%d", o.Price, o.Cost)
			}
			if o.Status != enum.OrderStatusPending {
				t.Errorf("expected pending status, got %s", o.Status)
			}
		}

		p, _ := f.products.GetByName(context.Background(), "Coffee")
		if p.Stock != 0 {
			t.Errorf("expected stock floored at 0, got %d", p.Stock)
		}

		if got := f.notifier.count("order_created"); got != 3 {
			t.Errorf("expected 3 order_created events, got %d", got)
		}
		if got := f.notifier.count("table_occupancy_changed"); got != 1 {
			t.Errorf("expected 1 occupancy event, got %d", got)
		}
	})

	t.Run("unknown items skipped without aborting the cart", func(t *testing.T) {
		f := newOrderFixture(t, entity.Product{Name: "Tea", Price: 2500, Cost: 500, Stock: 5})

		created, err := f.svc.PlaceOrder(context.Background(), &PlaceOrderInput{
			TableNo: "3",
			Items:   []string{"Nonexistent", "Tea", ""},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(created) != 1 {
			t.Fatalf("expected 1 order, got %d", len(created))
		}
		if created[0].ProductName != "Tea" {
			t.Errorf("expected Tea, got %s", created[0].ProductName)
		}
	})

	t.Run("empty table rejected", func(t *testing.T) {
		f := newOrderFixture(t)
		_, err := f.svc.PlaceOrder(context.Background(), &PlaceOrderInput{TableNo: "  ", Items: []string{"Coffee"}})
		if !apperror.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("price captured at placement time", func(t *testing.T) {
		f := newOrderFixture(t, entity.Product{Name: "Coffee", Price: 5000, Cost: 2000, Stock: 5})
		ctx := context.Background()

		created, err := f.svc.PlaceOrder(ctx, &PlaceOrderInput{TableNo: "1", Items: []string{"Coffee"}})
		if err != nil {
			t.Fatalf("place order: %v", err)
		}

		p, _ := f.products.GetByName(ctx, "Coffee")
		p.Price = 9900
		if err := f.products.Update(ctx, p); err != nil {
			t.Fatalf("update product: %v", err)
		}

		got, _ := f.orders.GetByID(ctx, created[0].ID)
		if got.Price != 5000 {
			t.Errorf("expected order to keep placement price 5000, got %d", got.Price)
		}
	})
}

func TestOrderServiceMarkDelivered(t *testing.T) {
	f := newOrderFixture(t, entity.Product{Name: "Coffee", Price: 5000, Cost: 2000, Stock: 5})
	ctx := context.Background()

	created, err := f.svc.PlaceOrder(ctx, &PlaceOrderInput{TableNo: "2", Items: []string{"Coffee"}})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	orderID := created[0].ID

	t.Run("pending to delivered", func(t *testing.T) {
		if err := f.svc.MarkDelivered(ctx, orderID.String()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := f.orders.GetByID(ctx, orderID)
		if got.Status != enum.OrderStatusDelivered {
			t.Errorf("expected delivered, got %s", got.Status)
		}
		if f.notifier.count("order_delivered_ack") != 1 {
			t.Error("expected a delivery acknowledgement")
		}
	})

	t.Run("repeat delivery only re-acknowledges", func(t *testing.T) {
		if err := f.svc.MarkDelivered(ctx, orderID.String()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.notifier.count("order_delivered_ack") != 2 {
			t.Error("expected a second acknowledgement")
		}
	})

	t.Run("malformed id rejected", func(t *testing.T) {
		err := f.svc.MarkDelivered(ctx, "garbage")
		if !apperror.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("unknown id reported as not found", func(t *testing.T) {
		err := f.svc.MarkDelivered(ctx, uuid.NewString())
		if !apperror.IsNotFound(err) {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}

func TestOrderServiceCloseTable(t *testing.T) {
	t.Run("converts orders to ledger entries and frees the table", func(t *testing.T) {
		f := newOrderFixture(t, entity.Product{Name: "Coffee", Price: 5000, Cost: 2000, Stock: 5})
		ctx := context.Background()

		if _, err := f.svc.PlaceOrder(ctx, &PlaceOrderInput{
			TableNo: "5",
			Items:   []string{"Coffee", "Coffee", "Coffee"},
		}); err != nil {
			t.Fatalf("place order: %v", err)
		}

		if err := f.svc.CloseTable(ctx, "5"); err != nil {
			t.Fatalf("close table: %v", err)
		}

		totals, err := f.ledger.Totals(ctx)
		if err != nil {
			t.Fatalf("totals: %v", err)
		}
		if totals.RevenueCents != 15000 {
			t.Errorf("expected revenue 15000 cents, got %d", totals.RevenueCents)
		}
		if totals.ProfitCents != 9000 {
			t.Errorf("expected profit 9000 cents, got %d", totals.ProfitCents)
		}

		remaining, _ := f.orders.ListByTable(ctx, "5")
		if len(remaining) != 0 {
			t.Errorf("expected table to have no open orders, got %d", len(remaining))
		}
		occupied, _ := f.orders.OccupiedTables(ctx)
		if len(occupied) != 0 {
			t.Errorf("expected no occupied tables, got %v", occupied)
		}

		if f.notifier.count("table_reset") != 1 {
			t.Error("expected a table_reset event")
		}
		if f.notifier.count("totals_updated") == 0 {
			t.Error("expected totals to be rebroadcast")
		}
	})

	t.Run("empty table is a no-op", func(t *testing.T) {
		f := newOrderFixture(t)
		if err := f.svc.CloseTable(context.Background(), "9"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.notifier.count("table_reset") != 0 {
			t.Error("expected no events for an empty table")
		}
	})

	t.Run("closing twice adds nothing", func(t *testing.T) {
		f := newOrderFixture(t, entity.Product{Name: "Tea", Price: 2500, Cost: 500, Stock: 5})
		ctx := context.Background()

		if _, err := f.svc.PlaceOrder(ctx, &PlaceOrderInput{TableNo: "4", Items: []string{"Tea"}}); err != nil {
			t.Fatalf("place order: %v", err)
		}
		if err := f.svc.CloseTable(ctx, "4"); err != nil {
			t.Fatalf("first close: %v", err)
		}
		if err := f.svc.CloseTable(ctx, "4"); err != nil {
			t.Fatalf("second close: %v", err)
		}

		count, _ := f.ledger.Count(ctx)
		if count != 1 {
			t.Errorf("expected 1 ledger entry, got %d", count)
		}
	})
}

func TestOrderServiceTableOrders(t *testing.T) {
	f := newOrderFixture(t,
		entity.Product{Name: "Coffee", Price: 5000, Cost: 2000, Stock: 5},
		entity.Product{Name: "Tea", Price: 2500, Cost: 500, Stock: 5},
	)
	ctx := context.Background()

	if _, err := f.svc.PlaceOrder(ctx, &PlaceOrderInput{TableNo: "1", Items: []string{"Coffee", "Tea"}}); err != nil {
		t.Fatalf("place order: %v", err)
	}
	if _, err := f.svc.PlaceOrder(ctx, &PlaceOrderInput{TableNo: "2", Items: []string{"Tea"}}); err != nil {
		t.Fatalf("place order: %v", err)
	}

	orders, err := f.svc.TableOrders(ctx, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders for table 1, got %d", len(orders))
	}
	if orders[0].ProductName != "Coffee" || orders[1].ProductName != "Tea" {
		t.Errorf("expected creation order preserved, got %s then %s", orders[0].ProductName, orders[1].ProductName)
	}

	occupied, err := f.svc.OccupiedTables(ctx)
	if err != nil {
		t.Fatalf("occupied tables: %v", err)
	}
	if len(occupied) != 2 {
		t.Errorf("expected 2 occupied tables, got %v", occupied)
	}
}
