package service

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/entity"
	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/enum"
	"github.com/bonusplayerslive-star/neon-kafe/pkg/pagination"
)

// In-memory doubles for the repository interfaces, keeping the service tests
// free of a live database.

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*entity.Product
	failWith error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) ListInStock(ctx context.Context) ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Product
	for _, p := range r.products {
		if p.Stock > 0 {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) SetStock(ctx context.Context, id uuid.UUID, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		p.Stock = stock
	}
	return nil
}

func (r *fakeProductRepo) DecrementStock(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok || p.Stock <= 0 {
		return false, nil
	}
	p.Stock--
	return true, nil
}

type fakeOrderRepo struct {
	mu       sync.Mutex
	orders   []*entity.Order
	failWith error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	cp := *order
	r.orders = append(r.orders, &cp)
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			o.Status = status
		}
	}
	return nil
}

func (r *fakeOrderRepo) ListActive(ctx context.Context) ([]entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Order
	for _, o := range r.orders {
		if o.Status != enum.OrderStatusClosed {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByTable(ctx context.Context, tableNo string) ([]entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Order
	for _, o := range r.orders {
		if o.TableNo == tableNo && o.Status != enum.OrderStatusClosed {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) DeleteByTable(ctx context.Context, tableNo string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.orders[:0]
	for _, o := range r.orders {
		if o.TableNo != tableNo {
			kept = append(kept, o)
		}
	}
	r.orders = kept
	return nil
}

func (r *fakeOrderRepo) OccupiedTables(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]bool)
	var out []string
	for _, o := range r.orders {
		if o.Status != enum.OrderStatusClosed && !seen[o.TableNo] {
			seen[o.TableNo] = true
			out = append(out, o.TableNo)
		}
	}
	return out, nil
}

type fakeLedgerRepo struct {
	mu       sync.Mutex
	entries  []entity.LedgerEntry
	failWith error
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{}
}

func (r *fakeLedgerRepo) CreateBatch(ctx context.Context, entries []entity.LedgerEntry) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range entries {
		if entries[i].ID == uuid.Nil {
			entries[i].ID = uuid.New()
		}
	}
	r.entries = append(r.entries, entries...)
	return nil
}

func (r *fakeLedgerRepo) List(ctx context.Context) ([]entity.LedgerEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.LedgerEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

func (r *fakeLedgerRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.entries)), nil
}

func (r *fakeLedgerRepo) Totals(ctx context.Context) (entity.Totals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var totals entity.Totals
	for _, e := range r.entries {
		totals.Add(e.Amount, e.Profit)
	}
	return totals, nil
}

func (r *fakeLedgerRepo) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
	return nil
}

type fakeSummaryRepo struct {
	mu        sync.Mutex
	summaries []entity.DaySummary
}

func newFakeSummaryRepo() *fakeSummaryRepo {
	return &fakeSummaryRepo{}
}

func (r *fakeSummaryRepo) Create(ctx context.Context, summary *entity.DaySummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if summary.ID == uuid.Nil {
		summary.ID = uuid.New()
	}
	r.summaries = append(r.summaries, *summary)
	return nil
}

func (r *fakeSummaryRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.DaySummary, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.DaySummary, len(r.summaries))
	copy(out, r.summaries)
	return out, int64(len(out)), nil
}

// recordingNotifier captures every emitted event by name for assertions.
type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *recordingNotifier) record(event string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) count(event string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, e := range n.events {
		if e == event {
			c++
		}
	}
	return c
}

func (n *recordingNotifier) OrderCreated(order *entity.Order)        { n.record("order_created") }
func (n *recordingNotifier) OrderDelivered(id uuid.UUID)             { n.record("order_delivered_ack") }
func (n *recordingNotifier) OccupancyChanged(table string, occ bool) { n.record("table_occupancy_changed") }
func (n *recordingNotifier) TableReset(table string)                 { n.record("table_reset") }
func (n *recordingNotifier) TotalsUpdated(totals entity.Totals)      { n.record("totals_updated") }
func (n *recordingNotifier) DayClosed()                              { n.record("day_closed") }
