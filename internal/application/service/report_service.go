package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/entity"
	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/notification"
	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/repository"
	"github.com/bonusplayerslive-star/neon-kafe/pkg/apperror"
	"github.com/bonusplayerslive-star/neon-kafe/pkg/pagination"
	"github.com/bonusplayerslive-star/neon-kafe/pkg/receipt"
)

// TotalsScope selects which records feed a totals computation
type TotalsScope string

const (
	// ScopeLedger covers every ledger entry since the last day close.
	ScopeLedger TotalsScope = "ledger"
	// ScopeActive covers the still-open orders that have not been settled yet.
	ScopeActive TotalsScope = "active"
)

// ReportService computes aggregates and runs the end-of-day close-out
type ReportService struct {
	ledgerRepo  repository.LedgerRepository
	summaryRepo repository.DaySummaryRepository
	orders      *OrderService
	notifier    notification.Notifier
	printer     receipt.Printer
	reportDir   string
}

// NewReportService creates a new report service
func NewReportService(
	ledgerRepo repository.LedgerRepository,
	summaryRepo repository.DaySummaryRepository,
	orders *OrderService,
	notifier notification.Notifier,
	printer receipt.Printer,
	reportDir string,
) *ReportService {
	return &ReportService{
		ledgerRepo:  ledgerRepo,
		summaryRepo: summaryRepo,
		orders:      orders,
		notifier:    notifier,
		printer:     printer,
		reportDir:   reportDir,
	}
}

// ComputeTotals sums revenue and profit over the selected scope. Totals are
// always recomputed from the persisted rows, never carried incrementally, so
// concurrent writers cannot drift the figures.
func (s *ReportService) ComputeTotals(ctx context.Context, scope TotalsScope) (entity.Totals, error) {
	switch scope {
	case ScopeActive:
		orders, err := s.orders.ActiveOrders(ctx)
		if err != nil {
			return entity.Totals{}, err
		}
		var totals entity.Totals
		for _, order := range orders {
			totals.Add(order.Price, order.Profit())
		}
		return totals, nil
	case ScopeLedger, "":
		totals, err := s.ledgerRepo.Totals(ctx)
		if err != nil {
			return entity.Totals{}, apperror.NewStoreError(err)
		}
		return totals, nil
	default:
		return entity.Totals{}, apperror.NewValidationError("unknown totals scope")
	}
}

// CloseDay settles the whole day: any still-occupied table is force-closed,
// the accumulated ledger is exported to a report file (and, best effort, the
// receipt printer), a day summary row is recorded, and the ledger is cleared
// so the next day starts from zero. Calling it with nothing accumulated is a
// no-op and returns nil.
func (s *ReportService) CloseDay(ctx context.Context) (*entity.DaySummary, error) {
	occupied, err := s.orders.OccupiedTables(ctx)
	if err != nil {
		return nil, err
	}
	for _, table := range occupied {
		if err := s.orders.CloseTable(ctx, table); err != nil {
			log.Printf("close day: force close table %s: %v", table, err)
		}
	}

	entries, err := s.ledgerRepo.List(ctx)
	if err != nil {
		return nil, apperror.NewStoreError(err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	var totals entity.Totals
	for _, e := range entries {
		totals.Add(e.Amount, e.Profit)
	}

	closedAt := time.Now()
	if err := s.writeReport(entries, totals, closedAt); err != nil {
		return nil, err
	}
	if err := s.printReceipt(entries, totals, closedAt); err != nil {
		log.Printf("close day: print receipt: %v", err)
	}

	summary := &entity.DaySummary{
		Revenue:    totals.RevenueCents,
		Profit:     totals.ProfitCents,
		OrderCount: len(entries),
		ClosedAt:   closedAt,
	}
	if err := s.summaryRepo.Create(ctx, summary); err != nil {
		return nil, apperror.NewStoreError(err)
	}
	if err := s.ledgerRepo.Clear(ctx); err != nil {
		return nil, apperror.NewStoreError(err)
	}

	s.notifier.DayClosed()
	s.notifier.TotalsUpdated(entity.Totals{})
	return summary, nil
}

// ListDaySummaries returns past day closes, newest first, paginated.
func (s *ReportService) ListDaySummaries(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.DaySummary], error) {
	summaries, total, err := s.summaryRepo.List(ctx, params)
	if err != nil {
		return nil, apperror.NewStoreError(err)
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(summaries, pag), nil
}

// writeReport persists the human-readable audit file. The per-line layout
// (time, table, product, amount) and the two closing total labels are what
// the counter staff read, so their order stays fixed.
func (s *ReportService) writeReport(entries []entity.LedgerEntry, totals entity.Totals, closedAt time.Time) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Day Close Report\n")
	fmt.Fprintf(&b, "Closed: %s\n\n", closedAt.Format("02.01.2006 15:04:05"))
	for _, e := range entries {
		fmt.Fprintf(&b, "%s | Table %s | %s | %.2f\n",
			e.OccurredAt.Format("15:04:05"), e.TableNo, e.ProductName, float64(e.Amount)/100)
	}
	fmt.Fprintf(&b, "\nTotal Revenue: %.2f\n", totals.Revenue())
	fmt.Fprintf(&b, "Total Profit: %.2f\n", totals.Profit())

	if err := os.MkdirAll(s.reportDir, 0o755); err != nil {
		return apperror.NewStoreError(err)
	}
	name := fmt.Sprintf("day-close-%s.txt", closedAt.Format("20060102-150405"))
	if err := os.WriteFile(filepath.Join(s.reportDir, name), []byte(b.String()), 0o644); err != nil {
		return apperror.NewStoreError(err)
	}
	return nil
}

// printReceipt renders the day close for the thermal printer. Best effort:
// the caller logs and moves on if no printer is reachable.
func (s *ReportService) printReceipt(entries []entity.LedgerEntry, totals entity.Totals, closedAt time.Time) error {
	if s.printer == nil || !s.printer.IsConnected() {
		return nil
	}

	doc := receipt.NewDocument(receipt.DefaultWidth)
	doc.SetAlign(receipt.AlignCenter)
	doc.SetBold(true)
	doc.Text("DAY CLOSE")
	doc.SetBold(false)
	doc.Text(closedAt.Format("02.01.2006 15:04:05"))
	doc.SetAlign(receipt.AlignLeft)
	doc.Separator('-')
	for _, e := range entries {
		doc.KeyValue(fmt.Sprintf("%s %s", e.OccurredAt.Format("15:04"), e.ProductName),
			fmt.Sprintf("%.2f", float64(e.Amount)/100))
	}
	doc.Separator('-')
	doc.KeyValue("Total Revenue", fmt.Sprintf("%.2f", totals.Revenue()))
	doc.KeyValue("Total Profit", fmt.Sprintf("%.2f", totals.Profit()))
	doc.FeedLines(3)
	doc.Cut()

	return s.printer.Print(doc.Bytes())
}
