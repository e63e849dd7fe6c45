package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/entity"
	domainRepo "github.com/bonusplayerslive-star/neon-kafe/internal/domain/repository"
	"github.com/bonusplayerslive-star/neon-kafe/pkg/pagination"
)

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB) domainRepo.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) CreateBatch(ctx context.Context, entries []entity.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&entries).Error
}

func (r *ledgerRepository) List(ctx context.Context) ([]entity.LedgerEntry, error) {
	var entries []entity.LedgerEntry
	err := r.db.WithContext(ctx).
		Order("occurred_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *ledgerRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.LedgerEntry{}).Count(&total).Error
	return total, err
}

func (r *ledgerRepository) Totals(ctx context.Context) (entity.Totals, error) {
	var totals entity.Totals
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(amount), 0) as revenue_cents,
			COALESCE(SUM(profit), 0) as profit_cents
		FROM ledger_entries
	`).Row().Scan(&totals.RevenueCents, &totals.ProfitCents)
	return totals, err
}

func (r *ledgerRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&entity.LedgerEntry{}).Error
}

type daySummaryRepository struct {
	db *gorm.DB
}

// NewDaySummaryRepository creates a new day summary repository
func NewDaySummaryRepository(db *gorm.DB) domainRepo.DaySummaryRepository {
	return &daySummaryRepository{db: db}
}

func (r *daySummaryRepository) Create(ctx context.Context, summary *entity.DaySummary) error {
	return r.db.WithContext(ctx).Create(summary).Error
}

func (r *daySummaryRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.DaySummary, int64, error) {
	var summaries []entity.DaySummary
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.DaySummary{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("closed_at DESC").
		Find(&summaries).Error

	return summaries, total, err
}
