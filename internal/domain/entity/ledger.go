package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LedgerEntry is the immutable historical record of one settled order,
// created exactly once when its table is closed. The day's revenue and profit
// are always recomputed from these rows.
type LedgerEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TableNo     string    `gorm:"size:50;not null;index" json:"table_no"`
	ProductName string    `gorm:"size:255;not null" json:"product_name"`
	Amount      int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Profit      int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	OccurredAt  time.Time `gorm:"not null" json:"occurred_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new ledger entry
func (e *LedgerEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LedgerEntry model
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (e LedgerEntry) MarshalJSON() ([]byte, error) {
	type Alias LedgerEntry
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
		Profit float64 `json:"profit"`
	}{
		Alias:  Alias(e),
		Amount: float64(e.Amount) / 100,
		Profit: float64(e.Profit) / 100,
	})
}

// DaySummary is the aggregate frozen by a day close: the totals of every
// ledger entry exported in that close. Immutable once written.
type DaySummary struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Revenue    int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Profit     int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	OrderCount int       `gorm:"not null" json:"order_count"`
	ClosedAt   time.Time `gorm:"not null" json:"closed_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new day summary
func (d *DaySummary) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DaySummary model
func (DaySummary) TableName() string {
	return "day_summaries"
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (d DaySummary) MarshalJSON() ([]byte, error) {
	type Alias DaySummary
	return json.Marshal(&struct {
		Alias
		Revenue float64 `json:"revenue"`
		Profit  float64 `json:"profit"`
	}{
		Alias:   Alias(d),
		Revenue: float64(d.Revenue) / 100,
		Profit:  float64(d.Profit) / 100,
	})
}

// Totals is the aggregation engine's output: revenue and profit summed over a
// set of ledger entries or open orders. Values in cents.
type Totals struct {
	RevenueCents int64
	ProfitCents  int64
}

// Add folds one amount/profit pair into the totals.
func (t *Totals) Add(amountCents, profitCents int64) {
	t.RevenueCents += amountCents
	t.ProfitCents += profitCents
}

// Revenue returns the revenue as a decimal.
func (t Totals) Revenue() float64 {
	return float64(t.RevenueCents) / 100
}

// Profit returns the profit as a decimal.
func (t Totals) Profit() float64 {
	return float64(t.ProfitCents) / 100
}

// MarshalJSON renders the wire shape every dashboard consumes.
func (t Totals) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Revenue float64 `json:"revenue"`
		Profit  float64 `json:"profit"`
	}{
		Revenue: t.Revenue(),
		Profit:  t.Profit(),
	})
}
