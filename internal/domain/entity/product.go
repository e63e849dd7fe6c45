package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a catalog entry: one item the kitchen can sell. Price and Cost
// are stored in cents; Stock is informational and never drops below zero.
type Product struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Price     int64     `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Cost      int64     `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Stock     int       `gorm:"default:0" json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetPriceDecimal returns the sale price as a decimal (for display)
func (p *Product) GetPriceDecimal() float64 {
	return float64(p.Price) / 100
}

// GetCostDecimal returns the unit cost as a decimal (for display)
func (p *Product) GetCostDecimal() float64 {
	return float64(p.Cost) / 100
}

// InStock reports whether the product should appear on the customer menu.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// MarshalJSON converts Product to JSON with decimal prices
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
		Cost  float64 `json:"cost"`
	}{
		Alias: Alias(p),
		Price: p.GetPriceDecimal(),
		Cost:  p.GetCostDecimal(),
	})
}
