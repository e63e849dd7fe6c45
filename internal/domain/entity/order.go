package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/enum"
)

// Order is one ordered unit of a single product for a single table. A cart
// with three coffees becomes three Order rows. Price and Cost are copied from
// the catalog at order time; later price changes never touch placed orders.
type Order struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	TableNo     string           `gorm:"size:50;not null;index" json:"table_no"`
	ProductName string           `gorm:"size:255;not null" json:"product_name"`
	Price       int64            `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Cost        int64            `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Status      enum.OrderStatus `gorm:"default:0" json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// Profit returns the margin captured for this order, in cents.
func (o *Order) Profit() int64 {
	return o.Price - o.Cost
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
		Cost  float64 `json:"cost"`
	}{
		Alias: Alias(o),
		Price: float64(o.Price) / 100,
		Cost:  float64(o.Cost) / 100,
	})
}
