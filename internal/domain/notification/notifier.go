package notification

import (
	"github.com/google/uuid"

	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/entity"
)

// Event types broadcast to connected dashboards.
const (
	EventOrderCreated     = "order_created"
	EventOrderDelivered   = "order_delivered_ack"
	EventOccupancyChanged = "table_occupancy_changed"
	EventTableDetail      = "table_detail"
	EventTableReset       = "table_reset"
	EventTotalsUpdated    = "totals_updated"
	EventDayClosed        = "day_closed"
)

// Notifier is the sink the core pushes state-change events into. The
// websocket gateway implements it; tests inject a recorder. Implementations
// must never block the calling operation.
type Notifier interface {
	// OrderCreated fires once per order row, not per cart, so kitchen views
	// update incrementally.
	OrderCreated(order *entity.Order)
	OrderDelivered(orderID uuid.UUID)
	OccupancyChanged(tableNo string, occupied bool)
	TableReset(tableNo string)
	TotalsUpdated(totals entity.Totals)
	DayClosed()
}

// Occupancy is the wire payload for table_occupancy_changed.
type Occupancy struct {
	TableNo  string `json:"table"`
	Occupied bool   `json:"occupied"`
}

// TableDetail is the reply-only payload for request_table_detail.
type TableDetail struct {
	TableNo string         `json:"table"`
	Orders  []entity.Order `json:"orders"`
}

// NopNotifier discards every event. Used where no gateway is wired.
type NopNotifier struct{}

func (NopNotifier) OrderCreated(*entity.Order)    {}
func (NopNotifier) OrderDelivered(uuid.UUID)      {}
func (NopNotifier) OccupancyChanged(string, bool) {}
func (NopNotifier) TableReset(string)             {}
func (NopNotifier) TotalsUpdated(entity.Totals)   {}
func (NopNotifier) DayClosed()                    {}
