package ws

import (
	"github.com/google/uuid"

	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/entity"
	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/notification"
)

// Broadcaster adapts the hub to the core's notification contract. Every event
// goes to all connected clients; reply-only frames are the gateway's business.
type Broadcaster struct {
	hub *Hub
}

// NewBroadcaster creates a new broadcaster
func NewBroadcaster(hub *Hub) *Broadcaster {
	return &Broadcaster{hub: hub}
}

var _ notification.Notifier = (*Broadcaster)(nil)

func (b *Broadcaster) OrderCreated(order *entity.Order) {
	b.hub.BroadcastEvent(notification.EventOrderCreated, order)
}

func (b *Broadcaster) OrderDelivered(orderID uuid.UUID) {
	b.hub.BroadcastEvent(notification.EventOrderDelivered, orderID.String())
}

func (b *Broadcaster) OccupancyChanged(tableNo string, occupied bool) {
	b.hub.BroadcastEvent(notification.EventOccupancyChanged, notification.Occupancy{
		TableNo:  tableNo,
		Occupied: occupied,
	})
}

func (b *Broadcaster) TableReset(tableNo string) {
	b.hub.BroadcastEvent(notification.EventTableReset, tableNo)
}

func (b *Broadcaster) TotalsUpdated(totals entity.Totals) {
	b.hub.BroadcastEvent(notification.EventTotalsUpdated, totals)
}

func (b *Broadcaster) DayClosed() {
	b.hub.BroadcastEvent(notification.EventDayClosed, nil)
}
