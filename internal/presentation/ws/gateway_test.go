package ws

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"github.com/bonusplayerslive-star/neon-kafe/internal/application/service"
	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/entity"
	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/enum"
	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/notification"
)

// deadlineOrderRepo records whether the context that reaches the store layer
// carries a deadline.
type deadlineOrderRepo struct {
	sawDeadline bool
}

func (r *deadlineOrderRepo) Create(ctx context.Context, order *entity.Order) error { return nil }

func (r *deadlineOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	_, r.sawDeadline = ctx.Deadline()
	return &entity.Order{ID: id, TableNo: "1", Status: enum.OrderStatusPending}, nil
}

func (r *deadlineOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	return nil
}

func (r *deadlineOrderRepo) ListActive(ctx context.Context) ([]entity.Order, error) {
	return nil, nil
}

func (r *deadlineOrderRepo) ListByTable(ctx context.Context, tableNo string) ([]entity.Order, error) {
	return nil, nil
}

func (r *deadlineOrderRepo) DeleteByTable(ctx context.Context, tableNo string) error { return nil }

func (r *deadlineOrderRepo) OccupiedTables(ctx context.Context) ([]string, error) { return nil, nil }

func TestGatewayDispatchBoundsCommandContext(t *testing.T) {
	repo := &deadlineOrderRepo{}
	orders := service.NewOrderService(repo, nil, nil, notification.NopNotifier{})
	gateway := NewGateway(NewHub(), nil, orders, nil)

	payload, err := json.Marshal(map[string]string{"orderId": uuid.NewString()})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	client := &Client{send: make(chan []byte, sendBufferSize)}

	gateway.dispatch(client, Envelope{Type: cmdMarkDelivered, Payload: payload})

	if !repo.sawDeadline {
		t.Error("expected the command context to carry a deadline")
	}
}
