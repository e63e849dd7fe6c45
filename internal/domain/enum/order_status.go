package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderStatus represents the status of an order
type OrderStatus int

const (
	OrderStatusPending   OrderStatus = 0
	OrderStatusDelivered OrderStatus = 1
	OrderStatusClosed    OrderStatus = 2
)

func (s OrderStatus) String() string {
	return [...]string{"Pending", "Delivered", "Closed"}[s]
}

// CanTransitionTo reports whether the state machine permits moving to next.
// Pending may skip straight to Closed (a table can be settled while items are
// still in the kitchen).
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusDelivered || next == OrderStatusClosed
	case OrderStatusDelivered:
		return next == OrderStatusClosed
	default:
		return false
	}
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = OrderStatusPending
	case "Delivered":
		*s = OrderStatusDelivered
	case "Closed":
		*s = OrderStatusClosed
	}
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderStatus(v)
	case int:
		*s = OrderStatus(v)
	}
	return nil
}
