package request

// OrderItemRequest is one menu pick inside a cart.
type OrderItemRequest struct {
	Name string `json:"name"`
}

// PlaceOrderRequest is a cart submitted from one table.
type PlaceOrderRequest struct {
	Table string             `json:"table" binding:"required"`
	Items []OrderItemRequest `json:"items" binding:"required"`
}
