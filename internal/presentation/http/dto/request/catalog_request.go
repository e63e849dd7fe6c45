package request

// AddProductRequest carries the fields for a new catalog entry. Price, cost
// and stock arrive as strings because the table-side clients send whatever was
// typed; the boundary coerces malformed values to zero rather than rejecting.
type AddProductRequest struct {
	Name  string `json:"name" binding:"required"`
	Price string `json:"price"`
	Cost  string `json:"cost"`
	Stock string `json:"stock"`
}

// AdjustStockRequest sets a product's stock to an explicit value.
type AdjustStockRequest struct {
	Stock string `json:"stock"`
}
