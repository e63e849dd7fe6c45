package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bonusplayerslive-star/neon-kafe/internal/application/service"
	"github.com/bonusplayerslive-star/neon-kafe/internal/presentation/http/dto/request"
	"github.com/bonusplayerslive-star/neon-kafe/internal/presentation/http/dto/response"
)

// OrderHandler handles order lifecycle HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Place handles a cart submitted from a table
func (h *OrderHandler) Place(c *gin.Context) {
	var req request.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, item.Name)
	}

	orders, err := h.orderService.PlaceOrder(c.Request.Context(), &service.PlaceOrderInput{
		TableNo: req.Table,
		Items:   items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Order placed successfully", orders)
}

// ListActive returns every open order for dashboard views
func (h *OrderHandler) ListActive(c *gin.Context) {
	orders, err := h.orderService.ActiveOrders(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Orders retrieved successfully", orders)
}

// Deliver marks an order as delivered by the kitchen
func (h *OrderHandler) Deliver(c *gin.Context) {
	if err := h.orderService.MarkDelivered(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order marked as delivered", nil)
}

// TableOrders returns the open orders for one table, the bill view.
func (h *OrderHandler) TableOrders(c *gin.Context) {
	orders, err := h.orderService.TableOrders(c.Request.Context(), c.Param("table"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Table orders retrieved successfully", orders)
}

// CloseTable settles a table into the ledger
func (h *OrderHandler) CloseTable(c *gin.Context) {
	if err := h.orderService.CloseTable(c.Request.Context(), c.Param("table")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Table closed successfully", nil)
}

// OccupiedTables lists the tables that currently have open orders
func (h *OrderHandler) OccupiedTables(c *gin.Context) {
	tables, err := h.orderService.OccupiedTables(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Occupied tables retrieved successfully", tables)
}
