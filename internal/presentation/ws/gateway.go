package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/bonusplayerslive-star/neon-kafe/internal/application/service"
	"github.com/bonusplayerslive-star/neon-kafe/internal/domain/notification"
	"github.com/bonusplayerslive-star/neon-kafe/pkg/apperror"
	"github.com/bonusplayerslive-star/neon-kafe/pkg/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The dashboard and table views are served from other origins on the
	// cafe LAN; origin checking is handled by the CORS layer for HTTP and
	// deliberately open here.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Inbound command types.
const (
	cmdAdminHello         = "admin_hello"
	cmdPlaceOrder         = "place_order"
	cmdMarkDelivered      = "mark_delivered"
	cmdRequestTableDetail = "request_table_detail"
	cmdCloseTable         = "close_table"
	cmdCloseDay           = "close_day"
	cmdAddProduct         = "add_product"
	cmdRemoveProduct      = "remove_product"
	cmdAdjustStock        = "adjust_stock"
)

// Gateway terminates websocket connections and dispatches inbound commands to
// the services. Command errors go back to the sender only; state changes
// reach everyone through the Broadcaster.
type Gateway struct {
	hub     *Hub
	catalog *service.CatalogService
	orders  *service.OrderService
	reports *service.ReportService
}

// NewGateway creates a new websocket gateway
func NewGateway(hub *Hub, catalog *service.CatalogService, orders *service.OrderService, reports *service.ReportService) *Gateway {
	return &Gateway{hub: hub, catalog: catalog, orders: orders, reports: reports}
}

// Handle upgrades an HTTP request to a websocket connection.
func (g *Gateway) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws: upgrade: %v", err)
		return
	}

	client := &Client{hub: g.hub, conn: conn, send: make(chan []byte, sendBufferSize)}
	g.hub.register <- client

	go client.writePump()
	go client.readPump(g.dispatch)
}

type placeOrderCommand struct {
	Table string `json:"table"`
	Items []struct {
		Name string `json:"name"`
	} `json:"items"`
}

type markDeliveredCommand struct {
	OrderID string `json:"orderId"`
}

type tableCommand struct {
	Table string `json:"table"`
}

type addProductCommand struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Cost  string `json:"cost"`
	Stock string `json:"stock"`
}

type removeProductCommand struct {
	ID string `json:"id"`
}

type adjustStockCommand struct {
	ID    string `json:"id"`
	Stock string `json:"stock"`
}

// commandTimeout bounds the store calls behind a single inbound command.
const commandTimeout = 10 * time.Second

func (g *Gateway) dispatch(client *Client, env Envelope) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	switch env.Type {
	case cmdAdminHello:
		g.replay(ctx, client)
	case cmdPlaceOrder:
		var cmd placeOrderCommand
		if !g.decode(client, env, &cmd) {
			return
		}
		items := make([]string, 0, len(cmd.Items))
		for _, item := range cmd.Items {
			items = append(items, item.Name)
		}
		if _, err := g.orders.PlaceOrder(ctx, &service.PlaceOrderInput{TableNo: cmd.Table, Items: items}); err != nil {
			g.replyError(client, env.Type, err)
		}
	case cmdMarkDelivered:
		var cmd markDeliveredCommand
		if !g.decode(client, env, &cmd) {
			return
		}
		if err := g.orders.MarkDelivered(ctx, cmd.OrderID); err != nil {
			g.replyError(client, env.Type, err)
		}
	case cmdRequestTableDetail:
		var cmd tableCommand
		if !g.decode(client, env, &cmd) {
			return
		}
		orders, err := g.orders.TableOrders(ctx, cmd.Table)
		if err != nil {
			g.replyError(client, env.Type, err)
			return
		}
		// Reply to the requester only; other viewers did not ask.
		g.reply(client, notification.EventTableDetail, notification.TableDetail{TableNo: cmd.Table, Orders: orders})
	case cmdCloseTable:
		var cmd tableCommand
		if !g.decode(client, env, &cmd) {
			return
		}
		if err := g.orders.CloseTable(ctx, cmd.Table); err != nil {
			g.replyError(client, env.Type, err)
		}
	case cmdCloseDay:
		if _, err := g.reports.CloseDay(ctx); err != nil {
			g.replyError(client, env.Type, err)
		}
	case cmdAddProduct:
		var cmd addProductCommand
		if !g.decode(client, env, &cmd) {
			return
		}
		if _, err := g.catalog.AddProduct(ctx, cmd.toInput()); err != nil {
			g.replyError(client, env.Type, err)
		}
	case cmdRemoveProduct:
		var cmd removeProductCommand
		if !g.decode(client, env, &cmd) {
			return
		}
		if err := g.catalog.RemoveProduct(ctx, cmd.ID); err != nil {
			g.replyError(client, env.Type, err)
		}
	case cmdAdjustStock:
		var cmd adjustStockCommand
		if !g.decode(client, env, &cmd) {
			return
		}
		if err := g.catalog.AdjustStock(ctx, cmd.ID, utils.ParseCount(cmd.Stock)); err != nil {
			g.replyError(client, env.Type, err)
		}
	default:
		log.Printf("ws: unknown command %q", env.Type)
	}
}

// replay sends the current state to a freshly connected dashboard: every open
// order, the occupied tables, and the running totals.
func (g *Gateway) replay(ctx context.Context, client *Client) {
	orders, err := g.orders.ActiveOrders(ctx)
	if err != nil {
		g.replyError(client, cmdAdminHello, err)
		return
	}
	for i := range orders {
		g.reply(client, notification.EventOrderCreated, &orders[i])
	}

	tables, err := g.orders.OccupiedTables(ctx)
	if err != nil {
		g.replyError(client, cmdAdminHello, err)
		return
	}
	for _, table := range tables {
		g.reply(client, notification.EventOccupancyChanged, notification.Occupancy{TableNo: table, Occupied: true})
	}

	totals, err := g.reports.ComputeTotals(ctx, service.ScopeLedger)
	if err != nil {
		g.replyError(client, cmdAdminHello, err)
		return
	}
	g.reply(client, notification.EventTotalsUpdated, totals)
}

func (g *Gateway) decode(client *Client, env Envelope, dst any) bool {
	if err := json.Unmarshal(env.Payload, dst); err != nil {
		g.replyError(client, env.Type, apperror.NewValidationError("malformed payload"))
		return false
	}
	return true
}

func (g *Gateway) reply(client *Client, eventType string, payload any) {
	data, err := NewEnvelope(eventType, payload)
	if err != nil {
		log.Printf("ws: marshal %s: %v", eventType, err)
		return
	}
	client.Send(data)
}

type errorPayload struct {
	Command string `json:"command"`
	Message string `json:"message"`
}

// replyError reports a failed command to its sender only. Other viewers see
// nothing; the dashboard simply does not gain a new entry.
func (g *Gateway) replyError(client *Client, command string, err error) {
	log.Printf("ws: %s: %v", command, err)
	msg := "operation failed"
	if appErr := apperror.GetAppError(err); appErr != nil && appErr.Kind != apperror.KindInternal && appErr.Kind != apperror.KindStore {
		msg = appErr.Message
	}
	g.reply(client, "error", errorPayload{Command: command, Message: msg})
}

func (c *addProductCommand) toInput() *service.AddProductInput {
	return &service.AddProductInput{
		Name:  c.Name,
		Price: utils.ParseAmount(c.Price),
		Cost:  utils.ParseAmount(c.Cost),
		Stock: utils.ParseCount(c.Stock),
	}
}
