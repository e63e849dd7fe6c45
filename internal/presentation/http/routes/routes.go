package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bonusplayerslive-star/neon-kafe/internal/config"
	"github.com/bonusplayerslive-star/neon-kafe/internal/presentation/http/handler"
	"github.com/bonusplayerslive-star/neon-kafe/internal/presentation/http/middleware"
	"github.com/bonusplayerslive-star/neon-kafe/internal/presentation/ws"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Catalog *handler.CatalogHandler
	Order   *handler.OrderHandler
	Report  *handler.ReportHandler
	Gateway *ws.Gateway
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// Realtime gateway for dashboards and table views
	router.GET("/ws", h.Gateway.Handle)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerCatalogRoutes(v1, h)
		registerOrderRoutes(v1, h)
		registerReportRoutes(v1, h)
	}

	return router
}

func registerCatalogRoutes(v1 *gin.RouterGroup, h *Handlers) {
	// The menu is what a table's QR code lands on
	v1.GET("/menu", h.Catalog.Menu)

	products := v1.Group("/products")
	{
		products.GET("", h.Catalog.List)
		products.POST("", h.Catalog.Create)
		products.DELETE("/:id", h.Catalog.Delete)
		products.PUT("/:id/stock", h.Catalog.AdjustStock)
	}
}

func registerOrderRoutes(v1 *gin.RouterGroup, h *Handlers) {
	orders := v1.Group("/orders")
	{
		orders.GET("", h.Order.ListActive)
		orders.POST("", h.Order.Place)
		orders.POST("/:id/deliver", h.Order.Deliver)
	}

	tables := v1.Group("/tables")
	{
		tables.GET("/occupied", h.Order.OccupiedTables)
		tables.GET("/:table/orders", h.Order.TableOrders)
		tables.POST("/:table/close", h.Order.CloseTable)
	}
}

func registerReportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.POST("/day/close", h.Report.CloseDay)

	reports := v1.Group("/reports")
	{
		reports.GET("/totals", h.Report.Totals)
		reports.GET("/days", h.Report.ListDays)
	}
}
