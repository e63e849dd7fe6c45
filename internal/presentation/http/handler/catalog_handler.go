package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bonusplayerslive-star/neon-kafe/internal/application/service"
	"github.com/bonusplayerslive-star/neon-kafe/internal/presentation/http/dto/request"
	"github.com/bonusplayerslive-star/neon-kafe/internal/presentation/http/dto/response"
	"github.com/bonusplayerslive-star/neon-kafe/pkg/pagination"
	"github.com/bonusplayerslive-star/neon-kafe/pkg/utils"
)

// CatalogHandler handles product catalog HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Menu lists the products a table can order, stock > 0 only.
func (h *CatalogHandler) Menu(c *gin.Context) {
	products, err := h.catalogService.ListAvailable(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu retrieved successfully", products)
}

// List handles listing all products for admin views
func (h *CatalogHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	params.Validate()

	result, err := h.catalogService.ListAll(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Create handles adding a new product
func (h *CatalogHandler) Create(c *gin.Context) {
	var req request.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.catalogService.AddProduct(c.Request.Context(), &service.AddProductInput{
		Name:  req.Name,
		Price: utils.ParseAmount(req.Price),
		Cost:  utils.ParseAmount(req.Cost),
		Stock: utils.ParseCount(req.Stock),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Product created successfully", product)
}

// Delete handles removing a product
func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.catalogService.RemoveProduct(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AdjustStock handles setting a product's stock to an explicit value
func (h *CatalogHandler) AdjustStock(c *gin.Context) {
	var req request.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.catalogService.AdjustStock(c.Request.Context(), c.Param("id"), utils.ParseCount(req.Stock))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock updated successfully", nil)
}
