package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bonusplayerslive-star/neon-kafe/internal/application/service"
	"github.com/bonusplayerslive-star/neon-kafe/internal/presentation/http/dto/response"
	"github.com/bonusplayerslive-star/neon-kafe/pkg/pagination"
)

// ReportHandler handles aggregation and day-close HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Totals returns revenue and profit for the requested scope. The default
// scope covers everything settled since the last day close; ?scope=active
// sums the still-open orders instead.
func (h *ReportHandler) Totals(c *gin.Context) {
	scope := service.TotalsScope(c.DefaultQuery("scope", string(service.ScopeLedger)))

	totals, err := h.reportService.ComputeTotals(c.Request.Context(), scope)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Totals computed successfully", totals)
}

// CloseDay runs the end-of-day close-out
func (h *ReportHandler) CloseDay(c *gin.Context) {
	summary, err := h.reportService.CloseDay(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if summary == nil {
		response.OK(c, "Nothing to close", nil)
		return
	}
	response.OK(c, "Day closed successfully", summary)
}

// ListDays returns past day summaries, newest first
func (h *ReportHandler) ListDays(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	params.Validate()

	result, err := h.reportService.ListDaySummaries(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Day summaries retrieved successfully", result)
}
