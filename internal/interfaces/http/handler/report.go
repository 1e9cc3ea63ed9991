package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apptracking "github.com/scanlink/backend/internal/application/tracking"
)

// ReportHandler serves the scan aggregation views
type ReportHandler struct {
	BaseHandler
	aggregationService *apptracking.AggregationService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(aggregationService *apptracking.AggregationService) *ReportHandler {
	return &ReportHandler{aggregationService: aggregationService}
}

// RegisterRoutes registers reporting routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	summary := rg.Group("/scans/summary")
	{
		summary.GET("/city", h.SummaryByCity)
		summary.GET("/campaign/:id", h.CampaignSummary)
	}
}

// SummaryByCity handles GET /api/v1/scans/summary/city
func (h *ReportHandler) SummaryByCity(c *gin.Context) {
	rows, err := h.aggregationService.SummaryByCity(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rows)
}

// CampaignSummary handles GET /api/v1/scans/summary/campaign/:id
func (h *ReportHandler) CampaignSummary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid campaign ID")
		return
	}

	summary, err := h.aggregationService.CampaignSummary(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}
