package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appcampaign "github.com/scanlink/backend/internal/application/campaign"
)

// CampaignHandler handles campaign registration and asset generation
type CampaignHandler struct {
	BaseHandler
	campaignService *appcampaign.CampaignService
	assetService    *appcampaign.AssetService
}

// NewCampaignHandler creates a new CampaignHandler
func NewCampaignHandler(campaignService *appcampaign.CampaignService, assetService *appcampaign.AssetService) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
		assetService:    assetService,
	}
}

// RegisterRoutes registers campaign routes
func (h *CampaignHandler) RegisterRoutes(rg *gin.RouterGroup) {
	campaigns := rg.Group("/campaigns")
	{
		campaigns.POST("", h.Create)
		campaigns.GET("/:id", h.GetByID)
		campaigns.POST("/:id/generate-assets", h.GenerateAssets)
	}
}

// createCampaignRequest is the wire shape of a campaign create call
type createCampaignRequest struct {
	Name           string    `json:"name" binding:"required"`
	OwnerID        string    `json:"ownerId" binding:"required,uuid"`
	ProductID      string    `json:"productId" binding:"required,uuid"`
	CodeIdentifier string    `json:"codeIdentifier" binding:"required,min=3,max=100,codeident"`
	CommissionRate int       `json:"commissionRate" binding:"min=0,max=100"`
	StartsAt       time.Time `json:"startsAt"`
	EndsAt         time.Time `json:"endsAt"`
	Placement      string    `json:"placement"`
}

// Create handles POST /api/v1/campaigns
func (h *CampaignHandler) Create(c *gin.Context) {
	var req createCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ownerID, _ := uuid.Parse(req.OwnerID)
	productID, _ := uuid.Parse(req.ProductID)

	resp, err := h.campaignService.Create(c.Request.Context(), appcampaign.CreateCampaignRequest{
		Name:           req.Name,
		OwnerID:        ownerID,
		ProductID:      productID,
		CodeIdentifier: req.CodeIdentifier,
		CommissionRate: req.CommissionRate,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		Placement:      req.Placement,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetByID handles GET /api/v1/campaigns/:id
func (h *CampaignHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid campaign ID")
		return
	}

	resp, err := h.campaignService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// GenerateAssets handles POST /api/v1/campaigns/:id/generate-assets
func (h *CampaignHandler) GenerateAssets(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid campaign ID")
		return
	}

	links, err := h.assetService.Links(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, links)
}
