package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apptrade "github.com/scanlink/backend/internal/application/trade"
)

// OrderHandler handles order creation, the attribution and settlement
// entry point.
type OrderHandler struct {
	BaseHandler
	orderService *apptrade.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *apptrade.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/orders", h.Create)
}

// createOrderRequest is the wire shape of an order create call
type createOrderRequest struct {
	CustomerID      string          `json:"customerId" binding:"required,uuid"`
	ProductID       string          `json:"productId" binding:"required,uuid"`
	CampaignID      *string         `json:"campaignId" binding:"omitempty,uuid"`
	ScanID          *string         `json:"scanId" binding:"omitempty,uuid"`
	Quantity        int             `json:"quantity" binding:"required,gt=0"`
	TotalAmount     decimal.Decimal `json:"totalAmount" binding:"required"`
	ShippingAddress string          `json:"shippingAddress"`
}

// Create handles POST /api/v1/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customerID, _ := uuid.Parse(req.CustomerID)
	productID, _ := uuid.Parse(req.ProductID)

	appReq := apptrade.CreateOrderRequest{
		CustomerID:      customerID,
		ProductID:       productID,
		Quantity:        req.Quantity,
		TotalAmount:     req.TotalAmount,
		ShippingAddress: req.ShippingAddress,
	}
	if req.CampaignID != nil {
		id, _ := uuid.Parse(*req.CampaignID)
		appReq.CampaignID = &id
	}
	if req.ScanID != nil {
		id, _ := uuid.Parse(*req.ScanID)
		appReq.ScanID = &id
	}

	resp, err := h.orderService.Create(c.Request.Context(), appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}
