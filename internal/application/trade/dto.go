package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scanlink/backend/internal/domain/finance"
	"github.com/scanlink/backend/internal/domain/trade"
)

// CreateOrderRequest carries one checkout. Campaign and scan references
// are optional; when present they drive attribution and conversion.
type CreateOrderRequest struct {
	CustomerID      uuid.UUID       `json:"customerId"`
	ProductID       uuid.UUID       `json:"productId"`
	CampaignID      *uuid.UUID      `json:"campaignId,omitempty"`
	ScanID          *uuid.UUID      `json:"scanId,omitempty"`
	Quantity        int             `json:"quantity"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	ShippingAddress string          `json:"shippingAddress,omitempty"`
}

// PayoutResponse is the API representation of a payout ledger entry
type PayoutResponse struct {
	ID          uuid.UUID       `json:"id"`
	OrderID     uuid.UUID       `json:"orderId"`
	RecipientID uuid.UUID       `json:"recipientId"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
}

// OrderResponse is the API representation of a settled order
type OrderResponse struct {
	ID               uuid.UUID        `json:"id"`
	CustomerID       uuid.UUID        `json:"customerId"`
	ProductID        uuid.UUID        `json:"productId"`
	CampaignID       *uuid.UUID       `json:"campaignId,omitempty"`
	CommissionRate   *int             `json:"commissionRate,omitempty"`
	ScanID           *uuid.UUID       `json:"scanId,omitempty"`
	Quantity         int              `json:"quantity"`
	TotalAmount      decimal.Decimal  `json:"totalAmount"`
	CommissionAmount decimal.Decimal  `json:"commissionAmount"`
	ShippingAddress  string           `json:"shippingAddress,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	Payouts          []PayoutResponse `json:"payouts"`
}

// toOrderResponse converts a settled order and its payouts to the API shape
func toOrderResponse(o *trade.Order, payouts []*finance.Payout) *OrderResponse {
	resp := &OrderResponse{
		ID:               o.ID,
		CustomerID:       o.CustomerID,
		ProductID:        o.ProductID,
		CampaignID:       o.CampaignID,
		CommissionRate:   o.CommissionRate,
		ScanID:           o.ScanID,
		Quantity:         o.Quantity,
		TotalAmount:      o.TotalAmount,
		CommissionAmount: o.CommissionAmount,
		ShippingAddress:  o.ShippingAddress,
		CreatedAt:        o.CreatedAt,
		Payouts:          make([]PayoutResponse, 0, len(payouts)),
	}
	for _, p := range payouts {
		resp.Payouts = append(resp.Payouts, PayoutResponse{
			ID:          p.ID,
			OrderID:     p.OrderID,
			RecipientID: p.RecipientID,
			Amount:      p.Amount,
			Type:        string(p.Type),
		})
	}
	return resp
}
