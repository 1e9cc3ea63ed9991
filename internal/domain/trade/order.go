package trade

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scanlink/backend/internal/domain/shared"
	"github.com/scanlink/backend/internal/domain/shared/valueobject"
)

// Order is an immutable purchase record. When the scanning session carried a
// campaign forward to checkout, the campaign reference and the commission rate
// in effect at creation time are snapshotted onto the order, so later
// administrative rate edits never change how this order settles.
type Order struct {
	shared.BaseEntity
	CustomerID uuid.UUID
	ProductID  uuid.UUID

	CampaignID     *uuid.UUID
	CommissionRate *int       // snapshot of the campaign rate at order creation
	ScanID         *uuid.UUID // scan whose conversion pointer this order claims

	Quantity         int
	TotalAmount      decimal.Decimal
	CommissionAmount decimal.Decimal
	ShippingAddress  string
}

// NewOrder creates a new order. When a campaign is attributed the commission
// amount is computed from the snapshotted rate with half-up rounding to the
// currency minor unit.
func NewOrder(customerID, productID uuid.UUID, campaignID *uuid.UUID, commissionRate *int, scanID *uuid.UUID, quantity int, totalAmount decimal.Decimal, shippingAddress string) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if totalAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Total amount cannot be negative")
	}
	if (campaignID == nil) != (commissionRate == nil) {
		return nil, shared.NewDomainError("INVALID_ATTRIBUTION", "Campaign reference and commission rate must be snapshotted together")
	}
	if commissionRate != nil && (*commissionRate < 0 || *commissionRate > 100) {
		return nil, shared.NewDomainError("INVALID_COMMISSION_RATE", "Commission rate must be between 0 and 100")
	}

	commission := decimal.Zero
	if commissionRate != nil {
		commission = valueobject.NewMoney(totalAmount).Percent(*commissionRate).Amount()
	}

	return &Order{
		BaseEntity:       shared.NewBaseEntity(),
		CustomerID:       customerID,
		ProductID:        productID,
		CampaignID:       campaignID,
		CommissionRate:   commissionRate,
		ScanID:           scanID,
		Quantity:         quantity,
		TotalAmount:      totalAmount,
		CommissionAmount: commission,
		ShippingAddress:  shippingAddress,
	}, nil
}

// IsAttributed reports whether the order carries a campaign reference
func (o *Order) IsAttributed() bool {
	return o.CampaignID != nil
}

// RevenueAmount is the distributor/retailer leg: total minus commission.
// The revenue leg absorbs the rounding remainder so the legs always sum
// to the order total exactly.
func (o *Order) RevenueAmount() decimal.Decimal {
	return o.TotalAmount.Sub(o.CommissionAmount)
}
