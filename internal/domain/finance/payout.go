package finance

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scanlink/backend/internal/domain/shared"
)

// PayoutType tags a ledger entry with the leg it settles
type PayoutType string

const (
	// PayoutTypeAdvertiserCommission is the campaign owner's commission leg
	PayoutTypeAdvertiserCommission PayoutType = "advertiser_commission"
	// PayoutTypeDistributorRevenue is the product owner's revenue leg
	PayoutTypeDistributorRevenue PayoutType = "distributor_revenue"
)

// IsValid checks if the type is a known PayoutType
func (t PayoutType) IsValid() bool {
	switch t {
	case PayoutTypeAdvertiserCommission, PayoutTypeDistributorRevenue:
		return true
	}
	return false
}

// Payout is an immutable ledger entry distributing an order's value.
// For an attributed order the commission and revenue legs sum to the
// order total exactly.
type Payout struct {
	shared.BaseEntity
	OrderID     uuid.UUID
	RecipientID uuid.UUID
	Amount      decimal.Decimal
	Type        PayoutType
}

// NewPayout creates a new payout ledger entry
func NewPayout(orderID, recipientID uuid.UUID, amount decimal.Decimal, payoutType PayoutType) (*Payout, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if recipientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RECIPIENT", "Recipient ID cannot be empty")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payout amount cannot be negative")
	}
	if !payoutType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYOUT_TYPE", "Unknown payout type")
	}

	return &Payout{
		BaseEntity:  shared.NewBaseEntity(),
		OrderID:     orderID,
		RecipientID: recipientID,
		Amount:      amount,
		Type:        payoutType,
	}, nil
}
