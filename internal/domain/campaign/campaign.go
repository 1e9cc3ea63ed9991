package campaign

import (
	"time"

	"github.com/google/uuid"

	"github.com/scanlink/backend/internal/domain/shared"
)

// Campaign is a tracked association between a scannable code identifier,
// a product, an owning advertiser account and a commission rate.
// The code identifier is globally unique for the lifetime of the system.
type Campaign struct {
	shared.BaseEntity
	Name           string
	OwnerID        uuid.UUID // advertiser account that receives the commission
	ProductID      uuid.UUID
	CodeIdentifier string
	CommissionRate int // integer percentage, 0-100
	StartsAt       time.Time
	EndsAt         time.Time
	Placement      string // physical/digital placement label
}

// NewCampaign creates a new campaign
func NewCampaign(name string, ownerID, productID uuid.UUID, codeIdentifier string, commissionRate int, startsAt, endsAt time.Time, placement string) (*Campaign, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Campaign name cannot be empty")
	}
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Campaign owner cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if codeIdentifier == "" {
		return nil, shared.NewDomainError("INVALID_CODE_IDENTIFIER", "Code identifier cannot be empty")
	}
	if commissionRate < 0 || commissionRate > 100 {
		return nil, shared.NewDomainError("INVALID_COMMISSION_RATE", "Commission rate must be between 0 and 100")
	}
	if !endsAt.IsZero() && !startsAt.IsZero() && endsAt.Before(startsAt) {
		return nil, shared.NewDomainError("INVALID_VALIDITY_WINDOW", "Campaign end must not precede its start")
	}

	return &Campaign{
		BaseEntity:     shared.NewBaseEntity(),
		Name:           name,
		OwnerID:        ownerID,
		ProductID:      productID,
		CodeIdentifier: codeIdentifier,
		CommissionRate: commissionRate,
		StartsAt:       startsAt,
		EndsAt:         endsAt,
		Placement:      placement,
	}, nil
}

// IsActiveAt reports whether the campaign validity window covers the given time.
// A zero bound is treated as open-ended.
func (c *Campaign) IsActiveAt(t time.Time) bool {
	if !c.StartsAt.IsZero() && t.Before(c.StartsAt) {
		return false
	}
	if !c.EndsAt.IsZero() && t.After(c.EndsAt) {
		return false
	}
	return true
}

// UpdateCommissionRate applies an administrative rate edit.
// Orders snapshot the rate at creation, so edits never rewrite history.
func (c *Campaign) UpdateCommissionRate(rate int) error {
	if rate < 0 || rate > 100 {
		return shared.NewDomainError("INVALID_COMMISSION_RATE", "Commission rate must be between 0 and 100")
	}
	c.CommissionRate = rate
	c.Touch()
	return nil
}
