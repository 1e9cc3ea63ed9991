package partner

import (
	"github.com/scanlink/backend/internal/domain/shared"
)

// MerchantType classifies a payout recipient account
type MerchantType string

const (
	MerchantTypeRetailer    MerchantType = "retailer"
	MerchantTypeDistributor MerchantType = "distributor"
	MerchantTypeAdvertiser  MerchantType = "advertiser"
)

// IsValid checks if the type is a known MerchantType
func (t MerchantType) IsValid() bool {
	switch t {
	case MerchantTypeRetailer, MerchantTypeDistributor, MerchantTypeAdvertiser:
		return true
	}
	return false
}

// Merchant is a payout recipient account: the retailer/distributor that owns
// products, or the advertiser that owns campaigns.
type Merchant struct {
	shared.BaseEntity
	Name  string
	Type  MerchantType
	Email string
}

// NewMerchant creates a new merchant account
func NewMerchant(name string, merchantType MerchantType, email string) (*Merchant, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Merchant name cannot be empty")
	}
	if !merchantType.IsValid() {
		return nil, shared.NewDomainError("INVALID_MERCHANT_TYPE", "Unknown merchant type")
	}

	return &Merchant{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Type:       merchantType,
		Email:      email,
	}, nil
}
