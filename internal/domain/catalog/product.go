package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scanlink/backend/internal/domain/shared"
)

// Product is the redirect target of a short link and the source of the
// distributor-revenue recipient at settlement time.
type Product struct {
	shared.BaseEntity
	MerchantID  uuid.UUID // owning distributor/retailer account
	Name        string
	Code        string
	Price       decimal.Decimal
	Description string
}

// NewProduct creates a new product
func NewProduct(merchantID uuid.UUID, name, code string, price decimal.Decimal) (*Product, error) {
	if merchantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MERCHANT", "Merchant ID cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		MerchantID: merchantID,
		Name:       name,
		Code:       code,
		Price:      price,
	}, nil
}
