package partner

import (
	"context"

	"github.com/google/uuid"
)

// MerchantRepository defines the persistence contract for merchant accounts
type MerchantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Merchant, error)
	Save(ctx context.Context, m *Merchant) error
}
