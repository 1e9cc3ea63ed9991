package finance

import (
	"context"

	"github.com/google/uuid"
)

// PayoutRepository defines the persistence contract for payout ledger entries
type PayoutRepository interface {
	// SaveAll inserts the payout entries for one order in a single transaction
	SaveAll(ctx context.Context, payouts []*Payout) error

	// FindByOrder returns the payout entries recorded for an order
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]Payout, error)
}
