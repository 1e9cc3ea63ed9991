package shared

import "context"

// TxRunner runs fn atomically: every repository call made through the
// context fn receives commits or rolls back as one unit.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
