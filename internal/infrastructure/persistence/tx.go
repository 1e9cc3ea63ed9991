package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/scanlink/backend/internal/domain/shared"
)

// txKey carries an open transaction through a context
type txKey struct{}

// session returns the transaction bound to ctx, or the fallback handle
// when no transaction is open. Repositories route every query through it
// so writes grouped by GormTxRunner share one transaction.
func session(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback
}

// GormTxRunner implements shared.TxRunner on a GORM connection
type GormTxRunner struct {
	db *gorm.DB
}

// NewGormTxRunner creates a new GormTxRunner
func NewGormTxRunner(db *gorm.DB) *GormTxRunner {
	return &GormTxRunner{db: db}
}

// RunInTx opens a transaction, binds it to the context handed to fn, and
// commits on nil or rolls back on error.
func (r *GormTxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

var _ shared.TxRunner = (*GormTxRunner)(nil)
