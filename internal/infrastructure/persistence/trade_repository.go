package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scanlink/backend/internal/domain/finance"
	"github.com/scanlink/backend/internal/domain/shared"
	"github.com/scanlink/backend/internal/domain/trade"
	"github.com/scanlink/backend/internal/infrastructure/persistence/models"
)

// GormOrderRepository implements trade.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by its ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	var model models.OrderModel
	if err := session(ctx, r.db).WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save inserts a new order
func (r *GormOrderRepository) Save(ctx context.Context, o *trade.Order) error {
	model := models.OrderModelFromDomain(o)
	return session(ctx, r.db).WithContext(ctx).Create(model).Error
}

// GormPayoutRepository implements finance.PayoutRepository using GORM
type GormPayoutRepository struct {
	db *gorm.DB
}

// NewGormPayoutRepository creates a new GormPayoutRepository
func NewGormPayoutRepository(db *gorm.DB) *GormPayoutRepository {
	return &GormPayoutRepository{db: db}
}

// SaveAll inserts the payout entries for one order atomically
func (r *GormPayoutRepository) SaveAll(ctx context.Context, payouts []*finance.Payout) error {
	if len(payouts) == 0 {
		return nil
	}
	return session(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range payouts {
			if err := tx.Create(models.PayoutModelFromDomain(p)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByOrder returns the payout entries recorded for an order
func (r *GormPayoutRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]finance.Payout, error) {
	var payoutModels []models.PayoutModel
	if err := session(ctx, r.db).WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&payoutModels).Error; err != nil {
		return nil, err
	}

	payouts := make([]finance.Payout, len(payoutModels))
	for i, model := range payoutModels {
		payouts[i] = *model.ToDomain()
	}
	return payouts, nil
}
