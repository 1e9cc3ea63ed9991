// Package finance settles orders into immutable payout ledger entries.
package finance

import (
	"context"

	"go.uber.org/zap"

	"github.com/scanlink/backend/internal/domain/campaign"
	"github.com/scanlink/backend/internal/domain/catalog"
	"github.com/scanlink/backend/internal/domain/finance"
	"github.com/scanlink/backend/internal/domain/partner"
	"github.com/scanlink/backend/internal/domain/shared"
	"github.com/scanlink/backend/internal/domain/trade"
)

// SettlementService distributes an order's value into payout ledger
// entries. An attributed order splits into an advertiser-commission leg
// and a distributor-revenue leg that sum to the order total exactly;
// an unattributed order settles as a single revenue leg.
type SettlementService struct {
	payoutRepo   finance.PayoutRepository
	productRepo  catalog.ProductRepository
	campaignRepo campaign.CampaignRepository
	merchantRepo partner.MerchantRepository
	logger       *zap.Logger
}

// NewSettlementService creates a new SettlementService
func NewSettlementService(
	payoutRepo finance.PayoutRepository,
	productRepo catalog.ProductRepository,
	campaignRepo campaign.CampaignRepository,
	merchantRepo partner.MerchantRepository,
	logger *zap.Logger,
) *SettlementService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettlementService{
		payoutRepo:   payoutRepo,
		productRepo:  productRepo,
		campaignRepo: campaignRepo,
		merchantRepo: merchantRepo,
		logger:       logger,
	}
}

// SettleOrder writes the payout entries for an order and returns them.
// The order's snapshotted commission amount is authoritative; recipient
// accounts that cannot be resolved are a data integrity failure.
func (s *SettlementService) SettleOrder(ctx context.Context, order *trade.Order) ([]*finance.Payout, error) {
	product, err := s.productRepo.FindByID(ctx, order.ProductID)
	if err != nil {
		return nil, s.integrityFailure(order, "product lookup failed", err)
	}
	if _, err := s.merchantRepo.FindByID(ctx, product.MerchantID); err != nil {
		return nil, s.integrityFailure(order, "product owner lookup failed", err)
	}

	var payouts []*finance.Payout

	if order.IsAttributed() {
		c, err := s.campaignRepo.FindByID(ctx, *order.CampaignID)
		if err != nil {
			return nil, s.integrityFailure(order, "campaign lookup failed", err)
		}
		if _, err := s.merchantRepo.FindByID(ctx, c.OwnerID); err != nil {
			return nil, s.integrityFailure(order, "campaign owner lookup failed", err)
		}

		commission, err := finance.NewPayout(order.ID, c.OwnerID, order.CommissionAmount, finance.PayoutTypeAdvertiserCommission)
		if err != nil {
			return nil, err
		}
		revenue, err := finance.NewPayout(order.ID, product.MerchantID, order.RevenueAmount(), finance.PayoutTypeDistributorRevenue)
		if err != nil {
			return nil, err
		}
		payouts = []*finance.Payout{commission, revenue}
	} else {
		revenue, err := finance.NewPayout(order.ID, product.MerchantID, order.TotalAmount, finance.PayoutTypeDistributorRevenue)
		if err != nil {
			return nil, err
		}
		payouts = []*finance.Payout{revenue}
	}

	if err := s.payoutRepo.SaveAll(ctx, payouts); err != nil {
		return nil, err
	}

	return payouts, nil
}

func (s *SettlementService) integrityFailure(order *trade.Order, msg string, err error) error {
	s.logger.Error("settlement integrity failure",
		zap.String("order_id", order.ID.String()),
		zap.String("reason", msg),
		zap.Error(err),
	)
	return shared.ErrInternal
}
