package trade

import (
	"context"
	"errors"

	"go.uber.org/zap"

	appfinance "github.com/scanlink/backend/internal/application/finance"
	"github.com/scanlink/backend/internal/domain/campaign"
	"github.com/scanlink/backend/internal/domain/catalog"
	"github.com/scanlink/backend/internal/domain/finance"
	"github.com/scanlink/backend/internal/domain/shared"
	"github.com/scanlink/backend/internal/domain/tracking"
	"github.com/scanlink/backend/internal/domain/trade"
)

// ConversionMetrics records scan-to-order attributions. Implemented by
// telemetry.ScanMetrics; may be nil.
type ConversionMetrics interface {
	RecordConversion(ctx context.Context)
}

// OrderService creates orders. Order creation is the attribution entry
// point: the campaign's commission rate is snapshotted onto the order,
// the referenced scan's conversion pointer is set, and the order is
// settled into payout ledger entries in one pass.
type OrderService struct {
	orderRepo    trade.OrderRepository
	productRepo  catalog.ProductRepository
	campaignRepo campaign.CampaignRepository
	scanRepo     tracking.ScanRepository
	settlement   *appfinance.SettlementService
	tx           shared.TxRunner
	logger       *zap.Logger
	metrics      ConversionMetrics
}

// nopTxRunner runs fn directly, for callers without a storage transaction
type nopTxRunner struct{}

func (nopTxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// NewOrderService creates a new OrderService. tx may be nil, in which
// case the create steps run as independent writes.
func NewOrderService(
	orderRepo trade.OrderRepository,
	productRepo catalog.ProductRepository,
	campaignRepo campaign.CampaignRepository,
	scanRepo tracking.ScanRepository,
	settlement *appfinance.SettlementService,
	tx shared.TxRunner,
	logger *zap.Logger,
	metrics ConversionMetrics,
) *OrderService {
	if tx == nil {
		tx = nopTxRunner{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		campaignRepo: campaignRepo,
		scanRepo:     scanRepo,
		settlement:   settlement,
		tx:           tx,
		logger:       logger,
		metrics:      metrics,
	}
}

// Create records an order, attributes it, and settles it. The campaign
// reference on the request is authoritative for attribution; the scan
// reference only drives the conversion pointer. A scan already claimed
// by a different order fails with shared.ErrConflict.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		return nil, err
	}

	var commissionRate *int
	if req.CampaignID != nil {
		c, err := s.campaignRepo.FindByID(ctx, *req.CampaignID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("NOT_FOUND", "Campaign not found")
			}
			return nil, err
		}
		rate := c.CommissionRate
		commissionRate = &rate
	}

	if req.ScanID != nil {
		scan, err := s.scanRepo.FindByID(ctx, *req.ScanID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("NOT_FOUND", "Scan not found")
			}
			return nil, err
		}
		if scan.IsConverted() {
			return nil, shared.ErrConflict
		}
	}

	order, err := trade.NewOrder(req.CustomerID, req.ProductID, req.CampaignID, commissionRate, req.ScanID, req.Quantity, req.TotalAmount, req.ShippingAddress)
	if err != nil {
		return nil, err
	}

	// Save, conversion attach and settlement commit or roll back as one
	// unit, so a lost attach race or settlement failure leaves no
	// half-written order behind.
	var payouts []*finance.Payout
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.orderRepo.Save(ctx, order); err != nil {
			return err
		}

		if req.ScanID != nil {
			if err := s.scanRepo.AttachConversion(ctx, *req.ScanID, order.ID); err != nil {
				// The pre-check above makes this a lost race, not a client error
				s.logger.Warn("conversion pointer attach failed",
					zap.String("order_id", order.ID.String()),
					zap.String("scan_id", req.ScanID.String()),
					zap.Error(err),
				)
				return err
			}
		}

		var err error
		payouts, err = s.settlement.SettleOrder(ctx, order)
		return err
	})
	if err != nil {
		return nil, err
	}

	if req.ScanID != nil && s.metrics != nil {
		s.metrics.RecordConversion(ctx)
	}

	return toOrderResponse(order, payouts), nil
}
