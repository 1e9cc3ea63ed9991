package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/scanlink/backend/internal/domain/campaign"
	"github.com/scanlink/backend/internal/domain/catalog"
	"github.com/scanlink/backend/internal/domain/finance"
	"github.com/scanlink/backend/internal/domain/partner"
	"github.com/scanlink/backend/internal/domain/tracking"
	"github.com/scanlink/backend/internal/domain/trade"
)

// MockCampaignRepository implements campaign.CampaignRepository for testing
type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*campaign.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*campaign.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) FindByCodeIdentifier(ctx context.Context, codeIdentifier string) (*campaign.Campaign, error) {
	args := m.Called(ctx, codeIdentifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*campaign.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) Save(ctx context.Context, c *campaign.Campaign) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCampaignRepository) Update(ctx context.Context, c *campaign.Campaign) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// MockProductRepository implements catalog.ProductRepository for testing
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// MockScanRepository implements tracking.ScanRepository for testing
type MockScanRepository struct {
	mock.Mock
}

func (m *MockScanRepository) Save(ctx context.Context, s *tracking.Scan) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockScanRepository) FindByID(ctx context.Context, id uuid.UUID) (*tracking.Scan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.Scan), args.Error(1)
}

func (m *MockScanRepository) FindByCampaign(ctx context.Context, campaignID uuid.UUID) ([]tracking.Scan, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tracking.Scan), args.Error(1)
}

func (m *MockScanRepository) AttachConversion(ctx context.Context, scanID, orderID uuid.UUID) error {
	args := m.Called(ctx, scanID, orderID)
	return args.Error(0)
}

func (m *MockScanRepository) SummaryByCity(ctx context.Context) ([]tracking.CitySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tracking.CitySummary), args.Error(1)
}

// MockOrderRepository implements trade.OrderRepository for testing
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *trade.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

// MockPayoutRepository implements finance.PayoutRepository for testing
type MockPayoutRepository struct {
	mock.Mock
}

func (m *MockPayoutRepository) SaveAll(ctx context.Context, payouts []*finance.Payout) error {
	args := m.Called(ctx, payouts)
	return args.Error(0)
}

func (m *MockPayoutRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]finance.Payout, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Payout), args.Error(1)
}

// MockMerchantRepository implements partner.MerchantRepository for testing
type MockMerchantRepository struct {
	mock.Mock
}

func (m *MockMerchantRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Merchant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) Save(ctx context.Context, merchant *partner.Merchant) error {
	args := m.Called(ctx, merchant)
	return args.Error(0)
}
