package trade

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appfinance "github.com/scanlink/backend/internal/application/finance"
	"github.com/scanlink/backend/internal/domain/campaign"
	"github.com/scanlink/backend/internal/domain/catalog"
	"github.com/scanlink/backend/internal/domain/finance"
	"github.com/scanlink/backend/internal/domain/partner"
	"github.com/scanlink/backend/internal/domain/shared"
	"github.com/scanlink/backend/internal/domain/tracking"
	"github.com/scanlink/backend/internal/domain/trade"
)

// MockOrderRepository is a mock implementation of OrderRepository
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

// MockProductRepository is a mock implementation of ProductRepository
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

// MockCampaignRepository is a mock implementation of CampaignRepository
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

// MockScanRepository is a mock implementation of ScanRepository
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

// MockPayoutRepository is a mock implementation of PayoutRepository
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

// MockMerchantRepository is a mock implementation of MerchantRepository
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

// recordingTxRunner runs fn directly and counts invocations
type recordingTxRunner struct {
	runs int
}

func (r *recordingTxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	r.runs++
	return fn(ctx)
}

type orderFixture struct {
	service      *OrderService
	orderRepo    *MockOrderRepository
	productRepo  *MockProductRepository
	campaignRepo *MockCampaignRepository
	scanRepo     *MockScanRepository
	payoutRepo   *MockPayoutRepository
	merchantRepo *MockMerchantRepository
	txRunner     *recordingTxRunner

	distributor *partner.Merchant
	advertiser  *partner.Merchant
	product     *catalog.Product
	campaign    *campaign.Campaign
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	f := &orderFixture{
		orderRepo:    new(MockOrderRepository),
		productRepo:  new(MockProductRepository),
		campaignRepo: new(MockCampaignRepository),
		scanRepo:     new(MockScanRepository),
		payoutRepo:   new(MockPayoutRepository),
		merchantRepo: new(MockMerchantRepository),
	}

	var err error
	f.distributor, err = partner.NewMerchant("Acme Distribution", partner.MerchantTypeDistributor, "")
	require.NoError(t, err)
	f.advertiser, err = partner.NewMerchant("Acme Media", partner.MerchantTypeAdvertiser, "")
	require.NoError(t, err)
	f.product, err = catalog.NewProduct(f.distributor.ID, "Widget", "W-1", decimal.NewFromInt(50))
	require.NoError(t, err)
	f.campaign, err = campaign.NewCampaign("Promo", f.advertiser.ID, f.product.ID, "promo1", 20, time.Time{}, time.Time{}, "")
	require.NoError(t, err)

	settlement := appfinance.NewSettlementService(f.payoutRepo, f.productRepo, f.campaignRepo, f.merchantRepo, zap.NewNop())
	f.txRunner = &recordingTxRunner{}
	f.service = NewOrderService(f.orderRepo, f.productRepo, f.campaignRepo, f.scanRepo, settlement, f.txRunner, zap.NewNop(), nil)
	return f
}

func (f *orderFixture) expectHappySettlement() {
	f.productRepo.On("FindByID", mock.Anything, f.product.ID).Return(f.product, nil)
	f.merchantRepo.On("FindByID", mock.Anything, f.distributor.ID).Return(f.distributor, nil)
	f.merchantRepo.On("FindByID", mock.Anything, f.advertiser.ID).Return(f.advertiser, nil)
	f.payoutRepo.On("SaveAll", mock.Anything, mock.Anything).Return(nil)
}

func TestOrderServiceCreateAttributed(t *testing.T) {
	f := newOrderFixture(t)
	f.expectHappySettlement()
	f.campaignRepo.On("FindByID", mock.Anything, f.campaign.ID).Return(f.campaign, nil)
	f.orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*trade.Order")).Return(nil)

	resp, err := f.service.Create(context.Background(), CreateOrderRequest{
		CustomerID:  uuid.New(),
		ProductID:   f.product.ID,
		CampaignID:  &f.campaign.ID,
		Quantity:    2,
		TotalAmount: decimal.RequireFromString("100.00"),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.CommissionRate)
	assert.Equal(t, 20, *resp.CommissionRate)
	assert.True(t, resp.CommissionAmount.Equal(decimal.RequireFromString("20.00")))
	require.Len(t, resp.Payouts, 2)
	assert.Equal(t, string(finance.PayoutTypeAdvertiserCommission), resp.Payouts[0].Type)
	assert.Equal(t, string(finance.PayoutTypeDistributorRevenue), resp.Payouts[1].Type)
}

func TestOrderServiceRateSnapshotSurvivesEdit(t *testing.T) {
	f := newOrderFixture(t)
	f.expectHappySettlement()
	f.campaignRepo.On("FindByID", mock.Anything, f.campaign.ID).Return(f.campaign, nil)
	f.orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*trade.Order")).Return(nil)

	resp, err := f.service.Create(context.Background(), CreateOrderRequest{
		CustomerID:  uuid.New(),
		ProductID:   f.product.ID,
		CampaignID:  &f.campaign.ID,
		Quantity:    1,
		TotalAmount: decimal.RequireFromString("100.00"),
	})
	require.NoError(t, err)

	// an administrative rate edit after order creation leaves the snapshot intact
	require.NoError(t, f.campaign.UpdateCommissionRate(50))
	assert.Equal(t, 20, *resp.CommissionRate)
	assert.True(t, resp.CommissionAmount.Equal(decimal.RequireFromString("20.00")))
}

func TestOrderServiceCreateUnattributed(t *testing.T) {
	f := newOrderFixture(t)
	f.productRepo.On("FindByID", mock.Anything, f.product.ID).Return(f.product, nil)
	f.merchantRepo.On("FindByID", mock.Anything, f.distributor.ID).Return(f.distributor, nil)
	f.payoutRepo.On("SaveAll", mock.Anything, mock.Anything).Return(nil)
	f.orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*trade.Order")).Return(nil)

	resp, err := f.service.Create(context.Background(), CreateOrderRequest{
		CustomerID:  uuid.New(),
		ProductID:   f.product.ID,
		Quantity:    1,
		TotalAmount: decimal.RequireFromString("49.90"),
	})
	require.NoError(t, err)

	assert.Nil(t, resp.CampaignID)
	assert.True(t, resp.CommissionAmount.IsZero())
	require.Len(t, resp.Payouts, 1)
	assert.True(t, resp.Payouts[0].Amount.Equal(decimal.RequireFromString("49.90")))
	f.campaignRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestOrderServiceCreateWithScanConversion(t *testing.T) {
	f := newOrderFixture(t)
	f.expectHappySettlement()
	f.campaignRepo.On("FindByID", mock.Anything, f.campaign.ID).Return(f.campaign, nil)
	f.orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*trade.Order")).Return(nil)

	scan, err := tracking.NewScan(f.campaign.ID, time.Now(), -41.28, 174.78)
	require.NoError(t, err)

	f.scanRepo.On("FindByID", mock.Anything, scan.ID).Return(scan, nil)
	f.scanRepo.On("AttachConversion", mock.Anything, scan.ID, mock.AnythingOfType("uuid.UUID")).Return(nil)

	resp, err := f.service.Create(context.Background(), CreateOrderRequest{
		CustomerID:  uuid.New(),
		ProductID:   f.product.ID,
		CampaignID:  &f.campaign.ID,
		ScanID:      &scan.ID,
		Quantity:    1,
		TotalAmount: decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ScanID)
	assert.Equal(t, scan.ID, *resp.ScanID)
	f.scanRepo.AssertExpectations(t)
}

func TestOrderServiceScanAlreadyClaimed(t *testing.T) {
	f := newOrderFixture(t)
	f.productRepo.On("FindByID", mock.Anything, f.product.ID).Return(f.product, nil)
	f.campaignRepo.On("FindByID", mock.Anything, f.campaign.ID).Return(f.campaign, nil)

	scan, err := tracking.NewScan(f.campaign.ID, time.Now(), -41.28, 174.78)
	require.NoError(t, err)
	otherOrder := uuid.New()
	scan.ConvertedOrderID = &otherOrder

	f.scanRepo.On("FindByID", mock.Anything, scan.ID).Return(scan, nil)

	_, err = f.service.Create(context.Background(), CreateOrderRequest{
		CustomerID:  uuid.New(),
		ProductID:   f.product.ID,
		CampaignID:  &f.campaign.ID,
		ScanID:      &scan.ID,
		Quantity:    1,
		TotalAmount: decimal.RequireFromString("10.00"),
	})
	assert.ErrorIs(t, err, shared.ErrConflict)
	f.orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestOrderServiceUnknownProduct(t *testing.T) {
	f := newOrderFixture(t)
	productID := uuid.New()
	f.productRepo.On("FindByID", mock.Anything, productID).Return(nil, shared.ErrNotFound)

	_, err := f.service.Create(context.Background(), CreateOrderRequest{
		CustomerID:  uuid.New(),
		ProductID:   productID,
		Quantity:    1,
		TotalAmount: decimal.NewFromInt(10),
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestOrderServiceUnknownCampaign(t *testing.T) {
	f := newOrderFixture(t)
	f.productRepo.On("FindByID", mock.Anything, f.product.ID).Return(f.product, nil)

	campaignID := uuid.New()
	f.campaignRepo.On("FindByID", mock.Anything, campaignID).Return(nil, shared.ErrNotFound)

	_, err := f.service.Create(context.Background(), CreateOrderRequest{
		CustomerID:  uuid.New(),
		ProductID:   f.product.ID,
		CampaignID:  &campaignID,
		Quantity:    1,
		TotalAmount: decimal.NewFromInt(10),
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestOrderServiceCreateRunsInsideTransaction(t *testing.T) {
	f := newOrderFixture(t)
	f.expectHappySettlement()
	f.campaignRepo.On("FindByID", mock.Anything, f.campaign.ID).Return(f.campaign, nil)
	f.orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*trade.Order")).Return(nil)

	_, err := f.service.Create(context.Background(), CreateOrderRequest{
		CustomerID:  uuid.New(),
		ProductID:   f.product.ID,
		CampaignID:  &f.campaign.ID,
		Quantity:    1,
		TotalAmount: decimal.RequireFromString("100.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, f.txRunner.runs)
}

func TestOrderServiceSettlementFailureAbortsCreate(t *testing.T) {
	f := newOrderFixture(t)
	f.productRepo.On("FindByID", mock.Anything, f.product.ID).Return(f.product, nil)
	f.merchantRepo.On("FindByID", mock.Anything, f.distributor.ID).Return(f.distributor, nil)
	f.payoutRepo.On("SaveAll", mock.Anything, mock.Anything).Return(errors.New("payout write failed"))
	f.orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*trade.Order")).Return(nil)

	_, err := f.service.Create(context.Background(), CreateOrderRequest{
		CustomerID:  uuid.New(),
		ProductID:   f.product.ID,
		Quantity:    1,
		TotalAmount: decimal.RequireFromString("10.00"),
	})

	// the error surfaces out of the transaction so the order save rolls back with it
	require.Error(t, err)
	assert.Equal(t, 1, f.txRunner.runs)
}
