package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appcampaign "github.com/scanlink/backend/internal/application/campaign"
	appfinance "github.com/scanlink/backend/internal/application/finance"
	apptracking "github.com/scanlink/backend/internal/application/tracking"
	apptrade "github.com/scanlink/backend/internal/application/trade"
	"github.com/scanlink/backend/internal/infrastructure/cache"
	"github.com/scanlink/backend/internal/infrastructure/qrcode"
	"github.com/scanlink/backend/internal/interfaces/http/dto"
	"github.com/scanlink/backend/internal/interfaces/http/middleware"
	"github.com/scanlink/backend/internal/interfaces/http/router"
)

const (
	testPublicBase   = "http://localhost:8080"
	testFrontendBase = "http://shop.localhost"
)

// testApp bundles the engine and every mock behind it
type testApp struct {
	engine       *gin.Engine
	campaignRepo *MockCampaignRepository
	productRepo  *MockProductRepository
	scanRepo     *MockScanRepository
	orderRepo    *MockOrderRepository
	payoutRepo   *MockPayoutRepository
	merchantRepo *MockMerchantRepository
}

// newTestApp wires the full route table against mock repositories
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	app := &testApp{
		campaignRepo: new(MockCampaignRepository),
		productRepo:  new(MockProductRepository),
		scanRepo:     new(MockScanRepository),
		orderRepo:    new(MockOrderRepository),
		payoutRepo:   new(MockPayoutRepository),
		merchantRepo: new(MockMerchantRepository),
	}

	store := cache.NewInMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	campaignService := appcampaign.NewCampaignService(app.campaignRepo, app.productRepo)
	assetService := appcampaign.NewAssetService(app.campaignRepo, qrcode.NewGenerator(), store, testPublicBase)
	resolverService := appcampaign.NewResolverService(app.campaignRepo, store, time.Minute, testFrontendBase, nil)
	ingestService := apptracking.NewIngestService(app.scanRepo, app.campaignRepo, nil, nil, time.Second, zap.NewNop(), nil)
	aggregationService := apptracking.NewAggregationService(app.scanRepo, app.campaignRepo)
	settlementService := appfinance.NewSettlementService(app.payoutRepo, app.productRepo, app.campaignRepo, app.merchantRepo, zap.NewNop())
	orderService := apptrade.NewOrderService(app.orderRepo, app.productRepo, app.campaignRepo, app.scanRepo, settlementService, nil, zap.NewNop(), nil)

	app.engine = gin.New()
	r := router.NewRouter(app.engine)
	r.Register(NewCampaignHandler(campaignService, assetService))
	r.Register(NewScanHandler(ingestService))
	r.Register(NewReportHandler(aggregationService))
	r.Register(NewOrderHandler(orderService))
	r.RegisterPublic(NewRedirectHandler(assetService, resolverService))
	r.RegisterPublic(NewSystemHandler(nil))
	r.Setup()

	return app
}

// doJSON performs a request with an optional JSON body
func (a *testApp) doJSON(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

// decodeResponse unmarshals the standard envelope
func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
