package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/scanlink/backend/internal/domain/campaign"
	"github.com/scanlink/backend/internal/domain/catalog"
	"github.com/scanlink/backend/internal/domain/shared"
	"github.com/scanlink/backend/internal/interfaces/http/dto"
)

func newTestCampaign(t *testing.T) *campaign.Campaign {
	t.Helper()
	c, err := campaign.NewCampaign("Summer promo", uuid.New(), uuid.New(), "summer2025", 15, time.Time{}, time.Time{}, "poster")
	require.NoError(t, err)
	return c
}

func TestCampaignCreate(t *testing.T) {
	app := newTestApp(t)

	product, err := catalog.NewProduct(uuid.New(), "Widget", "W-1", decimal.NewFromInt(10))
	require.NoError(t, err)

	app.productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	app.campaignRepo.On("Save", mock.Anything, mock.AnythingOfType("*campaign.Campaign")).Return(nil)

	w := app.doJSON(t, http.MethodPost, "/api/v1/campaigns", map[string]any{
		"name":           "Summer promo",
		"ownerId":        uuid.New().String(),
		"productId":      product.ID.String(),
		"codeIdentifier": "summer2025",
		"commissionRate": 15,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
}

func TestCampaignCreateDuplicateIdentifierIsConflict(t *testing.T) {
	app := newTestApp(t)

	product, err := catalog.NewProduct(uuid.New(), "Widget", "W-1", decimal.NewFromInt(10))
	require.NoError(t, err)

	app.productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	app.campaignRepo.On("Save", mock.Anything, mock.Anything).Return(shared.ErrAlreadyExists)

	w := app.doJSON(t, http.MethodPost, "/api/v1/campaigns", map[string]any{
		"name":           "Summer promo",
		"ownerId":        uuid.New().String(),
		"productId":      product.ID.String(),
		"codeIdentifier": "summer2025",
		"commissionRate": 15,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeAlreadyExists, resp.Error.Code)
}

func TestCampaignCreateValidation(t *testing.T) {
	app := newTestApp(t)

	w := app.doJSON(t, http.MethodPost, "/api/v1/campaigns", map[string]any{
		"name": "missing everything else",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCampaignGetByID(t *testing.T) {
	app := newTestApp(t)
	c := newTestCampaign(t)

	app.campaignRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)

	w := app.doJSON(t, http.MethodGet, "/api/v1/campaigns/"+c.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCampaignGetByIDNotFound(t *testing.T) {
	app := newTestApp(t)

	id := uuid.New()
	app.campaignRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	w := app.doJSON(t, http.MethodGet, "/api/v1/campaigns/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCampaignGenerateAssets(t *testing.T) {
	app := newTestApp(t)
	c := newTestCampaign(t)

	app.campaignRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)

	w := app.doJSON(t, http.MethodPost, "/api/v1/campaigns/"+c.ID.String()+"/generate-assets", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, testPublicBase+"/w/summer2025", data["shortLink"])
	assert.Equal(t, testPublicBase+"/qrcode/"+c.ID.String()+"?format=png", data["qrPngUrl"])
	assert.Contains(t, data["embedCode"], "/embed/summer2025")
}
