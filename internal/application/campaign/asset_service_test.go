package campaign

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/scanlink/backend/internal/domain/campaign"
	"github.com/scanlink/backend/internal/domain/shared"
	"github.com/scanlink/backend/internal/infrastructure/cache"
)

// stubEncoder records the content it was asked to encode
type stubEncoder struct {
	lastContent string
}

func (e *stubEncoder) PNG(content string) ([]byte, error) {
	e.lastContent = content
	return []byte("png:" + content), nil
}

func (e *stubEncoder) SVG(content string) ([]byte, error) {
	e.lastContent = content
	return []byte("svg:" + content), nil
}

func newAssetFixture(t *testing.T) (*AssetService, *MockCampaignRepository, *stubEncoder, *campaign.Campaign) {
	t.Helper()

	campaignRepo := new(MockCampaignRepository)
	encoder := &stubEncoder{}
	store := cache.NewInMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	c, err := campaign.NewCampaign("Promo", uuid.New(), uuid.New(), "summer2025", 10, time.Time{}, time.Time{}, "")
	require.NoError(t, err)

	service := NewAssetService(campaignRepo, encoder, store, "https://links.example.com")
	return service, campaignRepo, encoder, c
}

func TestAssetServiceGenerateAsset(t *testing.T) {
	service, campaignRepo, encoder, c := newAssetFixture(t)
	campaignRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil).Once()

	data, err := service.GenerateAsset(context.Background(), c.ID, FormatPNG)
	require.NoError(t, err)
	assert.Equal(t, []byte("png:https://links.example.com/w/summer2025"), data)
	assert.Equal(t, "https://links.example.com/w/summer2025", encoder.lastContent)

	// second call is served from cache, no repository hit
	again, err := service.GenerateAsset(context.Background(), c.ID, FormatPNG)
	require.NoError(t, err)
	assert.Equal(t, data, again)
	campaignRepo.AssertExpectations(t)
}

func TestAssetServiceGenerateAssetInvalidFormat(t *testing.T) {
	service, _, _, c := newAssetFixture(t)

	_, err := service.GenerateAsset(context.Background(), c.ID, "gif")
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_FORMAT", domainErr.Code)
}

func TestAssetServiceGenerateAssetUnknownCampaign(t *testing.T) {
	service, campaignRepo, _, _ := newAssetFixture(t)

	id := uuid.New()
	campaignRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err := service.GenerateAsset(context.Background(), id, FormatSVG)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestAssetServiceLinks(t *testing.T) {
	service, campaignRepo, _, c := newAssetFixture(t)
	campaignRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)

	links, err := service.Links(context.Background(), c.ID)
	require.NoError(t, err)

	assert.Equal(t, "https://links.example.com/qrcode/"+c.ID.String()+"?format=png", links.QRPngURL)
	assert.Equal(t, "https://links.example.com/qrcode/"+c.ID.String()+"?format=svg", links.QRSvgURL)
	assert.Equal(t, "https://links.example.com/w/summer2025", links.ShortLink)
	assert.Contains(t, links.EmbedCode, `<iframe src="https://links.example.com/embed/summer2025"`)
}
