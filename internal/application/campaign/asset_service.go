package campaign

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/scanlink/backend/internal/domain/campaign"
	"github.com/scanlink/backend/internal/domain/shared"
	"github.com/scanlink/backend/internal/infrastructure/cache"
)

// Asset formats served by the asset endpoint
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// Encoder renders a URL into a scannable asset
type Encoder interface {
	PNG(content string) ([]byte, error)
	SVG(content string) ([]byte, error)
}

// assetCacheTTL bounds how long rendered assets are kept. Assets are a
// pure function of the campaign's identifier, so a long TTL is safe.
const assetCacheTTL = 24 * time.Hour

// AssetService renders and caches the distribution artefacts of a
// campaign: QR assets, the short link and the embeddable snippet.
type AssetService struct {
	campaignRepo campaign.CampaignRepository
	encoder      Encoder
	assetCache   cache.Store
	publicBase   string
}

// NewAssetService creates a new AssetService. publicBase is the
// externally reachable base URL of this service.
func NewAssetService(campaignRepo campaign.CampaignRepository, encoder Encoder, assetCache cache.Store, publicBase string) *AssetService {
	return &AssetService{
		campaignRepo: campaignRepo,
		encoder:      encoder,
		assetCache:   assetCache,
		publicBase:   publicBase,
	}
}

// ShortLink builds the scannable redirect URL for a code identifier
func (s *AssetService) ShortLink(codeIdentifier string) string {
	return fmt.Sprintf("%s/w/%s", s.publicBase, codeIdentifier)
}

// EmbedSnippet builds the iframe snippet pointing at the embed endpoint
func (s *AssetService) EmbedSnippet(codeIdentifier string) string {
	return fmt.Sprintf(`<iframe src="%s/embed/%s" width="320" height="380" frameborder="0"></iframe>`, s.publicBase, codeIdentifier)
}

// GenerateAsset renders the campaign's QR code in the requested format.
// Rendered bytes are cached; the QR content is always the short link.
func (s *AssetService) GenerateAsset(ctx context.Context, campaignID uuid.UUID, format string) ([]byte, error) {
	if format != FormatPNG && format != FormatSVG {
		return nil, shared.NewDomainError("INVALID_FORMAT", "Asset format must be png or svg")
	}

	cacheKey := fmt.Sprintf("asset:%s:%s", campaignID, format)
	if data, ok, err := s.assetCache.Get(ctx, cacheKey); err == nil && ok {
		return data, nil
	}

	c, err := s.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	content := s.ShortLink(c.CodeIdentifier)
	var data []byte
	if format == FormatPNG {
		data, err = s.encoder.PNG(content)
	} else {
		data, err = s.encoder.SVG(content)
	}
	if err != nil {
		return nil, err
	}

	// Cache write failures only cost the next render
	_ = s.assetCache.Set(ctx, cacheKey, data, assetCacheTTL)

	return data, nil
}

// Links assembles every distribution artefact link for a campaign
func (s *AssetService) Links(ctx context.Context, campaignID uuid.UUID) (*AssetLinks, error) {
	c, err := s.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	return &AssetLinks{
		QRPngURL:  fmt.Sprintf("%s/qrcode/%s?format=png", s.publicBase, c.ID),
		QRSvgURL:  fmt.Sprintf("%s/qrcode/%s?format=svg", s.publicBase, c.ID),
		ShortLink: s.ShortLink(c.CodeIdentifier),
		EmbedCode: s.EmbedSnippet(c.CodeIdentifier),
	}, nil
}
