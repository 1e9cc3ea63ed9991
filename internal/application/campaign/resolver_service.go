package campaign

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/scanlink/backend/internal/domain/campaign"
	"github.com/scanlink/backend/internal/infrastructure/cache"
)

// ResolverMetrics records redirect activity. Implemented by
// telemetry.ScanMetrics; may be nil.
type ResolverMetrics interface {
	RecordRedirectResolved(ctx context.Context, cached bool)
}

// ResolverService answers the hot short-link path: code identifier in,
// product redirect URL out. Lookups are cached with a short TTL so the
// database only sees cache misses.
type ResolverService struct {
	campaignRepo  campaign.CampaignRepository
	resolverCache cache.Store
	cacheTTL      time.Duration
	frontendBase  string
	metrics       ResolverMetrics
}

// Resolution is the outcome of resolving a code identifier
type Resolution struct {
	CampaignID  string
	ProductID   string
	RedirectURL string
}

// NewResolverService creates a new ResolverService. frontendBase is the
// storefront base URL redirect targets are built against.
func NewResolverService(campaignRepo campaign.CampaignRepository, resolverCache cache.Store, cacheTTL time.Duration, frontendBase string, metrics ResolverMetrics) *ResolverService {
	return &ResolverService{
		campaignRepo:  campaignRepo,
		resolverCache: resolverCache,
		cacheTTL:      cacheTTL,
		frontendBase:  frontendBase,
		metrics:       metrics,
	}
}

// Resolve maps a code identifier to its campaign and redirect target.
// The match is exact and case-sensitive. An unknown identifier returns
// shared.ErrNotFound from the repository untouched.
func (s *ResolverService) Resolve(ctx context.Context, codeIdentifier string) (*Resolution, error) {
	cacheKey := "resolve:" + codeIdentifier

	if data, ok, err := s.resolverCache.Get(ctx, cacheKey); err == nil && ok {
		if res := decodeResolution(data); res != nil {
			s.recordRedirect(ctx, true)
			return res, nil
		}
	}

	c, err := s.campaignRepo.FindByCodeIdentifier(ctx, codeIdentifier)
	if err != nil {
		return nil, err
	}

	res := &Resolution{
		CampaignID:  c.ID.String(),
		ProductID:   c.ProductID.String(),
		RedirectURL: fmt.Sprintf("%s/products/%s", s.frontendBase, c.ProductID),
	}

	// Cache write failures only cost the next lookup
	_ = s.resolverCache.Set(ctx, cacheKey, encodeResolution(res), s.cacheTTL)

	s.recordRedirect(ctx, false)
	return res, nil
}

func (s *ResolverService) recordRedirect(ctx context.Context, cached bool) {
	if s.metrics != nil {
		s.metrics.RecordRedirectResolved(ctx, cached)
	}
}

// encodeResolution packs a resolution into the cache value format
// campaignID|productID|redirectURL
func encodeResolution(r *Resolution) []byte {
	return []byte(r.CampaignID + "|" + r.ProductID + "|" + r.RedirectURL)
}

// decodeResolution unpacks a cache value, returning nil on a malformed entry
func decodeResolution(data []byte) *Resolution {
	parts := strings.SplitN(string(data), "|", 3)
	if len(parts) != 3 {
		return nil
	}
	return &Resolution{
		CampaignID:  parts[0],
		ProductID:   parts[1],
		RedirectURL: parts[2],
	}
}
