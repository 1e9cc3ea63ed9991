package campaign

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/scanlink/backend/internal/domain/campaign"
	"github.com/scanlink/backend/internal/domain/catalog"
	"github.com/scanlink/backend/internal/domain/shared"
)

// CampaignService handles campaign registration and lookup
type CampaignService struct {
	campaignRepo campaign.CampaignRepository
	productRepo  catalog.ProductRepository
}

// NewCampaignService creates a new CampaignService
func NewCampaignService(campaignRepo campaign.CampaignRepository, productRepo catalog.ProductRepository) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		productRepo:  productRepo,
	}
}

// Create registers a new campaign. The code identifier must be unused;
// a duplicate fails without touching the existing campaign.
func (s *CampaignService) Create(ctx context.Context, req CreateCampaignRequest) (*CampaignResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		return nil, err
	}

	c, err := campaign.NewCampaign(req.Name, req.OwnerID, req.ProductID, req.CodeIdentifier, req.CommissionRate, req.StartsAt, req.EndsAt, req.Placement)
	if err != nil {
		return nil, err
	}

	if err := s.campaignRepo.Save(ctx, c); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Code identifier is already in use")
		}
		return nil, err
	}

	return toCampaignResponse(c), nil
}

// GetByID fetches a campaign by ID
func (s *CampaignService) GetByID(ctx context.Context, id uuid.UUID) (*CampaignResponse, error) {
	c, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCampaignResponse(c), nil
}

// UpdateCommissionRate applies an administrative rate edit. Existing orders
// keep the rate snapshotted at their creation.
func (s *CampaignService) UpdateCommissionRate(ctx context.Context, id uuid.UUID, rate int) (*CampaignResponse, error) {
	c, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.UpdateCommissionRate(rate); err != nil {
		return nil, err
	}
	if err := s.campaignRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCampaignResponse(c), nil
}
