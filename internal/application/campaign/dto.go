package campaign

import (
	"time"

	"github.com/google/uuid"

	"github.com/scanlink/backend/internal/domain/campaign"
)

// CreateCampaignRequest carries the fields needed to register a campaign
type CreateCampaignRequest struct {
	Name           string    `json:"name"`
	OwnerID        uuid.UUID `json:"ownerId"`
	ProductID      uuid.UUID `json:"productId"`
	CodeIdentifier string    `json:"codeIdentifier"`
	CommissionRate int       `json:"commissionRate"`
	StartsAt       time.Time `json:"startsAt"`
	EndsAt         time.Time `json:"endsAt"`
	Placement      string    `json:"placement"`
}

// CampaignResponse is the API representation of a campaign
type CampaignResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	OwnerID        uuid.UUID `json:"ownerId"`
	ProductID      uuid.UUID `json:"productId"`
	CodeIdentifier string    `json:"codeIdentifier"`
	CommissionRate int       `json:"commissionRate"`
	StartsAt       time.Time `json:"startsAt"`
	EndsAt         time.Time `json:"endsAt"`
	Placement      string    `json:"placement"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// AssetLinks bundles every distribution artefact for a campaign
type AssetLinks struct {
	QRPngURL  string `json:"qrPngUrl"`
	QRSvgURL  string `json:"qrSvgUrl"`
	ShortLink string `json:"shortLink"`
	EmbedCode string `json:"embedCode"`
}

// toCampaignResponse converts a domain campaign to its API representation
func toCampaignResponse(c *campaign.Campaign) *CampaignResponse {
	return &CampaignResponse{
		ID:             c.ID,
		Name:           c.Name,
		OwnerID:        c.OwnerID,
		ProductID:      c.ProductID,
		CodeIdentifier: c.CodeIdentifier,
		CommissionRate: c.CommissionRate,
		StartsAt:       c.StartsAt,
		EndsAt:         c.EndsAt,
		Placement:      c.Placement,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
