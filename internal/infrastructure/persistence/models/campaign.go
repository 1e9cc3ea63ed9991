package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/scanlink/backend/internal/domain/campaign"
)

// CampaignModel is the persistence model for the Campaign domain entity.
// The code identifier carries a unique index: duplicate creates must fail,
// never silently overwrite.
type CampaignModel struct {
	BaseModel
	Name           string    `gorm:"type:varchar(200);not null"`
	OwnerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CodeIdentifier string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_campaign_code_identifier"`
	CommissionRate int       `gorm:"not null;default:0"`
	StartsAt       time.Time
	EndsAt         time.Time
	Placement      string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (CampaignModel) TableName() string {
	return "campaigns"
}

// ToDomain converts the persistence model to a domain Campaign entity
func (m *CampaignModel) ToDomain() *campaign.Campaign {
	return &campaign.Campaign{
		BaseEntity:     m.BaseModel.ToDomain(),
		Name:           m.Name,
		OwnerID:        m.OwnerID,
		ProductID:      m.ProductID,
		CodeIdentifier: m.CodeIdentifier,
		CommissionRate: m.CommissionRate,
		StartsAt:       m.StartsAt,
		EndsAt:         m.EndsAt,
		Placement:      m.Placement,
	}
}

// CampaignModelFromDomain creates a persistence model from a domain Campaign
func CampaignModelFromDomain(c *campaign.Campaign) *CampaignModel {
	m := &CampaignModel{
		Name:           c.Name,
		OwnerID:        c.OwnerID,
		ProductID:      c.ProductID,
		CodeIdentifier: c.CodeIdentifier,
		CommissionRate: c.CommissionRate,
		StartsAt:       c.StartsAt,
		EndsAt:         c.EndsAt,
		Placement:      c.Placement,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}
