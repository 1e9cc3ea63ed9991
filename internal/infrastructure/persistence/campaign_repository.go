package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scanlink/backend/internal/domain/campaign"
	"github.com/scanlink/backend/internal/domain/shared"
	"github.com/scanlink/backend/internal/infrastructure/persistence/models"
)

// GormCampaignRepository implements campaign.CampaignRepository using GORM
type GormCampaignRepository struct {
	db *gorm.DB
}

// NewGormCampaignRepository creates a new GormCampaignRepository
func NewGormCampaignRepository(db *gorm.DB) *GormCampaignRepository {
	return &GormCampaignRepository{db: db}
}

// FindByID finds a campaign by its ID
func (r *GormCampaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*campaign.Campaign, error) {
	var model models.CampaignModel
	if err := session(ctx, r.db).WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCodeIdentifier finds a campaign by its unique code identifier.
// The lookup is exact and case-sensitive, served by the unique index.
func (r *GormCampaignRepository) FindByCodeIdentifier(ctx context.Context, codeIdentifier string) (*campaign.Campaign, error) {
	var model models.CampaignModel
	if err := session(ctx, r.db).WithContext(ctx).
		Where("code_identifier = ?", codeIdentifier).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save inserts a new campaign. A duplicate code identifier is translated
// to shared.ErrAlreadyExists; existing rows are never overwritten.
func (r *GormCampaignRepository) Save(ctx context.Context, c *campaign.Campaign) error {
	model := models.CampaignModelFromDomain(c)
	if err := session(ctx, r.db).WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Update persists administrative edits to an existing campaign
func (r *GormCampaignRepository) Update(ctx context.Context, c *campaign.Campaign) error {
	model := models.CampaignModelFromDomain(c)
	result := session(ctx, r.db).WithContext(ctx).Model(&models.CampaignModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"name":            model.Name,
			"commission_rate": model.CommissionRate,
			"starts_at":       model.StartsAt,
			"ends_at":         model.EndsAt,
			"placement":       model.Placement,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
