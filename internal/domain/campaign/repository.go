package campaign

import (
	"context"

	"github.com/google/uuid"
)

// CampaignRepository defines the persistence contract for campaigns
type CampaignRepository interface {
	// FindByID finds a campaign by its ID, returning shared.ErrNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*Campaign, error)

	// FindByCodeIdentifier finds a campaign by its unique code identifier.
	// The match is exact and case-sensitive; this is the hot resolver path
	// and is backed by a unique index.
	FindByCodeIdentifier(ctx context.Context, codeIdentifier string) (*Campaign, error)

	// Save inserts a new campaign. A duplicate code identifier fails with
	// shared.ErrAlreadyExists and leaves existing state untouched.
	Save(ctx context.Context, c *Campaign) error

	// Update persists administrative edits to an existing campaign
	Update(ctx context.Context, c *Campaign) error
}
