package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanlink/backend/internal/domain/campaign"
	"github.com/scanlink/backend/internal/domain/shared"
)

func newTestCampaign(t *testing.T, codeIdentifier string) *campaign.Campaign {
	t.Helper()
	c, err := campaign.NewCampaign("Test campaign", uuid.New(), uuid.New(), codeIdentifier, 10,
		time.Now().Add(-time.Hour), time.Now().AddDate(0, 1, 0), "storefront window")
	require.NoError(t, err)
	return c
}

func TestCampaignRepositorySaveAndFind(t *testing.T) {
	repo := NewGormCampaignRepository(newTestDB(t))
	ctx := context.Background()

	c := newTestCampaign(t, "summer2025")
	require.NoError(t, repo.Save(ctx, c))

	byID, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "summer2025", byID.CodeIdentifier)
	assert.Equal(t, 10, byID.CommissionRate)

	byCode, err := repo.FindByCodeIdentifier(ctx, "summer2025")
	require.NoError(t, err)
	assert.Equal(t, c.ID, byCode.ID)
}

func TestCampaignRepositoryDuplicateCodeIdentifier(t *testing.T) {
	repo := NewGormCampaignRepository(newTestDB(t))
	ctx := context.Background()

	first := newTestCampaign(t, "summer2025")
	require.NoError(t, repo.Save(ctx, first))

	dup := newTestCampaign(t, "summer2025")
	err := repo.Save(ctx, dup)
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)

	// the original row is untouched
	got, err := repo.FindByCodeIdentifier(ctx, "summer2025")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestCampaignRepositoryLookupIsCaseSensitive(t *testing.T) {
	repo := NewGormCampaignRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestCampaign(t, "Summer2025")))

	_, err := repo.FindByCodeIdentifier(ctx, "summer2025")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCampaignRepositoryNotFound(t *testing.T) {
	repo := NewGormCampaignRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = repo.FindByCodeIdentifier(ctx, "missing")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCampaignRepositoryUpdate(t *testing.T) {
	repo := NewGormCampaignRepository(newTestDB(t))
	ctx := context.Background()

	c := newTestCampaign(t, "edit2025")
	require.NoError(t, repo.Save(ctx, c))

	require.NoError(t, c.UpdateCommissionRate(30))
	require.NoError(t, repo.Update(ctx, c))

	got, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, got.CommissionRate)

	missing := newTestCampaign(t, "ghost2025")
	assert.ErrorIs(t, repo.Update(ctx, missing), shared.ErrNotFound)
}
