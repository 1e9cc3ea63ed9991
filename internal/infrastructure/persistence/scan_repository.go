package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scanlink/backend/internal/domain/shared"
	"github.com/scanlink/backend/internal/domain/tracking"
	"github.com/scanlink/backend/internal/infrastructure/persistence/models"
)

// GormScanRepository implements tracking.ScanRepository using GORM
type GormScanRepository struct {
	db *gorm.DB
}

// NewGormScanRepository creates a new GormScanRepository
func NewGormScanRepository(db *gorm.DB) *GormScanRepository {
	return &GormScanRepository{db: db}
}

// Save inserts a new scan event
func (r *GormScanRepository) Save(ctx context.Context, s *tracking.Scan) error {
	model := models.ScanModelFromDomain(s)
	return session(ctx, r.db).WithContext(ctx).Create(model).Error
}

// FindByID finds a scan by its ID
func (r *GormScanRepository) FindByID(ctx context.Context, id uuid.UUID) (*tracking.Scan, error) {
	var model models.ScanModel
	if err := session(ctx, r.db).WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCampaign returns all scans for a campaign, oldest first
func (r *GormScanRepository) FindByCampaign(ctx context.Context, campaignID uuid.UUID) ([]tracking.Scan, error) {
	var scanModels []models.ScanModel
	if err := session(ctx, r.db).WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("scanned_at ASC").
		Find(&scanModels).Error; err != nil {
		return nil, err
	}

	scans := make([]tracking.Scan, len(scanModels))
	for i, model := range scanModels {
		scans[i] = *model.ToDomain()
	}
	return scans, nil
}

// AttachConversion records the converting order onto a scan via a single
// conditional update. The update-if-null predicate makes concurrent
// attempts race-safe without external locking: exactly one writer wins.
func (r *GormScanRepository) AttachConversion(ctx context.Context, scanID, orderID uuid.UUID) error {
	result := session(ctx, r.db).WithContext(ctx).Model(&models.ScanModel{}).
		Where("id = ? AND converted_order_id IS NULL", scanID).
		Update("converted_order_id", orderID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 1 {
		return nil
	}

	// Nothing updated: the scan is missing or already converted
	var model models.ScanModel
	if err := session(ctx, r.db).WithContext(ctx).Select("id", "converted_order_id").
		First(&model, "id = ?", scanID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.ErrNotFound
		}
		return err
	}
	if model.ConvertedOrderID != nil && *model.ConvertedOrderID == orderID {
		// re-submission of the same order is a no-op
		return nil
	}
	return shared.ErrConflict
}

// citySummaryRow is the scan target for the grouped city query
type citySummaryRow struct {
	City      string
	Latitude  float64
	Longitude float64
	ScanCount int64
}

// SummaryByCity groups resolved scans by city with a mean centroid,
// descending scan count. Unresolved scans are excluded.
func (r *GormScanRepository) SummaryByCity(ctx context.Context) ([]tracking.CitySummary, error) {
	var rows []citySummaryRow
	if err := session(ctx, r.db).WithContext(ctx).Model(&models.ScanModel{}).
		Select("city, AVG(latitude) AS latitude, AVG(longitude) AS longitude, COUNT(*) AS scan_count").
		Where("city IS NOT NULL AND city <> ''").
		Group("city").
		Order("scan_count DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	summaries := make([]tracking.CitySummary, len(rows))
	for i, row := range rows {
		summaries[i] = tracking.CitySummary{
			City:      row.City,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
			ScanCount: row.ScanCount,
		}
	}
	return summaries, nil
}
