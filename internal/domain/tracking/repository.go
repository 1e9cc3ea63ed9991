package tracking

import (
	"context"

	"github.com/google/uuid"
)

// CitySummary is the per-city aggregate over resolved scans
type CitySummary struct {
	City      string
	Latitude  float64 // mean latitude of scans in the city
	Longitude float64 // mean longitude of scans in the city
	ScanCount int64
}

// ScanRepository defines the persistence contract for scan events
type ScanRepository interface {
	// Save inserts a new scan event
	Save(ctx context.Context, s *Scan) error

	// FindByID finds a scan by its ID, returning shared.ErrNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*Scan, error)

	// FindByCampaign returns all scans for a campaign, oldest first
	FindByCampaign(ctx context.Context, campaignID uuid.UUID) ([]Scan, error)

	// AttachConversion records the converting order onto a scan via a single
	// conditional write (update-if-null). Semantics:
	//   - scan unknown: shared.ErrNotFound
	//   - pointer unset: set it, nil
	//   - pointer already set to orderID: no-op, nil
	//   - pointer set to a different order: shared.ErrConflict
	AttachConversion(ctx context.Context, scanID, orderID uuid.UUID) error

	// SummaryByCity groups resolved scans by city, descending scan count.
	// Scans without a resolved city are excluded.
	SummaryByCity(ctx context.Context) ([]CitySummary, error)
}
