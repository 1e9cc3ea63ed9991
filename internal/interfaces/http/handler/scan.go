package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apptracking "github.com/scanlink/backend/internal/application/tracking"
	"github.com/scanlink/backend/internal/domain/tracking"
)

// ScanHandler handles scan event ingestion
type ScanHandler struct {
	BaseHandler
	ingestService *apptracking.IngestService
}

// NewScanHandler creates a new ScanHandler
func NewScanHandler(ingestService *apptracking.IngestService) *ScanHandler {
	return &ScanHandler{ingestService: ingestService}
}

// RegisterRoutes registers scan routes
func (h *ScanHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/scans", h.Ingest)
}

// scanCoords is the nested coordinate object of a scan ingestion call.
// Both fields are pointers so a missing field is distinguishable from a
// legitimate zero coordinate.
type scanCoords struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lon *float64 `json:"lon" binding:"required"`
}

// ingestScanRequest is the wire shape of a scan ingestion call
type ingestScanRequest struct {
	CampaignID string      `json:"campaign_id" binding:"required,uuid"`
	ScannedAt  time.Time   `json:"scanned_at" binding:"required"`
	Coords     *scanCoords `json:"coords" binding:"required"`

	City   *string `json:"city"`
	Suburb *string `json:"suburb"`
	Region *string `json:"region"`

	Weather *tracking.WeatherSnapshot `json:"weather"`

	StoreDistanceM *int `json:"store_distance_m"`
	PoiDistanceM   *int `json:"poi_distance_m"`

	UserAgent  string `json:"user_agent"`
	DeviceType string `json:"device_type"`
	Referrer   string `json:"referrer"`
	ScanSource string `json:"scan_source"`
}

// Ingest handles POST /api/v1/scans
func (h *ScanHandler) Ingest(c *gin.Context) {
	var req ingestScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	campaignID, _ := uuid.Parse(req.CampaignID)

	resp, err := h.ingestService.Ingest(c.Request.Context(), apptracking.IngestScanRequest{
		CampaignID:     campaignID,
		ScannedAt:      req.ScannedAt,
		Latitude:       *req.Coords.Lat,
		Longitude:      *req.Coords.Lon,
		City:           req.City,
		Suburb:         req.Suburb,
		Region:         req.Region,
		Weather:        req.Weather,
		StoreDistanceM: req.StoreDistanceM,
		PoiDistanceM:   req.PoiDistanceM,
		UserAgent:      req.UserAgent,
		DeviceType:     req.DeviceType,
		Referrer:       req.Referrer,
		ScanSource:     req.ScanSource,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}
