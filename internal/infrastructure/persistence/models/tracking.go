package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/scanlink/backend/internal/domain/tracking"
)

// ScanModel is the persistence model for the Scan domain entity.
// Each scan is its own row; the conversion pointer is the only column
// mutated after insert, via a conditional update-if-null.
type ScanModel struct {
	BaseModel
	CampaignID uuid.UUID `gorm:"type:uuid;not null;index"`
	ScannedAt  time.Time `gorm:"not null;index"`

	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`

	City   *string `gorm:"type:varchar(100);index"`
	Suburb *string `gorm:"type:varchar(100)"`
	Region *string `gorm:"type:varchar(100)"`

	WeatherCondition *string  `gorm:"type:varchar(100)"`
	TemperatureC     *float64 `gorm:"type:decimal(5,2)"`
	Humidity         *int
	WindSpeedKmh     *float64 `gorm:"type:decimal(6,2)"`

	StoreDistanceM *int
	PoiDistanceM   *int

	UserAgent  string `gorm:"type:text"`
	DeviceType string `gorm:"type:varchar(50)"`
	Referrer   string `gorm:"type:varchar(500)"`
	ScanSource string `gorm:"type:varchar(50)"`

	ConvertedOrderID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (ScanModel) TableName() string {
	return "scans"
}

// ToDomain converts the persistence model to a domain Scan entity
func (m *ScanModel) ToDomain() *tracking.Scan {
	s := &tracking.Scan{
		BaseEntity:       m.BaseModel.ToDomain(),
		CampaignID:       m.CampaignID,
		ScannedAt:        m.ScannedAt,
		Latitude:         m.Latitude,
		Longitude:        m.Longitude,
		City:             m.City,
		Suburb:           m.Suburb,
		Region:           m.Region,
		StoreDistanceM:   m.StoreDistanceM,
		PoiDistanceM:     m.PoiDistanceM,
		UserAgent:        m.UserAgent,
		DeviceType:       m.DeviceType,
		Referrer:         m.Referrer,
		ScanSource:       m.ScanSource,
		ConvertedOrderID: m.ConvertedOrderID,
	}
	if m.WeatherCondition != nil || m.TemperatureC != nil || m.Humidity != nil || m.WindSpeedKmh != nil {
		condition := ""
		if m.WeatherCondition != nil {
			condition = *m.WeatherCondition
		}
		s.Weather = &tracking.WeatherSnapshot{
			Condition:    condition,
			TemperatureC: m.TemperatureC,
			Humidity:     m.Humidity,
			WindSpeedKmh: m.WindSpeedKmh,
		}
	}
	return s
}

// ScanModelFromDomain creates a persistence model from a domain Scan
func ScanModelFromDomain(s *tracking.Scan) *ScanModel {
	m := &ScanModel{
		CampaignID:       s.CampaignID,
		ScannedAt:        s.ScannedAt,
		Latitude:         s.Latitude,
		Longitude:        s.Longitude,
		City:             s.City,
		Suburb:           s.Suburb,
		Region:           s.Region,
		StoreDistanceM:   s.StoreDistanceM,
		PoiDistanceM:     s.PoiDistanceM,
		UserAgent:        s.UserAgent,
		DeviceType:       s.DeviceType,
		Referrer:         s.Referrer,
		ScanSource:       s.ScanSource,
		ConvertedOrderID: s.ConvertedOrderID,
	}
	if !s.Weather.IsEmpty() {
		if s.Weather.Condition != "" {
			condition := s.Weather.Condition
			m.WeatherCondition = &condition
		}
		m.TemperatureC = s.Weather.TemperatureC
		m.Humidity = s.Weather.Humidity
		m.WindSpeedKmh = s.Weather.WindSpeedKmh
	}
	m.FromDomainBaseEntity(s.BaseEntity)
	return m
}
