package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scanlink/backend/internal/domain/trade"
)

// OrderModel is the persistence model for the Order domain entity
type OrderModel struct {
	BaseModel
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index"`

	CampaignID     *uuid.UUID `gorm:"type:uuid;index"`
	CommissionRate *int
	ScanID         *uuid.UUID `gorm:"type:uuid;index"`

	Quantity         int             `gorm:"not null"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CommissionAmount decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ShippingAddress  string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity
func (m *OrderModel) ToDomain() *trade.Order {
	return &trade.Order{
		BaseEntity:       m.BaseModel.ToDomain(),
		CustomerID:       m.CustomerID,
		ProductID:        m.ProductID,
		CampaignID:       m.CampaignID,
		CommissionRate:   m.CommissionRate,
		ScanID:           m.ScanID,
		Quantity:         m.Quantity,
		TotalAmount:      m.TotalAmount,
		CommissionAmount: m.CommissionAmount,
		ShippingAddress:  m.ShippingAddress,
	}
}

// OrderModelFromDomain creates a persistence model from a domain Order
func OrderModelFromDomain(o *trade.Order) *OrderModel {
	m := &OrderModel{
		CustomerID:       o.CustomerID,
		ProductID:        o.ProductID,
		CampaignID:       o.CampaignID,
		CommissionRate:   o.CommissionRate,
		ScanID:           o.ScanID,
		Quantity:         o.Quantity,
		TotalAmount:      o.TotalAmount,
		CommissionAmount: o.CommissionAmount,
		ShippingAddress:  o.ShippingAddress,
	}
	m.FromDomainBaseEntity(o.BaseEntity)
	return m
}
