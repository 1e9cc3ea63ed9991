package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scanlink/backend/internal/domain/finance"
)

// PayoutModel is the persistence model for the Payout ledger entry
type PayoutModel struct {
	BaseModel
	OrderID     uuid.UUID          `gorm:"type:uuid;not null;index"`
	RecipientID uuid.UUID          `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal    `gorm:"type:decimal(18,4);not null"`
	Type        finance.PayoutType `gorm:"type:varchar(30);not null"`
}

// TableName returns the table name for GORM
func (PayoutModel) TableName() string {
	return "payouts"
}

// ToDomain converts the persistence model to a domain Payout entity
func (m *PayoutModel) ToDomain() *finance.Payout {
	return &finance.Payout{
		BaseEntity:  m.BaseModel.ToDomain(),
		OrderID:     m.OrderID,
		RecipientID: m.RecipientID,
		Amount:      m.Amount,
		Type:        m.Type,
	}
}

// PayoutModelFromDomain creates a persistence model from a domain Payout
func PayoutModelFromDomain(p *finance.Payout) *PayoutModel {
	m := &PayoutModel{
		OrderID:     p.OrderID,
		RecipientID: p.RecipientID,
		Amount:      p.Amount,
		Type:        p.Type,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}
