package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scanlink/backend/internal/domain/catalog"
	"github.com/scanlink/backend/internal/domain/partner"
)

// ProductModel is the persistence model for the Product domain entity
type ProductModel struct {
	BaseModel
	MerchantID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Code        string          `gorm:"type:varchar(50);index"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Description string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity:  m.BaseModel.ToDomain(),
		MerchantID:  m.MerchantID,
		Name:        m.Name,
		Code:        m.Code,
		Price:       m.Price,
		Description: m.Description,
	}
}

// ProductModelFromDomain creates a persistence model from a domain Product
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{
		MerchantID:  p.MerchantID,
		Name:        p.Name,
		Code:        p.Code,
		Price:       p.Price,
		Description: p.Description,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// MerchantModel is the persistence model for the Merchant domain entity
type MerchantModel struct {
	BaseModel
	Name  string               `gorm:"type:varchar(200);not null"`
	Type  partner.MerchantType `gorm:"type:varchar(20);not null"`
	Email string               `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (MerchantModel) TableName() string {
	return "merchants"
}

// ToDomain converts the persistence model to a domain Merchant entity
func (m *MerchantModel) ToDomain() *partner.Merchant {
	return &partner.Merchant{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Type:       m.Type,
		Email:      m.Email,
	}
}

// MerchantModelFromDomain creates a persistence model from a domain Merchant
func MerchantModelFromDomain(p *partner.Merchant) *MerchantModel {
	m := &MerchantModel{
		Name:  p.Name,
		Type:  p.Type,
		Email: p.Email,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}
