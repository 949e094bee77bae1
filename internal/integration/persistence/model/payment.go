// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerboard/backend/internal/domain/entity"
)

// PaymentModel represents the payments table in the database.
type PaymentModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ItemID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemType      string          `gorm:"type:varchar(10);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency      string          `gorm:"type:varchar(3);not null;default:'ARS'"`
	PaymentDate   time.Time       `gorm:"type:date;not null"`
	PaymentMethod string          `gorm:"type:varchar(50)"`
	Notes         string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PaymentModel.
func (PaymentModel) TableName() string {
	return "payments"
}

// ToEntity converts a PaymentModel to a domain Payment entity.
func (m *PaymentModel) ToEntity() *entity.Payment {
	return &entity.Payment{
		ID:            m.ID,
		ItemID:        m.ItemID,
		ItemType:      entity.ItemType(m.ItemType),
		Amount:        m.Amount,
		Currency:      entity.NormalizeCurrency(entity.Currency(m.Currency)),
		PaymentDate:   m.PaymentDate,
		PaymentMethod: m.PaymentMethod,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}

// PaymentFromEntity creates a PaymentModel from a domain Payment entity.
func PaymentFromEntity(payment *entity.Payment) *PaymentModel {
	return &PaymentModel{
		ID:            payment.ID,
		ItemID:        payment.ItemID,
		ItemType:      string(payment.ItemType),
		Amount:        payment.Amount,
		Currency:      string(payment.Currency),
		PaymentDate:   payment.PaymentDate,
		PaymentMethod: payment.PaymentMethod,
		Notes:         payment.Notes,
		CreatedAt:     payment.CreatedAt,
	}
}
