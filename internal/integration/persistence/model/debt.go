// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerboard/backend/internal/domain/entity"
)

// DebtModel represents the debts table in the database.
type DebtModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AmountPaid    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Currency      string          `gorm:"type:varchar(3);not null;default:'ARS'"`
	Category      string          `gorm:"type:varchar(50);index"`
	PaymentMethod string          `gorm:"type:varchar(50)"`
	DueDate       *time.Time      `gorm:"type:date;index"`
	Status        string          `gorm:"type:varchar(10);not null;default:'pending';index"`
	PaidDate      *time.Time      `gorm:"type:date"`
	ReceiptURL    string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the DebtModel.
func (DebtModel) TableName() string {
	return "debts"
}

// ToEntity converts a DebtModel to a domain Debt entity.
func (m *DebtModel) ToEntity() *entity.Debt {
	return &entity.Debt{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		Name:          m.Name,
		TotalAmount:   m.TotalAmount,
		AmountPaid:    m.AmountPaid,
		Currency:      entity.NormalizeCurrency(entity.Currency(m.Currency)),
		Category:      m.Category,
		PaymentMethod: m.PaymentMethod,
		DueDate:       m.DueDate,
		Status:        entity.DebtStatus(m.Status),
		PaidDate:      m.PaidDate,
		ReceiptURL:    m.ReceiptURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// DebtFromEntity creates a DebtModel from a domain Debt entity.
func DebtFromEntity(debt *entity.Debt) *DebtModel {
	return &DebtModel{
		ID:            debt.ID,
		OwnerID:       debt.OwnerID,
		Name:          debt.Name,
		TotalAmount:   debt.TotalAmount,
		AmountPaid:    debt.AmountPaid,
		Currency:      string(debt.Currency),
		Category:      debt.Category,
		PaymentMethod: debt.PaymentMethod,
		DueDate:       debt.DueDate,
		Status:        string(debt.Status),
		PaidDate:      debt.PaidDate,
		ReceiptURL:    debt.ReceiptURL,
		CreatedAt:     debt.CreatedAt,
		UpdatedAt:     debt.UpdatedAt,
	}
}
