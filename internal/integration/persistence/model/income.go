// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerboard/backend/internal/domain/entity"
)

// IncomeModel represents the income table in the database.
type IncomeModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency      string          `gorm:"type:varchar(3);not null;default:'ARS'"`
	Category      string          `gorm:"type:varchar(50);index"`
	PaymentMethod string          `gorm:"type:varchar(50)"`
	ExpectedDate  *time.Time      `gorm:"type:date;index"`
	Probability   string          `gorm:"type:varchar(10);default:'high'"`
	Status        string          `gorm:"type:varchar(10);not null;default:'expected';index"`
	ReceivedDate  *time.Time      `gorm:"type:date"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "income"
}

// ToEntity converts an IncomeModel to a domain Income entity.
func (m *IncomeModel) ToEntity() *entity.Income {
	return &entity.Income{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		Name:          m.Name,
		Amount:        m.Amount,
		Currency:      entity.NormalizeCurrency(entity.Currency(m.Currency)),
		Category:      m.Category,
		PaymentMethod: m.PaymentMethod,
		ExpectedDate:  m.ExpectedDate,
		Probability:   entity.IncomeProbability(m.Probability),
		Status:        entity.IncomeStatus(m.Status),
		ReceivedDate:  m.ReceivedDate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// IncomeFromEntity creates an IncomeModel from a domain Income entity.
func IncomeFromEntity(income *entity.Income) *IncomeModel {
	return &IncomeModel{
		ID:            income.ID,
		OwnerID:       income.OwnerID,
		Name:          income.Name,
		Amount:        income.Amount,
		Currency:      string(income.Currency),
		Category:      income.Category,
		PaymentMethod: income.PaymentMethod,
		ExpectedDate:  income.ExpectedDate,
		Probability:   string(income.Probability),
		Status:        string(income.Status),
		ReceivedDate:  income.ReceivedDate,
		CreatedAt:     income.CreatedAt,
		UpdatedAt:     income.UpdatedAt,
	}
}
