// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerboard/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency      string          `gorm:"type:varchar(3);not null;default:'ARS'"`
	Category      string          `gorm:"type:varchar(50);index"`
	PaymentMethod string          `gorm:"type:varchar(50)"`
	IsRecurring   bool            `gorm:"default:false"`
	// No column default here: gorm skips zero-valued fields that carry one
	// on insert, which would silently store IsActive=false rows as active.
	// NewExpense owns the default instead.
	IsActive      bool            `gorm:"index"`
	DueDate       *time.Time      `gorm:"type:date;index"`
	Paid          bool            `gorm:"default:false"`
	PaidDate      *time.Time      `gorm:"type:date"`
	ReceiptURL    string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		Name:          m.Name,
		Amount:        m.Amount,
		Currency:      entity.NormalizeCurrency(entity.Currency(m.Currency)),
		Category:      m.Category,
		PaymentMethod: m.PaymentMethod,
		IsRecurring:   m.IsRecurring,
		IsActive:      m.IsActive,
		DueDate:       m.DueDate,
		Paid:          m.Paid,
		PaidDate:      m.PaidDate,
		ReceiptURL:    m.ReceiptURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:            expense.ID,
		OwnerID:       expense.OwnerID,
		Name:          expense.Name,
		Amount:        expense.Amount,
		Currency:      string(expense.Currency),
		Category:      expense.Category,
		PaymentMethod: expense.PaymentMethod,
		IsRecurring:   expense.IsRecurring,
		IsActive:      expense.IsActive,
		DueDate:       expense.DueDate,
		Paid:          expense.Paid,
		PaidDate:      expense.PaidDate,
		ReceiptURL:    expense.ReceiptURL,
		CreatedAt:     expense.CreatedAt,
		UpdatedAt:     expense.UpdatedAt,
	}
}
