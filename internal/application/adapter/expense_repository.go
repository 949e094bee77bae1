// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerboard/backend/internal/domain/entity"
)

// ExpenseRepository defines the ledger-source contract for expenses.
// Reads return active expenses only; an expense soft-deleted via its active
// flag is invisible to every total and listing.
type ExpenseRepository interface {
	// FindActiveByOwner retrieves all active expenses for an owner.
	FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Expense, error)

	// FindByID retrieves a single expense by ID, active or not.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// Insert creates a new expense.
	Insert(ctx context.Context, expense *entity.Expense) error

	// Update updates an existing expense, including its active and paid flags.
	Update(ctx context.Context, expense *entity.Expense) error
}
