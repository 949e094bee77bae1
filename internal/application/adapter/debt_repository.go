// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerboard/backend/internal/domain/entity"
)

// DebtRepository defines the ledger-source contract for debts.
type DebtRepository interface {
	// FindByOwner retrieves all debts for an owner regardless of status.
	// Month scoping is applied by the unifier, not the store.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Debt, error)

	// FindByID retrieves a single debt by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error)

	// Insert creates a new debt.
	Insert(ctx context.Context, debt *entity.Debt) error

	// Update updates an existing debt, including its running paid amount.
	Update(ctx context.Context, debt *entity.Debt) error
}
