// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerboard/backend/internal/domain/entity"
)

// IncomeRepository defines the ledger-source contract for expected income.
type IncomeRepository interface {
	// FindByOwner retrieves all income records for an owner.
	// Month scoping is applied by the unifier, not the store.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Income, error)

	// FindByID retrieves a single income record by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error)

	// Insert creates a new income record.
	Insert(ctx context.Context, income *entity.Income) error

	// Update updates an existing income record.
	Update(ctx context.Context, income *entity.Income) error
}
