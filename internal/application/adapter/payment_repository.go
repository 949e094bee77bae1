// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerboard/backend/internal/domain/entity"
)

// PaymentRepository defines the ledger-source contract for the payment
// sub-ledger. Payments are append-only; there is no update or delete.
type PaymentRepository interface {
	// FindByItem retrieves all payments registered against a parent item,
	// ordered by payment date ascending.
	FindByItem(ctx context.Context, itemID uuid.UUID, itemType entity.ItemType) ([]*entity.Payment, error)

	// FindByItems retrieves payments for a set of parent items in one read,
	// grouped by item ID.
	FindByItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]*entity.Payment, error)

	// Append registers a new payment.
	Append(ctx context.Context, payment *entity.Payment) error
}
