// Package ledger contains the ledger aggregation engine use cases.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerboard/backend/internal/domain/entity"
)

// WritePolicy controls what every mutation does after a successful write.
//
// With RefetchAfterWrite enabled (the default) a mutation issues one full
// re-fetch of all collections before returning, trading a round trip for the
// guarantee that callers never see totals mixing stale and fresh data. It is
// an explicit, named policy so it can be swapped for optimistic updates
// without restructuring callers.
type WritePolicy struct {
	RefetchAfterWrite bool
}

// refetch runs the read pipeline after a write when the policy asks for it.
// It returns nil items when refetching is disabled.
func refetch(
	ctx context.Context,
	getItems *GetItemsUseCase,
	policy WritePolicy,
	ownerID uuid.UUID,
	month string,
	today time.Time,
) ([]*entity.UnifiedItem, error) {
	if !policy.RefetchAfterWrite {
		return nil, nil
	}

	output, err := getItems.Execute(ctx, GetItemsInput{
		OwnerID: ownerID,
		Month:   month,
		Today:   today,
	})
	if err != nil {
		return nil, err
	}
	return output.Items, nil
}
