// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledgerboard/backend/internal/application/adapter"
	"github.com/ledgerboard/backend/internal/domain/entity"
	"github.com/ledgerboard/backend/internal/integration/persistence/model"
)

// paymentRepository implements the adapter.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance.
func NewPaymentRepository(db *gorm.DB) adapter.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// FindByItem retrieves all payments registered against a parent item.
func (r *paymentRepository) FindByItem(ctx context.Context, itemID uuid.UUID, itemType entity.ItemType) ([]*entity.Payment, error) {
	var paymentModels []model.PaymentModel
	result := r.db.WithContext(ctx).
		Where("item_id = ? AND item_type = ?", itemID, string(itemType)).
		Order("payment_date ASC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.Payment, len(paymentModels))
	for i, pm := range paymentModels {
		payments[i] = pm.ToEntity()
	}
	return payments, nil
}

// FindByItems retrieves payments for a set of parent items in one read.
func (r *paymentRepository) FindByItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]*entity.Payment, error) {
	grouped := make(map[uuid.UUID][]*entity.Payment)
	if len(itemIDs) == 0 {
		return grouped, nil
	}

	var paymentModels []model.PaymentModel
	result := r.db.WithContext(ctx).
		Where("item_id IN ?", itemIDs).
		Order("payment_date ASC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	for i := range paymentModels {
		payment := paymentModels[i].ToEntity()
		grouped[payment.ItemID] = append(grouped[payment.ItemID], payment)
	}
	return grouped, nil
}

// Append registers a new payment in the database.
func (r *paymentRepository) Append(ctx context.Context, payment *entity.Payment) error {
	paymentModel := model.PaymentFromEntity(payment)
	result := r.db.WithContext(ctx).Create(paymentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
