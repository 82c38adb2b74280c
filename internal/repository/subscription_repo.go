package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jhony29a/bliss/internal/db"
	"github.com/jhony29a/bliss/internal/domain"
)

// SubscriptionRepository provides data access for the VIP subscription
// ledger. Mutations keep the owning account's VIP flag in sync.
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new repository bound to the given DB connection.
func NewSubscriptionRepository(database *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: database}
}

// GetActive fetches the user's active subscription. Absence is domain.ErrNotFound.
func (r *SubscriptionRepository) GetActive(ctx context.Context, userID uint64) (*db.Subscription, error) {
	var sub db.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, db.SubscriptionActive).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("active subscription for user %d", userID)
		}
		return nil, err
	}
	return &sub, nil
}

// Create inserts a subscription and flags the owning account as VIP.
// Rejects with domain.ErrActiveSubscription when an active row already
// exists; the check and the insert share one transaction.
func (r *SubscriptionRepository) Create(ctx context.Context, sub *db.Subscription) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&db.Subscription{}).
			Where("user_id = ? AND status = ?", sub.UserID, db.SubscriptionActive).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrActiveSubscription
		}
		if err := tx.Create(sub).Error; err != nil {
			return err
		}
		return tx.Model(&db.User{}).Where("id = ?", sub.UserID).Update("is_vip", true).Error
	})
}

// CancelActive transitions any active subscription of the user to
// cancelled and clears the VIP flag. Returns false, without error, when
// none existed.
func (r *SubscriptionRepository) CancelActive(ctx context.Context, userID uint64) (bool, error) {
	cancelled := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&db.Subscription{}).
			Where("user_id = ? AND status = ?", userID, db.SubscriptionActive).
			Update("status", db.SubscriptionCancelled)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		cancelled = true
		return tx.Model(&db.User{}).Where("id = ?", userID).Update("is_vip", false).Error
	})
	if err != nil {
		return false, err
	}
	return cancelled, nil
}
