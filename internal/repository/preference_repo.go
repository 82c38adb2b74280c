package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jhony29a/bliss/internal/db"
	"github.com/jhony29a/bliss/internal/domain"
)

// PreferenceRepository provides data access for per-user discovery
// preferences (one row per user).
type PreferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new repository bound to the given DB connection.
func NewPreferenceRepository(database *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{db: database}
}

// GetByUserID fetches the stored preference set. Absence is domain.ErrNotFound.
func (r *PreferenceRepository) GetByUserID(ctx context.Context, userID uint64) (*db.UserPreference, error) {
	var prefs db.UserPreference
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("preferences for user %d", userID)
		}
		return nil, err
	}
	return &prefs, nil
}

// Save upserts a preference row: an existing row for the user is
// overwritten in place keeping its id, otherwise a new row is created.
func (r *PreferenceRepository) Save(ctx context.Context, prefs *db.UserPreference) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db.UserPreference
		err := tx.Where("user_id = ?", prefs.UserID).First(&existing).Error
		if err == nil {
			prefs.ID = existing.ID
			return tx.Save(prefs).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(prefs).Error
	})
}
