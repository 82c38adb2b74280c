package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jhony29a/bliss/internal/db"
	"github.com/jhony29a/bliss/internal/domain"
)

// UserRepository provides data access methods for the User model.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new repository bound to the given DB connection.
func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{db: database}
}

// GetByID fetches a user by id. Absence is domain.ErrNotFound.
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*db.User, error) {
	var user db.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("user %d", id)
		}
		return nil, err
	}
	return &user, nil
}

// GetByUsername fetches a user by exact username. Absence is domain.ErrNotFound.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*db.User, error) {
	var user db.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("user %q", username)
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user; the id is assigned by the store.
func (r *UserRepository) Create(ctx context.Context, user *db.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Update merges the supplied column values into an existing user and
// returns the updated record.
func (r *UserRepository) Update(ctx context.Context, id uint64, updates map[string]interface{}) (*db.User, error) {
	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&db.User{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, domain.NotFoundf("user %d", id)
		}
	}
	return r.GetByID(ctx, id)
}

// SetVip flips the cached VIP flag on the account.
func (r *UserRepository) SetVip(ctx context.Context, id uint64, vip bool) error {
	return r.db.WithContext(ctx).Model(&db.User{}).Where("id = ?", id).Update("is_vip", vip).Error
}

// ListCandidates returns every user except the requester that passes the
// relational discovery filters, in id (insertion) order.
//
// Filters applied here:
//   - gender: preference gender, when set
//   - lookingFor: the requester's own looking-for, unless "all"
//   - minAge / maxAge: skipped when zero
//   - excludes anyone the requester already swiped on, regardless of the
//     direction of any reverse swipe
//
// Interest overlap is evaluated by the caller since interests are stored
// as JSON lists.
func (r *UserRepository) ListCandidates(
	ctx context.Context,
	userID uint64,
	gender, lookingFor string,
	minAge, maxAge int,
) ([]db.User, error) {
	query := r.db.WithContext(ctx).
		Model(&db.User{}).
		Where("users.id <> ?", userID).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM swipes s
				WHERE s.user_id1 = ?
				  AND s.user_id2 = users.id
			)`, userID).
		Order("users.id ASC")

	if gender != "" {
		query = query.Where("users.gender = ?", gender)
	}
	if lookingFor != "" && lookingFor != "all" {
		query = query.Where("users.gender = ?", lookingFor)
	}
	if minAge > 0 {
		query = query.Where("users.age >= ?", minAge)
	}
	if maxAge > 0 {
		query = query.Where("users.age <= ?", maxAge)
	}

	var users []db.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
