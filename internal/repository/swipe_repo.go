package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jhony29a/bliss/internal/db"
	"github.com/jhony29a/bliss/internal/utils/pagination"
)

// SwipeRepository provides data access methods for the swipe/match ledger.
type SwipeRepository struct {
	db *gorm.DB
}

// NewSwipeRepository creates a new repository bound to the given DB connection.
func NewSwipeRepository(database *gorm.DB) *SwipeRepository {
	return &SwipeRepository{db: database}
}

// RecordSwipe inserts or promotes the single ledger row for the unordered
// (actor, target) pair.
//
// Behavior:
//   - No row for the pair in either direction → insert a new unmatched row
//     recording the actor's decision.
//   - A row already exists → no-op returning that row, except that an
//     unmatched row written by the target as a like is promoted to matched
//     when the current swipe is also a like.
//
// The lookup and write run in one transaction so concurrent swipes cannot
// produce two rows for the same pair or lose a match promotion.
//
// The second return reports whether a new row was inserted.
func (r *SwipeRepository) RecordSwipe(
	ctx context.Context,
	actorID, targetID uint64,
	liked bool,
) (*db.Swipe, bool, error) {
	var out db.Swipe
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db.Swipe
		err := tx.
			Where("(user_id1 = ? AND user_id2 = ?) OR (user_id1 = ? AND user_id2 = ?)",
				actorID, targetID, targetID, actorID).
			First(&existing).Error
		if err == nil {
			if !existing.Matched && existing.UserID1 == targetID && existing.Liked && liked {
				if err := tx.Model(&existing).Update("matched", true).Error; err != nil {
					return err
				}
				// reload for the refreshed updated_at
				if err := tx.First(&existing, existing.ID).Error; err != nil {
					return err
				}
			}
			out = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		out = db.Swipe{UserID1: actorID, UserID2: targetID, Liked: liked}
		created = true
		return tx.Create(&out).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &out, created, nil
}

// GetMatched returns all matched ledger rows touching the user, in
// insertion order.
func (r *SwipeRepository) GetMatched(ctx context.Context, userID uint64) ([]db.Swipe, error) {
	var swipes []db.Swipe
	err := r.db.WithContext(ctx).
		Where("(user_id1 = ? OR user_id2 = ?) AND matched = ?", userID, userID, true).
		Order("id ASC").
		Find(&swipes).Error
	if err != nil {
		return nil, err
	}
	return swipes, nil
}

// GetLikers returns rows for users who liked the target and are not yet
// matched with them, newest first, with cursor-based pagination.
func (r *SwipeRepository) GetLikers(
	ctx context.Context,
	targetID uint64,
	paginationToken *string,
	limit int,
) ([]db.Swipe, *string, error) {
	cursor, err := pagination.Decode(getString(paginationToken))
	if err != nil {
		return nil, nil, err
	}

	query := r.db.WithContext(ctx).
		Model(&db.Swipe{}).
		Where("user_id2 = ? AND liked = ? AND matched = ?", targetID, true, false).
		Order("updated_at DESC, user_id1 DESC").
		Limit(limit + 1)

	if cursor.LikerID > 0 && cursor.UpdatedUnix > 0 {
		ts := time.UnixMilli(cursor.UpdatedUnix)
		query = query.Where(
			"(updated_at < ? OR (updated_at = ? AND user_id1 < ?))",
			ts, ts, cursor.LikerID,
		)
	}

	var swipes []db.Swipe
	if err := query.Find(&swipes).Error; err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if len(swipes) > limit {
		last := swipes[limit-1]
		token, _ := pagination.Encode(pagination.Cursor{
			LikerID:     last.UserID1,
			UpdatedUnix: last.UpdatedAt.UnixMilli(),
		})
		nextToken = &token
		swipes = swipes[:limit]
	}

	return swipes, nextToken, nil
}

// CountLikers returns how many users liked the target without a match yet.
func (r *SwipeRepository) CountLikers(ctx context.Context, targetID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Swipe{}).
		Where("user_id2 = ? AND liked = ? AND matched = ?", targetID, true, false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// getString safely dereferences a string pointer for pagination tokens.
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
