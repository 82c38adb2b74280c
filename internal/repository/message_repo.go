package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/jhony29a/bliss/internal/db"
)

// MessageRepository provides data access methods for the append-only
// message log.
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new repository bound to the given DB connection.
func NewMessageRepository(database *gorm.DB) *MessageRepository {
	return &MessageRepository{db: database}
}

// Create appends a message record; the id is assigned by the store.
func (r *MessageRepository) Create(ctx context.Context, msg *db.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// Between returns every message exchanged between the two users in either
// direction, ascending by creation time with id breaking ties.
func (r *MessageRepository) Between(ctx context.Context, userA, userB uint64) ([]db.Message, error) {
	var messages []db.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// TouchingUser returns every message the user sent or received, ascending
// by creation time with id breaking ties.
func (r *MessageRepository) TouchingUser(ctx context.Context, userID uint64) ([]db.Message, error) {
	var messages []db.Message
	err := r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
