package messaging

import (
	"context"
	"errors"
	"sort"

	"github.com/jhony29a/bliss/internal/app"
	"github.com/jhony29a/bliss/internal/db"
	"github.com/jhony29a/bliss/internal/domain"
	"github.com/jhony29a/bliss/internal/repository"
)

// Service implements the append-only message log and its conversation views.
type Service struct {
	appCtx      *app.AppContext
	messageRepo *repository.MessageRepository
	userRepo    *repository.UserRepository
}

// NewService creates a messaging service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:      appCtx,
		messageRepo: repository.NewMessageRepository(appCtx.DB),
		userRepo:    repository.NewUserRepository(appCtx.DB),
	}
}

// Conversation is one summary row per counterpart: the counterpart
// account plus the most recent message exchanged with them.
type Conversation struct {
	User        db.User
	LastMessage db.Message
}

// Send appends a message. Read defaults to false when nil.
func (s *Service) Send(ctx context.Context, senderID, receiverID uint64, content string, read *bool) (*db.Message, error) {
	if _, err := s.userRepo.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}

	msg := &db.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if read != nil {
		msg.Read = *read
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Between returns the conversation history of the two users, oldest
// first. Symmetric in its arguments.
func (s *Service) Between(ctx context.Context, userA, userB uint64) ([]db.Message, error) {
	return s.messageRepo.Between(ctx, userA, userB)
}

// Conversations groups the user's messages by counterpart, keeps the most
// recent message per counterpart, and sorts the rows by that message's
// creation time, newest first. Counterparts whose account record is gone
// are dropped rather than failing the listing.
func (s *Service) Conversations(ctx context.Context, userID uint64) ([]Conversation, error) {
	messages, err := s.messageRepo.TouchingUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// messages arrive oldest-first, so the last write per counterpart wins
	latest := map[uint64]db.Message{}
	order := []uint64{}
	for _, msg := range messages {
		otherID := msg.SenderID
		if otherID == userID {
			otherID = msg.ReceiverID
		}
		if _, seen := latest[otherID]; !seen {
			order = append(order, otherID)
		}
		latest[otherID] = msg
	}

	conversations := make([]Conversation, 0, len(latest))
	for _, otherID := range order {
		user, err := s.userRepo.GetByID(ctx, otherID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		conversations = append(conversations, Conversation{User: *user, LastMessage: latest[otherID]})
	}

	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].LastMessage.CreatedAt.After(conversations[j].LastMessage.CreatedAt)
	})
	return conversations, nil
}
