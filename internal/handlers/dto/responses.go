package dto

import (
	"time"

	"github.com/jhony29a/bliss/internal/db"
)

// UserResponse is the public profile shape. PasswordHash never leaves
// the service.
type UserResponse struct {
	ID            uint64    `json:"id"`
	Username      string    `json:"username"`
	Name          string    `json:"name"`
	Age           int       `json:"age"`
	Bio           string    `json:"bio,omitempty"`
	Location      string    `json:"location,omitempty"`
	Gender        string    `json:"gender"`
	LookingFor    string    `json:"lookingFor"`
	ProfilePicURL string    `json:"profilePicUrl,omitempty"`
	IsVip         bool      `json:"isVip"`
	Interests     []string  `json:"interests"`
	Photos        []string  `json:"photos"`
	CreatedAt     time.Time `json:"createdAt"`
}

func NewUserResponse(u *db.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Name:          u.Name,
		Age:           u.Age,
		Bio:           u.Bio,
		Location:      u.Location,
		Gender:        u.Gender,
		LookingFor:    u.LookingFor,
		ProfilePicURL: u.ProfilePicURL,
		IsVip:         u.IsVip,
		Interests:     u.Interests,
		Photos:        u.Photos,
		CreatedAt:     u.CreatedAt,
	}
}

func NewUserResponses(users []db.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = NewUserResponse(&users[i])
	}
	return out
}

type MatchResponse struct {
	ID        uint64       `json:"id"`
	UserID1   uint64       `json:"userId1"`
	UserID2   uint64       `json:"userId2"`
	Matched   bool         `json:"matched"`
	CreatedAt time.Time    `json:"createdAt"`
	User      UserResponse `json:"user"`
}

type MessageResponse struct {
	ID         uint64    `json:"id"`
	SenderID   uint64    `json:"senderId"`
	ReceiverID uint64    `json:"receiverId"`
	Content    string    `json:"content"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewMessageResponse(m *db.Message) MessageResponse {
	return MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		Read:       m.Read,
		CreatedAt:  m.CreatedAt,
	}
}

type ConversationResponse struct {
	User        UserResponse    `json:"user"`
	LastMessage MessageResponse `json:"lastMessage"`
}

type PreferencesResponse struct {
	ID        uint64   `json:"id,omitempty"`
	UserID    uint64   `json:"userId"`
	MinAge    int      `json:"minAge"`
	MaxAge    int      `json:"maxAge"`
	Distance  int      `json:"distance"`
	Gender    string   `json:"gender,omitempty"`
	Interests []string `json:"interests"`
}

func NewPreferencesResponse(p *db.UserPreference) PreferencesResponse {
	return PreferencesResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		MinAge:    p.MinAge,
		MaxAge:    p.MaxAge,
		Distance:  p.Distance,
		Gender:    p.Gender,
		Interests: p.Interests,
	}
}

type SubscriptionResponse struct {
	ID             uint64    `json:"id"`
	UserID         uint64    `json:"userId"`
	PlanType       string    `json:"planType"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	AutoRenew      bool      `json:"autoRenew"`
	Status         string    `json:"status"`
	PaymentMethod  string    `json:"paymentMethod,omitempty"`
	TransactionRef string    `json:"transactionRef,omitempty"`
	Amount         int64     `json:"amount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func NewSubscriptionResponse(s *db.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:             s.ID,
		UserID:         s.UserID,
		PlanType:       s.PlanType,
		StartDate:      s.StartDate,
		EndDate:        s.EndDate,
		AutoRenew:      s.AutoRenew,
		Status:         s.Status,
		PaymentMethod:  s.PaymentMethod,
		TransactionRef: s.TransactionRef,
		Amount:         s.Amount,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

type LikerResponse struct {
	User          UserResponse `json:"user"`
	UnixTimestamp int64        `json:"unixTimestamp"`
}
