package db

import (
	"time"

	"gorm.io/datatypes"
)

// User table. Interests and Photos are stored as JSON-encoded lists so the
// schema works on both sqlite and mysql.
type User struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement"`
	Username      string `gorm:"uniqueIndex;size:64;not null"`
	PasswordHash  string `gorm:"size:255;not null"`
	Name          string `gorm:"size:128;not null"`
	Age           int    `gorm:"not null"`
	Bio           string
	Location      string `gorm:"size:128"`
	Gender        string `gorm:"size:16;not null"`
	LookingFor    string `gorm:"size:16;not null"` // "male", "female" or "all"
	ProfilePicURL string
	IsVip         bool `gorm:"default:false"`
	Interests     datatypes.JSONSlice[string]
	Photos        datatypes.JSONSlice[string]
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

// Swipe represents one row per unordered pair of users.
//
// UserID1 is the actor of the first swipe between the pair, UserID2 the
// target. Liked records that first decision; Matched flips to true once a
// reciprocal like is observed.
//
// Indexes:
//   - idx_swipe_pair(user_id1, user_id2) UNIQUE
//     One row per directed pair; the repository guards the unordered-pair
//     invariant inside a transaction.
//   - idx_target_liked_updated(user_id2, liked, updated_at DESC, user_id1)
//     Serves "who liked me" listings with cursor pagination.
type Swipe struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID1   uint64    `gorm:"not null;uniqueIndex:idx_swipe_pair,priority:1"`
	UserID2   uint64    `gorm:"not null;uniqueIndex:idx_swipe_pair,priority:2;index:idx_target_liked_updated,priority:1"`
	Liked     bool      `gorm:"not null;index:idx_target_liked_updated,priority:2"`
	Matched   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index:idx_target_liked_updated,priority:3,sort:desc"`
}

// Message is an append-only record of a direct message between two users.
type Message struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	SenderID   uint64 `gorm:"not null;index"`
	ReceiverID uint64 `gorm:"not null;index"`
	Content    string `gorm:"not null"`
	Read       bool   `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// UserPreference holds the discovery filter criteria, one row per user.
// Defaults for absent fields are applied by the preference service, not
// the schema, so an explicit zero survives a save.
type UserPreference struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	UserID    uint64 `gorm:"uniqueIndex;not null"`
	MinAge    int    `gorm:"not null"`
	MaxAge    int    `gorm:"not null"`
	Distance  int    `gorm:"not null"`
	Gender    string `gorm:"size:16"` // empty = no gender filter
	Interests datatypes.JSONSlice[string]
}

// Subscription statuses.
const (
	SubscriptionActive    = "active"
	SubscriptionCancelled = "cancelled"
	SubscriptionExpired   = "expired"
)

// Subscription plan types.
const (
	PlanMonthly = "monthly"
	PlanYearly  = "yearly"
)

// Subscription is the VIP subscription ledger. At most one row per user
// may be in status "active"; Amount is in minor currency units.
type Subscription struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	UserID         uint64    `gorm:"not null;index:idx_sub_user_status,priority:1"`
	PlanType       string    `gorm:"size:16;not null"`
	StartDate      time.Time `gorm:"not null"`
	EndDate        time.Time `gorm:"not null"`
	AutoRenew      bool      `gorm:"not null;default:true"`
	Status         string    `gorm:"size:16;not null;index:idx_sub_user_status,priority:2"`
	PaymentMethod  string    `gorm:"size:32"`
	TransactionRef string    `gorm:"size:64"`
	Amount         int64     `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}
