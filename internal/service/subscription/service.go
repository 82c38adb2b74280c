package subscription

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhony29a/bliss/internal/app"
	"github.com/jhony29a/bliss/internal/db"
	"github.com/jhony29a/bliss/internal/repository"
)

// Service implements the VIP subscription ledger.
type Service struct {
	appCtx  *app.AppContext
	subRepo *repository.SubscriptionRepository
}

// NewService creates a subscription service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:  appCtx,
		subRepo: repository.NewSubscriptionRepository(appCtx.DB),
	}
}

// Active returns the user's active subscription, or domain.ErrNotFound.
func (s *Service) Active(ctx context.Context, userID uint64) (*db.Subscription, error) {
	return s.subRepo.GetActive(ctx, userID)
}

// CreateInput carries a new subscription purchase. AutoRenew defaults to
// true when nil; PaymentMethod may be empty.
type CreateInput struct {
	UserID        uint64
	PlanType      string
	Amount        int64
	PaymentMethod string
	AutoRenew     *bool
}

// Create opens a subscription for the user and flags the account VIP.
// Rejected with domain.ErrActiveSubscription when one is already active.
//
// The end date is start + 1 calendar month for "monthly" (and any unknown
// plan type), start + 1 calendar year for "yearly".
func (s *Service) Create(ctx context.Context, in CreateInput) (*db.Subscription, error) {
	start := time.Now()
	var end time.Time
	switch in.PlanType {
	case db.PlanYearly:
		end = start.AddDate(1, 0, 0)
	default:
		end = start.AddDate(0, 1, 0)
	}

	autoRenew := true
	if in.AutoRenew != nil {
		autoRenew = *in.AutoRenew
	}

	sub := &db.Subscription{
		UserID:         in.UserID,
		PlanType:       in.PlanType,
		StartDate:      start,
		EndDate:        end,
		AutoRenew:      autoRenew,
		Status:         db.SubscriptionActive,
		PaymentMethod:  in.PaymentMethod,
		TransactionRef: uuid.NewString(),
		Amount:         in.Amount,
	}
	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.appCtx.Logger.Info("subscription created",
		"user_id", in.UserID, "plan", in.PlanType, "amount", in.Amount)
	return sub, nil
}

// Cancel transitions the user's active subscription(s) to cancelled and
// clears the VIP flag. Returns false, not an error, when none existed.
func (s *Service) Cancel(ctx context.Context, userID uint64) (bool, error) {
	cancelled, err := s.subRepo.CancelActive(ctx, userID)
	if err != nil {
		return false, err
	}
	if cancelled {
		s.appCtx.Logger.Info("subscription cancelled", "user_id", userID)
	}
	return cancelled, nil
}
