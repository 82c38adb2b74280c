package matching

import (
	"context"

	"github.com/jhony29a/bliss/internal/app"
	"github.com/jhony29a/bliss/internal/db"
	"github.com/jhony29a/bliss/internal/domain"
	"github.com/jhony29a/bliss/internal/repository"
)

// Service implements the swipe/match ledger operations and the VIP
// incoming-like views on top of the repository and cache layers.
type Service struct {
	appCtx    *app.AppContext
	swipeRepo *repository.SwipeRepository
	userRepo  *repository.UserRepository
}

// NewService creates a matching service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:    appCtx,
		swipeRepo: repository.NewSwipeRepository(appCtx.DB),
		userRepo:  repository.NewUserRepository(appCtx.DB),
	}
}

// MatchEntry joins a matched ledger row with the counterpart account.
type MatchEntry struct {
	Swipe db.Swipe
	User  db.User
}

// Liker is one entry of an incoming-like listing.
type Liker struct {
	User      db.User
	LikedAtMs int64
}

// RecordSwipe records the actor's decision on the target and returns the
// pair's ledger row.
//
// Repeated swipes on an existing pair are no-ops, except that a reciprocal
// like promotes the row to matched. The target's cached incoming-like
// count is bumped for new likes; a promotion invalidates the actor's own
// counter since the pending like toward them just became a match.
func (s *Service) RecordSwipe(ctx context.Context, actorID, targetID uint64, liked bool) (*db.Swipe, error) {
	s.appCtx.Logger.Debug("RecordSwipe called", "actor", actorID, "target", targetID, "liked", liked)

	if actorID == targetID {
		return nil, domain.ErrSelfSwipe
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return nil, err
	}

	swipe, created, err := s.swipeRepo.RecordSwipe(ctx, actorID, targetID, liked)
	if err != nil {
		return nil, err
	}

	// cache maintenance is best-effort
	if created && liked {
		if err := s.appCtx.RedisCache.IncrLikeCount(ctx, targetID); err != nil {
			s.appCtx.Logger.Warn("failed to bump like count", "target", targetID, "err", err)
		}
	}
	if !created && swipe.Matched && liked {
		key := s.appCtx.RedisCache.KeyForLikeCount(actorID)
		if err := s.appCtx.RedisCache.Del(ctx, key); err != nil {
			s.appCtx.Logger.Warn("failed to invalidate like count", "actor", actorID, "err", err)
		}
	}

	return swipe, nil
}

// Matches returns all matched pairs touching the user, each joined with
// the counterpart account. A missing counterpart account is a ledger
// inconsistency and fails the whole operation.
func (s *Service) Matches(ctx context.Context, userID uint64) ([]MatchEntry, error) {
	swipes, err := s.swipeRepo.GetMatched(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]MatchEntry, 0, len(swipes))
	for _, sw := range swipes {
		otherID := sw.UserID1
		if otherID == userID {
			otherID = sw.UserID2
		}
		user, err := s.userRepo.GetByID(ctx, otherID)
		if err != nil {
			return nil, domain.Inconsistentf("match %d references missing user %d", sw.ID, otherID)
		}
		entries = append(entries, MatchEntry{Swipe: sw, User: *user})
	}
	return entries, nil
}

// LikedYou lists accounts that liked the user and are not yet matched,
// newest first, cursor-paginated. VIP only.
func (s *Service) LikedYou(ctx context.Context, userID uint64, paginationToken *string, limit int) ([]Liker, *string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if !user.IsVip {
		return nil, nil, domain.ErrVipRequired
	}

	swipes, nextToken, err := s.swipeRepo.GetLikers(ctx, userID, paginationToken, limit)
	if err != nil {
		return nil, nil, err
	}

	likers := make([]Liker, 0, len(swipes))
	for _, sw := range swipes {
		liker, err := s.userRepo.GetByID(ctx, sw.UserID1)
		if err != nil {
			return nil, nil, domain.Inconsistentf("swipe %d references missing user %d", sw.ID, sw.UserID1)
		}
		likers = append(likers, Liker{User: *liker, LikedAtMs: sw.UpdatedAt.UnixMilli()})
	}
	return likers, nextToken, nil
}

// LikedYouCount returns how many pending incoming likes the user has.
// Cache-first: redis, then DB with a cache refill.
func (s *Service) LikedYouCount(ctx context.Context, userID uint64) (int64, error) {
	if cached, ok, err := s.appCtx.RedisCache.GetLikeCount(ctx, userID); err == nil && ok {
		return cached, nil
	}

	count, err := s.swipeRepo.CountLikers(ctx, userID)
	if err != nil {
		return 0, err
	}
	if err := s.appCtx.RedisCache.SetLikeCount(ctx, userID, count); err != nil {
		s.appCtx.Logger.Warn("failed to cache like count", "user", userID, "err", err)
	}
	return count, nil
}
