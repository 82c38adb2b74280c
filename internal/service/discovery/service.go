package discovery

import (
	"context"
	"errors"

	"github.com/jhony29a/bliss/internal/app"
	"github.com/jhony29a/bliss/internal/db"
	"github.com/jhony29a/bliss/internal/domain"
	"github.com/jhony29a/bliss/internal/repository"
)

// Service composes the account, preference and swipe stores into the
// filtered candidate list for swiping.
type Service struct {
	appCtx   *app.AppContext
	userRepo *repository.UserRepository
	prefRepo *repository.PreferenceRepository
}

// NewService creates a discovery service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:   appCtx,
		userRepo: repository.NewUserRepository(appCtx.DB),
		prefRepo: repository.NewPreferenceRepository(appCtx.DB),
	}
}

// PotentialMatches returns the candidate pool for the requester, in
// insertion (id) order, with no ranking.
//
// Filters: the requester's stored preference gender and age bounds when
// present, the requester's own looking-for unless "all", exclusion of
// already-swiped targets, and the shared-interest filter for VIP
// requesters with non-empty preference interests. Non-VIP requesters
// never apply the interest filter, even with interests stored.
func (s *Service) PotentialMatches(ctx context.Context, userID uint64) ([]db.User, error) {
	requester, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var prefGender string
	var minAge, maxAge int
	var prefInterests []string

	prefs, err := s.prefRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if prefs != nil {
		prefGender = prefs.Gender
		minAge = prefs.MinAge
		maxAge = prefs.MaxAge
		prefInterests = prefs.Interests
	}

	candidates, err := s.userRepo.ListCandidates(ctx, userID, prefGender, requester.LookingFor, minAge, maxAge)
	if err != nil {
		return nil, err
	}

	// Interest-based filtering is a VIP-exclusive capability.
	if requester.IsVip && len(prefInterests) > 0 {
		filtered := candidates[:0]
		for _, c := range candidates {
			if sharesInterest(c.Interests, prefInterests) {
				filtered = append(filtered, c)
			}
		}
		candidates = filtered
	}

	return candidates, nil
}

func sharesInterest(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}
