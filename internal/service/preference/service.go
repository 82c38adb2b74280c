package preference

import (
	"context"

	"gorm.io/datatypes"

	"github.com/jhony29a/bliss/internal/app"
	"github.com/jhony29a/bliss/internal/db"
	"github.com/jhony29a/bliss/internal/repository"
)

// Defaults substituted for absent numeric preference fields.
const (
	DefaultMinAge   = 18
	DefaultMaxAge   = 35
	DefaultDistance = 50
)

// Service implements the per-user discovery preference store.
type Service struct {
	appCtx   *app.AppContext
	prefRepo *repository.PreferenceRepository
}

// NewService creates a preference service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:   appCtx,
		prefRepo: repository.NewPreferenceRepository(appCtx.DB),
	}
}

// Get returns the stored preference set, or domain.ErrNotFound when the
// user never saved one. Callers substitute display defaults themselves.
func (s *Service) Get(ctx context.Context, userID uint64) (*db.UserPreference, error) {
	return s.prefRepo.GetByUserID(ctx, userID)
}

// UpsertInput distinguishes absent from zero via pointers: a nil numeric
// field takes its default, an explicit 0 is kept.
type UpsertInput struct {
	UserID    uint64
	MinAge    *int
	MaxAge    *int
	Distance  *int
	Gender    *string
	Interests []string
}

// Upsert overwrites the user's preference row in place, creating it on
// first save. A second call never produces a second row.
func (s *Service) Upsert(ctx context.Context, in UpsertInput) (*db.UserPreference, error) {
	prefs := &db.UserPreference{
		UserID:    in.UserID,
		MinAge:    orDefault(in.MinAge, DefaultMinAge),
		MaxAge:    orDefault(in.MaxAge, DefaultMaxAge),
		Distance:  orDefault(in.Distance, DefaultDistance),
		Interests: datatypes.NewJSONSlice(emptyIfNil(in.Interests)),
	}
	if in.Gender != nil {
		prefs.Gender = *in.Gender
	}

	if err := s.prefRepo.Save(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

func orDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
