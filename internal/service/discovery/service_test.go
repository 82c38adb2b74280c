package discovery_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jhony29a/bliss/internal/app"
	"github.com/jhony29a/bliss/internal/cache"
	"github.com/jhony29a/bliss/internal/config"
	"github.com/jhony29a/bliss/internal/db"
	"github.com/jhony29a/bliss/internal/domain"
	"github.com/jhony29a/bliss/internal/service/discovery"
	"github.com/jhony29a/bliss/internal/service/matching"
	"github.com/jhony29a/bliss/internal/service/preference"
)

func setupService(t *testing.T) (*discovery.Service, *app.AppContext) {
	t.Helper()

	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.Migrate(gdb))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	redisCache := cache.NewRedisCache(cfg)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	appCtx := app.New(gdb, redisCache, log)
	return discovery.NewService(appCtx), appCtx
}

func seedUser(t *testing.T, appCtx *app.AppContext, username, gender string, age int, vip bool, interests ...string) *db.User {
	t.Helper()
	u := &db.User{
		Username:   username,
		Name:       username,
		Age:        age,
		Gender:     gender,
		LookingFor: "all",
		IsVip:      vip,
		Interests:  datatypes.NewJSONSlice(interests),
	}
	require.NoError(t, appCtx.DB.Create(u).Error)
	return u
}

func candidateIDs(users []db.User) []uint64 {
	ids := make([]uint64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}

func TestPotentialMatches_UnknownRequester(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	_, err := svc.PotentialMatches(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPotentialMatches_NoPreferencesNoFilters(t *testing.T) {
	ctx := context.Background()
	svc, appCtx := setupService(t)
	me := seedUser(t, appCtx, "me", "male", 30, false)
	a := seedUser(t, appCtx, "a", "female", 25, false)
	b := seedUser(t, appCtx, "b", "male", 40, false)

	candidates, err := svc.PotentialMatches(ctx, me.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{a.ID, b.ID}, candidateIDs(candidates))
}

func TestPotentialMatches_LookingForNarrowsGender(t *testing.T) {
	ctx := context.Background()
	svc, appCtx := setupService(t)
	me := seedUser(t, appCtx, "me", "male", 30, false)
	me.LookingFor = "female"
	require.NoError(t, appCtx.DB.Save(me).Error)

	a := seedUser(t, appCtx, "a", "female", 25, false)
	seedUser(t, appCtx, "b", "male", 40, false)

	candidates, err := svc.PotentialMatches(ctx, me.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{a.ID}, candidateIDs(candidates))
}

func TestPotentialMatches_PreferenceFilters(t *testing.T) {
	ctx := context.Background()
	svc, appCtx := setupService(t)
	me := seedUser(t, appCtx, "me", "male", 30, false)
	young := seedUser(t, appCtx, "young", "female", 22, false)
	seedUser(t, appCtx, "older", "female", 45, false)
	seedUser(t, appCtx, "guy", "male", 25, false)

	prefs := preference.NewService(appCtx)
	minAge, maxAge := 20, 35
	gender := "female"
	_, err := prefs.Upsert(ctx, preference.UpsertInput{
		UserID: me.ID,
		MinAge: &minAge,
		MaxAge: &maxAge,
		Gender: &gender,
	})
	require.NoError(t, err)

	candidates, err := svc.PotentialMatches(ctx, me.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{young.ID}, candidateIDs(candidates))
}

func TestPotentialMatches_ExcludesAlreadySwiped(t *testing.T) {
	ctx := context.Background()
	svc, appCtx := setupService(t)
	me := seedUser(t, appCtx, "me", "male", 30, false)
	liked := seedUser(t, appCtx, "liked", "female", 25, false)
	passed := seedUser(t, appCtx, "passed", "female", 26, false)
	fresh := seedUser(t, appCtx, "fresh", "female", 27, false)

	matches := matching.NewService(appCtx)
	_, err := matches.RecordSwipe(ctx, me.ID, liked.ID, true)
	require.NoError(t, err)
	_, err = matches.RecordSwipe(ctx, me.ID, passed.ID, false)
	require.NoError(t, err)

	candidates, err := svc.PotentialMatches(ctx, me.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{fresh.ID}, candidateIDs(candidates))
}

func TestPotentialMatches_InterestFilterVipOnly(t *testing.T) {
	ctx := context.Background()
	svc, appCtx := setupService(t)
	vip := seedUser(t, appCtx, "vip", "male", 30, true)
	regular := seedUser(t, appCtx, "regular", "male", 30, false)
	hiker := seedUser(t, appCtx, "hiker", "female", 25, false, "hiking", "music")
	gamer := seedUser(t, appCtx, "gamer", "female", 26, false, "games")

	prefs := preference.NewService(appCtx)
	for _, id := range []uint64{vip.ID, regular.ID} {
		minAge, maxAge := 18, 35
		gender := "female"
		_, err := prefs.Upsert(ctx, preference.UpsertInput{
			UserID:    id,
			MinAge:    &minAge,
			MaxAge:    &maxAge,
			Gender:    &gender,
			Interests: []string{"hiking"},
		})
		require.NoError(t, err)
	}

	// VIP requester: only candidates sharing an interest survive
	candidates, err := svc.PotentialMatches(ctx, vip.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{hiker.ID}, candidateIDs(candidates))

	// the same preference on a regular account is ignored
	candidates, err = svc.PotentialMatches(ctx, regular.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{hiker.ID, gamer.ID}, candidateIDs(candidates))
}
