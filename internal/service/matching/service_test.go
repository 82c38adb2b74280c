package matching_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jhony29a/bliss/internal/app"
	"github.com/jhony29a/bliss/internal/cache"
	"github.com/jhony29a/bliss/internal/config"
	"github.com/jhony29a/bliss/internal/db"
	"github.com/jhony29a/bliss/internal/domain"
	"github.com/jhony29a/bliss/internal/service/matching"
)

func setupService(t *testing.T) (*matching.Service, *app.AppContext) {
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
	return matching.NewService(appCtx), appCtx
}

func seedUser(t *testing.T, appCtx *app.AppContext, username string, vip bool) *db.User {
	t.Helper()
	u := &db.User{
		Username:   username,
		Name:       username,
		Age:        28,
		Gender:     "female",
		LookingFor: "all",
		IsVip:      vip,
	}
	require.NoError(t, appCtx.DB.Create(u).Error)
	return u
}

func TestRecordSwipe_MutualLikeMatches(t *testing.T) {
	ctx := context.Background()
	svc, appCtx := setupService(t)
	alice := seedUser(t, appCtx, "alice", false)
	bob := seedUser(t, appCtx, "bob", false)

	sw, err := svc.RecordSwipe(ctx, alice.ID, bob.ID, true)
	require.NoError(t, err)
	assert.False(t, sw.Matched)

	sw, err = svc.RecordSwipe(ctx, bob.ID, alice.ID, true)
	require.NoError(t, err)
	assert.True(t, sw.Matched)

	// the match is visible from both sides
	for _, id := range []uint64{alice.ID, bob.ID} {
		matches, err := svc.Matches(ctx, id)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.True(t, matches[0].Swipe.Matched)
	}
}

func TestRecordSwipe_SelfSwipeRejected(t *testing.T) {
	ctx := context.Background()
	svc, appCtx := setupService(t)
	alice := seedUser(t, appCtx, "alice", false)

	_, err := svc.RecordSwipe(ctx, alice.ID, alice.ID, true)
	assert.ErrorIs(t, err, domain.ErrSelfSwipe)
}

func TestRecordSwipe_UnknownTarget(t *testing.T) {
	ctx := context.Background()
	svc, appCtx := setupService(t)
	alice := seedUser(t, appCtx, "alice", false)

	_, err := svc.RecordSwipe(ctx, alice.ID, 12345, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordSwipe_PassThenReverseLike(t *testing.T) {
	ctx := context.Background()
	svc, appCtx := setupService(t)
	alice := seedUser(t, appCtx, "alice", false)
	bob := seedUser(t, appCtx, "bob", false)

	// alice passes, bob later likes: the pair stays unmatched because the
	// stored decision was not a like
	_, err := svc.RecordSwipe(ctx, alice.ID, bob.ID, false)
	require.NoError(t, err)
	sw, err := svc.RecordSwipe(ctx, bob.ID, alice.ID, true)
	require.NoError(t, err)
	assert.False(t, sw.Matched)
}

func TestMatches_MissingCounterpartFailsLoudly(t *testing.T) {
	ctx := context.Background()
	svc, appCtx := setupService(t)
	alice := seedUser(t, appCtx, "alice", false)
	bob := seedUser(t, appCtx, "bob", false)

	_, err := svc.RecordSwipe(ctx, alice.ID, bob.ID, true)
	require.NoError(t, err)
	_, err = svc.RecordSwipe(ctx, bob.ID, alice.ID, true)
	require.NoError(t, err)

	require.NoError(t, appCtx.DB.Delete(&db.User{}, bob.ID).Error)

	_, err = svc.Matches(ctx, alice.ID)
	assert.ErrorIs(t, err, domain.ErrInconsistent)
}

func TestLikedYou_RequiresVip(t *testing.T) {
	ctx := context.Background()
	svc, appCtx := setupService(t)
	alice := seedUser(t, appCtx, "alice", false)

	_, _, err := svc.LikedYou(ctx, alice.ID, nil, 10)
	assert.ErrorIs(t, err, domain.ErrVipRequired)
}

func TestLikedYou_ListsPendingLikes(t *testing.T) {
	ctx := context.Background()
	svc, appCtx := setupService(t)
	vip := seedUser(t, appCtx, "vip", true)
	alice := seedUser(t, appCtx, "alice", false)
	bob := seedUser(t, appCtx, "bob", false)

	_, err := svc.RecordSwipe(ctx, alice.ID, vip.ID, true)
	require.NoError(t, err)
	_, err = svc.RecordSwipe(ctx, bob.ID, vip.ID, true)
	require.NoError(t, err)

	// matching with bob removes him from the pending list
	_, err = svc.RecordSwipe(ctx, vip.ID, bob.ID, true)
	require.NoError(t, err)

	likers, next, err := svc.LikedYou(ctx, vip.ID, nil, 10)
	require.NoError(t, err)
	assert.Nil(t, next)
	require.Len(t, likers, 1)
	assert.Equal(t, alice.ID, likers[0].User.ID)
	assert.NotZero(t, likers[0].LikedAtMs)
}

func TestLikedYouCount_CacheMaintenance(t *testing.T) {
	ctx := context.Background()
	svc, appCtx := setupService(t)
	vip := seedUser(t, appCtx, "vip", true)
	alice := seedUser(t, appCtx, "alice", false)
	bob := seedUser(t, appCtx, "bob", false)

	count, err := svc.LikedYouCount(ctx, vip.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	_, err = svc.RecordSwipe(ctx, alice.ID, vip.ID, true)
	require.NoError(t, err)
	_, err = svc.RecordSwipe(ctx, bob.ID, vip.ID, true)
	require.NoError(t, err)

	count, err = svc.LikedYouCount(ctx, vip.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// a repeated like must not double-count
	_, err = svc.RecordSwipe(ctx, alice.ID, vip.ID, true)
	require.NoError(t, err)
	count, err = svc.LikedYouCount(ctx, vip.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestLikedYouCount_RefillsAfterInvalidation(t *testing.T) {
	ctx := context.Background()
	svc, appCtx := setupService(t)
	vip := seedUser(t, appCtx, "vip", true)
	alice := seedUser(t, appCtx, "alice", false)
	bob := seedUser(t, appCtx, "bob", false)

	_, err := svc.RecordSwipe(ctx, alice.ID, vip.ID, true)
	require.NoError(t, err)
	_, err = svc.RecordSwipe(ctx, bob.ID, vip.ID, true)
	require.NoError(t, err)

	// drop the cached counter, the next read falls back to the DB
	key := appCtx.RedisCache.KeyForLikeCount(vip.ID)
	require.NoError(t, appCtx.RedisCache.Del(ctx, key))

	count, err := svc.LikedYouCount(ctx, vip.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// and the refill is visible in the cache again
	cached, ok, err := appCtx.RedisCache.GetLikeCount(ctx, vip.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(2), cached)
}
