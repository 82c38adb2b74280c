package account_test

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
	"github.com/jhony29a/bliss/internal/service/account"
)

func setupService(t *testing.T) *account.Service {
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
	return account.NewService(app.New(gdb, redisCache, log))
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	user, err := svc.Register(ctx, account.RegisterInput{
		Username:  "alice",
		Password:  "secret123",
		Name:      "Alice",
		Age:       28,
		Gender:    "female",
		Interests: []string{"music"},
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "all", user.LookingFor) // default when absent
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.Equal(t, []string{"music"}, []string(user.Interests))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	_, err := svc.Register(ctx, account.RegisterInput{Username: "alice", Password: "secret123", Name: "Alice", Age: 28, Gender: "female"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, account.RegisterInput{Username: "alice", Password: "other456", Name: "Imposter", Age: 30, Gender: "male"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	registered, err := svc.Register(ctx, account.RegisterInput{Username: "alice", Password: "secret123", Name: "Alice", Age: 28, Gender: "female"})
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = svc.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, domain.ErrBadCredentials)

	// unknown usernames are indistinguishable from wrong passwords
	_, err = svc.Authenticate(ctx, "nobody", "secret123")
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestUpdate_MergesSuppliedFields(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	user, err := svc.Register(ctx, account.RegisterInput{
		Username: "alice",
		Password: "secret123",
		Name:     "Alice",
		Age:      28,
		Bio:      "hello",
		Gender:   "female",
	})
	require.NoError(t, err)

	newBio := "updated bio"
	newAge := 29
	updated, err := svc.Update(ctx, user.ID, account.UpdateInput{
		Bio:       &newBio,
		Age:       &newAge,
		Interests: []string{"travel"},
	})
	require.NoError(t, err)
	assert.Equal(t, "updated bio", updated.Bio)
	assert.Equal(t, 29, updated.Age)
	assert.Equal(t, []string{"travel"}, []string(updated.Interests))
	// untouched fields survive
	assert.Equal(t, "Alice", updated.Name)
	assert.Equal(t, "female", updated.Gender)
}

func TestUpdate_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	name := "ghost"
	_, err := svc.Update(ctx, 404, account.UpdateInput{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
