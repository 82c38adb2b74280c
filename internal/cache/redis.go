package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jhony29a/bliss/internal/config"
	"github.com/redis/go-redis/v9"
)

// likeCountTTL bounds staleness of the incoming-like counters.
const likeCountTTL = time.Hour

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes a Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.Client.Get(ctx, key).Result()
}

func (c *RedisCache) Del(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

// KeyForLikeCount generates the Redis key for a user's incoming-like count.
func (c *RedisCache) KeyForLikeCount(userID uint64) string {
	return fmt.Sprintf("likes:count:%d", userID)
}

// IncrLikeCount bumps the counter for a freshly received like and
// refreshes the TTL. Missing keys are left for the DB-backed fill.
func (c *RedisCache) IncrLikeCount(ctx context.Context, userID uint64) error {
	key := c.KeyForLikeCount(userID)
	if _, err := c.Client.Incr(ctx, key).Result(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, likeCountTTL).Err()
}

// SetLikeCount overwrites the counter with an authoritative DB value.
func (c *RedisCache) SetLikeCount(ctx context.Context, userID uint64, count int64) error {
	return c.Client.Set(ctx, c.KeyForLikeCount(userID), count, likeCountTTL).Err()
}

// GetLikeCount reads the cached counter. Returns ok=false on a miss.
func (c *RedisCache) GetLikeCount(ctx context.Context, userID uint64) (int64, bool, error) {
	key := c.KeyForLikeCount(userID)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}
	// refresh TTL on access
	_ = c.Client.Expire(ctx, key, likeCountTTL).Err()
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return n, true, nil
}

// KeyForTokenBlacklist generates the Redis key for a revoked JWT.
func (c *RedisCache) KeyForTokenBlacklist(token string) string {
	return "blacklist:" + token
}

// BlacklistToken stores a revoked token until its natural expiry.
func (c *RedisCache) BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to revoke
	}
	return c.Client.Set(ctx, c.KeyForTokenBlacklist(token), 1, ttl).Err()
}

// IsTokenBlacklisted reports whether the token has been revoked.
func (c *RedisCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := c.Client.Exists(ctx, c.KeyForTokenBlacklist(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
