package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/enzogallo/sportsmatch-api/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache is a thin read-through layer over redis. A nil *Cache is valid and
// degrades to calling the loader directly, so redis stays optional in
// development and tests.
type Cache struct {
	client *redis.Client
}

func New(cfg *config.Config) *Cache {
	if cfg.Redis.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return &Cache{client: client}
}

// OfferKey is the cache key for one offer's detail payload.
func OfferKey(id uint) string {
	return fmt.Sprintf("offer:%d", id)
}

// GetOrLoadJSON returns the cached value for key, or runs the loader and
// caches its result for ttl. Redis errors fall through to the loader.
func (c *Cache) GetOrLoadJSON(ctx context.Context, key string, ttl time.Duration, dest interface{}, load func() (interface{}, error)) error {
	if c != nil {
		raw, err := c.client.Get(ctx, key).Bytes()
		if err == nil {
			return json.Unmarshal(raw, dest)
		}
		if !errors.Is(err, redis.Nil) {
			config.Logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	value, err := load()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if c != nil {
		if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
			config.Logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return json.Unmarshal(raw, dest)
}

// Invalidate drops keys after a write. Safe on a nil cache.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		config.Logger.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
