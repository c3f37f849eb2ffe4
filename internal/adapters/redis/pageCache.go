package redis

import (
	"context"
	"errors"
	"time"

	"yatube/internal/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const DefaultPrefix = "yatube:page:"

// PageCacheRedis حافظه نهان صفحات در Redis؛ همه کلیدها زیر یک پیشوند
type PageCacheRedis struct {
	Client *redis.Client
	Prefix string
}

func NewPageCacheRedis(client *redis.Client, prefix string) *PageCacheRedis {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &PageCacheRedis{Client: client, Prefix: prefix}
}

func (r *PageCacheRedis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.Client.Get(ctx, r.Prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (r *PageCacheRedis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.Client.Set(ctx, r.Prefix+key, value, ttl).Err()
}

// Clear removes only keys under Prefix; other tenants of the Redis DB are untouched.
func (r *PageCacheRedis) Clear(ctx context.Context) error {
	var cursor uint64
	removed := 0
	for {
		keys, next, err := r.Client.Scan(ctx, cursor, r.Prefix+"*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := r.Client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
			removed += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	config.Logger.Info("Page cache cleared", zap.String("prefix", r.Prefix), zap.Int("keys", removed))
	return nil
}
