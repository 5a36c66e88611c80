package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/vaporkeys/storefront/pkg/domain"
)

// RedisProductCache implements cache.ProductCache using Redis.
type RedisProductCache struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisProductCache creates a new RedisProductCache from a redis URL
// (redis://host:port/db).
func NewRedisProductCache(
	url, prefix string,
	logger *slog.Logger,
) (*RedisProductCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisProductCache{
		client: redis.NewClient(opt),
		prefix: prefix,
		logger: logger,
	}, nil
}

// NewRedisProductCacheWithOptions creates a new RedisProductCache from
// redis.Options.
func NewRedisProductCacheWithOptions(
	opt *redis.Options,
	prefix string,
	logger *slog.Logger,
) *RedisProductCache {
	return &RedisProductCache{
		client: redis.NewClient(opt),
		prefix: prefix,
		logger: logger,
	}
}

func (r *RedisProductCache) key(uid string) string {
	return r.prefix + uid
}

func (r *RedisProductCache) Get(
	ctx context.Context,
	uid string,
) (*domain.Product, error) {
	val, err := r.client.Get(ctx, r.key(uid)).Result()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Redis cache miss", "uid", uid)
		return nil, nil // cache miss
	}
	if err != nil {
		r.logger.Error("Redis cache get error", "uid", uid, "error", err)
		return nil, err
	}
	var product domain.Product
	if err := json.Unmarshal([]byte(val), &product); err != nil {
		r.logger.Error("Redis cache unmarshal error", "uid", uid, "error", err)
		return nil, err
	}
	r.logger.Debug("Redis cache hit", "uid", uid)
	return &product, nil
}

func (r *RedisProductCache) Set(
	ctx context.Context,
	uid string,
	product *domain.Product,
	ttl time.Duration,
) error {
	data, err := json.Marshal(product)
	if err != nil {
		r.logger.Error("Redis cache marshal error", "uid", uid, "error", err)
		return err
	}
	err = r.client.Set(ctx, r.key(uid), data, ttl).Err()
	if err != nil {
		r.logger.Error("Redis cache set error", "uid", uid, "error", err)
		return err
	}
	r.logger.Debug("Redis cache set", "uid", uid, "ttl", ttl)
	return nil
}

func (r *RedisProductCache) Delete(ctx context.Context, uid string) error {
	err := r.client.Del(ctx, r.key(uid)).Err()
	if err != nil {
		r.logger.Error("Redis cache delete error", "uid", uid, "error", err)
		return err
	}
	r.logger.Debug("Redis cache delete", "uid", uid)
	return nil
}

// Clear removes every key under the cache prefix.
func (r *RedisProductCache) Clear(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			r.logger.Error(
				"Redis cache clear error",
				"key", iter.Val(),
				"error", err,
			)
			return err
		}
	}
	if err := iter.Err(); err != nil {
		r.logger.Error("Redis cache scan error", "error", err)
		return err
	}
	r.logger.Debug("Redis cache cleared", "prefix", r.prefix)
	return nil
}
