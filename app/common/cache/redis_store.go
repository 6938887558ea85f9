package cache

import (
	"context"
	"math"
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

const defaultScanCount = 200

type RedisStore struct {
	rds       *redis.Redis
	scanCount int64
}

func NewRedisStore(rds *redis.Redis) *RedisStore {
	return &RedisStore{rds: rds, scanCount: defaultScanCount}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.rds.GetCtx(ctx, key)
	if err != nil {
		return "", false, err
	}
	// go-zero maps redis.Nil to an empty value
	if val == "" {
		return "", false, nil
	}
	return val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		return s.rds.SetCtx(ctx, key, value)
	}
	seconds := int(math.Ceil(ttl.Seconds()))
	return s.rds.SetexCtx(ctx, key, value, seconds)
}

func (s *RedisStore) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := s.rds.DelCtx(ctx, keys...)
	return err
}

// DelPattern walks the keyspace with SCAN and deletes each batch it finds.
func (s *RedisStore) DelPattern(ctx context.Context, pattern string) (int, error) {
	var (
		cursor  uint64
		removed int
	)
	for {
		keys, next, err := s.rds.ScanCtx(ctx, cursor, pattern, s.scanCount)
		if err != nil {
			return removed, err
		}
		if len(keys) > 0 {
			n, err := s.rds.DelCtx(ctx, keys...)
			if err != nil {
				return removed, err
			}
			removed += n
		}
		if next == 0 {
			return removed, nil
		}
		cursor = next
	}
}
