package cache

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/jsonx"
	"github.com/zeromicro/go-zero/core/logx"
)

// ReadThrough serves reads from the Store and falls back to a loader on miss.
// Cache trouble is never an error for the caller, the loader answers instead.
type ReadThrough struct {
	store Store
}

func NewReadThrough(store Store) *ReadThrough {
	return &ReadThrough{store: store}
}

// Fetch returns the value cached at key, or calls load and caches its result.
// Point lookups pass a ttl; collection lookups pass 0 and rely on pattern
// eviction. Loader errors, not-found included, are returned and never cached.
func Fetch[T any](ctx context.Context, rt *ReadThrough, key string, ttl time.Duration,
	load func(ctx context.Context) (*T, error)) (*T, error) {
	logger := logx.WithContext(ctx)

	if rt != nil && rt.store != nil {
		raw, ok, err := rt.store.Get(ctx, key)
		switch {
		case err != nil:
			metricLookupTotal.Inc("error")
			logger.Errorw("cache get failed, reading store",
				logx.Field("key", key), logx.Field("err", err))
		case ok:
			var v T
			if err := jsonx.UnmarshalFromString(raw, &v); err == nil {
				metricLookupTotal.Inc("hit")
				return &v, nil
			}
			logger.Errorw("cache entry undecodable, reloading", logx.Field("key", key))
		}
	}

	metricLookupTotal.Inc("miss")
	v, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if v == nil || rt == nil || rt.store == nil {
		return v, nil
	}

	raw, err := jsonx.MarshalToString(v)
	if err != nil {
		logger.Errorw("encode cache entry failed", logx.Field("key", key), logx.Field("err", err))
		return v, nil
	}
	if err := rt.store.Set(ctx, key, raw, ttl); err != nil {
		logger.Errorw("cache set failed", logx.Field("key", key), logx.Field("err", err))
	}
	return v, nil
}
