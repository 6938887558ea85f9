package cache

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
)

// Invalidation lists what one write made stale: point keys whose content
// changed and patterns covering collections whose membership or order changed.
type Invalidation struct {
	Keys     []string
	Patterns []string
}

// Invalidator evicts synchronously on the write path. Failures are logged and
// swallowed, stale point entries then live until their TTL.
type Invalidator struct {
	store Store
}

func NewInvalidator(store Store) *Invalidator {
	return &Invalidator{store: store}
}

// Invalidate issues every eviction in inv and returns how many failed.
func (i *Invalidator) Invalidate(ctx context.Context, inv Invalidation) int {
	if i == nil || i.store == nil {
		return 0
	}
	logger := logx.WithContext(ctx)
	failed := 0

	if len(inv.Keys) > 0 {
		if err := i.store.Del(ctx, inv.Keys...); err != nil {
			failed += len(inv.Keys)
			logger.Errorw("evict cache keys failed",
				logx.Field("keys", inv.Keys), logx.Field("err", err))
		}
	}
	for _, pattern := range inv.Patterns {
		if _, err := i.store.DelPattern(ctx, pattern); err != nil {
			failed++
			logger.Errorw("evict cache pattern failed",
				logx.Field("pattern", pattern), logx.Field("err", err))
		}
	}
	return failed
}
