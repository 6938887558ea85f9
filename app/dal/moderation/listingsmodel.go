package moderation

import (
	"context"
	"fmt"

	"KissaHub/app/common/consts/biz"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlc"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ListingsModel = (*customListingsModel)(nil)

type (
	// ListingsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customListingsModel.
	ListingsModel interface {
		listingsModel
		Lookup(ctx context.Context, id int64) (*Listings, error)
		ExecWithTransaction(ctx context.Context, fn func(context.Context, sqlx.Session) error) error
		FindActiveDuplicate(ctx context.Context, name, address string, ownerId int64) (*Listings, error)
		FindOneForUpdate(ctx context.Context, session sqlx.Session, id int64) (*Listings, error)
		UpdateReviewWithSession(ctx context.Context, session sqlx.Session, data *Listings) error
		EvictCache(ctx context.Context, id int64) error
	}

	customListingsModel struct {
		*defaultListingsModel
	}
)

// NewListingsModel returns a model for the database table.
func NewListingsModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) ListingsModel {
	return &customListingsModel{
		defaultListingsModel: newListingsModel(conn, c, opts...),
	}
}

func (m *customListingsModel) ExecWithTransaction(ctx context.Context, fn func(context.Context, sqlx.Session) error) error {
	return m.TransactCtx(ctx, fn)
}

// FindActiveDuplicate looks for a pending or approved listing with the same
// name, address and owner. Rejected listings may be resubmitted.
func (m *customListingsModel) FindActiveDuplicate(ctx context.Context, name, address string, ownerId int64) (*Listings, error) {
	query := fmt.Sprintf("select %s from %s where `name` = ? and `unvalidated_address` = ? and `owner_id` = ? and `status` in (?, ?) limit 1", listingsRows, m.table)
	var resp Listings
	err := m.QueryRowNoCacheCtx(ctx, &resp, query, name, address, ownerId, biz.ListingStatusPending, biz.ListingStatusApproved)
	switch err {
	case nil:
		return &resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

// FindOneForUpdate locks the row so concurrent transitions of one listing
// serialize on the database.
func (m *customListingsModel) FindOneForUpdate(ctx context.Context, session sqlx.Session, id int64) (*Listings, error) {
	query := fmt.Sprintf("select %s from %s where `id` = ? limit 1 for update", listingsRows, m.table)
	var resp Listings
	err := session.QueryRowCtx(ctx, &resp, query, id)
	switch err {
	case nil:
		return &resp, nil
	case sqlx.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *customListingsModel) UpdateReviewWithSession(ctx context.Context, session sqlx.Session, data *Listings) error {
	query := fmt.Sprintf("update %s set `status` = ?, `reviewer_id` = ?, `reviewed_at` = ? where `id` = ?", m.table)
	_, err := session.ExecCtx(ctx, query, data.Status, data.ReviewerId, data.ReviewedAt, data.Id)
	return err
}

// EvictCache drops the cached row after a transactional update committed.
func (m *customListingsModel) EvictCache(ctx context.Context, id int64) error {
	return m.DelCacheCtx(ctx, m.formatPrimary(id))
}

// Lookup is FindOne without the not-found placeholder: hits are cached, a
// miss always reaches the database.
func (m *customListingsModel) Lookup(ctx context.Context, id int64) (*Listings, error) {
	listingsIdKey := fmt.Sprintf("%s%v", cacheListingsIdPrefix, id)
	var resp Listings
	if err := m.GetCacheCtx(ctx, listingsIdKey, &resp); err == nil {
		return &resp, nil
	}

	query := fmt.Sprintf("select %s from %s where `id` = ? limit 1", listingsRows, m.table)
	switch err := m.QueryRowNoCacheCtx(ctx, &resp, query, id); err {
	case nil:
		if err := m.SetCacheCtx(ctx, listingsIdKey, &resp); err != nil {
			logx.WithContext(ctx).Errorw("cache listing failed", logx.Field("listing_id", id), logx.Field("err", err))
		}
		return &resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}
