package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlc"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// Counter names one of the user_statistics counter columns.
type Counter string

const (
	CounterNone       Counter = ""
	CounterAddedShops Counter = "added_shops_count"
	CounterCheckins   Counter = "checkin_count"
	CounterReviews    Counter = "review_count"
)

func (c Counter) valid() bool {
	switch c {
	case CounterAddedShops, CounterCheckins, CounterReviews:
		return true
	}
	return false
}

var _ UserStatisticsModel = (*customUserStatisticsModel)(nil)

type (
	// UserStatisticsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customUserStatisticsModel.
	UserStatisticsModel interface {
		userStatisticsModel
		Lookup(ctx context.Context, userId int64) (*UserStatistics, error)
		ExecWithTransaction(ctx context.Context, fn func(context.Context, sqlx.Session) error) error
		IncrWithSession(ctx context.Context, session sqlx.Session, userId int64, counter Counter, at time.Time) error
		EvictCache(ctx context.Context, userId int64) error
	}

	customUserStatisticsModel struct {
		*defaultUserStatisticsModel
	}
)

// NewUserStatisticsModel returns a model for the database table.
func NewUserStatisticsModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) UserStatisticsModel {
	return &customUserStatisticsModel{
		defaultUserStatisticsModel: newUserStatisticsModel(conn, c, opts...),
	}
}

func (m *customUserStatisticsModel) ExecWithTransaction(ctx context.Context, fn func(context.Context, sqlx.Session) error) error {
	return m.TransactCtx(ctx, fn)
}

// IncrWithSession creates the row with zero counters when missing and bumps
// counter by one in a single statement, so concurrent events for one user
// never lose an update. CounterNone only ensures the row.
func (m *customUserStatisticsModel) IncrWithSession(ctx context.Context, session sqlx.Session, userId int64, counter Counter, at time.Time) error {
	if counter == CounterNone {
		query := fmt.Sprintf("insert ignore into %s (%s) values (?, 0, 0, 0, ?)", m.table, userStatisticsRowsExpectAutoSet)
		_, err := session.ExecCtx(ctx, query, userId, at)
		return err
	}
	if !counter.valid() {
		return fmt.Errorf("unknown statistics counter %q", counter)
	}

	initial := map[Counter]int{}
	initial[counter] = 1
	query := fmt.Sprintf("insert into %s (%s) values (?, %d, %d, %d, ?) on duplicate key update `%s` = `%s` + 1, `last_updated_at` = values(`last_updated_at`)",
		m.table, userStatisticsRowsExpectAutoSet,
		initial[CounterAddedShops], initial[CounterCheckins], initial[CounterReviews],
		counter, counter)
	_, err := session.ExecCtx(ctx, query, userId, at)
	return err
}

func (m *customUserStatisticsModel) EvictCache(ctx context.Context, userId int64) error {
	return m.DelCacheCtx(ctx, m.formatPrimary(userId))
}

// Lookup is FindOne without the not-found placeholder: hits are cached, a
// miss always reaches the database.
func (m *customUserStatisticsModel) Lookup(ctx context.Context, userId int64) (*UserStatistics, error) {
	userStatisticsUserIdKey := fmt.Sprintf("%s%v", cacheUserStatisticsUserIdPrefix, userId)
	var resp UserStatistics
	if err := m.GetCacheCtx(ctx, userStatisticsUserIdKey, &resp); err == nil {
		return &resp, nil
	}

	query := fmt.Sprintf("select %s from %s where `user_id` = ? limit 1", userStatisticsRows, m.table)
	switch err := m.QueryRowNoCacheCtx(ctx, &resp, query, userId); err {
	case nil:
		if err := m.SetCacheCtx(ctx, userStatisticsUserIdKey, &resp); err != nil {
			logx.WithContext(ctx).Errorw("cache statistics failed", logx.Field("user_id", userId), logx.Field("err", err))
		}
		return &resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}
