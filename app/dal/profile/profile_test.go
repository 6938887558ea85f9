package profile

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

func newMockStats(t *testing.T) (sqlx.SqlConn, UserStatisticsModel, sqlmock.Sqlmock, *miniredis.Miniredis) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	mr := miniredis.RunT(t)
	conn := sqlx.NewSqlConnFromDB(db)
	cc := cache.CacheConf{{RedisConf: redis.RedisConf{Host: mr.Addr(), Type: redis.NodeType}, Weight: 100}}
	return conn, NewUserStatisticsModel(conn, cc), mock, mr
}

func TestIncrIsAtomicUpsert(t *testing.T) {
	_, stats, mock, _ := newMockStats(t)
	at := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("values (?, 0, 1, 0, ?) on duplicate key update `checkin_count` = `checkin_count` + 1, `last_updated_at` = values(`last_updated_at`)")).
		WithArgs(int64(42), at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("insert ignore into `user_statistics`")).
		WithArgs(int64(43), at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := stats.ExecWithTransaction(context.Background(), func(ctx context.Context, session sqlx.Session) error {
		if err := stats.IncrWithSession(ctx, session, 42, CounterCheckins, at); err != nil {
			return err
		}
		return stats.IncrWithSession(ctx, session, 43, CounterNone, at)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrRejectsUnknownCounter(t *testing.T) {
	_, stats, _, _ := newMockStats(t)
	err := stats.IncrWithSession(context.Background(), nil, 1, Counter("password"), time.Now())
	assert.Error(t, err)
}

func TestMarkWithSessionDetectsRedelivery(t *testing.T) {
	conn, _, mock, _ := newMockStats(t)
	ledger := NewProcessedEventsModel(conn)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("insert ignore into `processed_events` (`event_id`, `event_type`) values (?, ?)")).
		WithArgs("e-1", "review.added").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("insert ignore into `processed_events`")).
		WithArgs("e-1", "review.added").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	var first, second bool
	err := conn.TransactCtx(context.Background(), func(ctx context.Context, session sqlx.Session) error {
		var err error
		if first, err = ledger.MarkWithSession(ctx, session, "e-1", "review.added"); err != nil {
			return err
		}
		second, err = ledger.MarkWithSession(ctx, session, "e-1", "review.added")
		return err
	})
	require.NoError(t, err)
	assert.True(t, first)
	assert.False(t, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOneCachesAndEvicts(t *testing.T) {
	_, stats, mock, mr := newMockStats(t)
	now := time.Now()
	cols := []string{"user_id", "added_shops_count", "checkin_count", "review_count", "last_updated_at"}
	mock.ExpectQuery(regexp.QuoteMeta("from `user_statistics` where `user_id` = ? limit 1")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(42, 0, 2, 1, now))

	row, err := stats.FindOne(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(2), row.CheckinCount)
	assert.True(t, mr.Exists("cache:userStatistics:userId:42"))

	require.NoError(t, stats.EvictCache(context.Background(), 42))
	assert.False(t, mr.Exists("cache:userStatistics:userId:42"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLookupNeverCachesMiss(t *testing.T) {
	_, stats, mock, mr := newMockStats(t)
	cols := []string{"user_id", "added_shops_count", "checkin_count", "review_count", "last_updated_at"}
	query := regexp.QuoteMeta("from `user_statistics` where `user_id` = ? limit 1")
	mock.ExpectQuery(query).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows(cols))
	mock.ExpectQuery(query).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows(cols))
	mock.ExpectQuery(query).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows(cols).AddRow(7, 0, 1, 0, time.Now()))

	for i := 0; i < 2; i++ {
		_, err := stats.Lookup(context.Background(), 7)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.False(t, mr.Exists("cache:userStatistics:userId:7"))
	}

	row, err := stats.Lookup(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), row.CheckinCount)
	assert.True(t, mr.Exists("cache:userStatistics:userId:7"))

	row, err = stats.Lookup(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), row.CheckinCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
