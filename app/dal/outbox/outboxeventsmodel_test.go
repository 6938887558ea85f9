package outbox

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

func newMockModel(t *testing.T) (OutboxEventsModel, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewOutboxEventsModel(sqlx.NewSqlConnFromDB(db)), mock
}

func TestFindPendingSkipsExhaustedRows(t *testing.T) {
	m, mock := newMockModel(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "topic", "event_type", "partition_key", "payload", "retry_count", "last_error", "published_at", "created_at"}).
		AddRow("e-1", "review.added", "review.added", "7", `{}`, 0, nil, nil, now).
		AddRow("e-2", "checkin.created", "checkin.created", "7", `{}`, 2, "broker down", nil, now)
	mock.ExpectQuery(regexp.QuoteMeta("where `published_at` is null and `retry_count` < ? order by `created_at` limit ?")).
		WithArgs(int64(5), int64(100)).
		WillReturnRows(rows)

	got, err := m.FindPending(context.Background(), 5, 100)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "e-1", got[0].Id)
	assert.False(t, got[0].LastError.Valid)
	assert.Equal(t, "broker down", got[1].LastError.String)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkFailedBumpsRetryCount(t *testing.T) {
	m, mock := newMockModel(t)
	mock.ExpectExec(regexp.QuoteMeta("set `retry_count` = `retry_count` + 1, `last_error` = ? where `id` = ?")).
		WithArgs("timeout", "e-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, m.MarkFailed(context.Background(), "e-1", "timeout"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertWithSessionJoinsTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	conn := sqlx.NewSqlConnFromDB(db)
	m := NewOutboxEventsModel(conn)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("insert into `outbox_events`")).
		WithArgs("e-9", "user.registered", "user.registered", "42", `{"a":1}`, int64(0), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = conn.TransactCtx(context.Background(), func(ctx context.Context, session sqlx.Session) error {
		return m.InsertWithSession(ctx, session, &OutboxEvents{
			Id:           "e-9",
			Topic:        "user.registered",
			EventType:    "user.registered",
			PartitionKey: "42",
			Payload:      `{"a":1}`,
		})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
