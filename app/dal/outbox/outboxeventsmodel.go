package outbox

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ OutboxEventsModel = (*customOutboxEventsModel)(nil)

type (
	// OutboxEventsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customOutboxEventsModel.
	OutboxEventsModel interface {
		outboxEventsModel
		InsertWithSession(ctx context.Context, session sqlx.Session, data *OutboxEvents) error
		FindPending(ctx context.Context, maxRetries, limit int64) ([]*OutboxEvents, error)
		MarkPublished(ctx context.Context, id string) error
		MarkFailed(ctx context.Context, id, reason string) error
	}

	customOutboxEventsModel struct {
		*defaultOutboxEventsModel
	}
)

// NewOutboxEventsModel returns a model for the database table.
func NewOutboxEventsModel(conn sqlx.SqlConn) OutboxEventsModel {
	return &customOutboxEventsModel{
		defaultOutboxEventsModel: newOutboxEventsModel(conn),
	}
}

// InsertWithSession stages a row inside the caller's business transaction.
// Staging an id that already exists re-arms the row for another publish.
func (m *customOutboxEventsModel) InsertWithSession(ctx context.Context, session sqlx.Session, data *OutboxEvents) error {
	query := fmt.Sprintf("insert into %s (%s) values (?, ?, ?, ?, ?, ?, ?, ?) on duplicate key update `payload` = values(`payload`), `retry_count` = 0, `last_error` = null, `published_at` = null", m.table, outboxEventsRowsExpectAutoSet)
	_, err := session.ExecCtx(ctx, query, data.Id, data.Topic, data.EventType, data.PartitionKey, data.Payload, data.RetryCount, data.LastError, data.PublishedAt)
	return err
}

func (m *customOutboxEventsModel) FindPending(ctx context.Context, maxRetries, limit int64) ([]*OutboxEvents, error) {
	query := fmt.Sprintf("select %s from %s where `published_at` is null and `retry_count` < ? order by `created_at` limit ?", outboxEventsRows, m.table)
	var resp []*OutboxEvents
	if err := m.conn.QueryRowsCtx(ctx, &resp, query, maxRetries, limit); err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *customOutboxEventsModel) MarkPublished(ctx context.Context, id string) error {
	query := fmt.Sprintf("update %s set `published_at` = now(), `last_error` = null where `id` = ? and `published_at` is null", m.table)
	_, err := m.conn.ExecCtx(ctx, query, id)
	return err
}

func (m *customOutboxEventsModel) MarkFailed(ctx context.Context, id, reason string) error {
	query := fmt.Sprintf("update %s set `retry_count` = `retry_count` + 1, `last_error` = ? where `id` = ?", m.table)
	_, err := m.conn.ExecCtx(ctx, query, reason, id)
	return err
}
