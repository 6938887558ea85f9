package profile

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ProcessedEventsModel = (*customProcessedEventsModel)(nil)

type (
	// ProcessedEventsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customProcessedEventsModel.
	ProcessedEventsModel interface {
		processedEventsModel
		MarkWithSession(ctx context.Context, session sqlx.Session, eventId, eventType string) (bool, error)
	}

	customProcessedEventsModel struct {
		*defaultProcessedEventsModel
	}
)

// NewProcessedEventsModel returns a model for the database table.
func NewProcessedEventsModel(conn sqlx.SqlConn) ProcessedEventsModel {
	return &customProcessedEventsModel{
		defaultProcessedEventsModel: newProcessedEventsModel(conn),
	}
}

// MarkWithSession records eventId in the ledger and reports whether it was
// new. A false result means the event was already applied.
func (m *customProcessedEventsModel) MarkWithSession(ctx context.Context, session sqlx.Session, eventId, eventType string) (bool, error) {
	query := fmt.Sprintf("insert ignore into %s (`event_id`, `event_type`) values (?, ?)", m.table)
	res, err := session.ExecCtx(ctx, query, eventId, eventType)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
