package catalog

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ CheckinsModel = (*customCheckinsModel)(nil)

type (
	// CheckinsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customCheckinsModel.
	CheckinsModel interface {
		checkinsModel
		InsertWithSession(ctx context.Context, session sqlx.Session, data *Checkins) error
	}

	customCheckinsModel struct {
		*defaultCheckinsModel
	}
)

// NewCheckinsModel returns a model for the database table.
func NewCheckinsModel(conn sqlx.SqlConn) CheckinsModel {
	return &customCheckinsModel{
		defaultCheckinsModel: newCheckinsModel(conn),
	}
}

func (m *customCheckinsModel) InsertWithSession(ctx context.Context, session sqlx.Session, data *Checkins) error {
	query := fmt.Sprintf("insert into %s (%s) values (?, ?, ?)", m.table, checkinsRowsExpectAutoSet)
	_, err := session.ExecCtx(ctx, query, data.Id, data.ShopId, data.UserId)
	return err
}
