package catalog

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ShopSchedulesModel = (*customShopSchedulesModel)(nil)

type (
	// ShopSchedulesModel is an interface to be customized, add more methods here,
	// and implement the added methods in customShopSchedulesModel.
	ShopSchedulesModel interface {
		shopSchedulesModel
		BatchInsertWithSession(ctx context.Context, session sqlx.Session, data []*ShopSchedules) error
		FindByShopId(ctx context.Context, shopId int64) ([]*ShopSchedules, error)
	}

	customShopSchedulesModel struct {
		*defaultShopSchedulesModel
	}
)

// NewShopSchedulesModel returns a model for the database table.
func NewShopSchedulesModel(conn sqlx.SqlConn) ShopSchedulesModel {
	return &customShopSchedulesModel{
		defaultShopSchedulesModel: newShopSchedulesModel(conn),
	}
}

func (m *customShopSchedulesModel) BatchInsertWithSession(ctx context.Context, session sqlx.Session, data []*ShopSchedules) error {
	if len(data) == 0 {
		return nil
	}
	args := make([]any, 0, len(data)*6)
	for _, s := range data {
		args = append(args, s.Id, s.ShopId, s.DayOfWeek, s.OpensAt, s.ClosesAt, s.Closed)
	}
	query := fmt.Sprintf("insert into %s (%s) values %s", m.table, shopSchedulesRowsExpectAutoSet, placeholders(len(data), 6))
	_, err := session.ExecCtx(ctx, query, args...)
	return err
}

func (m *customShopSchedulesModel) FindByShopId(ctx context.Context, shopId int64) ([]*ShopSchedules, error) {
	query := fmt.Sprintf("select %s from %s where `shop_id` = ? order by `day_of_week`", shopSchedulesRows, m.table)
	var resp []*ShopSchedules
	if err := m.conn.QueryRowsCtx(ctx, &resp, query, shopId); err != nil {
		return nil, err
	}
	return resp, nil
}
