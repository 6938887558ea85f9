package catalog

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ShopPhotosModel = (*customShopPhotosModel)(nil)

type (
	// ShopPhotosModel is an interface to be customized, add more methods here,
	// and implement the added methods in customShopPhotosModel.
	ShopPhotosModel interface {
		shopPhotosModel
		BatchInsertWithSession(ctx context.Context, session sqlx.Session, data []*ShopPhotos) error
		FindByShopId(ctx context.Context, shopId int64) ([]*ShopPhotos, error)
	}

	customShopPhotosModel struct {
		*defaultShopPhotosModel
	}
)

// NewShopPhotosModel returns a model for the database table.
func NewShopPhotosModel(conn sqlx.SqlConn) ShopPhotosModel {
	return &customShopPhotosModel{
		defaultShopPhotosModel: newShopPhotosModel(conn),
	}
}

func (m *customShopPhotosModel) BatchInsertWithSession(ctx context.Context, session sqlx.Session, data []*ShopPhotos) error {
	if len(data) == 0 {
		return nil
	}
	args := make([]any, 0, len(data)*4)
	for _, p := range data {
		args = append(args, p.Id, p.ShopId, p.Url, p.Position)
	}
	query := fmt.Sprintf("insert into %s (%s) values %s", m.table, shopPhotosRowsExpectAutoSet, placeholders(len(data), 4))
	_, err := session.ExecCtx(ctx, query, args...)
	return err
}

func (m *customShopPhotosModel) FindByShopId(ctx context.Context, shopId int64) ([]*ShopPhotos, error) {
	query := fmt.Sprintf("select %s from %s where `shop_id` = ? order by `position`", shopPhotosRows, m.table)
	var resp []*ShopPhotos
	if err := m.conn.QueryRowsCtx(ctx, &resp, query, shopId); err != nil {
		return nil, err
	}
	return resp, nil
}
