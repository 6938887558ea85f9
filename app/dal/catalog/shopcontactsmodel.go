package catalog

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ShopContactsModel = (*customShopContactsModel)(nil)

type (
	// ShopContactsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customShopContactsModel.
	ShopContactsModel interface {
		shopContactsModel
		InsertWithSession(ctx context.Context, session sqlx.Session, data *ShopContacts) error
	}

	customShopContactsModel struct {
		*defaultShopContactsModel
	}
)

// NewShopContactsModel returns a model for the database table.
func NewShopContactsModel(conn sqlx.SqlConn) ShopContactsModel {
	return &customShopContactsModel{
		defaultShopContactsModel: newShopContactsModel(conn),
	}
}

func (m *customShopContactsModel) InsertWithSession(ctx context.Context, session sqlx.Session, data *ShopContacts) error {
	query := fmt.Sprintf("insert into %s (%s) values (?, ?, ?, ?, ?, ?)", m.table, shopContactsRowsExpectAutoSet)
	_, err := session.ExecCtx(ctx, query, data.Id, data.ShopId, data.Phone, data.Email, data.Website, data.Instagram)
	return err
}
