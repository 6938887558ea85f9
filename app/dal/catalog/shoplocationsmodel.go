package catalog

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ShopLocationsModel = (*customShopLocationsModel)(nil)

type (
	// ShopLocationsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customShopLocationsModel.
	ShopLocationsModel interface {
		shopLocationsModel
		InsertWithSession(ctx context.Context, session sqlx.Session, data *ShopLocations) error
	}

	customShopLocationsModel struct {
		*defaultShopLocationsModel
	}
)

// NewShopLocationsModel returns a model for the database table.
func NewShopLocationsModel(conn sqlx.SqlConn) ShopLocationsModel {
	return &customShopLocationsModel{
		defaultShopLocationsModel: newShopLocationsModel(conn),
	}
}

func (m *customShopLocationsModel) InsertWithSession(ctx context.Context, session sqlx.Session, data *ShopLocations) error {
	query := fmt.Sprintf("insert into %s (%s) values (?, ?, ?, ?)", m.table, shopLocationsRowsExpectAutoSet)
	_, err := session.ExecCtx(ctx, query, data.Id, data.ShopId, data.Latitude, data.Longitude)
	return err
}
