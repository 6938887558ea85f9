package catalog

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ReviewsModel = (*customReviewsModel)(nil)

type (
	// ReviewsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customReviewsModel.
	ReviewsModel interface {
		reviewsModel
		InsertWithSession(ctx context.Context, session sqlx.Session, data *Reviews) error
		FindByShopId(ctx context.Context, shopId, offset, limit int64) ([]*Reviews, error)
		CountByShopId(ctx context.Context, shopId int64) (int64, error)
	}

	customReviewsModel struct {
		*defaultReviewsModel
	}
)

// NewReviewsModel returns a model for the database table.
func NewReviewsModel(conn sqlx.SqlConn) ReviewsModel {
	return &customReviewsModel{
		defaultReviewsModel: newReviewsModel(conn),
	}
}

func (m *customReviewsModel) InsertWithSession(ctx context.Context, session sqlx.Session, data *Reviews) error {
	query := fmt.Sprintf("insert into %s (%s) values (?, ?, ?, ?, ?)", m.table, reviewsRowsExpectAutoSet)
	_, err := session.ExecCtx(ctx, query, data.Id, data.ShopId, data.UserId, data.Rating, data.Content)
	return err
}

func (m *customReviewsModel) FindByShopId(ctx context.Context, shopId, offset, limit int64) ([]*Reviews, error) {
	query := fmt.Sprintf("select %s from %s where `shop_id` = ? order by `id` desc limit ?, ?", reviewsRows, m.table)
	var resp []*Reviews
	if err := m.conn.QueryRowsCtx(ctx, &resp, query, shopId, offset, limit); err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *customReviewsModel) CountByShopId(ctx context.Context, shopId int64) (int64, error) {
	query := fmt.Sprintf("select count(*) from %s where `shop_id` = ?", m.table)
	var total int64
	err := m.conn.QueryRowCtx(ctx, &total, query, shopId)
	return total, err
}
