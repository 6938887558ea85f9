package catalog

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ CoffeeShopsModel = (*customCoffeeShopsModel)(nil)

type (
	// CoffeeShopsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customCoffeeShopsModel.
	CoffeeShopsModel interface {
		coffeeShopsModel
		ExecWithTransaction(ctx context.Context, fn func(context.Context, sqlx.Session) error) error
		InsertWithSession(ctx context.Context, session sqlx.Session, data *CoffeeShops) error
		FindByCity(ctx context.Context, city string, offset, limit int64) ([]*CoffeeShops, error)
		CountByCity(ctx context.Context, city string) (int64, error)
		FindTopRated(ctx context.Context, limit int64) ([]*CoffeeShops, error)
		AddRatingWithSession(ctx context.Context, session sqlx.Session, id, rating int64) error
		IncrCheckinWithSession(ctx context.Context, session sqlx.Session, id int64) error
	}

	customCoffeeShopsModel struct {
		*defaultCoffeeShopsModel
	}
)

// NewCoffeeShopsModel returns a model for the database table.
func NewCoffeeShopsModel(conn sqlx.SqlConn) CoffeeShopsModel {
	return &customCoffeeShopsModel{
		defaultCoffeeShopsModel: newCoffeeShopsModel(conn),
	}
}

func (m *customCoffeeShopsModel) ExecWithTransaction(ctx context.Context, fn func(context.Context, sqlx.Session) error) error {
	return m.conn.TransactCtx(ctx, fn)
}

func (m *customCoffeeShopsModel) InsertWithSession(ctx context.Context, session sqlx.Session, data *CoffeeShops) error {
	query := fmt.Sprintf("insert into %s (%s) values (?, ?, ?, ?, ?, ?, ?, ?, ?)", m.table, coffeeShopsRowsExpectAutoSet)
	_, err := session.ExecCtx(ctx, query, data.Id, data.SourceListingId, data.Name, data.OwnerId, data.Address, data.City, data.ReviewCount, data.RatingTotal, data.CheckinCount)
	return err
}

func (m *customCoffeeShopsModel) FindByCity(ctx context.Context, city string, offset, limit int64) ([]*CoffeeShops, error) {
	query := fmt.Sprintf("select %s from %s where lower(`city`) = lower(?) order by `id` limit ?, ?", coffeeShopsRows, m.table)
	var resp []*CoffeeShops
	if err := m.conn.QueryRowsCtx(ctx, &resp, query, city, offset, limit); err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *customCoffeeShopsModel) CountByCity(ctx context.Context, city string) (int64, error) {
	query := fmt.Sprintf("select count(*) from %s where lower(`city`) = lower(?)", m.table)
	var total int64
	err := m.conn.QueryRowCtx(ctx, &total, query, city)
	return total, err
}

// FindTopRated orders reviewed shops by average rating, breaking ties by
// review volume.
func (m *customCoffeeShopsModel) FindTopRated(ctx context.Context, limit int64) ([]*CoffeeShops, error) {
	query := fmt.Sprintf("select %s from %s where `review_count` > 0 order by `rating_total` / `review_count` desc, `review_count` desc, `id` limit ?", coffeeShopsRows, m.table)
	var resp []*CoffeeShops
	if err := m.conn.QueryRowsCtx(ctx, &resp, query, limit); err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *customCoffeeShopsModel) AddRatingWithSession(ctx context.Context, session sqlx.Session, id, rating int64) error {
	query := fmt.Sprintf("update %s set `review_count` = `review_count` + 1, `rating_total` = `rating_total` + ? where `id` = ?", m.table)
	res, err := session.ExecCtx(ctx, query, rating, id)
	if err != nil {
		return err
	}
	return ensureRows(res)
}

func (m *customCoffeeShopsModel) IncrCheckinWithSession(ctx context.Context, session sqlx.Session, id int64) error {
	query := fmt.Sprintf("update %s set `checkin_count` = `checkin_count` + 1 where `id` = ?", m.table)
	res, err := session.ExecCtx(ctx, query, id)
	if err != nil {
		return err
	}
	return ensureRows(res)
}
