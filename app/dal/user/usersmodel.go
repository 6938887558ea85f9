package user

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ UsersModel = (*customUsersModel)(nil)

type (
	// UsersModel is an interface to be customized, add more methods here,
	// and implement the added methods in customUsersModel.
	UsersModel interface {
		usersModel
		FindAllUsername(ctx context.Context) ([]string, error)
		ExecWithTransaction(ctx context.Context, fn func(context.Context, sqlx.Session) error) error
		InsertWithSession(ctx context.Context, session sqlx.Session, data *Users) error
		EvictCache(ctx context.Context, data *Users) error
	}

	customUsersModel struct {
		*defaultUsersModel
	}
)

// NewUsersModel returns a model for the database table.
func NewUsersModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) UsersModel {
	return &customUsersModel{
		defaultUsersModel: newUsersModel(conn, c, opts...),
	}
}

func (m *customUsersModel) FindAllUsername(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf("select `username` from %s", m.table)
	var names []string
	err := m.QueryRowsNoCacheCtx(ctx, &names, query)
	return names, err
}

func (m *customUsersModel) ExecWithTransaction(ctx context.Context, fn func(context.Context, sqlx.Session) error) error {
	return m.TransactCtx(ctx, fn)
}

// InsertWithSession inserts inside a transaction. Call EvictCache after the
// commit: the username key may hold a not-found placeholder.
func (m *customUsersModel) InsertWithSession(ctx context.Context, session sqlx.Session, data *Users) error {
	query := fmt.Sprintf("insert into %s (%s) values (?, ?, ?, ?)", m.table, usersRowsExpectAutoSet)
	_, err := session.ExecCtx(ctx, query, data.Id, data.Username, data.Email, data.Password)
	return err
}

func (m *customUsersModel) EvictCache(ctx context.Context, data *Users) error {
	return m.DelCacheCtx(ctx,
		fmt.Sprintf("%s%v", cacheUsersIdPrefix, data.Id),
		fmt.Sprintf("%s%v", cacheUsersUsernamePrefix, data.Username))
}
