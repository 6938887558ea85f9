package profile

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ UserProfilesModel = (*customUserProfilesModel)(nil)

type (
	// UserProfilesModel is an interface to be customized, add more methods here,
	// and implement the added methods in customUserProfilesModel.
	UserProfilesModel interface {
		userProfilesModel
		UpsertWithSession(ctx context.Context, session sqlx.Session, data *UserProfiles) error
		EnsureWithSession(ctx context.Context, session sqlx.Session, id int64) error
	}

	customUserProfilesModel struct {
		*defaultUserProfilesModel
	}
)

// NewUserProfilesModel returns a model for the database table.
func NewUserProfilesModel(conn sqlx.SqlConn) UserProfilesModel {
	return &customUserProfilesModel{
		defaultUserProfilesModel: newUserProfilesModel(conn),
	}
}

// UpsertWithSession writes the registration details, filling in a placeholder
// row created by an earlier activity event.
func (m *customUserProfilesModel) UpsertWithSession(ctx context.Context, session sqlx.Session, data *UserProfiles) error {
	query := fmt.Sprintf("insert into %s (%s) values (?, ?, ?) on duplicate key update `email` = values(`email`), `user_name` = values(`user_name`)", m.table, userProfilesRowsExpectAutoSet)
	_, err := session.ExecCtx(ctx, query, data.Id, data.Email, data.UserName)
	return err
}

// EnsureWithSession inserts an empty placeholder row unless one exists.
func (m *customUserProfilesModel) EnsureWithSession(ctx context.Context, session sqlx.Session, id int64) error {
	query := fmt.Sprintf("insert ignore into %s (%s) values (?, '', '')", m.table, userProfilesRowsExpectAutoSet)
	_, err := session.ExecCtx(ctx, query, id)
	return err
}
