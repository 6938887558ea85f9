package logic

import (
	"context"
	"strconv"
	"strings"
	"time"

	"KissaHub/app/common/consts/errno"
	"KissaHub/app/common/events"
	"KissaHub/app/common/response"
	model "KissaHub/app/dal/user"
	"KissaHub/app/services/user/internal/svc"
	"KissaHub/app/services/user/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"golang.org/x/crypto/bcrypt"
)

type LoginUserLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewLoginUserLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LoginUserLogic {
	return &LoginUserLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// LoginUser verifies the password and stages a login notification. The
// notification is left to the outbox relay; a failure to stage it never fails
// the login.
func (l *LoginUserLogic) LoginUser(in *types.LoginRequest) (*types.UserResponse, error) {
	resp := &types.UserResponse{Result: response.Fail(errno.InternalError)}

	username := strings.TrimSpace(in.Username)
	password := strings.TrimSpace(in.Password)
	if username == "" || password == "" {
		resp.Result = response.NewResult(errno.InvalidParam, "username and password are required")
		return resp, nil
	}

	if l.svcCtx.Bloom != nil {
		exists, err := l.svcCtx.Bloom.Exists([]byte(username))
		if err != nil {
			l.Errorw("login bloom exists failed", logx.Field("err", err))
		} else if !exists {
			resp.Result = response.Fail(errno.UserNotFound)
			return resp, nil
		}
	}

	dbUser, err := l.svcCtx.UsersModel.FindOneByUsername(l.ctx, username)
	if err != nil {
		if err == model.ErrNotFound {
			resp.Result = response.Fail(errno.UserNotFound)
			return resp, nil
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		resp.Result = response.Fail(errno.InvalidCredentials)
		return resp, nil
	}

	l.notify(dbUser)

	resp.Result = response.OK()
	resp.User = userToView(dbUser)
	return resp, nil
}

func (l *LoginUserLogic) notify(u *model.Users) {
	env, err := events.New(events.TypeLoginNotified, events.ProducerUser, strconv.FormatInt(u.Id, 10), events.LoginNotified{
		UserId:     u.Id,
		UserName:   u.Username,
		LoggedInAt: time.Now().UTC(),
	})
	if err == nil {
		err = l.svcCtx.UsersModel.ExecWithTransaction(l.ctx, func(ctx context.Context, session sqlx.Session) error {
			return l.svcCtx.Outbox.Stage(ctx, session, env)
		})
	}
	if err != nil {
		l.Errorw("stage login notification failed", logx.Field("user_id", u.Id), logx.Field("err", err))
	}
}
