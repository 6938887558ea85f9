package logic

import (
	"context"
	"strconv"
	"strings"
	"time"

	"KissaHub/app/common/consts/errno"
	"KissaHub/app/common/events"
	"KissaHub/app/common/response"
	"KissaHub/app/common/snowflake"
	"KissaHub/app/common/util"
	model "KissaHub/app/dal/user"
	"KissaHub/app/services/user/internal/svc"
	"KissaHub/app/services/user/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"golang.org/x/crypto/bcrypt"
)

type RegisterUserLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewRegisterUserLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RegisterUserLogic {
	return &RegisterUserLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *RegisterUserLogic) RegisterUser(in *types.RegisterRequest) (*types.UserResponse, error) {
	resp := &types.UserResponse{Result: response.Fail(errno.InternalError)}

	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	password := strings.TrimSpace(in.Password)
	if username == "" || password == "" {
		resp.Result = response.NewResult(errno.InvalidParam, "username and password are required")
		return resp, nil
	}
	if !strings.Contains(email, "@") {
		resp.Result = response.NewResult(errno.InvalidParam, "email is invalid")
		return resp, nil
	}

	// a bloom miss means the name is certainly free
	mayExist := true
	if l.svcCtx.Bloom != nil {
		exists, err := l.svcCtx.Bloom.Exists([]byte(username))
		if err != nil {
			l.Errorw("register user bloom exists failed", logx.Field("err", err))
		} else {
			mayExist = exists
		}
	}
	if mayExist {
		if _, err := l.svcCtx.UsersModel.FindOneByUsername(l.ctx, username); err == nil {
			resp.Result = response.Fail(errno.UserAlreadyExists)
			return resp, nil
		} else if err != model.ErrNotFound {
			l.Errorw("find user by username failed", logx.Field("username", username), logx.Field("err", err))
			return resp, nil
		}
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created := &model.Users{
		Id:        snowflake.Next(),
		Username:  username,
		Email:     email,
		Password:  string(hashedPwd),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	env, err := events.New(events.TypeUserRegistered, events.ProducerUser, strconv.FormatInt(created.Id, 10), events.UserRegistered{
		UserId:   created.Id,
		Email:    created.Email,
		UserName: created.Username,
	})
	if err != nil {
		l.Errorw("build user registered event failed", logx.Field("err", err))
		return resp, nil
	}

	err = l.svcCtx.UsersModel.ExecWithTransaction(l.ctx, func(ctx context.Context, session sqlx.Session) error {
		if err := l.svcCtx.UsersModel.InsertWithSession(ctx, session, created); err != nil {
			return err
		}
		return l.svcCtx.Outbox.Stage(ctx, session, env)
	})
	if err != nil {
		if util.IsDuplicateEntry(err) {
			resp.Result = response.Fail(errno.UserAlreadyExists)
			return resp, nil
		}
		l.Errorw("insert user failed", logx.Field("username", username), logx.Field("err", err))
		return resp, nil
	}

	if err := l.svcCtx.UsersModel.EvictCache(l.ctx, created); err != nil {
		l.Errorw("evict user cache failed", logx.Field("user_id", created.Id), logx.Field("err", err))
	}
	if l.svcCtx.Bloom != nil {
		if err := l.svcCtx.Bloom.Add([]byte(username)); err != nil {
			l.Errorw("register user bloom add failed", logx.Field("err", err))
		}
	}

	resp.User = userToView(created)
	if err := l.svcCtx.Outbox.Deliver(l.ctx, env); err != nil {
		l.Errorw("publish user registered failed, left for relay",
			logx.Field("user_id", created.Id),
			logx.Field("event_id", env.EventID),
			logx.Field("err", err))
		resp.Result = response.Fail(errno.EventPublishFailed)
		return resp, nil
	}

	resp.Result = response.OK()
	return resp, nil
}
