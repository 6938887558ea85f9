package logic

import (
	"context"
	"strconv"
	"time"

	appcache "KissaHub/app/common/cache"
	"KissaHub/app/common/consts/errno"
	"KissaHub/app/common/events"
	"KissaHub/app/common/response"
	"KissaHub/app/common/snowflake"
	"KissaHub/app/common/util"
	model "KissaHub/app/dal/catalog"
	"KissaHub/app/services/catalog/internal/svc"
	"KissaHub/app/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

type AddCheckinLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAddCheckinLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AddCheckinLogic {
	return &AddCheckinLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AddCheckinLogic) AddCheckin(req *types.AddCheckinRequest) (*types.CheckinResponse, error) {
	resp := &types.CheckinResponse{Result: response.Fail(errno.InternalError)}

	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}
	if req.Id <= 0 {
		resp.Result = response.Fail(errno.InvalidParam)
		return resp, nil
	}

	shop, err := l.svcCtx.CoffeeShopsModel.FindOne(l.ctx, req.Id)
	switch err {
	case nil:
	case model.ErrNotFound:
		resp.Result = response.Fail(errno.ShopNotFound)
		return resp, nil
	default:
		l.Errorw("find shop failed", logx.Field("shop_id", req.Id), logx.Field("err", err))
		return resp, nil
	}

	checkin := &model.Checkins{
		Id:        snowflake.Next(),
		ShopId:    shop.Id,
		UserId:    userId,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	env, err := events.New(events.TypeCheckinCreated, events.ProducerCatalog, strconv.FormatInt(userId, 10), events.CheckinCreated{
		UserId:    userId,
		ShopId:    shop.Id,
		CreatedAt: checkin.CreatedAt,
	})
	if err != nil {
		l.Errorw("build checkin event failed", logx.Field("err", err))
		return resp, nil
	}

	err = l.svcCtx.CoffeeShopsModel.ExecWithTransaction(l.ctx, func(ctx context.Context, session sqlx.Session) error {
		if err := l.svcCtx.CheckinsModel.InsertWithSession(ctx, session, checkin); err != nil {
			return err
		}
		if err := l.svcCtx.CoffeeShopsModel.IncrCheckinWithSession(ctx, session, shop.Id); err != nil {
			return err
		}
		return l.svcCtx.Outbox.Stage(ctx, session, env)
	})
	switch {
	case err == nil:
	case err == model.ErrRowsAffectedIsZero:
		resp.Result = response.Fail(errno.ShopNotFound)
		return resp, nil
	default:
		l.Errorw("add checkin failed",
			logx.Field("shop_id", shop.Id),
			logx.Field("user_id", userId),
			logx.Field("err", err))
		return resp, nil
	}

	l.svcCtx.Invalidator.Invalidate(l.ctx, appcache.Invalidation{
		Keys:     []string{appcache.ShopKey(shop.Id)},
		Patterns: []string{appcache.ShopCityPattern(shop.City)},
	})

	resp.Checkin = &types.Checkin{
		Id:        checkin.Id,
		ShopId:    checkin.ShopId,
		UserId:    checkin.UserId,
		CreatedAt: checkin.CreatedAt.Unix(),
	}

	if err := l.svcCtx.Outbox.Deliver(l.ctx, env); err != nil {
		l.Errorw("publish checkin event failed, left for relay",
			logx.Field("checkin_id", checkin.Id),
			logx.Field("event_id", env.EventID),
			logx.Field("err", err))
		resp.Result = response.Fail(errno.EventPublishFailed)
		return resp, nil
	}

	resp.Result = response.OK()
	return resp, nil
}
