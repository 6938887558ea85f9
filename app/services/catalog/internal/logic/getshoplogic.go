package logic

import (
	"context"

	appcache "KissaHub/app/common/cache"
	"KissaHub/app/common/consts/biz"
	"KissaHub/app/common/consts/errno"
	"KissaHub/app/common/response"
	model "KissaHub/app/dal/catalog"
	"KissaHub/app/services/catalog/internal/svc"
	"KissaHub/app/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetShopLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetShopLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetShopLogic {
	return &GetShopLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetShopLogic) GetShop(req *types.GetShopRequest) (*types.ShopResponse, error) {
	resp := &types.ShopResponse{Result: response.Fail(errno.InternalError)}
	if req.Id <= 0 {
		resp.Result = response.Fail(errno.InvalidParam)
		return resp, nil
	}

	ttl := l.svcCtx.Config.ShopCacheTTL
	if ttl <= 0 {
		ttl = biz.DefaultShopCacheTTL
	}
	shop, err := appcache.Fetch(l.ctx, l.svcCtx.Cache, appcache.ShopKey(req.Id), ttl,
		func(ctx context.Context) (*types.Shop, error) {
			return loadShop(ctx, l.svcCtx, req.Id)
		})
	switch err {
	case nil:
	case model.ErrNotFound:
		resp.Result = response.Fail(errno.ShopNotFound)
		return resp, nil
	default:
		l.Errorw("load shop failed", logx.Field("shop_id", req.Id), logx.Field("err", err))
		return resp, nil
	}

	resp.Result = response.OK()
	resp.Shop = shop
	return resp, nil
}
