package logic

import (
	"context"
	"strings"

	appcache "KissaHub/app/common/cache"
	"KissaHub/app/common/consts/errno"
	"KissaHub/app/common/response"
	"KissaHub/app/services/catalog/internal/svc"
	"KissaHub/app/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListShopsByCityLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListShopsByCityLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListShopsByCityLogic {
	return &ListShopsByCityLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListShopsByCityLogic) ListShopsByCity(req *types.ListShopsByCityRequest) (*types.ShopPageResponse, error) {
	resp := &types.ShopPageResponse{Result: response.Fail(errno.InternalError)}
	city := strings.TrimSpace(req.City)
	if city == "" {
		resp.Result = response.NewResult(errno.InvalidParam, "city is required")
		return resp, nil
	}
	page, size := normalizePage(req.Page, req.Size)

	result, err := appcache.Fetch(l.ctx, l.svcCtx.Cache, appcache.ShopCityPageKey(city, page, size), 0,
		func(ctx context.Context) (*types.ShopPage, error) {
			total, err := l.svcCtx.CoffeeShopsModel.CountByCity(ctx, city)
			if err != nil {
				return nil, err
			}
			rows, err := l.svcCtx.CoffeeShopsModel.FindByCity(ctx, city, offsetOf(page, size), int64(size))
			if err != nil {
				return nil, err
			}
			return &types.ShopPage{Total: total, Shops: toSummaries(rows)}, nil
		})
	if err != nil {
		l.Errorw("list shops by city failed", logx.Field("city", city), logx.Field("err", err))
		return resp, nil
	}

	resp.Result = response.OK()
	resp.Page = result
	return resp, nil
}
