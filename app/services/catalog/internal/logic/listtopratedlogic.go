package logic

import (
	"context"

	appcache "KissaHub/app/common/cache"
	"KissaHub/app/common/consts/biz"
	"KissaHub/app/common/consts/errno"
	"KissaHub/app/common/response"
	"KissaHub/app/services/catalog/internal/svc"
	"KissaHub/app/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListTopRatedLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListTopRatedLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListTopRatedLogic {
	return &ListTopRatedLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListTopRatedLogic) ListTopRated(req *types.ListTopRatedRequest) (*types.ShopListResponse, error) {
	resp := &types.ShopListResponse{Result: response.Fail(errno.InternalError)}
	limit := req.Limit
	if limit < 1 {
		limit = biz.DefaultTopRated
	}
	if limit > biz.MaxPageSize {
		limit = biz.MaxPageSize
	}

	result, err := appcache.Fetch(l.ctx, l.svcCtx.Cache, appcache.TopRatedKey(limit), 0,
		func(ctx context.Context) (*types.ShopList, error) {
			rows, err := l.svcCtx.CoffeeShopsModel.FindTopRated(ctx, int64(limit))
			if err != nil {
				return nil, err
			}
			return &types.ShopList{Shops: toSummaries(rows)}, nil
		})
	if err != nil {
		l.Errorw("list top rated shops failed", logx.Field("limit", limit), logx.Field("err", err))
		return resp, nil
	}

	resp.Result = response.OK()
	resp.List = result
	return resp, nil
}
