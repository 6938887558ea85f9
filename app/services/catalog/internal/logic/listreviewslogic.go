package logic

import (
	"context"

	appcache "KissaHub/app/common/cache"
	"KissaHub/app/common/consts/errno"
	"KissaHub/app/common/response"
	model "KissaHub/app/dal/catalog"
	"KissaHub/app/services/catalog/internal/svc"
	"KissaHub/app/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListReviewsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListReviewsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListReviewsLogic {
	return &ListReviewsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListReviewsLogic) ListReviews(req *types.ListReviewsRequest) (*types.ReviewPageResponse, error) {
	resp := &types.ReviewPageResponse{Result: response.Fail(errno.InternalError)}
	if req.Id <= 0 {
		resp.Result = response.Fail(errno.InvalidParam)
		return resp, nil
	}
	page, size := normalizePage(req.Page, req.Size)

	result, err := appcache.Fetch(l.ctx, l.svcCtx.Cache, appcache.ShopReviewsPageKey(req.Id, page, size), 0,
		func(ctx context.Context) (*types.ReviewPage, error) {
			// unknown shops answer ShopNotFound instead of an empty, cached page
			if _, err := l.svcCtx.CoffeeShopsModel.FindOne(ctx, req.Id); err != nil {
				return nil, err
			}
			total, err := l.svcCtx.ReviewsModel.CountByShopId(ctx, req.Id)
			if err != nil {
				return nil, err
			}
			rows, err := l.svcCtx.ReviewsModel.FindByShopId(ctx, req.Id, offsetOf(page, size), int64(size))
			if err != nil {
				return nil, err
			}
			out := &types.ReviewPage{Total: total, Reviews: make([]types.Review, 0, len(rows))}
			for _, r := range rows {
				out.Reviews = append(out.Reviews, toReview(r))
			}
			return out, nil
		})
	switch err {
	case nil:
	case model.ErrNotFound:
		resp.Result = response.Fail(errno.ShopNotFound)
		return resp, nil
	default:
		l.Errorw("list reviews failed", logx.Field("shop_id", req.Id), logx.Field("err", err))
		return resp, nil
	}

	resp.Result = response.OK()
	resp.Page = result
	return resp, nil
}
