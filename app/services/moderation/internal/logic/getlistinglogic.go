package logic

import (
	"context"

	"KissaHub/app/common/consts/errno"
	"KissaHub/app/common/response"
	model "KissaHub/app/dal/moderation"
	"KissaHub/app/services/moderation/internal/svc"
	"KissaHub/app/services/moderation/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetListingLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetListingLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetListingLogic {
	return &GetListingLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetListingLogic) GetListing(req *types.GetListingRequest) (*types.ListingResponse, error) {
	resp := &types.ListingResponse{Result: response.Fail(errno.InternalError)}
	if req.Id <= 0 {
		resp.Result = response.Fail(errno.ListingNotFound)
		return resp, nil
	}

	listing, err := l.svcCtx.ListingsModel.Lookup(l.ctx, req.Id)
	switch err {
	case nil:
	case model.ErrNotFound:
		resp.Result = response.Fail(errno.ListingNotFound)
		return resp, nil
	default:
		l.Errorw("find listing failed", logx.Field("listing_id", req.Id), logx.Field("err", err))
		return resp, nil
	}

	view, err := toListing(listing)
	if err != nil {
		l.Errorw("decode listing failed", logx.Field("listing_id", req.Id), logx.Field("err", err))
		return resp, nil
	}
	resp.Result = response.OK()
	resp.Listing = view
	return resp, nil
}
