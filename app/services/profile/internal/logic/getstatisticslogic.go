package logic

import (
	"context"

	"KissaHub/app/common/consts/errno"
	"KissaHub/app/common/response"
	model "KissaHub/app/dal/profile"
	"KissaHub/app/services/profile/internal/svc"
	"KissaHub/app/services/profile/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetStatisticsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetStatisticsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetStatisticsLogic {
	return &GetStatisticsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetStatisticsLogic) GetStatistics(req *types.GetStatisticsRequest) (*types.StatisticsResponse, error) {
	resp := &types.StatisticsResponse{Result: response.Fail(errno.InternalError)}
	if req.UserId <= 0 {
		resp.Result = response.Fail(errno.InvalidParam)
		return resp, nil
	}

	stats, err := l.svcCtx.UserStatisticsModel.Lookup(l.ctx, req.UserId)
	switch err {
	case nil:
	case model.ErrNotFound:
		resp.Result = response.Fail(errno.StatisticsNotFound)
		return resp, nil
	default:
		l.Errorw("find statistics failed", logx.Field("user_id", req.UserId), logx.Field("err", err))
		return resp, nil
	}

	resp.Result = response.OK()
	resp.Statistics = &types.Statistics{
		UserId:          stats.UserId,
		AddedShopsCount: stats.AddedShopsCount,
		CheckinCount:    stats.CheckinCount,
		ReviewCount:     stats.ReviewCount,
		LastUpdatedAt:   stats.LastUpdatedAt.Unix(),
	}
	return resp, nil
}
