package logic

import (
	"context"
	"strconv"
	"strings"
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

const maxReviewContent = 2000

type AddReviewLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAddReviewLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AddReviewLogic {
	return &AddReviewLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// AddReview stores the review, folds its rating into the shop counters and
// stages ReviewAdded in one transaction. Cached views of the shop are evicted
// before the event is published.
func (l *AddReviewLogic) AddReview(req *types.AddReviewRequest) (*types.ReviewResponse, error) {
	resp := &types.ReviewResponse{Result: response.Fail(errno.InternalError)}

	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}
	content := strings.TrimSpace(req.Content)
	if req.Id <= 0 || req.Rating < 1 || req.Rating > 5 || len(content) > maxReviewContent {
		resp.Result = response.NewResult(errno.InvalidParam, "rating must be between 1 and 5")
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

	review := &model.Reviews{
		Id:        snowflake.Next(),
		ShopId:    shop.Id,
		UserId:    userId,
		Rating:    req.Rating,
		Content:   content,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	env, err := events.New(events.TypeReviewAdded, events.ProducerCatalog, strconv.FormatInt(userId, 10), events.ReviewAdded{
		UserId:    userId,
		ShopId:    shop.Id,
		ReviewId:  review.Id,
		CreatedAt: review.CreatedAt,
	})
	if err != nil {
		l.Errorw("build review event failed", logx.Field("err", err))
		return resp, nil
	}

	err = l.svcCtx.CoffeeShopsModel.ExecWithTransaction(l.ctx, func(ctx context.Context, session sqlx.Session) error {
		if err := l.svcCtx.ReviewsModel.InsertWithSession(ctx, session, review); err != nil {
			return err
		}
		if err := l.svcCtx.CoffeeShopsModel.AddRatingWithSession(ctx, session, shop.Id, review.Rating); err != nil {
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
		l.Errorw("add review failed",
			logx.Field("shop_id", shop.Id),
			logx.Field("user_id", userId),
			logx.Field("err", err))
		return resp, nil
	}

	l.svcCtx.Invalidator.Invalidate(l.ctx, appcache.Invalidation{
		Keys: []string{appcache.ShopKey(shop.Id)},
		Patterns: []string{
			appcache.ShopCityPattern(shop.City),
			appcache.TopRatedPattern,
			appcache.ShopReviewsPattern(shop.Id),
		},
	})

	view := toReview(review)
	resp.Review = &view

	if err := l.svcCtx.Outbox.Deliver(l.ctx, env); err != nil {
		l.Errorw("publish review event failed, left for relay",
			logx.Field("review_id", review.Id),
			logx.Field("event_id", env.EventID),
			logx.Field("err", err))
		resp.Result = response.Fail(errno.EventPublishFailed)
		return resp, nil
	}

	resp.Result = response.OK()
	return resp, nil
}
