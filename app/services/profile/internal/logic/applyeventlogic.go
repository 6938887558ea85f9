package logic

import (
	"context"
	"fmt"

	"KissaHub/app/common/consts/biz"
	"KissaHub/app/common/events"
	model "KissaHub/app/dal/profile"
	"KissaHub/app/services/profile/internal/svc"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// Topics lists every event type the aggregator folds into statistics.
var Topics = []string{
	events.TypeUserRegistered,
	events.TypeCoffeeShopApproved,
	events.TypeReviewAdded,
	events.TypeCheckinCreated,
}

// activity is what one event contributes to a user's statistics.
type activity struct {
	userId     int64
	counter    model.Counter
	registered *events.UserRegistered
}

type ApplyEventLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewApplyEventLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ApplyEventLogic {
	return &ApplyEventLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Apply folds env into the statistics of the user it concerns. The ledger
// mark, the profile row and the counter commit together, so a redelivered
// event id changes nothing. A returned error leaves no trace and the event
// should be redelivered.
func (l *ApplyEventLogic) Apply(env *events.Envelope) error {
	act, ok, err := classify(env)
	if err == nil && ok && act.userId <= 0 {
		err = fmt.Errorf("event %s carries no user id", env.EventID)
	}
	if err != nil {
		// redelivery cannot fix a bad payload
		l.Errorw("drop malformed statistics event",
			logx.Field("event_id", env.EventID),
			logx.Field("event_type", env.EventType),
			logx.Field("err", err))
		return nil
	}
	if !ok {
		l.Infow("skip event without statistics impact",
			logx.Field("event_id", env.EventID),
			logx.Field("event_type", env.EventType))
		return nil
	}

	applied := false
	err = l.svcCtx.UserStatisticsModel.ExecWithTransaction(l.ctx, func(ctx context.Context, session sqlx.Session) error {
		fresh, err := l.svcCtx.ProcessedEventsModel.MarkWithSession(ctx, session, env.EventID, env.EventType)
		if err != nil || !fresh {
			return err
		}

		if r := act.registered; r != nil {
			err = l.svcCtx.UserProfilesModel.UpsertWithSession(ctx, session, &model.UserProfiles{
				Id:       act.userId,
				Email:    r.Email,
				UserName: r.UserName,
			})
		} else {
			err = l.svcCtx.UserProfilesModel.EnsureWithSession(ctx, session, act.userId)
		}
		if err != nil {
			return err
		}

		if err := l.svcCtx.UserStatisticsModel.IncrWithSession(ctx, session, act.userId, act.counter, env.OccurredAt); err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		l.Errorw("apply statistics event failed",
			logx.Field("event_id", env.EventID),
			logx.Field("event_type", env.EventType),
			logx.Field("user_id", act.userId),
			logx.Field("err", err))
		return err
	}
	if !applied {
		l.Infow("statistics event already applied", logx.Field("event_id", env.EventID))
		return nil
	}

	if err := l.svcCtx.UserStatisticsModel.EvictCache(l.ctx, act.userId); err != nil {
		l.Errorw("evict statistics cache failed", logx.Field("user_id", act.userId), logx.Field("err", err))
	}
	return nil
}

func classify(env *events.Envelope) (activity, bool, error) {
	switch env.EventType {
	case events.TypeUserRegistered:
		var evt events.UserRegistered
		if err := env.Bind(&evt); err != nil {
			return activity{}, false, err
		}
		return activity{userId: evt.UserId, counter: model.CounterNone, registered: &evt}, true, nil
	case events.TypeCoffeeShopApproved:
		var evt events.ApprovalEvent
		if err := env.Bind(&evt); err != nil {
			return activity{}, false, err
		}
		if evt.Status != biz.ListingStatusApproved {
			return activity{}, false, nil
		}
		return activity{userId: evt.OwnerId, counter: model.CounterAddedShops}, true, nil
	case events.TypeReviewAdded:
		var evt events.ReviewAdded
		if err := env.Bind(&evt); err != nil {
			return activity{}, false, err
		}
		return activity{userId: evt.UserId, counter: model.CounterReviews}, true, nil
	case events.TypeCheckinCreated:
		var evt events.CheckinCreated
		if err := env.Bind(&evt); err != nil {
			return activity{}, false, err
		}
		return activity{userId: evt.UserId, counter: model.CounterCheckins}, true, nil
	default:
		return activity{}, false, nil
	}
}
