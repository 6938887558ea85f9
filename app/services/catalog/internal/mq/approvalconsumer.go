package mq

import (
	"context"

	"KissaHub/app/common/bus"
	"KissaHub/app/common/events"
	"KissaHub/app/services/catalog/internal/logic"
	"KissaHub/app/services/catalog/internal/svc"

	"github.com/zeromicro/go-zero/core/logx"
)

// StartApprovalConsumer blocks materializing approved listings until ctx is
// cancelled.
func StartApprovalConsumer(ctx context.Context, sc *svc.ServiceContext) error {
	logx.Infow("approval consumer started", logx.Field("topic", events.TypeCoffeeShopApproved))
	return sc.Bus.Subscriber.Subscribe(ctx, []string{events.TypeCoffeeShopApproved}, ApprovalHandler(sc))
}

// ApprovalHandler acks messages whose envelope or payload cannot be decoded,
// after logging them. Materialization errors are returned for redelivery.
func ApprovalHandler(sc *svc.ServiceContext) bus.Handler {
	return bus.EnvelopeHandler(func(ctx context.Context, env *events.Envelope) error {
		var evt events.ApprovalEvent
		if err := env.Bind(&evt); err != nil {
			logx.WithContext(ctx).Errorw("drop approval with bad payload",
				logx.Field("event_id", env.EventID), logx.Field("err", err))
			return nil
		}

		return logic.NewMaterializeShopLogic(ctx, sc).Materialize(&evt)
	})
}
