package mq

import (
	"context"

	"KissaHub/app/common/bus"
	"KissaHub/app/common/events"
	"KissaHub/app/services/profile/internal/logic"
	"KissaHub/app/services/profile/internal/svc"

	"github.com/zeromicro/go-zero/core/logx"
)

// StartStatisticsConsumer blocks folding activity events into user
// statistics until ctx is cancelled.
func StartStatisticsConsumer(ctx context.Context, sc *svc.ServiceContext) error {
	logx.Infow("statistics consumer started", logx.Field("topics", logic.Topics))
	return sc.Bus.Subscriber.Subscribe(ctx, logic.Topics, StatisticsHandler(sc))
}

func StatisticsHandler(sc *svc.ServiceContext) bus.Handler {
	return bus.EnvelopeHandler(func(ctx context.Context, env *events.Envelope) error {
		return logic.NewApplyEventLogic(ctx, sc).Apply(env)
	})
}
