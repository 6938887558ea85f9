package outbox

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
)

const TaskRelay = "outbox:relay"

func NewAsynqMux(relay *Relay) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskRelay, newRelayHandler(relay))
	return mux
}

func newRelayHandler(relay *Relay) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		n, err := relay.DispatchPending(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			logx.WithContext(ctx).Infow("outbox relayed", logx.Field("count", n))
		}
		return nil
	}
}

// StartAsynq runs the relay worker and the scheduler that enqueues it.
// fallbackAddr is used when the asynq redis address is not configured.
func StartAsynq(c AsynqConf, rc RelayConf, fallbackAddr string, relay *Relay) (func(), error) {
	addr := c.Addr
	if addr == "" {
		addr = fallbackAddr
	}
	opt := asynq.RedisClientOpt{Addr: addr, Password: c.Password, DB: c.DB}

	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: c.Concurrency,
		Queues:      map[string]int{"default": 1},
	})
	scheduler := asynq.NewScheduler(opt, &asynq.SchedulerOpts{})
	// a slow drain must not overlap the next tick
	if _, err := scheduler.Register(rc.Schedule, asynq.NewTask(TaskRelay, nil),
		asynq.Unique(time.Minute), asynq.MaxRetry(0)); err != nil {
		return nil, err
	}

	mux := NewAsynqMux(relay)
	go func() {
		if err := srv.Run(mux); err != nil {
			logx.Errorw("outbox asynq server stopped", logx.Field("err", err))
		}
	}()
	if err := scheduler.Start(); err != nil {
		srv.Shutdown()
		return nil, err
	}

	return func() {
		scheduler.Shutdown()
		srv.Shutdown()
	}, nil
}
