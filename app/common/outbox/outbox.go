package outbox

import (
	"context"
	"errors"
	"fmt"

	"KissaHub/app/common/bus"
	"KissaHub/app/common/events"
	outboxmodel "KissaHub/app/dal/outbox"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

const (
	defaultBatch      = 100
	defaultMaxRetries = 20
	maxErrorLen       = 512
)

// Store is the slice of the outbox table the relay needs.
type Store interface {
	InsertWithSession(ctx context.Context, session sqlx.Session, data *outboxmodel.OutboxEvents) error
	FindPending(ctx context.Context, maxRetries, limit int64) ([]*outboxmodel.OutboxEvents, error)
	MarkPublished(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id, reason string) error
}

// Relay moves staged events from the outbox table onto the bus.
type Relay struct {
	store      Store
	pub        bus.Publisher
	batch      int64
	maxRetries int64
}

func NewRelay(store Store, pub bus.Publisher, c RelayConf) *Relay {
	r := &Relay{store: store, pub: pub, batch: c.Batch, maxRetries: c.MaxRetries}
	if r.batch <= 0 {
		r.batch = defaultBatch
	}
	if r.maxRetries <= 0 {
		r.maxRetries = defaultMaxRetries
	}
	return r
}

// Stage writes env into the outbox using the caller's transaction session.
func (r *Relay) Stage(ctx context.Context, session sqlx.Session, env *events.Envelope) error {
	body, err := env.Encode()
	if err != nil {
		return err
	}
	return r.store.InsertWithSession(ctx, session, &outboxmodel.OutboxEvents{
		Id:           env.EventID,
		Topic:        env.EventType,
		EventType:    env.EventType,
		PartitionKey: env.PartitionKey,
		Payload:      string(body),
	})
}

// Deliver publishes an already staged envelope and marks its row published.
// On failure the row stays pending for DispatchPending.
func (r *Relay) Deliver(ctx context.Context, env *events.Envelope) error {
	msg, err := bus.EnvelopeMessage(env)
	if err != nil {
		return err
	}
	return r.publish(ctx, env.EventID, msg)
}

func (r *Relay) publish(ctx context.Context, id string, msg bus.Message) error {
	if err := r.pub.Publish(ctx, msg); err != nil {
		metricRelayTotal.Inc(msg.Topic, "failed")
		if merr := r.store.MarkFailed(ctx, id, truncate(err.Error())); merr != nil {
			logx.WithContext(ctx).Errorw("outbox mark failed",
				logx.Field("event_id", id), logx.Field("err", merr))
		}
		return fmt.Errorf("publish %s: %w", msg.Topic, err)
	}

	metricRelayTotal.Inc(msg.Topic, "ok")
	// A lost mark only causes a duplicate publish, which consumers absorb.
	if err := r.store.MarkPublished(ctx, id); err != nil {
		logx.WithContext(ctx).Errorw("outbox mark published failed",
			logx.Field("event_id", id), logx.Field("err", err))
	}
	return nil
}

// DispatchPending drains one batch of unpublished rows in staging order and
// returns how many were published.
func (r *Relay) DispatchPending(ctx context.Context) (int, error) {
	rows, err := r.store.FindPending(ctx, r.maxRetries, r.batch)
	if err != nil {
		return 0, fmt.Errorf("load pending outbox rows: %w", err)
	}

	logger := logx.WithContext(ctx)
	sent := 0
	for _, row := range rows {
		if ctx.Err() != nil {
			return sent, ctx.Err()
		}
		msg, err := rowMessage(row)
		if err != nil {
			logger.Errorw("outbox row unpublishable", logx.Field("event_id", row.Id), logx.Field("err", err))
			if merr := r.store.MarkFailed(ctx, row.Id, truncate(err.Error())); merr != nil {
				logger.Errorw("outbox mark failed", logx.Field("event_id", row.Id), logx.Field("err", merr))
			}
			continue
		}
		if err := r.publish(ctx, row.Id, msg); err != nil {
			logger.Errorw("outbox relay publish failed",
				logx.Field("event_id", row.Id),
				logx.Field("retry_count", row.RetryCount+1),
				logx.Field("err", err))
			continue
		}
		sent++
	}
	return sent, nil
}

// rowMessage rebuilds the bus message for a staged row, routed to the topic
// recorded at staging time.
func rowMessage(row *outboxmodel.OutboxEvents) (bus.Message, error) {
	if row.Topic == "" {
		return bus.Message{}, errors.New("outbox row has no topic")
	}
	env, err := events.Decode([]byte(row.Payload))
	if err != nil {
		return bus.Message{}, err
	}
	msg, err := bus.EnvelopeMessage(env)
	if err != nil {
		return bus.Message{}, fmt.Errorf("encode envelope: %w", err)
	}
	msg.Topic = row.Topic
	return msg, nil
}

func truncate(s string) string {
	if len(s) <= maxErrorLen {
		return s
	}
	return s[:maxErrorLen]
}
