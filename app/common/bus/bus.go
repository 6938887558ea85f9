package bus

import (
	"context"

	"KissaHub/app/common/events"

	"github.com/zeromicro/go-zero/core/logx"
)

// Message is the transport-neutral unit moved by the bus.
type Message struct {
	Topic   string
	Key     string
	Value   []byte
	Headers map[string]string
}

// Handler processes one delivery. A non-nil error means "not acknowledged":
// the message will be delivered again.
type Handler func(ctx context.Context, msg Message) error

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

// Subscriber blocks in Subscribe until ctx is cancelled or the subscription
// can no longer make progress.
type Subscriber interface {
	Subscribe(ctx context.Context, topics []string, handler Handler) error
}

// EnvelopeMessage routes an envelope to the topic named after its event type.
func EnvelopeMessage(env *events.Envelope) (Message, error) {
	body, err := env.Encode()
	if err != nil {
		return Message{}, err
	}
	return Message{
		Topic: env.EventType,
		Key:   env.PartitionKey,
		Value: body,
		Headers: map[string]string{
			"event_id":   env.EventID,
			"event_type": env.EventType,
			"producer":   env.Producer,
		},
	}, nil
}

// EnvelopeHandler decodes the envelope before calling fn. Undecodable messages
// are logged and acknowledged; redelivering them can never succeed.
func EnvelopeHandler(fn func(ctx context.Context, env *events.Envelope) error) Handler {
	return func(ctx context.Context, msg Message) error {
		env, err := events.Decode(msg.Value)
		if err != nil {
			logx.WithContext(ctx).Errorw("drop undecodable message",
				logx.Field("topic", msg.Topic),
				logx.Field("key", msg.Key),
				logx.Field("err", err))
			return nil
		}
		return fn(ctx, env)
	}
}
