package bus

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	headerOriginalTopic = "x-original-topic"
	headerLastError     = "x-last-error"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSubscriber consumes with manual commits: an offset is committed only
// once the handler succeeded or the message was parked on the dead-letter topic.
type KafkaSubscriber struct {
	conf          KafkaConf
	deadLetterPub Publisher
	newReader     func(topics []string) messageReader
}

// NewKafkaSubscriber builds a consumer-group subscriber. deadLetter may be nil,
// in which case exhausted messages stop the subscription uncommitted.
func NewKafkaSubscriber(c KafkaConf, deadLetter Publisher) *KafkaSubscriber {
	s := &KafkaSubscriber{conf: c, deadLetterPub: deadLetter}
	s.newReader = func(topics []string) messageReader {
		return kafka.NewReader(kafka.ReaderConfig{
			Brokers:     c.Brokers,
			GroupID:     c.Group,
			GroupTopics: topics,
			MinBytes:    1,
			MaxBytes:    10 << 20,
			MaxWait:     50 * time.Millisecond,
			StartOffset: kafka.FirstOffset,
		})
	}
	return s
}

func (s *KafkaSubscriber) Subscribe(ctx context.Context, topics []string, handler Handler) error {
	if !s.conf.Enabled() || s.conf.Group == "" || len(topics) == 0 {
		logx.Infow("skip kafka subscription, config missing", logx.Field("topics", topics))
		return nil
	}
	r := s.newReader(topics)
	defer r.Close()

	logx.Infow("kafka subscription started",
		logx.Field("group", s.conf.Group),
		logx.Field("topics", topics))
	return s.consume(ctx, r, handler)
}

func (s *KafkaSubscriber) consume(ctx context.Context, r messageReader, handler Handler) error {
	for {
		m, err := r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logx.Errorw("fetch message failed", logx.Field("err", err))
			if !sleepCtx(ctx, time.Second) {
				return nil
			}
			continue
		}

		msg := fromKafka(m)
		if herr := s.handle(ctx, msg, handler); herr != nil {
			if ctx.Err() != nil {
				return nil
			}
			if !s.deadLetter(ctx, msg, herr) {
				metricConsumeTotal.Inc(msg.Topic, resultFailed)
				return fmt.Errorf("consume %s partition %d offset %d: %w", m.Topic, m.Partition, m.Offset, herr)
			}
			metricConsumeTotal.Inc(msg.Topic, resultDeadLetter)
		} else {
			metricConsumeTotal.Inc(msg.Topic, resultOK)
		}

		if err := r.CommitMessages(ctx, m); err != nil {
			// the message will come back after a rebalance, handlers are idempotent
			logx.Errorw("commit message failed",
				logx.Field("topic", m.Topic),
				logx.Field("offset", m.Offset),
				logx.Field("err", err))
		}
	}
}

func (s *KafkaSubscriber) handle(ctx context.Context, msg Message, handler Handler) error {
	attempts := s.conf.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	interval := time.Duration(s.conf.RetryBackoffMs) * time.Millisecond
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = interval
	exp.MaxInterval = 30 * interval
	exp.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(attempts-1)), ctx)

	return backoff.RetryNotify(func() error {
		return handler(ctx, msg)
	}, policy, func(err error, next time.Duration) {
		logx.WithContext(ctx).Errorw("handle message failed, will retry",
			logx.Field("topic", msg.Topic),
			logx.Field("key", msg.Key),
			logx.Field("retry_in", next.String()),
			logx.Field("err", err))
	})
}

func (s *KafkaSubscriber) deadLetter(ctx context.Context, msg Message, cause error) bool {
	if s.conf.DeadLetterTopic == "" || s.deadLetterPub == nil {
		return false
	}
	headers := make(map[string]string, len(msg.Headers)+2)
	for k, v := range msg.Headers {
		headers[k] = v
	}
	headers[headerOriginalTopic] = msg.Topic
	headers[headerLastError] = cause.Error()

	err := s.deadLetterPub.Publish(ctx, Message{
		Topic:   s.conf.DeadLetterTopic,
		Key:     msg.Key,
		Value:   msg.Value,
		Headers: headers,
	})
	if err != nil {
		logx.WithContext(ctx).Errorw("dead-letter publish failed",
			logx.Field("topic", msg.Topic),
			logx.Field("err", err))
		return false
	}
	logx.WithContext(ctx).Errorw("message dead-lettered",
		logx.Field("topic", msg.Topic),
		logx.Field("key", msg.Key),
		logx.Field("err", cause))
	return true
}

func fromKafka(m kafka.Message) Message {
	msg := Message{
		Topic: m.Topic,
		Key:   string(m.Key),
		Value: m.Value,
	}
	if len(m.Headers) > 0 {
		msg.Headers = make(map[string]string, len(m.Headers))
		for _, h := range m.Headers {
			msg.Headers[h.Key] = string(h.Value)
		}
	}
	return msg
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
