package bus

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	mu        sync.Mutex
	queue     []kafka.Message
	committed []kafka.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.queue) == 0 {
		r.cancel()
		return kafka.Message{}, context.Canceled
	}
	m := r.queue[0]
	r.queue = r.queue[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

func newTestSubscriber(dlq Publisher, dlqTopic string) *KafkaSubscriber {
	return NewKafkaSubscriber(KafkaConf{
		Brokers:         []string{"localhost:9092"},
		Group:           "test",
		DeadLetterTopic: dlqTopic,
		MaxAttempts:     3,
		RetryBackoffMs:  1,
	}, dlq)
}

func TestConsumeCommitsAfterSuccessfulRetry(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := &fakeReader{cancel: cancel, queue: []kafka.Message{{Topic: "checkin.created", Offset: 1, Value: []byte("a")}}}

	calls := 0
	err := newTestSubscriber(nil, "").consume(ctx, r, func(ctx context.Context, msg Message) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Len(t, r.committed, 1)
}

func TestConsumeStopsUncommittedWithoutDeadLetter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := &fakeReader{cancel: cancel, queue: []kafka.Message{
		{Topic: "coffeeshop.approved", Offset: 1, Value: []byte("a")},
		{Topic: "coffeeshop.approved", Offset: 2, Value: []byte("b")},
	}}

	err := newTestSubscriber(nil, "").consume(ctx, r, func(ctx context.Context, msg Message) error {
		return errors.New("constraint violated")
	})
	assert.Error(t, err)
	assert.Empty(t, r.committed)
	assert.Len(t, r.queue, 1)
}

func TestConsumeParksExhaustedMessageOnDeadLetterTopic(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := &fakeReader{cancel: cancel, queue: []kafka.Message{
		{Topic: "review.added", Key: []byte("5"), Offset: 9, Value: []byte("a")},
	}}
	dlq := NewMemoryBus()

	err := newTestSubscriber(dlq, "kissahub.dlq").consume(ctx, r, func(ctx context.Context, msg Message) error {
		return errors.New("boom")
	})
	require.NoError(t, err)
	assert.Len(t, r.committed, 1)

	parked := dlq.Published("kissahub.dlq")
	require.Len(t, parked, 1)
	assert.Equal(t, "review.added", parked[0].Headers[headerOriginalTopic])
	assert.Equal(t, "boom", parked[0].Headers[headerLastError])
	assert.Equal(t, "5", parked[0].Key)
}
