package bus

import (
	"context"
	"sync"
)

type delivery struct {
	msg     Message
	handler Handler
}

// MemoryBus is an in-process bus for local mode and tests. Handlers run
// synchronously inside Publish; failed deliveries are parked until Redeliver.
type MemoryBus struct {
	mu         sync.Mutex
	handlers   map[string][]Handler
	published  []Message
	pending    []delivery
	publishErr error
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[string][]Handler)}
}

func (b *MemoryBus) Publish(ctx context.Context, msg Message) error {
	b.mu.Lock()
	if b.publishErr != nil {
		err := b.publishErr
		b.mu.Unlock()
		return err
	}
	b.published = append(b.published, msg)
	handlers := append([]Handler(nil), b.handlers[msg.Topic]...)
	b.mu.Unlock()

	for _, h := range handlers {
		b.deliver(ctx, delivery{msg: msg, handler: h})
	}
	return nil
}

// Handle registers handler without blocking.
func (b *MemoryBus) Handle(topics []string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, topic := range topics {
		b.handlers[topic] = append(b.handlers[topic], handler)
	}
}

func (b *MemoryBus) Subscribe(ctx context.Context, topics []string, handler Handler) error {
	b.Handle(topics, handler)
	<-ctx.Done()
	return nil
}

// Redeliver retries every parked delivery once and reports how many are
// still failing.
func (b *MemoryBus) Redeliver(ctx context.Context) int {
	b.mu.Lock()
	parked := b.pending
	b.pending = nil
	b.mu.Unlock()

	for _, d := range parked {
		b.deliver(ctx, d)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

// Replay hands every message already published on topic to its handlers
// again, the way a consumer restarting from an old offset would.
func (b *MemoryBus) Replay(ctx context.Context, topic string) {
	for _, msg := range b.Published(topic) {
		b.mu.Lock()
		handlers := append([]Handler(nil), b.handlers[topic]...)
		b.mu.Unlock()
		for _, h := range handlers {
			b.deliver(ctx, delivery{msg: msg, handler: h})
		}
	}
}

func (b *MemoryBus) Published(topic string) []Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []Message
	for _, msg := range b.published {
		if msg.Topic == topic {
			out = append(out, msg)
		}
	}
	return out
}

func (b *MemoryBus) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

// FailPublishes makes every following Publish return err; nil restores it.
func (b *MemoryBus) FailPublishes(err error) {
	b.mu.Lock()
	b.publishErr = err
	b.mu.Unlock()
}

func (b *MemoryBus) deliver(ctx context.Context, d delivery) {
	if err := d.handler(ctx, d.msg); err != nil {
		metricConsumeTotal.Inc(d.msg.Topic, resultFailed)
		b.mu.Lock()
		b.pending = append(b.pending, d)
		b.mu.Unlock()
		return
	}
	metricConsumeTotal.Inc(d.msg.Topic, resultOK)
}
