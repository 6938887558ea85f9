package bus

import "github.com/zeromicro/go-zero/core/logx"

// Bus bundles the publisher and subscriber a service runs with.
type Bus struct {
	Publisher  Publisher
	Subscriber Subscriber
	closers    []func() error
}

// MustNewBus connects to Kafka when brokers are configured and falls back
// to an in-process MemoryBus otherwise.
func MustNewBus(c KafkaConf) *Bus {
	if !c.Enabled() {
		logx.Info("no kafka brokers configured, using in-memory bus")
		mem := NewMemoryBus()
		return &Bus{Publisher: mem, Subscriber: mem}
	}

	pub, err := NewKafkaPublisher(c)
	logx.Must(err)

	var deadLetter Publisher
	if c.DeadLetterTopic != "" {
		deadLetter = pub
	}
	return &Bus{
		Publisher:  pub,
		Subscriber: NewKafkaSubscriber(c, deadLetter),
		closers:    []func() error{pub.Close},
	}
}

func (b *Bus) Close() {
	for _, closeFn := range b.closers {
		if err := closeFn(); err != nil {
			logx.Errorw("close bus failed", logx.Field("err", err))
		}
	}
}
