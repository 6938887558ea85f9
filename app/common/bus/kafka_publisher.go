package bus

import (
	"context"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes to the topic carried by each message. Messages are
// hashed by key so events of one aggregate share a partition.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(c KafkaConf) (*KafkaPublisher, error) {
	if !c.Enabled() {
		return nil, errors.New("kafka publisher requires at least one broker")
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(c.Brokers...),
			RequiredAcks:           kafka.RequireAll,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           5 * time.Millisecond,
		},
	}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, msg Message) error {
	km := kafka.Message{
		Topic: msg.Topic,
		Key:   []byte(msg.Key),
		Value: msg.Value,
		Time:  time.Now().UTC(),
	}
	for k, v := range msg.Headers {
		km.Headers = append(km.Headers, kafka.Header{Key: k, Value: []byte(v)})
	}
	if err := p.writer.WriteMessages(ctx, km); err != nil {
		metricPublishTotal.Inc(msg.Topic, resultFailed)
		return err
	}
	metricPublishTotal.Inc(msg.Topic, resultOK)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
