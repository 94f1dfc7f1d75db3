package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Astemirdum/booktrackr/pkg/circuit_breaker"
	"github.com/Astemirdum/booktrackr/pkg/kafka"
)

// Publisher announces collection changes. Publishing is best effort and never
// fails the command that caused it.
type Publisher interface {
	Publish(ctx context.Context, ev kafka.BookEvent)
}

type Nop struct{}

func (Nop) Publish(context.Context, kafka.BookEvent) {}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

func NewKafkaPublisher(producer sarama.SyncProducer, log *zap.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    kafka.BookEventsTopic,
		cb:       circuit_breaker.New(100, 10*time.Second, 0.2, 2),
		log:      log.Named("events"),
	}
}

func (p *kafkaPublisher) Publish(_ context.Context, ev kafka.BookEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		p.log.Error("marshal event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.BookID),
		Value: sarama.ByteEncoder(data),
	}
	err = p.cb.Call(func() error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		p.log.Warn("publish event",
			zap.String("type", string(ev.EventType)),
			zap.String("breaker", p.cb.State().String()),
			zap.Error(err))
		return
	}
	p.log.Debug("event published", zap.String("type", string(ev.EventType)), zap.String("bookId", ev.BookID))
}
