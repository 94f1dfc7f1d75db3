package handler

import (
	"context"
	"sync"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Astemirdum/booktrackr/booktrackr/internal/model"
)

type importBooks func(ctx context.Context, raw []byte) (model.Collection, error)

// Consumer applies import payloads read from kafka. A payload the service
// rejects is logged and marked so it is not redelivered.
type Consumer struct {
	importHandler importBooks
	log           *zap.Logger
	ready         chan bool
	once          sync.Once
}

func NewConsumer(importBooks importBooks, log *zap.Logger) *Consumer {
	return &Consumer{
		importHandler: importBooks,
		log:           log.Named("consumer"),
		ready:         make(chan bool),
	}
}

// Ready is closed once the first session is set up.
func (consumer *Consumer) Ready() <-chan bool {
	return consumer.ready
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	consumer.once.Do(func() { close(consumer.ready) })
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			books, err := consumer.importHandler(session.Context(), message.Value)
			if err != nil {
				consumer.log.Error("import rejected",
					zap.Error(err),
					zap.Int64("offset", message.Offset),
					zap.Int32("partition", message.Partition))
				session.MarkMessage(message, "")
				continue
			}

			consumer.log.Debug("import applied",
				zap.Int("count", len(books)),
				zap.Time("timestamp", message.Timestamp),
				zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
