package consumer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
	"petStylizer/internal/config"
	"petStylizer/internal/lib/logger/sl"
)

type Handler func(ctx context.Context, message []byte) error

type Consumer struct {
	reader *kafka.Reader
	log    *slog.Logger
}

func NewConsumer(kafkaCfg *config.Kafka, log *slog.Logger) (*Consumer, error) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        kafkaCfg.Brokers,
		Topic:          kafkaCfg.Topic,
		GroupID:        kafkaCfg.GroupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        1 * time.Second,
		CommitInterval: 1 * time.Second,
	})

	return &Consumer{
		reader: reader,
		log:    log.With(slog.String("component", "kafka/consumer")),
	}, nil
}

// ReadMessages feeds messages to handler until ctx is cancelled.
// Handler errors are logged and the message is still committed.
func (c *Consumer) ReadMessages(ctx context.Context, handler Handler) {
	c.log.Info("kafka consumer started", slog.String("topic", c.reader.Config().Topic))

	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.log.Info("kafka consumer stopped")
				return
			}
			c.log.Error("error reading message from kafka", sl.Err(err))
			continue
		}

		c.log.Info(
			"message received",
			slog.String("topic", m.Topic),
			slog.Int("partition", m.Partition),
			slog.Int64("offset", m.Offset),
		)

		if err = handler(ctx, m.Value); err != nil {
			c.log.Error("error handling message", slog.Int64("offset", m.Offset), sl.Err(err))
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
