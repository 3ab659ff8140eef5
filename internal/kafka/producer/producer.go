package producer

import (
	"context"
	"log/slog"

	"github.com/segmentio/kafka-go"
	"petStylizer/internal/config"
	"petStylizer/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProducerIface
type ProducerIface interface {
	SendMessage(ctx context.Context, key, message []byte) error
}

type Producer struct {
	writer *kafka.Writer
	log    *slog.Logger
}

func NewProducer(kafkaCfg *config.Kafka, log *slog.Logger) (*Producer, error) {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(kafkaCfg.Brokers...),
		Topic:                  kafkaCfg.Topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		writer: writer,
		log:    log.With(slog.String("component", "kafka/producer")),
	}, nil
}

// SendMessage publishes message keyed by key so that retries of the same
// generation land on the same partition.
func (p *Producer) SendMessage(ctx context.Context, key, message []byte) error {
	msg := kafka.Message{
		Key:   key,
		Value: message,
	}

	err := p.writer.WriteMessages(ctx, msg)
	if err != nil {
		p.log.Error("failed to send message to kafka", slog.String("topic", p.writer.Topic), sl.Err(err))
		return err
	}

	p.log.Info("message sent to kafka", slog.String("topic", p.writer.Topic), slog.String("key", string(key)))
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
