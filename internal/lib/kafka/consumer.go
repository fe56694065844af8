package kafkaclient

import (
	"context"
	"fmt"
	"log/slog"

	kafka "github.com/segmentio/kafka-go"
)

type Consumer struct {
	log    *slog.Logger
	reader *kafka.Reader
}

func NewConsumer(
	log *slog.Logger,
	brokers []string,
	topic string,
	groupID string,
	dialAddress string) (*Consumer, error) {
	const op = "kafkaclient.NewConsumer"

	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}
	if topic == "" {
		return nil, ErrNoTopic
	}

	conn, err := kafka.Dial("tcp", dialAddress)
	if err != nil {
		return nil, fmt.Errorf("%s: dial kafka: %w", op, err)
	}
	defer conn.Close()

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: groupID,
	})

	log.Info("kafka consumer initialized",
		slog.String("op", op),
		slog.String("topic", topic),
		slog.String("group_id", groupID),
	)

	return &Consumer{
		log:    log,
		reader: reader,
	}, nil
}

// FetchMessage returns the next message without committing its offset.
func (c *Consumer) FetchMessage(ctx context.Context) (kafka.Message, error) {
	const op = "kafkaclient.Consumer.FetchMessage"

	msg, err := c.reader.FetchMessage(ctx)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("%s: %w", op, err)
	}

	c.log.Debug("message fetched from kafka",
		slog.Int("partition", msg.Partition),
		slog.Int64("offset", msg.Offset),
	)

	return msg, nil
}

func (c *Consumer) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	const op = "kafkaclient.Consumer.CommitMessages"

	if err := c.reader.CommitMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Consumer) Close() error {
	c.log.Info("closing kafka consumer")
	return c.reader.Close()
}
