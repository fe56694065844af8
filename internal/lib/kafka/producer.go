package kafkaclient

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	kafka "github.com/segmentio/kafka-go"
)

var (
	ErrNoBrokers = fmt.Errorf("no kafka brokers provided")
	ErrNoTopic   = fmt.Errorf("no kafka topic provided")
)

type Producer struct {
	log    *slog.Logger
	writer *kafka.Writer
	topic  string
}

// NewProducer makes sure topic exists and returns a producer writing to it.
// A failure to create the topic is logged; the broker may auto-create it.
func NewProducer(
	log *slog.Logger,
	brokers []string,
	topic string,
	dialAddress string) (*Producer, error) {
	const op = "kafkaclient.NewProducer"

	log = log.With(slog.String("op", op), slog.String("topic", topic))

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

	err = conn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	})
	if err != nil {
		log.Warn("failed to create topic", slog.String("error", err.Error()))
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	log.Info("kafka producer initialized")

	return &Producer{
		log:    log,
		writer: writer,
		topic:  topic,
	}, nil
}

func (p *Producer) Send(ctx context.Context, key, value []byte) error {
	const op = "kafkaclient.Producer.Send"

	err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p.log.Debug("kafka message sent",
		slog.String("key", string(key)),
		slog.Int("value_size", len(value)),
	)

	return nil
}

func (p *Producer) Close() error {
	p.log.Info("closing kafka producer")
	return p.writer.Close()
}
