package events

import (
	"context"

	"dnsintake/internal/domain/models"
)

type Sender interface {
	Send(ctx context.Context, key, value []byte) error
	Close() error
}

// KafkaPublisher keys each message by event kind.
type KafkaPublisher struct {
	sender Sender
}

func NewKafkaPublisher(sender Sender) *KafkaPublisher {
	return &KafkaPublisher{sender: sender}
}

func (p *KafkaPublisher) Publish(ctx context.Context, id string, event models.IngestedEvent) error {
	data, err := encode(id, event)
	if err != nil {
		return err
	}
	return p.sender.Send(ctx, []byte(event.Kind), data)
}

func (p *KafkaPublisher) Close() error {
	return p.sender.Close()
}
