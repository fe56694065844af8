package events

import (
	"context"
	"fmt"
	"time"

	"dnsintake/internal/domain/models"

	"github.com/nats-io/nats.go"
)

// NATSPublisher publishes JSON envelopes to a single subject.
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
}

func NewNATSPublisher(url string, subject string) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("dnsintake"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}
	return &NATSPublisher{conn: nc, subject: subject}, nil
}

func (p *NATSPublisher) Publish(_ context.Context, id string, event models.IngestedEvent) error {
	data, err := encode(id, event)
	if err != nil {
		return err
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publishing to %s: %w", p.subject, err)
	}
	return nil
}

func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}
