// Package events fans persisted records out to a message bus.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dnsintake/internal/domain/models"
)

const EventTypeIngested = "dns.event.ingested"

// Envelope is the wire form of a persisted record on the bus.
type Envelope struct {
	EventType  string    `json:"event_type"`
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Kind       string    `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, id string, event models.IngestedEvent) error
	Close() error
}

func NewEnvelope(id string, event models.IngestedEvent) Envelope {
	return Envelope{
		EventType:  EventTypeIngested,
		ID:         id,
		Source:     event.Source,
		Kind:       event.Kind,
		OccurredAt: event.ReceivedAt,
		Payload:    event.Payload,
	}
}

func encode(id string, event models.IngestedEvent) ([]byte, error) {
	data, err := json.Marshal(NewEnvelope(id, event))
	if err != nil {
		return nil, fmt.Errorf("marshaling envelope: %w", err)
	}
	return data, nil
}
