package events

import (
	"context"

	"dnsintake/internal/domain/models"
)

// NoopPublisher discards events. Used when no bus is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, models.IngestedEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
