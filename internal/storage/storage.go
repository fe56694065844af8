package storage

import (
	"context"
	"errors"

	"dnsintake/internal/domain/models"
)

var (
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrStoreRejected    = errors.New("store rejected event")
)

type Storage interface {
	SaveEvent(ctx context.Context, event models.IngestedEvent) (string, error)
	Close(ctx context.Context) error
}
