package processors

import (
	"context"
	"errors"
)

// ErrMalformed marks a message that can never be processed and should be
// skipped rather than retried.
var ErrMalformed = errors.New("malformed message")

type Processor interface {
	ProcessEvent(ctx context.Context, payload []byte) error
}
