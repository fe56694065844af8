package eventgetter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dnsintake/internal/services/processors"

	"github.com/segmentio/kafka-go"
)

type EventConsumer interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type EventProcessor interface {
	ProcessEvent(ctx context.Context, event []byte) error
}

type Getter struct {
	log            *slog.Logger
	EventConsumer  EventConsumer
	EventProcessor EventProcessor
	retryDelay     time.Duration
}

func New(log *slog.Logger, consumer EventConsumer, processor EventProcessor, retryDelay time.Duration) *Getter {
	return &Getter{
		log:            log,
		EventConsumer:  consumer,
		EventProcessor: processor,
		retryDelay:     retryDelay,
	}
}

// GetEventStart consumes messages until ctx is canceled. A message is
// committed once processed or once it is known to be malformed. Other
// failures are retried on the same message after the retry delay.
func (g *Getter) GetEventStart(ctx context.Context) error {
	const op = "eventgetter.Getter.GetEventStart"

	log := g.log.With(slog.String("op", op))
	log.Info("starting event getter")

	for {
		select {
		case <-ctx.Done():
			log.Info("stopping event getter")
			return ctx.Err()
		default:
			g.processEvent(ctx)
		}
	}
}

func (g *Getter) processEvent(ctx context.Context) {
	const op = "eventgetter.processEvent"

	log := g.log.With(slog.String("op", op))

	message, err := g.EventConsumer.FetchMessage(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Error("failed to read message from consumer", slog.String("error", err.Error()))
		g.wait(ctx)
		return
	}

	log = log.With(slog.Int("partition", message.Partition), slog.Int64("offset", message.Offset))
	log.Debug("event received", slog.Int("message_size", len(message.Value)))

	for {
		err = g.EventProcessor.ProcessEvent(ctx, message.Value)
		if err == nil {
			log.Debug("event processed successfully")
			break
		}
		if errors.Is(err, processors.ErrMalformed) {
			log.Warn("skipping malformed event", slog.String("error", err.Error()))
			break
		}

		log.Error("failed to process event, retrying", slog.String("error", err.Error()))
		if !g.wait(ctx) {
			return
		}
	}

	if err := g.EventConsumer.CommitMessages(ctx, message); err != nil {
		log.Error("failed to commit message", slog.String("error", err.Error()))
		return
	}
	log.Debug("message committed successfully")
}

// wait sleeps for the retry delay. It reports false if ctx ended first.
func (g *Getter) wait(ctx context.Context) bool {
	t := time.NewTimer(g.retryDelay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
