// Package intake is the single path every front door uses to persist an
// incoming request: stamp it, store it with a bounded wait, publish it.
package intake

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dnsintake/internal/domain/models"
	"dnsintake/internal/lib/metrics"
	"dnsintake/internal/storage"
)

var (
	ErrUnavailable       = errors.New("store unavailable")
	ErrRejected          = errors.New("event rejected by store")
	ErrMalformedInput    = errors.New("malformed input")
	ErrBlocklistDisabled = errors.New("blocklist disabled")
)

const (
	StatusSuccess = "success"
	StatusBlocked = "blocked"
)

type EventSaver interface {
	SaveEvent(ctx context.Context, event models.IngestedEvent) (string, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, id string, event models.IngestedEvent) error
}

type Blocklist interface {
	Block(ctx context.Context, ip string) error
	IsBlocked(ctx context.Context, ip string) (bool, error)
}

const DefaultPublishTimeout = 2 * time.Second

type Intake struct {
	log            *slog.Logger
	saver          EventSaver
	publisher      EventPublisher
	blocklist      Blocklist
	storeTimeout   time.Duration
	publishTimeout time.Duration
	now            func() time.Time
}

// New builds the intake service. publisher and blocklist may be nil: a nil
// publisher disables fan-out, a nil blocklist disables blocking. A
// non-positive publishTimeout falls back to DefaultPublishTimeout.
func New(
	log *slog.Logger,
	saver EventSaver,
	publisher EventPublisher,
	blocklist Blocklist,
	storeTimeout time.Duration,
	publishTimeout time.Duration,
) *Intake {
	if publishTimeout <= 0 {
		publishTimeout = DefaultPublishTimeout
	}

	return &Intake{
		log:            log,
		saver:          saver,
		publisher:      publisher,
		blocklist:      blocklist,
		storeTimeout:   storeTimeout,
		publishTimeout: publishTimeout,
		now:            time.Now,
	}
}

// Handle persists one event and returns its acknowledgement. The insert is
// bounded by the store timeout; store failures come back as ErrUnavailable or
// ErrRejected, a canceled or expired caller context comes back unchanged.
func (i *Intake) Handle(ctx context.Context, raw models.RawEvent) (models.Ack, error) {
	const op = "intake.Handle"

	log := i.log.With(
		slog.String("op", op),
		slog.String("source", raw.Source),
		slog.String("kind", raw.Kind),
	)

	event := models.IngestedEvent{
		Source:     raw.Source,
		Kind:       raw.Kind,
		Payload:    raw.Payload,
		ReceivedAt: i.now().UTC(),
	}

	saveCtx := ctx
	if i.storeTimeout > 0 {
		var cancel context.CancelFunc
		saveCtx, cancel = context.WithTimeout(ctx, i.storeTimeout)
		defer cancel()
	}

	start := time.Now()
	id, err := i.saver.SaveEvent(saveCtx, event)
	if err != nil {
		metrics.ObserveInsert(raw.Source, "error", time.Since(start))
		return models.Ack{}, i.mapSaveError(ctx, log, op, err)
	}
	metrics.ObserveInsert(raw.Source, "ok", time.Since(start))

	log.Debug("event saved", slog.String("id", id))

	if i.publisher != nil {
		i.publish(ctx, log, id, event)
	}

	return models.Ack{ID: id, ReceivedAt: event.ReceivedAt}, nil
}

// publish hands the saved event to the publisher and waits at most
// publishTimeout for it. The caller's cancellation does not cut the publish
// short; a publisher still running at the deadline is left to finish on its
// own with a canceled context.
func (i *Intake) publish(ctx context.Context, log *slog.Logger, id string, event models.IngestedEvent) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), i.publishTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- i.publisher.Publish(pubCtx, id, event)
	}()

	var err error
	select {
	case err = <-done:
	case <-pubCtx.Done():
		err = fmt.Errorf("publish timed out after %s: %w", i.publishTimeout, pubCtx.Err())
	}

	if err != nil {
		metrics.IncPublishFailure(event.Kind)
		log.Warn("failed to publish event", slog.String("id", id), slog.String("error", err.Error()))
	}
}

func (i *Intake) mapSaveError(ctx context.Context, log *slog.Logger, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		log.Warn("request ended before event was saved", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, ctxErr)
	}

	switch {
	case errors.Is(err, storage.ErrStoreRejected):
		log.Error("store rejected event", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w: %w", op, ErrRejected, err)
	case errors.Is(err, storage.ErrStoreUnavailable), errors.Is(err, context.DeadlineExceeded):
		log.Error("store unavailable", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}

	log.Error("failed to save event", slog.String("error", err.Error()))
	return fmt.Errorf("%s: save event: %w", op, err)
}

// SayHello records the greeting for name and returns it.
func (i *Intake) SayHello(ctx context.Context, name string) (string, error) {
	const op = "intake.SayHello"

	greeting := fmt.Sprintf("Hello, %s!", name)

	if _, err := i.Handle(ctx, models.RawEvent{
		Source:  models.SourceGreeter,
		Kind:    models.KindGreeting,
		Payload: greeting,
	}); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return greeting, nil
}

// IngestDNSQuery stores an opaque DNS query payload as received.
func (i *Intake) IngestDNSQuery(ctx context.Context, source string, payload any) (models.Ack, error) {
	const op = "intake.IngestDNSQuery"

	if payload == nil {
		return models.Ack{}, fmt.Errorf("%s: empty payload: %w", op, ErrMalformedInput)
	}

	ack, err := i.Handle(ctx, models.RawEvent{
		Source:  source,
		Kind:    models.KindDNSQuery,
		Payload: payload,
	})
	if err != nil {
		return models.Ack{}, fmt.Errorf("%s: %w", op, err)
	}

	return ack, nil
}

// RecordDNSRequest validates and normalizes q, then stores it unless the
// client address is blocked. It returns StatusSuccess or StatusBlocked.
func (i *Intake) RecordDNSRequest(ctx context.Context, source string, q models.DNSQuery) (string, error) {
	const op = "intake.RecordDNSRequest"

	log := i.log.With(slog.String("op", op), slog.String("source", source))

	query, err := NormalizeQuery(q)
	if err != nil {
		log.Warn("invalid dns request", slog.String("error", err.Error()))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if i.blocklist != nil {
		blocked, err := i.blocklist.IsBlocked(ctx, query.IPAddress)
		if err != nil {
			log.Error("blocklist lookup failed", slog.String("error", err.Error()))
			return "", fmt.Errorf("%s: blocklist lookup: %w: %w", op, ErrUnavailable, err)
		}
		if blocked {
			log.Info("dns request from blocked address", slog.String("ip_address", query.IPAddress))
			return StatusBlocked, nil
		}
	}

	if _, err := i.Handle(ctx, models.RawEvent{
		Source:  source,
		Kind:    models.KindDNSQuery,
		Payload: query,
	}); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return StatusSuccess, nil
}

// BlockIP adds ip to the blocklist.
func (i *Intake) BlockIP(ctx context.Context, ip string) error {
	const op = "intake.BlockIP"

	log := i.log.With(slog.String("op", op))

	if i.blocklist == nil {
		return fmt.Errorf("%s: %w", op, ErrBlocklistDisabled)
	}

	addr, err := normalizeAddress(ip)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := i.blocklist.Block(ctx, addr); err != nil {
		log.Error("failed to block address", slog.String("ip_address", addr), slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}

	log.Info("address blocked", slog.String("ip_address", addr))

	return nil
}
