package processors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"dnsintake/internal/domain/models"
	"dnsintake/internal/services/intake"
)

type DNSRecorder interface {
	RecordDNSRequest(ctx context.Context, source string, q models.DNSQuery) (string, error)
}

type DNSQueryProcessor struct {
	log      *slog.Logger
	recorder DNSRecorder
}

func NewDNSQueryProcessor(log *slog.Logger, recorder DNSRecorder) *DNSQueryProcessor {
	return &DNSQueryProcessor{
		log:      log,
		recorder: recorder,
	}
}

func (p *DNSQueryProcessor) ProcessEvent(ctx context.Context, payload []byte) error {
	const op = "processors.DNSQueryProcessor.ProcessEvent"

	log := p.log.With(slog.String("op", op))

	query, err := parseDNSQuery(payload)
	if err != nil {
		log.Warn("failed to parse dns query payload", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w: %w", op, ErrMalformed, err)
	}

	status, err := p.recorder.RecordDNSRequest(ctx, models.SourceKafka, *query)
	if err != nil {
		if errors.Is(err, intake.ErrMalformedInput) {
			log.Warn("invalid dns query, skipping", slog.String("error", err.Error()))
			return fmt.Errorf("%s: %w: %w", op, ErrMalformed, err)
		}
		log.Error("failed to record dns query", slog.String("error", err.Error()))
		return fmt.Errorf("%s: record dns query: %w", op, err)
	}

	log.Debug("dns query processed", slog.String("status", status), slog.String("domain", query.Domain))

	return nil
}

func parseDNSQuery(payload []byte) (*models.DNSQuery, error) {
	query := &models.DNSQuery{}

	if err := json.Unmarshal(payload, query); err != nil {
		return nil, err
	}

	return query, nil
}
