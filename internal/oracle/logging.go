package oracle

import (
	"context"
	"time"

	"github.com/brightpath/tutor/internal/logging"
)

// LoggingProvider is a decorator that logs every oracle request.
type LoggingProvider struct {
	inner Provider
	log   *logging.Logger
}

// WithLogging wraps a Provider with structured request logging.
func WithLogging(p Provider, log *logging.Logger) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	fields := []any{
		"model", l.inner.ModelID(),
		"purpose", purpose,
		"latency_ms", latencyMs,
	}
	if resp != nil {
		fields = append(fields,
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens,
			"stop_reason", resp.StopReason,
		)
	}

	if err != nil {
		l.log.Warn("oracle request failed", append(fields, "error", err)...)
	} else {
		l.log.Debug("oracle request completed", fields...)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
