// Package telemetry reports unexpected errors to an external collector.
//
// Expected traffic (authentication failures, unknown commands) is never
// reported; only operation failures, socket errors and reconciliation
// failures are.
package telemetry

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/logging"
)

// Reporter receives errors together with a small set of tags (phase,
// command, step) describing where they happened.
type Reporter interface {
	Report(ctx context.Context, err error, tags map[string]string)
	Flush(timeout time.Duration)
}

// LogReporter writes reports to the logger. It is used when no collector
// is configured.
type LogReporter struct {
	logger logging.Logger
}

func NewLogReporter(l logging.Logger) *LogReporter {
	return &LogReporter{logger: l.With("module", "telemetry")}
}

func (r *LogReporter) Report(ctx context.Context, err error, tags map[string]string) {
	args := make([]any, 0, 2+len(tags)*2)
	args = append(args, "error", err.Error())
	for k, v := range tags {
		args = append(args, k, v)
	}
	r.logger.Error(ctx, "reported error", args...)
}

func (r *LogReporter) Flush(time.Duration) {}

// SentryReporter sends reports to Sentry through its own hub, so nothing
// in the process depends on the sentry global state.
type SentryReporter struct {
	hub *sentry.Hub
}

func NewSentryReporter(opts sentry.ClientOptions) (*SentryReporter, error) {
	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, err
	}
	return &SentryReporter{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

func (r *SentryReporter) Report(ctx context.Context, err error, tags map[string]string) {
	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		r.hub.CaptureException(err)
	})
}

func (r *SentryReporter) Flush(timeout time.Duration) {
	r.hub.Flush(timeout)
}

// NewFromEnv returns a SentryReporter when SENTRY_DSN is set and a
// LogReporter otherwise. SENTRY_TRACES_SAMPLE_RATE defaults to 1.
func NewFromEnv(l logging.Logger, release string) Reporter {
	dsn := os.Getenv("SENTRY_DSN")
	if dsn == "" {
		return NewLogReporter(l)
	}

	rate := 1.0
	if v := os.Getenv("SENTRY_TRACES_SAMPLE_RATE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			rate = parsed
		}
	}

	r, err := NewSentryReporter(sentry.ClientOptions{
		Dsn:              dsn,
		TracesSampleRate: rate,
		Release:          release,
	})
	if err != nil {
		l.Warn(context.Background(), "sentry init failed, falling back to log reporter", "error", err)
		return NewLogReporter(l)
	}
	return r
}
