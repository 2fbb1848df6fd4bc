// Package router maps decoded control commands onto ledger operations and
// turns every outcome into exactly one protocol response.
package router

import (
	"context"
	"errors"
	"fmt"

	"github.com/coder/quartz"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/common"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/logging"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/metrics"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/protocol"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/ledger"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/telemetry"
)

// QueryError is a backend failure while executing a command.
type QueryError struct {
	Command string
	Err     error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("Query error on '%s': %v", e.Command, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

type Router struct {
	ledger   ledger.Ledger
	clock    quartz.Clock
	logger   logging.Logger
	reporter telemetry.Reporter
	metrics  *metrics.Metrics
}

func New(l ledger.Ledger, clock quartz.Clock, logger logging.Logger, reporter telemetry.Reporter, m *metrics.Metrics) *Router {
	return &Router{
		ledger:   l,
		clock:    clock,
		logger:   logger.With("module", "router"),
		reporter: reporter,
		metrics:  m,
	}
}

// Dispatch executes cmd and returns its response data. Backend failures are
// wrapped in *QueryError.
func (r *Router) Dispatch(ctx context.Context, cmd Command) (any, error) {
	data, err := cmd.execute(ctx, r)
	if err != nil {
		return nil, &QueryError{Command: cmd.Name(), Err: err}
	}
	return data, nil
}

// Handle decodes payload, runs the command and maps the outcome to a response.
func (r *Router) Handle(ctx context.Context, payload []byte) protocol.Response {
	cmd, err := ParseCommand(payload)
	if err != nil {
		code := protocol.CodeInvalidCommand
		if errors.Is(err, common.ErrAuth) {
			code = protocol.CodeAuthFailed
		}
		r.logger.Warn(ctx, "rejected command", "error", err)
		r.count("invalid", code)
		return protocol.Failure(code)
	}

	data, err := r.Dispatch(ctx, cmd)
	if err != nil {
		r.logger.Error(ctx, "command failed", "command", cmd.Name(), "error", err)
		r.reporter.Report(ctx, err, map[string]string{"phase": "receiveCommand", "command": cmd.Name()})
		r.count(cmd.Name(), protocol.CodeInternal)
		return protocol.Failure(protocol.CodeInternal)
	}

	resp, err := protocol.OK(data)
	if err != nil {
		r.logger.Error(ctx, "encode response", "command", cmd.Name(), "error", err)
		r.reporter.Report(ctx, err, map[string]string{"phase": "checkData", "command": cmd.Name()})
		r.count(cmd.Name(), protocol.CodeInternal)
		return protocol.Failure(protocol.CodeInternal)
	}

	r.logger.Debug(ctx, "command handled", "command", cmd.Name())
	r.count(cmd.Name(), protocol.CodeOK)
	return resp
}

func (r *Router) count(command string, code protocol.Code) {
	r.metrics.Commands.WithLabelValues(command, code.String()).Inc()
}
