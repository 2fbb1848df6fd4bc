// Package reconciler keeps trojan-go's user set in line with the ledger and
// harvests its traffic counters into flow samples.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/coder/quartz"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/common"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/logging"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/metrics"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/ledger"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/models"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/remote"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/telemetry"
)

const DefaultInterval = 60 * time.Second

// FetchError means a tick could not read one of the two snapshots and did
// nothing else.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return "fetch snapshots: " + e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// newStartupBackOff is a seam for tests; it bounds how often the first tick
// is retried before startup fails.
var newStartupBackOff = func() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 10 * time.Second
	return backoff.WithMaxRetries(b, 5)
}

type Reconciler struct {
	ledger   ledger.Ledger
	remote   remote.Manager
	clock    quartz.Clock
	interval time.Duration
	logger   logging.Logger
	reporter telemetry.Reporter
	metrics  *metrics.Metrics

	running atomic.Bool
}

func New(
	l ledger.Ledger,
	r remote.Manager,
	clock quartz.Clock,
	interval time.Duration,
	logger logging.Logger,
	reporter telemetry.Reporter,
	m *metrics.Metrics,
) *Reconciler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Reconciler{
		ledger:   l,
		remote:   r,
		clock:    clock,
		interval: interval,
		logger:   logger.With("module", "reconciler"),
		reporter: reporter,
		metrics:  m,
	}
}

// Run performs the first tick, retrying it while the snapshots cannot be
// fetched, then ticks every interval until ctx is done. A first tick that
// never manages to fetch is returned as an error.
func (r *Reconciler) Run(ctx context.Context) error {
	if err := r.startup(ctx); err != nil {
		return err
	}

	w := r.clock.TickerFunc(ctx, r.interval, func() error {
		// failures are logged and reported by Tick; the next tick starts over
		_ = r.Tick(ctx)
		return nil
	}, "reconciler")

	err := w.Wait()
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func (r *Reconciler) startup(ctx context.Context) error {
	op := func() error {
		var fe *FetchError
		if err := r.Tick(ctx); errors.As(err, &fe) {
			return err
		}
		return nil
	}
	notify := func(err error, d time.Duration) {
		r.logger.Warn(ctx, "initial reconciliation failed, retrying", "error", err, "retry_in", d)
	}

	if err := backoff.RetryNotify(op, backoff.WithContext(newStartupBackOff(), ctx), notify); err != nil {
		return fmt.Errorf("initial reconciliation: %w", err)
	}
	return nil
}

// Tick runs one reconciliation cycle. It returns common.ErrTickInProgress
// without doing anything when another tick is still running, a *FetchError
// when a snapshot could not be read, and otherwise the combined errors of the
// sub-steps that failed. No sub-step is retried within a tick.
func (r *Reconciler) Tick(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		r.logger.Warn(ctx, "previous tick still running, skipping")
		r.metrics.Ticks.WithLabelValues("skipped").Inc()
		return common.ErrTickInProgress
	}
	defer r.running.Store(false)

	accounts, users, err := r.fetch(ctx)
	if err != nil {
		r.logger.Error(ctx, "fetch snapshots", "error", err)
		r.reporter.Report(ctx, err, map[string]string{"phase": "reconciler:fetch"})
		r.metrics.Ticks.WithLabelValues("failed").Inc()
		return &FetchError{Err: err}
	}
	r.metrics.RemoteUsers.Set(float64(len(users)))

	p := makePlan(accounts, users, r.clock.Now())
	r.logger.Debug(ctx, "tick planned",
		"local", len(accounts), "remote", len(users),
		"add", len(p.toAdd), "remove", len(p.toRemove), "samples", len(p.samples))

	if err := r.apply(ctx, p); err != nil {
		r.metrics.Ticks.WithLabelValues("partial").Inc()
		return err
	}

	r.metrics.Ticks.WithLabelValues("ok").Inc()
	return nil
}

func (r *Reconciler) fetch(ctx context.Context) ([]models.Account, []models.RemoteUser, error) {
	var (
		accounts []models.Account
		users    []models.RemoteUser
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := r.ledger.ListAccounts(gctx)
		if err != nil {
			return fmt.Errorf("list accounts: %w", err)
		}
		accounts = a
		return nil
	})
	g.Go(func() error {
		u, err := r.remote.ListActive(gctx)
		if err != nil {
			return fmt.Errorf("list remote users: %w", err)
		}
		users = u
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return accounts, users, nil
}

type step struct {
	name string
	run  func(ctx context.Context) error
}

// apply runs the plan's sub-steps concurrently. A failing step does not stop
// the others.
func (r *Reconciler) apply(ctx context.Context, p plan) error {
	var steps []step
	if len(p.samples) > 0 {
		steps = append(steps, step{"recordFlows", func(ctx context.Context) error {
			if err := r.ledger.RecordFlows(ctx, p.samples); err != nil {
				return err
			}
			r.metrics.HarvestedBytes.Add(float64(p.harvested()))
			return nil
		}})
	}
	if len(p.reset) > 0 {
		steps = append(steps, step{"resetCounters", func(ctx context.Context) error {
			return r.remote.ResetCounters(ctx, p.reset)
		}})
	}
	if len(p.toAdd) > 0 {
		steps = append(steps, step{"addMany", func(ctx context.Context) error {
			return r.remote.AddMany(ctx, p.toAdd)
		}})
	}
	if len(p.toRemove) > 0 {
		steps = append(steps, step{"removeMany", func(ctx context.Context) error {
			return r.remote.RemoveMany(ctx, p.toRemove)
		}})
	}

	var (
		mu     sync.Mutex
		result *multierror.Error
		wg     sync.WaitGroup
	)
	for _, s := range steps {
		wg.Go(func() {
			err := s.run(ctx)
			if err == nil {
				return
			}
			err = fmt.Errorf("%s: %w", s.name, err)

			r.logger.Error(ctx, "reconciliation step failed", "step", s.name, "error", err)
			r.reporter.Report(ctx, err, map[string]string{"phase": "reconciler:" + s.name})
			r.metrics.StepFailures.WithLabelValues(s.name).Inc()

			mu.Lock()
			result = multierror.Append(result, err)
			mu.Unlock()
		})
	}
	wg.Wait()

	return result.ErrorOrNil()
}
