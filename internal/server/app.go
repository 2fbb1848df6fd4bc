// Package server wires the bridge together: ledger, trojan-go API client,
// optional trojan-go child process, reconciler, control server and the
// optional decoy website and metrics endpoint.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder/quartz"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/buildinfo"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/logging"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/metrics"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/config"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/decoy"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/httpserver"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/ledger"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/reconciler"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/remote"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/router"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/tcp"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/trojan"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/telemetry"
)

const flushTimeout = 2 * time.Second

type App struct {
	config   *config.Config
	logger   logging.Logger
	reporter telemetry.Reporter
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	clock    quartz.Clock
	ledger   ledger.Ledger
	remote   remote.Manager
}

// NewApp opens the ledger and prepares the trojan-go API client. Logs go to w.
func NewApp(ctx context.Context, c *config.Config, w io.Writer) (*App, error) {
	logger := logging.NewJSONLogger(w, c.Debug)
	reporter := telemetry.NewFromEnv(logger, buildinfo.Version())

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	l, err := ledger.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm, err := remote.NewTrojanManager(c.APIAddr, c.MaxMessageSize, logger)
	if err != nil {
		_ = l.Close()
		return nil, fmt.Errorf("trojan-go api init error: %w", err)
	}

	return &App{
		config:   c,
		logger:   logger,
		reporter: reporter,
		registry: registry,
		metrics:  m,
		clock:    quartz.NewReal(),
		ledger:   l,
		remote:   rm,
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Received signal, shutting down", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run starts every component and blocks until ctx is cancelled, a signal
// arrives, or a component fails. The first failure is returned; shutdown
// caused by ctx or a signal returns nil.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "version", buildinfo.Version())
	app.initSignalHandler(ctx, cancelFunc)

	g, gctx := errgroup.WithContext(ctx)

	ready := app.startTrojan(gctx, g)

	r := router.New(app.ledger, app.clock, app.logger, app.reporter, app.metrics)
	ctl := tcp.NewServer(app.config.ListenAddr, app.config.Key, r, app.clock, app.logger, app.reporter)
	g.Go(func() error { return ctl.Run(gctx) })

	rec := reconciler.New(app.ledger, app.remote, app.clock, app.config.SyncInterval, app.logger, app.reporter, app.metrics)
	g.Go(func() error {
		select {
		case <-ready:
		case <-gctx.Done():
			return nil
		}
		if err := rec.Run(gctx); err != nil && gctx.Err() == nil {
			return err
		}
		return nil
	})

	if app.config.FakeWebsite != "" {
		site := httpserver.New("decoy", app.config.FakeWebsite, decoy.NewHandler(app.config.FakeWebsiteRoot), app.logger)
		g.Go(func() error { return site.Run(gctx) })
	}
	if app.config.MetricsAddr != "" {
		ms := httpserver.New("metrics", app.config.MetricsAddr, metrics.Handler(app.registry), app.logger)
		g.Go(func() error { return ms.Run(gctx) })
	}

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, "app stopped with error", "error", err)
		app.reporter.Report(ctx, err, map[string]string{"phase": "startServer"})
	}

	app.close(ctx)
	app.logger.Info(ctx, "App stopped")
	return err
}

// startTrojan launches trojan-go when a config is given and returns a channel
// that is closed once its API can be used.
func (app *App) startTrojan(ctx context.Context, g *errgroup.Group) <-chan struct{} {
	if app.config.TrojanConfig == "" {
		ready := make(chan struct{})
		close(ready)
		return ready
	}

	p := trojan.New(app.config.TrojanBinary, app.config.TrojanConfig, app.clock, app.logger)
	g.Go(func() error { return p.Run(ctx) })
	return p.Ready()
}

func (app *App) close(ctx context.Context) {
	app.reporter.Flush(flushTimeout)
	if err := app.remote.Close(); err != nil {
		app.logger.Warn(ctx, "closing trojan-go api client", "error", err)
	}
	if err := app.ledger.Close(); err != nil {
		app.logger.Warn(ctx, "closing ledger", "error", err)
	}
}
