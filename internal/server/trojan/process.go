// Package trojan supervises a trojan-go child process.
package trojan

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/coder/quartz"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/logging"
)

// ReadyDelay is how long after trojan-go reports initialization its API is
// assumed to accept connections.
const ReadyDelay = 500 * time.Millisecond

const readyMarker = "initializing"

// ErrExited is returned by Run when trojan-go stops on its own.
var ErrExited = errors.New("trojan-go exited")

type Process struct {
	binary string
	config string
	clock  quartz.Clock
	logger logging.Logger

	ready     chan struct{}
	readyOnce sync.Once
}

func New(binary, configPath string, clock quartz.Clock, l logging.Logger) *Process {
	return &Process{
		binary: binary,
		config: configPath,
		clock:  clock,
		logger: l.With("module", "trojan"),
		ready:  make(chan struct{}),
	}
}

// Ready is closed once trojan-go has initialized.
func (p *Process) Ready() <-chan struct{} {
	return p.ready
}

// Run starts trojan-go and relays its output to the logger until the process
// exits. Cancelling ctx kills the process and Run returns nil; any other exit
// is an error wrapping ErrExited.
func (p *Process) Run(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, p.binary, "-config", p.config)
	cmd.WaitDelay = time.Second

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start trojan-go: %w", err)
	}
	p.logger.Info(ctx, "trojan-go started", "pid", cmd.Process.Pid, "binary", p.binary, "config", p.config)

	scanned := make(chan struct{})
	go func() {
		defer close(scanned)
		p.relay(ctx, pr)
	}()

	err := cmd.Wait()
	_ = pw.Close()
	<-scanned

	if ctx.Err() != nil {
		p.logger.Info(ctx, "trojan-go stopped")
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExited, err)
	}
	return ErrExited
}

func (p *Process) relay(ctx context.Context, r io.Reader) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		p.log(ctx, line)
		if strings.Contains(line, readyMarker) {
			p.readyOnce.Do(func() {
				p.clock.AfterFunc(ReadyDelay, func() { close(p.ready) }, "trojan", "ready")
			})
		}
	}
	// drain so the writers never block on a reader that gave up
	_, _ = io.Copy(io.Discard, r)
}

func (p *Process) log(ctx context.Context, line string) {
	level, msg := parseLine(line)
	switch level {
	case levelError:
		p.logger.Error(ctx, msg)
	case levelWarn:
		p.logger.Warn(ctx, msg)
	case levelDebug:
		p.logger.Debug(ctx, msg)
	default:
		p.logger.Info(ctx, msg)
	}
}

type level int

const (
	levelInfo level = iota
	levelDebug
	levelWarn
	levelError
)

var markers = []struct {
	tag   string
	level level
}{
	{"[FATAL]", levelError},
	{"[ERROR]", levelError},
	{"[WARN]", levelWarn},
	{"[INFO]", levelInfo},
	{"[DEBUG]", levelDebug},
}

// parseLine picks the level from trojan-go's "[LEVEL]" marker and strips it.
// Unmarked lines are info.
func parseLine(line string) (level, string) {
	for _, m := range markers {
		if i := strings.Index(line, m.tag); i >= 0 {
			return m.level, strings.TrimSpace(line[:i] + line[i+len(m.tag):])
		}
	}
	return levelInfo, strings.TrimSpace(line)
}
