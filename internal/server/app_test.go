package server

import (
	"bytes"
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/config"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Key = "secret"
	cfg.ListenAddr = "127.0.0.1:0"
	cfg.APIAddr = "127.0.0.1:1"
	cfg.DatabaseDSN = filepath.Join(t.TempDir(), "db.sqlite")
	return cfg
}

func TestNewApp_BadDatabase(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabaseDSN = filepath.Join(t.TempDir(), "missing", "dir", "db.sqlite")

	_, err := NewApp(context.Background(), cfg, &syncBuffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db init error")
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	cfg := testConfig(t)
	cfg.MetricsAddr = "127.0.0.1:0"
	cfg.FakeWebsite = "127.0.0.1:0"
	cfg.FakeWebsiteRoot = t.TempDir()

	logs := &syncBuffer{}
	app, err := NewApp(context.Background(), cfg, logs)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	require.Eventually(t, func() bool {
		return bytes.Contains([]byte(logs.String()), []byte("Starting control server"))
	}, 5*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Contains(t, logs.String(), "App stopped")
}

func TestApp_RunFailsOnBadListenAddress(t *testing.T) {
	cfg := testConfig(t)
	cfg.ListenAddr = "127.0.0.1:99999"

	app, err := NewApp(context.Background(), cfg, &syncBuffer{})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "listen")
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return")
	}
}
