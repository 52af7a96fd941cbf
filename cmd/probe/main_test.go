package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/and161185/liveness-probe/internal/config"
)

func TestRunStopsOnCancel(t *testing.T) {
	cfg := config.NewProbeConfig()
	cfg.TickInterval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())

	var buf bytes.Buffer
	errCh := make(chan error, 1)
	go func() { errCh <- run(ctx, cfg, &buf) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("run did not stop after cancel")
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, "Starting loop...", lines[0])
	for _, line := range lines[1:] {
		require.True(t, strings.HasPrefix(line, "Loop count: "), "unexpected line %q", line)
	}
}

func TestRunRejectsBrokenConfig(t *testing.T) {
	cfg := config.NewProbeConfig()
	cfg.TickInterval = 0

	var buf bytes.Buffer
	err := run(context.Background(), cfg, &buf)
	require.Error(t, err)
	require.Empty(t, buf.String())
}
