package main

import (
	"context"
	"io"
	"os"

	"github.com/and161185/liveness-probe/internal/buildinfo"
	"github.com/and161185/liveness-probe/internal/config"
	"github.com/and161185/liveness-probe/internal/loop"
	"github.com/and161185/liveness-probe/internal/sink"
)

func main() {
	buildinfo.Print(os.Stderr)

	cfg := config.NewProbeConfig()
	cfg.Logger.Infof("Probe config: TickInterval=%s, ReportInterval=%d",
		cfg.TickInterval, cfg.ReportInterval)

	// No signal handling: the probe has no clean-exit path. External
	// termination kills it mid-tick, with nothing to release.
	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		cfg.Logger.Fatal(err)
	}
}

func run(ctx context.Context, cfg *config.ProbeConfig, out io.Writer) error {
	l, err := loop.New(loop.Config{
		TickInterval:   cfg.TickInterval,
		ReportInterval: cfg.ReportInterval,
	}, sink.New(out))
	if err != nil {
		return err
	}
	return l.Run(ctx)
}
