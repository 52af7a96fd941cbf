// Package config provides application configuration structures and helpers.
package config

import (
	"time"

	"go.uber.org/zap"
)

// The probe has no configuration surface: no flags, no environment
// variables, no config file. The cadence constants are fixed.
const (
	DefaultTickInterval   = 100 * time.Millisecond // Minimum delay between two counter increments.
	DefaultReportInterval = 10                     // Counter multiple that triggers a status report.
)

// ProbeConfig holds the runtime settings for the probe process.
type ProbeConfig struct {
	TickInterval   time.Duration // Minimum delay between two counter increments.
	ReportInterval uint64        // Interval (in ticks) between status reports.
	Logger         *zap.SugaredLogger
}

// NewProbeConfig returns the fixed probe configuration and builds the
// process logger. The logger writes to stderr only: stdout carries
// nothing but the probe's line protocol.
func NewProbeConfig() *ProbeConfig {
	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{"stderr"}
	logCfg.ErrorOutputPaths = []string{"stderr"}

	logger := zap.Must(logCfg.Build())

	return &ProbeConfig{
		TickInterval:   DefaultTickInterval,
		ReportInterval: DefaultReportInterval,
		Logger:         logger.Sugar(),
	}
}
